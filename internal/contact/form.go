// Package contact defines the submission record and the authoritative
// validation, sanitization and spam heuristics applied to it.
package contact

import (
	"github.com/Azz3m90/LandPage/internal/i18n"
)

// SubmissionRequest is the raw wire payload as received, before any
// validation. Field names match the public form contract for both JSON
// and form-encoded bodies.
type SubmissionRequest struct {
	FirstName      string `json:"firstName" form:"firstName"`
	LastName       string `json:"lastName" form:"lastName"`
	Email          string `json:"email" form:"email"`
	Phone          string `json:"phone" form:"phone"`
	Subject        string `json:"subject" form:"subject"`
	Message        string `json:"message" form:"message"`
	Language       string `json:"language" form:"language"`
	GDPRConsent    string `json:"gdpr-consent" form:"gdpr-consent"`
	TurnstileToken string `json:"cf-turnstile-response" form:"cf-turnstile-response"`
	Honeypot       string `json:"honeypot" form:"honeypot"`
}

// Submission is the sanitized record produced only when every required
// field passed format and length rules. It lives for one request.
type Submission struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Subject   string
	Message   string
	Language  i18n.Language
}

// FullName returns the sender's display name for email rendering.
func (s *Submission) FullName() string {
	return s.FirstName + " " + s.LastName
}

// FieldErrors maps a form field key to its localized error message.
// Multiple fields may be reported together.
type FieldErrors map[string]string

// RejectReason identifies which anti-abuse stage rejected a submission.
type RejectReason string

const (
	ReasonCaptchaRequired RejectReason = "CAPTCHA_REQUIRED"
	ReasonCaptchaInvalid  RejectReason = "CAPTCHA_INVALID"
	ReasonSpamDetected    RejectReason = "SPAM_DETECTED"
	ReasonRateLimited     RejectReason = "RATE_LIMITED"
)

// AbuseDecision is the outcome of the anti-abuse gate. The first failing
// stage short-circuits the rest.
type AbuseDecision struct {
	Accepted bool
	Reason   RejectReason
	// RetryAfterSeconds is set only for rate-limited rejections.
	RetryAfterSeconds int
}

// NotificationOutcome records which of the two emails were sent. AdminSent
// is the authoritative one for overall success.
type NotificationOutcome struct {
	AdminSent  bool
	ClientSent bool
}
