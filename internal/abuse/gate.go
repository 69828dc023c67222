// Package abuse applies the ordered anti-abuse checks to a submission.
package abuse

import (
	"context"
	"strings"

	"github.com/Azz3m90/LandPage/internal/contact"
	"github.com/Azz3m90/LandPage/internal/logging"
	"github.com/Azz3m90/LandPage/internal/ratelimit"
)

// Verifier checks a CAPTCHA token against the remote verification service.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}

// Gate runs the anti-abuse stages in order, short-circuiting on the first
// failure: token presence, remote verification, honeypot, spam heuristics,
// per-sender rate limit.
type Gate struct {
	verifier      Verifier
	store         *ratelimit.Store
	checkHoneypot bool
}

// NewGate builds the gate over the given verifier and rate-limit store.
func NewGate(verifier Verifier, store *ratelimit.Store, checkHoneypot bool) *Gate {
	return &Gate{
		verifier:      verifier,
		store:         store,
		checkHoneypot: checkHoneypot,
	}
}

// Check decides whether the submission may proceed to dispatch. The
// rate-limit timestamp is recorded only when every stage passes, so a
// rejected request never consumes the sender's window.
func (g *Gate) Check(ctx context.Context, req *contact.SubmissionRequest, remoteIP string) contact.AbuseDecision {
	logger := logging.GetGlobalLogger()

	// No submission is ever accepted without a token, regardless of any
	// other flag.
	if strings.TrimSpace(req.TurnstileToken) == "" {
		logger.Warn("[SECURITY] submission blocked - no turnstile token provided (ip=%s)", remoteIP)
		return contact.AbuseDecision{Reason: contact.ReasonCaptchaRequired}
	}

	if err := g.verifier.Verify(ctx, req.TurnstileToken, remoteIP); err != nil {
		logger.Warn("[SECURITY] submission blocked - invalid turnstile token (ip=%s): %v", remoteIP, err)
		return contact.AbuseDecision{Reason: contact.ReasonCaptchaInvalid}
	}

	// Real users never fill the hidden field.
	if g.checkHoneypot && strings.TrimSpace(req.Honeypot) != "" {
		logger.Warn("[SECURITY] submission blocked - honeypot filled (ip=%s)", remoteIP)
		return contact.AbuseDecision{Reason: contact.ReasonSpamDetected}
	}

	if contact.IsSpam(req.Message) {
		logger.Warn("[SECURITY] submission blocked - spam heuristics (ip=%s)", remoteIP)
		return contact.AbuseDecision{Reason: contact.ReasonSpamDetected}
	}

	if wait, limited := g.store.Retry(req.Email); limited {
		seconds := int(wait.Seconds())
		if seconds < 1 {
			seconds = 1
		}
		return contact.AbuseDecision{
			Reason:            contact.ReasonRateLimited,
			RetryAfterSeconds: seconds,
		}
	}
	g.store.Record(req.Email)

	return contact.AbuseDecision{Accepted: true}
}
