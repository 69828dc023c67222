// Package client implements the submission guard used by contactctl. It
// applies the same pre-checks the public form applies before a request is
// allowed to reach the API: required fields, email format, message length,
// consent, a CAPTCHA token gate and a local 60 second resubmit cooldown.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	contactdto "github.com/Azz3m90/LandPage/internal/api/dto/v1/contact"
	"github.com/Azz3m90/LandPage/internal/contact"
	"github.com/Azz3m90/LandPage/internal/i18n"
)

const (
	// ResubmitCooldown mirrors the server-side per-sender window so a
	// well-behaved client never trips it.
	ResubmitCooldown = 60 * time.Second

	minMessageLength = 10
	maxMessageLength = 2000

	stateDirName  = ".contactctl"
	stateFileName = "last-submission"
)

// GuardError is a pre-flight rejection. Nothing was sent over the network.
type GuardError struct {
	// Fields maps form field keys to localized messages when validation
	// failed; nil for cooldown and token rejections.
	Fields contact.FieldErrors
	// RetryAfterSeconds is set when the local cooldown blocked the submit.
	RetryAfterSeconds int
	Message           string
}

func (e *GuardError) Error() string {
	return e.Message
}

// Client submits contact requests to the API after local guarding.
type Client struct {
	baseURL  string
	lang     i18n.Language
	validate *validator.Validate
	http     *http.Client
	stateDir string
	now      func() time.Time
}

// NewClient builds a guard client for the given API base URL. The language
// selects the catalog used for guard error copy and travels with the
// submission.
func NewClient(baseURL string, lang i18n.Language) (*Client, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		lang:     lang,
		validate: validator.New(),
		http:     &http.Client{Timeout: 30 * time.Second},
		stateDir: filepath.Join(home, stateDirName),
		now:      time.Now,
	}, nil
}

// Validate runs the client-side field checks and returns localized errors
// keyed by field. A nil map means the submission may proceed.
func (c *Client) Validate(req *contact.SubmissionRequest) contact.FieldErrors {
	msgs := i18n.Catalog(c.lang)
	errs := contact.FieldErrors{}

	required := []struct {
		field string
		value string
	}{
		{"firstName", req.FirstName},
		{"lastName", req.LastName},
		{"email", req.Email},
		{"subject", req.Subject},
		{"message", req.Message},
	}
	for _, f := range required {
		if err := c.validate.Var(strings.TrimSpace(f.value), "required"); err != nil {
			errs[f.field] = fmt.Sprintf(msgs.Required, i18n.FieldName(c.lang, f.field))
		}
	}

	if _, ok := errs["email"]; !ok {
		if err := c.validate.Var(req.Email, "email"); err != nil {
			errs["email"] = msgs.EmailInvalid
		}
	}

	if _, ok := errs["message"]; !ok {
		length := len(strings.TrimSpace(req.Message))
		if length < minMessageLength {
			errs["message"] = fmt.Sprintf(msgs.LengthMin, i18n.FieldName(c.lang, "message"), minMessageLength)
		} else if length > maxMessageLength {
			errs["message"] = fmt.Sprintf(msgs.LengthMax, i18n.FieldName(c.lang, "message"), maxMessageLength)
		}
	}

	if req.GDPRConsent == "" {
		errs["gdpr-consent"] = msgs.ConsentRequired
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Submit guards and sends one submission. Guard rejections return a
// *GuardError without any network traffic; transport and decode problems
// return ordinary errors; any decoded API response is returned as-is,
// including failures.
func (c *Client) Submit(ctx context.Context, req *contact.SubmissionRequest) (*contactdto.SubmitResponse, error) {
	msgs := i18n.Catalog(c.lang)

	if fields := c.Validate(req); fields != nil {
		return nil, &GuardError{Fields: fields, Message: msgs.ValidationFailed}
	}

	// Hard gate: never post without a CAPTCHA token.
	if strings.TrimSpace(req.TurnstileToken) == "" {
		return nil, &GuardError{Message: msgs.TokenRequired}
	}

	if remaining := c.cooldownRemaining(); remaining > 0 {
		secs := int(remaining / time.Second)
		if secs < 1 {
			secs = 1
		}
		return nil, &GuardError{
			RetryAfterSeconds: secs,
			Message:           fmt.Sprintf(msgs.CountdownWait, secs),
		}
	}

	req.Language = string(c.lang)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode submission: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/contact/submit", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to reach contact API: %w", err)
	}
	defer resp.Body.Close()

	var out contactdto.SubmitResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}

	if out.Success {
		c.recordSubmission()
	}
	return &out, nil
}

// ResetRateLimit calls the operator reset endpoint with the admin token.
func (c *Client) ResetRateLimit(ctx context.Context, adminToken string) (*contactdto.ResetResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/contact/reset-rate-limit", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("X-Admin-Token", adminToken)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to reach contact API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("reset rejected: invalid admin token")
	}

	var out contactdto.ResetResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}
	return &out, nil
}

func (c *Client) statePath() string {
	return filepath.Join(c.stateDir, stateFileName)
}

// cooldownRemaining reports how long until the local window reopens. A
// missing or unreadable state file means no cooldown.
func (c *Client) cooldownRemaining() time.Duration {
	data, err := os.ReadFile(c.statePath())
	if err != nil {
		return 0
	}
	last, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0
	}
	elapsed := c.now().Sub(time.Unix(last, 0))
	if elapsed >= ResubmitCooldown {
		return 0
	}
	return ResubmitCooldown - elapsed
}

func (c *Client) recordSubmission() {
	if err := os.MkdirAll(c.stateDir, 0700); err != nil {
		return
	}
	ts := strconv.FormatInt(c.now().Unix(), 10)
	// Best effort: a failed write only weakens the local cooldown.
	_ = os.WriteFile(c.statePath(), []byte(ts), 0600)
}
