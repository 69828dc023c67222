// Package captcha verifies Cloudflare Turnstile tokens against the
// siteverify endpoint.
package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultVerifyURL is Cloudflare's fixed verification endpoint.
const DefaultVerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

// TurnstileVerifier handles Turnstile token verification
type TurnstileVerifier struct {
	secretKey string
	verifyURL string
	client    *http.Client
}

// NewTurnstileVerifier creates a new Turnstile verifier
func NewTurnstileVerifier(secretKey string, timeout time.Duration) *TurnstileVerifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &TurnstileVerifier{
		secretKey: secretKey,
		verifyURL: DefaultVerifyURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// WithVerifyURL overrides the verification endpoint. Used by tests.
func (v *TurnstileVerifier) WithVerifyURL(u string) *TurnstileVerifier {
	v.verifyURL = u
	return v
}

// turnstileResponse represents the response from Cloudflare's siteverify API
type turnstileResponse struct {
	Success     bool     `json:"success"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes,omitempty"`
}

// Verify exchanges a Turnstile token, the server secret and the requester's
// address with the verification service. A nil return means the token was
// accepted; any other outcome, including endpoint unavailability, is an error.
func (v *TurnstileVerifier) Verify(ctx context.Context, token, remoteIP string) error {
	if v.secretKey == "" {
		return fmt.Errorf("turnstile secret key not configured")
	}
	if token == "" {
		return fmt.Errorf("turnstile token is required")
	}

	data := url.Values{}
	data.Set("secret", v.secretKey)
	data.Set("response", token)
	data.Set("remoteip", remoteIP)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(data.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create verification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to verify turnstile token: %w", err)
	}
	defer resp.Body.Close()

	var result turnstileResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to parse turnstile response: %w", err)
	}

	if !result.Success {
		return fmt.Errorf("turnstile verification failed: %v", result.ErrorCodes)
	}

	return nil
}
