package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/Azz3m90/LandPage/internal/contact"
	"github.com/Azz3m90/LandPage/internal/i18n"
)

func newTestClient(t *testing.T, baseURL string, lang i18n.Language) *Client {
	t.Helper()
	c, err := NewClient(baseURL, lang)
	if err != nil {
		t.Fatalf("NewClient() error: %v", err)
	}
	c.stateDir = t.TempDir()
	return c
}

func guardRequest() *contact.SubmissionRequest {
	return &contact.SubmissionRequest{
		FirstName:      "John",
		LastName:       "Doe",
		Email:          "john@example.com",
		Subject:        "Demo request",
		Message:        "Please call me about pricing.",
		GDPRConsent:    "on",
		TurnstileToken: "valid-token",
	}
}

func TestGuardValidate(t *testing.T) {
	c := newTestClient(t, "http://localhost:8080", i18n.LangEN)

	if errs := c.Validate(guardRequest()); errs != nil {
		t.Fatalf("Validate() rejected a clean request: %v", errs)
	}

	tests := []struct {
		name   string
		mutate func(*contact.SubmissionRequest)
		field  string
		want   string
	}{
		{"missing first name", func(r *contact.SubmissionRequest) { r.FirstName = "  " }, "firstName", "First Name is required"},
		{"missing email", func(r *contact.SubmissionRequest) { r.Email = "" }, "email", "Email is required"},
		{"bad email", func(r *contact.SubmissionRequest) { r.Email = "not-an-email" }, "email", "Please enter a valid email address"},
		{"short message", func(r *contact.SubmissionRequest) { r.Message = "short" }, "message", "Message must be at least 10 characters"},
		{"long message", func(r *contact.SubmissionRequest) { r.Message = strings.Repeat("a", 2001) }, "message", "Message must be less than 2000 characters"},
		{"no consent", func(r *contact.SubmissionRequest) { r.GDPRConsent = "" }, "gdpr-consent", "Please accept the privacy policy and terms of service"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := guardRequest()
			tt.mutate(req)
			errs := c.Validate(req)
			if errs[tt.field] != tt.want {
				t.Errorf("error for %q = %q, want %q", tt.field, errs[tt.field], tt.want)
			}
		})
	}
}

func TestGuardBlocksInvalidWithoutNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, i18n.LangEN)

	req := guardRequest()
	req.Message = "short"
	_, err := c.Submit(context.Background(), req)

	var guardErr *GuardError
	if !errors.As(err, &guardErr) {
		t.Fatalf("Submit() error = %v, want *GuardError", err)
	}
	if guardErr.Fields["message"] == "" {
		t.Error("guard error carries no message field error")
	}
	if called {
		t.Error("invalid submission reached the network")
	}
}

func TestGuardBlocksWithoutToken(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, i18n.LangEN)

	req := guardRequest()
	req.TurnstileToken = "  "
	_, err := c.Submit(context.Background(), req)

	var guardErr *GuardError
	if !errors.As(err, &guardErr) {
		t.Fatalf("Submit() error = %v, want *GuardError", err)
	}
	if guardErr.Message != "Please complete the security verification to submit your message." {
		t.Errorf("guard message = %q", guardErr.Message)
	}
	if called {
		t.Error("token-less submission reached the network")
	}
}

func TestGuardCooldown(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "message": "ok", "type": "success"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, i18n.LangEN)
	current := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }

	// A submit 20 seconds ago leaves a 40 second cooldown.
	last := current.Add(-20 * time.Second).Unix()
	if err := os.WriteFile(filepath.Join(c.stateDir, stateFileName), []byte(strconv.FormatInt(last, 10)), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := c.Submit(context.Background(), guardRequest())
	var guardErr *GuardError
	if !errors.As(err, &guardErr) {
		t.Fatalf("Submit() error = %v, want *GuardError", err)
	}
	if guardErr.RetryAfterSeconds != 40 {
		t.Errorf("RetryAfterSeconds = %d, want 40", guardErr.RetryAfterSeconds)
	}
	if guardErr.Message != "Please wait 40 seconds before submitting again" {
		t.Errorf("guard message = %q", guardErr.Message)
	}
	if called {
		t.Error("cooldown-blocked submission reached the network")
	}

	// Past the window the same submission goes through.
	current = current.Add(41 * time.Second)
	if _, err := c.Submit(context.Background(), guardRequest()); err != nil {
		t.Fatalf("Submit() after cooldown: %v", err)
	}
	if !called {
		t.Error("submission past the cooldown never reached the network")
	}
}

func TestGuardSubmitRecordsTimestamp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/contact/submit" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var req contact.SubmissionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode submission: %v", err)
		}
		if req.Language != "en" {
			t.Errorf("language = %q, want en", req.Language)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "message": "ok", "type": "success", "details": {"adminNotified": true, "confirmationSent": true}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, i18n.LangEN)

	resp, err := c.Submit(context.Background(), guardRequest())
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if !resp.Success {
		t.Error("response not marked successful")
	}

	if _, err := os.Stat(filepath.Join(c.stateDir, stateFileName)); err != nil {
		t.Errorf("last-submission state not written: %v", err)
	}
}

func TestGuardSubmitDoesNotRecordOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success": false, "message": "Validation failed", "type": "error", "fields": {"message": "too short"}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, i18n.LangEN)

	resp, err := c.Submit(context.Background(), guardRequest())
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if resp.Success {
		t.Error("rejected response marked successful")
	}
	if resp.Fields["message"] != "too short" {
		t.Errorf("fields not decoded: %v", resp.Fields)
	}

	if _, err := os.Stat(filepath.Join(c.stateDir, stateFileName)); !os.IsNotExist(err) {
		t.Error("failed submission recorded a cooldown timestamp")
	}
}

func TestGuardResetRateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Admin-Token") != "test-admin-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "message": "Rate limiting cleared. Removed 3 rate limit records.", "files_cleared": 3}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, i18n.LangEN)

	resp, err := c.ResetRateLimit(context.Background(), "test-admin-token")
	if err != nil {
		t.Fatalf("ResetRateLimit() error: %v", err)
	}
	if resp.FilesCleared != 3 {
		t.Errorf("FilesCleared = %d, want 3", resp.FilesCleared)
	}

	if _, err := c.ResetRateLimit(context.Background(), "wrong"); err == nil {
		t.Error("ResetRateLimit() with wrong token returned nil error")
	}
}
