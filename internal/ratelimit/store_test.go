package ratelimit

import (
	"testing"
	"time"
)

func newTestStore(window time.Duration) (*Store, *time.Time) {
	s := NewStore(window)
	current := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }
	return s, &current
}

func TestKeyNormalizesAddress(t *testing.T) {
	base := Key("john@example.com")
	if Key(" John@Example.COM ") != base {
		t.Error("key differs for same address with case and padding")
	}
	if Key("jane@example.com") == base {
		t.Error("different addresses produced the same key")
	}
	if len(base) != 64 {
		t.Errorf("key length = %d, want 64 hex chars", len(base))
	}
}

func TestRetryWithinWindow(t *testing.T) {
	s, current := newTestStore(60 * time.Second)

	if _, limited := s.Retry("john@example.com"); limited {
		t.Fatal("fresh store reported a sender as limited")
	}

	s.Record("john@example.com")

	*current = current.Add(10 * time.Second)
	wait, limited := s.Retry("john@example.com")
	if !limited {
		t.Fatal("sender not limited 10s after acceptance")
	}
	if wait != 50*time.Second {
		t.Errorf("remaining wait = %v, want 50s", wait)
	}

	// Case and padding must not dodge the limit.
	if _, limited := s.Retry(" JOHN@example.com "); !limited {
		t.Error("normalized variant of the address was not limited")
	}

	// A different sender is unaffected.
	if _, limited := s.Retry("jane@example.com"); limited {
		t.Error("unrelated sender reported as limited")
	}
}

func TestRetryAfterWindow(t *testing.T) {
	s, current := newTestStore(60 * time.Second)
	s.Record("john@example.com")

	*current = current.Add(60 * time.Second)
	if _, limited := s.Retry("john@example.com"); limited {
		t.Error("sender still limited exactly at the window boundary")
	}
}

func TestReset(t *testing.T) {
	s, _ := newTestStore(60 * time.Second)
	s.Record("john@example.com")
	s.Record("jane@example.com")

	if n := s.Reset(); n != 2 {
		t.Errorf("Reset() = %d, want 2", n)
	}
	if _, limited := s.Retry("john@example.com"); limited {
		t.Error("sender still limited after reset")
	}

	// A second reset has nothing left to clear.
	if n := s.Reset(); n != 0 {
		t.Errorf("second Reset() = %d, want 0", n)
	}
}

func TestNewStoreDefaultWindow(t *testing.T) {
	s := NewStore(0)
	if s.window != DefaultWindow {
		t.Errorf("window = %v, want %v", s.window, DefaultWindow)
	}
}
