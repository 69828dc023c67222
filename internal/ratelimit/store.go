// Package ratelimit implements the per-sender submission rate limit.
package ratelimit

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"time"
)

// DefaultWindow is the sliding window between accepted submissions from
// one sender address.
const DefaultWindow = 60 * time.Second

// Store keeps one timestamp per hashed sender address. Records are never
// expired; a record only matters while it is younger than the window, so
// comparison on read is enough. An operator reset clears everything.
type Store struct {
	mu      sync.Mutex
	window  time.Duration
	entries map[string]time.Time
	now     func() time.Time
}

// NewStore creates a store with the given window. A non-positive window
// falls back to the default.
func NewStore(window time.Duration) *Store {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Store{
		window:  window,
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Key derives the stable one-way hash used to index a sender address.
func Key(email string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(email))))
	return hex.EncodeToString(sum[:])
}

// Retry reports whether the sender is still inside the window, and if so
// how long until the next submission is allowed.
func (s *Store) Retry(email string) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	last, ok := s.entries[Key(email)]
	if !ok {
		return 0, false
	}
	elapsed := s.now().Sub(last)
	if elapsed >= s.window {
		return 0, false
	}
	return s.window - elapsed, true
}

// Record stores the acceptance timestamp for the sender. Called only when
// the anti-abuse gate fully accepts a submission, so a rejected request
// never consumes the window.
func (s *Store) Record(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[Key(email)] = s.now()
}

// Reset clears every record unconditionally and returns how many were
// removed.
func (s *Store) Reset() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.entries)
	s.entries = make(map[string]time.Time)
	return n
}
