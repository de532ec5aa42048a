// Package session provides the in-process session registry: a map from
// opaque bearer token to user identity with a fixed 7-day lifetime.
//
// Expiry is lazy. Entries are only reaped when looked up, never by a
// background sweep; the registry is memory-bounded by distinct logins. For
// multi-instance deployments the Redis-backed store in
// internal/infrastructure/db/redis satisfies the same contract.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
)

// NewToken mints an opaque, random, unique bearer token.
func NewToken() string {
	return uuid.NewString()
}

// Registry is the in-memory SessionStore. All operations are single-key;
// the mutex only guards map access, no cross-entry invariant exists.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
	ttl      time.Duration
	now      func() time.Time
}

// Option customises a Registry.
type Option func(*Registry)

// WithTTL overrides the default 7-day session lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(r *Registry) { r.ttl = ttl }
}

// WithClock injects the time source. Intended for expiry tests.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		sessions: make(map[string]domain.Session),
		ttl:      domain.SessionTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create unconditionally inserts a session for the token. There is no
// uniqueness check on userID: a user may hold unlimited concurrent sessions.
func (r *Registry) Create(_ context.Context, token, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[token] = domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: r.now().Add(r.ttl),
	}
	return nil
}

// Validate returns the user ID bound to a live token. A stale entry is
// purged on lookup and reported as not found, indistinguishable from a
// token that never existed.
func (r *Registry) Validate(_ context.Context, token string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[token]
	if !ok {
		return "", domain.ErrSessionNotFound
	}
	if s.Expired(r.now()) {
		delete(r.sessions, token)
		return "", domain.ErrSessionNotFound
	}
	return s.UserID, nil
}

// Delete removes the session. Deleting an absent token is not an error.
func (r *Registry) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
	return nil
}

// Len reports the number of live-or-stale entries currently held.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
