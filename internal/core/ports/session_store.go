package ports

import "context"

// SessionStore maps opaque bearer tokens to user identities for a bounded
// lifetime. Implementations are keyed single-token operations only; there is
// deliberately no way to enumerate or bulk-revoke a user's sessions, and a
// user may hold any number of concurrent valid sessions.
type SessionStore interface {
	// Create unconditionally inserts a session for the token.
	Create(ctx context.Context, token, userID string) error
	// Validate returns the user ID bound to a live token. A missing or
	// expired token yields domain.ErrSessionNotFound; stale entries are
	// purged on lookup.
	Validate(ctx context.Context, token string) (string, error)
	// Delete removes the session; deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error
}
