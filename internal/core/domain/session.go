package domain

import "time"

// SessionTTL is the fixed lifetime of a bearer session.
const SessionTTL = 7 * 24 * time.Hour

// Session maps an opaque bearer token to a user identity for a bounded
// lifetime. Sessions are never refreshed; they expire passively and are
// purged when a stale token is next looked up.
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}

// Expired reports whether the session is past its lifetime at the given instant.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
