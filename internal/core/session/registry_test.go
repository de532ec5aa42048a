package session

import (
	"context"
	"testing"
	"time"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
)

func TestRegistry_CreateAndValidate(t *testing.T) {
	r := NewRegistry()
	if err := r.Create(context.Background(), "tok-1", "user-1"); err != nil {
		t.Fatalf("create: %v", err)
	}

	userID, err := r.Validate(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if userID != "user-1" {
		t.Fatalf("expected user-1, got %s", userID)
	}
}

func TestRegistry_ValidateUnknownToken(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Validate(context.Background(), "ghost"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestRegistry_DeleteIsIdempotent(t *testing.T) {
	r := NewRegistry()
	_ = r.Create(context.Background(), "tok-1", "user-1")
	_ = r.Create(context.Background(), "tok-2", "user-2")

	if err := r.Delete(context.Background(), "absent"); err != nil {
		t.Fatalf("deleting absent token should not error: %v", err)
	}
	if n := r.Len(); n != 2 {
		t.Fatalf("registry size changed by absent delete: %d", n)
	}

	if err := r.Delete(context.Background(), "tok-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := r.Delete(context.Background(), "tok-1"); err != nil {
		t.Fatalf("second delete should not error: %v", err)
	}
	if _, err := r.Validate(context.Background(), "tok-2"); err != nil {
		t.Fatalf("unrelated session should survive: %v", err)
	}
}

func TestRegistry_ExpiryMonotonicity(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	now := created
	r := NewRegistry(WithClock(func() time.Time { return now }))

	_ = r.Create(context.Background(), "tok-1", "user-1")

	// Just inside the 7-day window.
	now = created.Add(6*24*time.Hour + 23*time.Hour)
	if _, err := r.Validate(context.Background(), "tok-1"); err != nil {
		t.Fatalf("session should still be valid at +6d23h: %v", err)
	}

	// Just past the window: the lookup must fail and purge the entry.
	now = created.Add(7*24*time.Hour + time.Minute)
	if _, err := r.Validate(context.Background(), "tok-1"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound at +7d1m, got %v", err)
	}
	if n := r.Len(); n != 0 {
		t.Fatalf("stale entry not purged, size %d", n)
	}

	// Once purged the token stays invalid even if the clock rolls back.
	now = created
	if _, err := r.Validate(context.Background(), "tok-1"); err != domain.ErrSessionNotFound {
		t.Fatalf("purged token must stay invalid, got %v", err)
	}
}

func TestRegistry_UnlimitedConcurrentSessions(t *testing.T) {
	r := NewRegistry()
	_ = r.Create(context.Background(), "tok-a", "user-1")
	_ = r.Create(context.Background(), "tok-b", "user-1")

	for _, tok := range []string{"tok-a", "tok-b"} {
		userID, err := r.Validate(context.Background(), tok)
		if err != nil {
			t.Fatalf("validate %s: %v", tok, err)
		}
		if userID != "user-1" {
			t.Fatalf("expected user-1 for %s, got %s", tok, userID)
		}
	}

	// Deleting one must not invalidate the other.
	_ = r.Delete(context.Background(), "tok-a")
	if _, err := r.Validate(context.Background(), "tok-a"); err != domain.ErrSessionNotFound {
		t.Fatalf("deleted session still valid")
	}
	if _, err := r.Validate(context.Background(), "tok-b"); err != nil {
		t.Fatalf("sibling session invalidated: %v", err)
	}
}

func TestNewToken_Unique(t *testing.T) {
	a, b := NewToken(), NewToken()
	if a == "" || a == b {
		t.Fatalf("tokens must be non-empty and unique: %q %q", a, b)
	}
}
