package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
)

// SessionStore is the Redis-backed session registry for multi-instance
// deployments. Key format: session:<token> → userID, with the session
// lifetime as the key TTL so Redis handles expiry natively.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore wraps the given Redis client. A non-positive ttl falls
// back to the standard 7-day session lifetime.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = domain.SessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Create unconditionally inserts the session with the configured TTL.
func (s *SessionStore) Create(ctx context.Context, token, userID string) error {
	if err := s.client.Set(ctx, s.key(token), userID, s.ttl).Err(); err != nil {
		return fmt.Errorf("session create: %w", err)
	}
	return nil
}

// Validate returns the user ID bound to a live token. Redis has already
// evicted expired keys, so a miss is reported as not found.
func (s *SessionStore) Validate(ctx context.Context, token string) (string, error) {
	userID, err := s.client.Get(ctx, s.key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrSessionNotFound
		}
		return "", fmt.Errorf("session validate: %w", err)
	}
	return userID, nil
}

// Delete removes the session; deleting an absent token is not an error.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func (s *SessionStore) key(token string) string {
	return "session:" + token
}
