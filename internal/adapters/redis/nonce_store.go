package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/leerbron/leerbron-api/internal/ports"
)

// NonceStore holds single-use login nonces keyed by external-login attempt.
// Redeem uses GETDEL so that of two concurrent redemptions at most one
// observes the value.
type NonceStore struct {
	client redis.UniversalClient
	prefix string
}

var _ ports.NonceStore = (*NonceStore)(nil)

// NewNonceStore creates a Redis-backed nonce store.
func NewNonceStore(client redis.UniversalClient) *NonceStore {
	return &NonceStore{client: client, prefix: "login-nonce:"}
}

// Issue stores the nonce under the attempt, overwriting any prior value.
func (s *NonceStore) Issue(ctx context.Context, attemptID, nonce string, ttl time.Duration) error {
	if attemptID == "" {
		return errors.New("attempt ID cannot be empty")
	}
	if nonce == "" {
		return errors.New("nonce cannot be empty")
	}
	if ttl <= 0 {
		return errors.New("ttl must be positive")
	}
	return s.client.Set(ctx, s.prefix+attemptID, nonce, ttl).Err()
}

// Redeem atomically reads and deletes the nonce. A missing or already
// redeemed nonce yields ErrNotFound.
func (s *NonceStore) Redeem(ctx context.Context, attemptID string) (string, error) {
	if attemptID == "" {
		return "", ErrNotFound
	}

	nonce, err := s.client.GetDel(ctx, s.prefix+attemptID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("redis getdel: %w", err)
	}
	return nonce, nil
}
