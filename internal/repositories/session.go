package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/actuallyyun/cs50w-project2-commerce/internal/logger"
)

// TokenDenylistRepository remembers revoked session tokens in Redis until
// they would have expired anyway.
type TokenDenylistRepository struct {
	client *redis.Client
}

func NewTokenDenylistRepository(client *redis.Client) *TokenDenylistRepository {
	return &TokenDenylistRepository{client: client}
}

func revokedKey(tokenID string) string {
	return fmt.Sprintf("revoked_session:%s", tokenID)
}

// Revoke denylists the token for ttl. A non-positive ttl means the token has
// already expired and nothing is stored.
func (r *TokenDenylistRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	key := revokedKey(tokenID)
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Debugw("redis set",
		"key", key,
		"ttl", ttl,
		"result", "revoked",
		"error", err,
	)

	return err
}

// IsRevoked reports whether the token was revoked.
func (r *TokenDenylistRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := revokedKey(tokenID)
	_, err := r.client.Get(ctx, key).Result()

	logger.Log.Debugw("redis get",
		"key", key,
		"result", err == nil,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
