package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenBlocklist remembers revoked token ids until the token would have expired.
type TokenBlocklist interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type redisBlocklist struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewRedisBlocklist stores revocations as expiring redis keys.
func NewRedisBlocklist(client *redis.Client, prefix string) TokenBlocklist {
	return &redisBlocklist{client: client, prefix: prefix, now: time.Now}
}

func (b *redisBlocklist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(b.now())
	if ttl <= 0 {
		return nil
	}
	return b.client.Set(ctx, b.prefix+tokenID, 1, ttl).Err()
}

func (b *redisBlocklist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := b.client.Exists(ctx, b.prefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
