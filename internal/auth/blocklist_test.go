package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisBlocklist(t *testing.T) {
	mr, client := setupTestRedis(t)
	ctx := context.Background()
	bl := NewRedisBlocklist(client, "test:revoked:")

	revoked, err := bl.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, bl.Revoke(ctx, "jti-1", time.Now().Add(10*time.Minute)))

	revoked, err = bl.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.True(t, mr.Exists("test:revoked:jti-1"))

	mr.FastForward(11 * time.Minute)

	revoked, err = bl.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisBlocklist_AlreadyExpired(t *testing.T) {
	mr, client := setupTestRedis(t)
	bl := NewRedisBlocklist(client, "test:revoked:")

	require.NoError(t, bl.Revoke(context.Background(), "jti-2", time.Now().Add(-time.Minute)))
	assert.False(t, mr.Exists("test:revoked:jti-2"))
}
