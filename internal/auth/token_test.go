package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 30)

	token, exp, err := tm.GenerateToken("user-1", "alice")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), exp, 5*time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID())
	assert.Equal(t, "alice", claims.Username)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenManager_UniqueTokenIDs(t *testing.T) {
	tm := NewTokenManager("secret", 30)

	first, _, err := tm.GenerateToken("user-1", "alice")
	require.NoError(t, err)
	second, _, err := tm.GenerateToken("user-1", "alice")
	require.NoError(t, err)

	c1, err := tm.ParseToken(first)
	require.NoError(t, err)
	c2, err := tm.ParseToken(second)
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestTokenManager_Rejects(t *testing.T) {
	tm := NewTokenManager("secret", 1)
	token, _, err := tm.GenerateToken("user-1", "alice")
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewTokenManager("other", 1).ParseToken(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		later := NewTokenManager("secret", 1)
		later.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
		_, err := later.ParseToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := tm.ParseToken("not-a-token")
		assert.Error(t, err)
	})
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("correct horse", 4)
	require.NoError(t, err)

	assert.NoError(t, ComparePassword(hash, "correct horse"))
	assert.Error(t, ComparePassword(hash, "battery staple"))

	BurnCompare("anything")
}
