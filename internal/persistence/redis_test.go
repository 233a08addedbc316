package persistence

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/spec-kit/litreview/internal/config"
)

func TestRedis_Ping(t *testing.T) {
	mr := miniredis.RunT(t)

	r := NewRedis(context.Background(), config.RedisConfig{Addr: mr.Addr()}, zap.NewNop())
	defer r.Close()

	assert.NoError(t, r.Ping(context.Background()))

	mr.Close()
	assert.Error(t, r.Ping(context.Background()))
}

func TestRedis_NilClient(t *testing.T) {
	var r *Redis
	assert.Error(t, r.Ping(context.Background()))
	r.Close()
}

func TestPostgres_NilPool(t *testing.T) {
	var p *Postgres
	assert.Error(t, p.Ping(context.Background()))
	assert.Nil(t, p.PoolHandle())
	p.Close()
}

func TestNewPostgres_RequiresDSN(t *testing.T) {
	_, err := NewPostgres(context.Background(), config.PostgresConfig{}, zap.NewNop())
	assert.Error(t, err)
}
