package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("REDIS_DB", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "litreview", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, 60, cfg.Auth.AccessTokenTTLMinutes)
	assert.True(t, cfg.Postgres.RunMigrations)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("POSTGRES_MAX_CONNS", "25")
	t.Setenv("POSTGRES_RUN_MIGRATIONS", "false")
	t.Setenv("AUTH_BCRYPT_COST", "not-a-number")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.App.Addr())
	assert.Equal(t, int32(25), cfg.Postgres.MaxConns)
	assert.False(t, cfg.Postgres.RunMigrations)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Zero(t, cfg.App.RequestTimeout())
}

func TestLoad_InvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "one")

	_, err := Load()
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "missing dsn",
			cfg:     Config{},
			wantErr: true,
		},
		{
			name: "dev secret in production",
			cfg: Config{
				App:      AppConfig{Env: "production"},
				Postgres: PostgresConfig{DSN: "postgres://localhost/litreview"},
				Auth:     AuthConfig{JWTSecret: "dev-secret"},
			},
			wantErr: true,
		},
		{
			name: "valid",
			cfg: Config{
				App:      AppConfig{Env: "development"},
				Postgres: PostgresConfig{DSN: "postgres://localhost/litreview"},
				Auth:     AuthConfig{JWTSecret: "dev-secret"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
