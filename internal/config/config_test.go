package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setSecrets(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "access")
	t.Setenv("JWT_REFRESH_SECRET", "refresh")
}

func TestFromEnv_Defaults(t *testing.T) {
	setSecrets(t)
	for _, key := range []string{"PORT", "CORS_ORIGINS", "ACCESS_TOKEN_TTL", "REFRESH_TOKEN_TTL", "SEED_FILE", "LOG_LEVEL", "DB_HOST"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 15*time.Minute, cfg.AccessTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTTL)
	assert.Equal(t, "seed.yaml", cfg.SeedFile)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.False(t, cfg.DB.Enabled())
}

func TestFromEnv_Overrides(t *testing.T) {
	setSecrets(t)
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173, https://tutoring.campus.edu")
	t.Setenv("ACCESS_TOKEN_TTL", "1h")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "queue")
	t.Setenv("DB_NAME", "tutoring")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("REFRESH_TOKEN_TTL", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, []string{"http://localhost:5173", "https://tutoring.campus.edu"}, cfg.AllowedOrigins)
	assert.Equal(t, time.Hour, cfg.AccessTTL)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.DB.Enabled())
	assert.Equal(t, "host=db port=5432 user=queue password= dbname=tutoring sslmode=disable", cfg.DB.DSN())
}

func TestFromEnv_Errors(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "")
	_, err := FromEnv()
	assert.Error(t, err)

	setSecrets(t)
	t.Setenv("REFRESH_TOKEN_TTL", "a week")
	_, err = FromEnv()
	assert.ErrorContains(t, err, "REFRESH_TOKEN_TTL")
}
