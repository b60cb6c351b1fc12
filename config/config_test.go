package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/table-order/utils"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DSN", "JWT_TTL", "DEFAULT_LANGUAGE", "CORS_ALLOWED_ORIGINS", "SEED_DEFAULTS", "LOGIN_RATE_PER_MINUTE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DefaultDSN, cfg.DatabaseDSN)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, utils.English, cfg.DefaultLanguage)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 5, cfg.LoginRatePerMinute)
	assert.True(t, cfg.SeedDefaults)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("DEFAULT_LANGUAGE", "de")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("SEED_DEFAULTS", "false")
	t.Setenv("PUBLIC_BASE_URL", "https://menu.example.com/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 90*time.Minute, cfg.JWTTTL)
	assert.Equal(t, utils.German, cfg.DefaultLanguage)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.SeedDefaults)
	assert.Equal(t, "https://menu.example.com", cfg.PublicBaseURL)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("JWT_TTL", "forever")

	_, err := Load()
	assert.Error(t, err)
}
