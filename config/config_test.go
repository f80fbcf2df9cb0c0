package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadHonorsEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("ENV", "production")
	t.Setenv("JWT_EXPIRES_DAYS", "2")
	t.Setenv("CATALOG_CACHE_TTL_SECONDS", "120")

	cfg := Load()

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Env)
	assert.Equal(t, 48*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 2*time.Minute, cfg.Catalog.CacheTTL)
}

func TestGetEnvDefault(t *testing.T) {
	assert.Equal(t, "fallback", getEnv("THIS_KEY_IS_NOT_SET", "fallback"))
}
