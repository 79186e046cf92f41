package config_test

import (
	"testing"
	"time"

	"github.com/naahedd/luther-spots/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestGetCatalogConfigDefaults(t *testing.T) {
	cfg := config.GetCatalogConfig()

	assert.Equal(t, "OpenClassrooms.json", cfg.Path)
	assert.Equal(t, "America/Chicago", cfg.Timezone)
	assert.Equal(t, "@hourly", cfg.RefreshSpec)
}

func TestGetCatalogConfigFromEnv(t *testing.T) {
	t.Setenv("CATALOG_PATH", "/data/classrooms.json")
	t.Setenv("TIMEZONE", "America/New_York")
	t.Setenv("CATALOG_REFRESH_SPEC", "*/15 * * * *")

	cfg := config.GetCatalogConfig()

	assert.Equal(t, "/data/classrooms.json", cfg.Path)
	assert.Equal(t, "America/New_York", cfg.Timezone)
	assert.Equal(t, "*/15 * * * *", cfg.RefreshSpec)
}

func TestGetRedisConfigDefaults(t *testing.T) {
	cfg := config.GetRedisConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, "6379", cfg.Port)
	assert.Equal(t, "lutherspots:", cfg.KeyPrefix)
	assert.Equal(t, time.Duration(0), cfg.CatalogTTL)
}

func TestGetRedisConfigFromEnv(t *testing.T) {
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_HOST_LUTHERSPOTS", "redis.internal")
	t.Setenv("REDIS_CATALOG_TTL_HOURS", "24")

	cfg := config.GetRedisConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "redis.internal", cfg.Host)
	assert.Equal(t, 24*time.Hour, cfg.CatalogTTL)
}
