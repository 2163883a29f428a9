package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvFallback(t *testing.T) {
	assert.Equal(t, "fallback", getEnv("PRODUCT_ADMIN_UNSET_KEY", "fallback"))

	t.Setenv("PRODUCT_ADMIN_SET_KEY", "value")
	assert.Equal(t, "value", getEnv("PRODUCT_ADMIN_SET_KEY", "fallback"))
}

func TestGetDurationEnv(t *testing.T) {
	assert.Equal(t, time.Minute, getDurationEnv("PRODUCT_ADMIN_UNSET_TTL", time.Minute))

	t.Setenv("PRODUCT_ADMIN_TTL", "30s")
	assert.Equal(t, 30*time.Second, getDurationEnv("PRODUCT_ADMIN_TTL", time.Minute))

	t.Setenv("PRODUCT_ADMIN_TTL", "not-a-duration")
	assert.Equal(t, time.Minute, getDurationEnv("PRODUCT_ADMIN_TTL", time.Minute))
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DB", "productAdminTest")
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("CACHE_TTL", "2m")

	cfg := LoadConfig()
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "productAdminTest", cfg.MongoDB)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, 2*time.Minute, cfg.CacheTTL)
}
