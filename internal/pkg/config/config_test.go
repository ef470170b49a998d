package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "Simple Test API", cfg.AppName)
	assert.Equal(t, "1.0.0", cfg.AppVersion)
	assert.Equal(t, DriverMemory, cfg.StoreDriver)
	assert.True(t, cfg.SeedUsers)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "userapi", cfg.Redis.Prefix)
	assert.Equal(t, "user_api", cfg.Mongo.Database)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":         "8080",
		"ENV":          "production",
		"STORE_DRIVER": "redis",
		"REDIS_ADDR":   "cache:6379",
		"REDIS_DB":     "2",
		"SEED_USERS":   "false",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, DriverRedis, cfg.StoreDriver)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.False(t, cfg.SeedUsers)
}

func TestLoadFrom_RejectsUnknownDriver(t *testing.T) {
	_, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"STORE_DRIVER": "sqlite",
	}))
	assert.ErrorContains(t, err, `unsupported STORE_DRIVER "sqlite"`)
}

func TestLoadFrom_RejectsBadDuration(t *testing.T) {
	_, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"SHUTDOWN_TIMEOUT": "soon",
	}))
	assert.Error(t, err)
}
