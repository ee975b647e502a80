package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LIGHTBNB_PRIMARY.ENV", "local")
	t.Setenv("LIGHTBNB_SERVER.PORT", "8080")
	t.Setenv("LIGHTBNB_SERVER.READ_TIMEOUT", "30")
	t.Setenv("LIGHTBNB_SERVER.WRITE_TIMEOUT", "30")
	t.Setenv("LIGHTBNB_SERVER.IDLE_TIMEOUT", "60")
	t.Setenv("LIGHTBNB_DATABASE.HOST", "localhost")
	t.Setenv("LIGHTBNB_DATABASE.PORT", "5432")
	t.Setenv("LIGHTBNB_DATABASE.USER", "vagrant")
	t.Setenv("LIGHTBNB_DATABASE.PASSWORD", "123")
	t.Setenv("LIGHTBNB_DATABASE.NAME", "lightbnb")
	t.Setenv("LIGHTBNB_DATABASE.SSL_MODE", "disable")
}

func TestLoadConfig(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Primary.Env)
	assert.True(t, cfg.IsLocal())
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "lightbnb", cfg.Database.Name)

	assert.Equal(t, DefaultSearchLimit, cfg.Search.DefaultLimit)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "local", cfg.Observability.Environment)
	assert.Equal(t, 100*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
	assert.True(t, cfg.Observability.HealthCheckEnabled("database"))
	assert.False(t, cfg.Observability.HealthCheckEnabled("redis"))
}

func TestLoadConfigSearchLimit(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LIGHTBNB_SEARCH.DEFAULT_LIMIT", "25")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Search.DefaultLimit)

	t.Setenv("LIGHTBNB_SEARCH.DEFAULT_LIMIT", "5000")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigMissingDatabase(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LIGHTBNB_DATABASE.HOST", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestObservabilityValidate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	require.NoError(t, cfg.Validate())

	cfg.Logging.Level = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig()
	cfg.Logging.SlowQueryThreshold = -time.Second
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig()
	cfg.HealthChecks.Timeout = 10 * time.Millisecond
	assert.Error(t, cfg.Validate())
}

func TestGetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())
	assert.True(t, cfg.IsProduction())

	cfg.Environment = "local"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Logging.Level = "warn"
	assert.Equal(t, "warn", cfg.GetLogLevel())
}
