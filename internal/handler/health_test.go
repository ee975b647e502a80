package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHealthHandler(obs *config.ObservabilityConfig, ping func(context.Context) error) *HealthHandler {
	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{Primary: config.Primary{Env: "test"}, Observability: obs},
		Logger: &logger,
	}
	h := NewHealthHandler(s)
	h.ping = ping
	return h
}

func serveHealth(t *testing.T, h *HealthHandler) (int, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/status", nil), rec)
	require.NoError(t, h.CheckHealth(c))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestCheckHealthHealthy(t *testing.T) {
	h := newHealthHandler(config.DefaultObservabilityConfig(), func(context.Context) error { return nil })

	code, body := serveHealth(t, h)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "test", body["environment"])

	checks := body["checks"].(map[string]any)
	assert.Equal(t, "healthy", checks["database"].(map[string]any)["status"])
}

func TestCheckHealthDatabaseDown(t *testing.T) {
	h := newHealthHandler(config.DefaultObservabilityConfig(), func(context.Context) error {
		return errors.New("connection refused")
	})

	code, body := serveHealth(t, h)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "unhealthy", body["status"])

	database := body["checks"].(map[string]any)["database"].(map[string]any)
	assert.Equal(t, "connection refused", database["error"])
}

func TestCheckHealthUsesConfiguredTimeout(t *testing.T) {
	obs := config.DefaultObservabilityConfig()
	obs.HealthChecks.Timeout = 2 * time.Second

	var deadline time.Duration
	h := newHealthHandler(obs, func(ctx context.Context) error {
		d, ok := ctx.Deadline()
		require.True(t, ok)
		deadline = time.Until(d)
		return nil
	})

	code, _ := serveHealth(t, h)
	assert.Equal(t, http.StatusOK, code)
	assert.LessOrEqual(t, deadline, 2*time.Second)
	assert.Greater(t, deadline, time.Second)
}

func TestCheckHealthDatabaseCheckDisabled(t *testing.T) {
	obs := config.DefaultObservabilityConfig()
	obs.HealthChecks.Checks = nil

	h := newHealthHandler(obs, func(context.Context) error { return errors.New("unreachable") })

	code, body := serveHealth(t, h)
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, body["checks"])
}
