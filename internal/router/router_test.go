package router

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/deppfellow/lightbnb/internal/handler"
	"github.com/deppfellow/lightbnb/internal/middleware"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRouterServesStatusAndUnknownRoutes(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	s := &server.Server{
		Config: &config.Config{Primary: config.Primary{Env: "test"}, Observability: config.DefaultObservabilityConfig()},
		Logger: &logger,
	}

	r := NewRouter(s, handler.NewHandlers(s, nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	// No pool is configured, so the database check fails.
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, buf.String(), `"message":"API"`)
}
