package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(buf *bytes.Buffer) *server.Server {
	logger := zerolog.New(buf)
	return &server.Server{
		Config: &config.Config{Primary: config.Primary{Env: "test"}},
		Logger: &logger,
	}
}

func newTestEcho(s *server.Server, handler echo.HandlerFunc) *echo.Echo {
	m := NewMiddlewares(s)

	e := echo.New()
	e.HTTPErrorHandler = m.Global.GlobalErrorHandler
	e.Use(RequestID(), m.Tracing.NewRelicMiddleware(), m.Tracing.EnhanceTracing(), m.ContextEnhancer.EnhanceContext())
	e.GET("/thing", handler)
	return e
}

func decodeHTTPError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()
	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequestIDGeneratedAndReused(t *testing.T) {
	e := newTestEcho(newTestServer(&bytes.Buffer{}), func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/thing", nil))
	generated := rec.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/thing", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestContextLoggerCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(newTestServer(&buf), func(c echo.Context) error {
		LoggerFromContext(c.Request().Context()).Info().Msg("inside")
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/thing", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	e.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"request_id":"req-7"`)
	assert.Contains(t, buf.String(), `"message":"inside"`)
}

func TestGlobalErrorHandlerMapsDatabaseErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name:   "not found",
			err:    fmt.Errorf("failed to get user by id: %w", sqlerr.NotFound("users")),
			status: http.StatusNotFound,
			code:   "NOT_FOUND",
		},
		{
			name:   "unique violation",
			err:    &pgconn.PgError{Code: "23505", TableName: "users", ConstraintName: "users_email_key"},
			status: http.StatusBadRequest,
			code:   "USER_ALREADY_EXISTS",
		},
		{
			name:   "connection failure",
			err:    &pgconn.PgError{Code: "08006"},
			status: http.StatusServiceUnavailable,
			code:   "SERVICE_UNAVAILABLE",
		},
		{
			name:   "unknown",
			err:    fmt.Errorf("boom"),
			status: http.StatusInternalServerError,
			code:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(newTestServer(&bytes.Buffer{}), func(echo.Context) error {
				return tt.err
			})

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/thing", nil))

			assert.Equal(t, tt.status, rec.Code)
			body := decodeHTTPError(t, rec)
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.status, body.Status)
		})
	}
}

func TestGlobalErrorHandlerUnknownRoute(t *testing.T) {
	e := newTestEcho(newTestServer(&bytes.Buffer{}), func(c echo.Context) error { return nil })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decodeHTTPError(t, rec).Message)
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFromError(sqlerr.NotFound("properties")))
	assert.Equal(t, http.StatusTeapot, statusFromError(echo.NewHTTPError(http.StatusTeapot)))
	assert.Equal(t, http.StatusBadRequest, statusFromError(errs.NewBadRequestError("bad", false, nil, nil)))
}

func TestGetLoggerFallsBackToNop(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.NotNil(t, GetLogger(c))
	assert.NotNil(t, LoggerFromContext(c.Request().Context()))
}
