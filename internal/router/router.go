// Package router initializes the HTTP router (using Echo).
//
// It registers the global middleware stack and the system routes.
package router

import (
	"github.com/deppfellow/lightbnb/internal/handler"
	"github.com/deppfellow/lightbnb/internal/middleware"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance. Middleware order matters: the
// request id must exist before the context logger reads it, and the New
// Relic transaction before tracing attributes are added.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	m := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = m.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		m.Tracing.NewRelicMiddleware(),
		m.Tracing.EnhanceTracing(),
		m.ContextEnhancer.EnhanceContext(),
		m.Global.RequestLogger(),
		m.Global.Recover(),
		m.Global.Secure(),
	)

	registerSystemRoutes(router, h)

	return router
}
