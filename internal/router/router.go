// Package router initializes the HTTP router (using Echo).
//
// It installs the global middleware chain, the global error handler,
// and maps each path to its handler.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/chinsis/paramdemo/internal/handler"
	"github.com/chinsis/paramdemo/internal/middleware"
	"github.com/chinsis/paramdemo/internal/server"
)

// New assembles the Echo engine: error handler first, then the
// middleware chain (tracing before correlation before logging, so each
// layer sees what the earlier ones produced), then the routes.
func New(s *server.Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	m := middleware.NewMiddlewares(s)
	h := handler.NewHandlers(s)

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(middleware.RequestID())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Tracing.EnhanceTracing())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.CORS())
	e.Use(m.Global.Secure())
	e.Use(m.Global.Recover())

	registerItemRoutes(e, h)
	registerUserRoutes(e, h)
	registerSystemRoutes(e, h)

	return e
}
