package middleware

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/chinsis/paramdemo/internal/server"
)

// Middlewares groups all middleware components used by the HTTP server,
// so router setup receives one wired object instead of constructing
// pieces ad hoc.
type Middlewares struct {
	// Global holds CORS, request logging, recovery, secure headers, and
	// the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Tracing provides the New Relic middleware pair.
	Tracing *TracingMiddleware
}

// NewMiddlewares constructs all middleware components from the app
// container. When New Relic is not configured, nrApp is nil and the
// tracing middleware degrades into no-ops.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
	}
}
