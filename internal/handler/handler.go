// Package handler is the HTTP entry point after the router.
//
// Every endpoint follows the same shape: a request struct declares its
// inputs (path, query, body) with binding and validation tags, the
// shared Handle pipeline binds and validates it, and the handler body
// assembles the echoed response. Handlers never see invalid input; a
// failed bind or validation short-circuits to the global error handler
// before the handler body runs.
package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/chinsis/paramdemo/internal/middleware"
	"github.com/chinsis/paramdemo/internal/server"
	"github.com/chinsis/paramdemo/internal/validation"
)

// Handler is the base type holding shared application dependencies.
// Concrete handlers embed it to reach config and logging via
// *server.Server. Copying is cheap: it only contains a pointer.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// request constrains a pointer-to-request type to the validation
// contract. Requiring the pointer form lets Handle allocate a fresh
// request per call; sharing one request value across requests would
// leak bound state between them.
type request[T any] interface {
	*T
	validation.Validatable
}

// Handle wraps a typed endpoint function with the shared pipeline:
// binding, validation, tracing, structured logging, and the JSON
// response write. The returned echo.HandlerFunc registers directly on
// routes.
//
// Usage:
//
//	e.POST("/items/", handler.Handle(h.Items.CreateItem, http.StatusOK))
func Handle[Req any, PReq request[Req], Res any](
	fn func(c echo.Context, req PReq) (Res, error),
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := PReq(new(Req))
		return handleRequest(c, req, func(c echo.Context) (any, error) {
			return fn(c, req)
		}, status)
	}
}

// handleRequest is the shared execution pipeline for all endpoints.
//
// It centralizes:
//   - request binding + validation
//   - structured logging with the request-scoped logger
//   - New Relic attributes and error reporting
//   - timing (validation duration, handler duration, total)
//   - the JSON response write
func handleRequest(
	c echo.Context,
	req validation.Validatable,
	invoke func(c echo.Context) (any, error),
	status int,
) error {
	start := time.Now()
	route := c.Path()

	// Transaction is set by the New Relic Echo middleware; nil when
	// tracing is disabled.
	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", "handler").
		Str("method", c.Request().Method).
		Str("route", route).
		Logger()

	logger.Debug().Msg("handling request")

	validationStart := time.Now()

	if err := validation.BindAndValidate(c, req); err != nil {
		validationDuration := time.Since(validationStart)

		logger.Warn().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("validation.status", "failed")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}

		// The global error handler formats the response.
		return err
	}

	validationDuration := time.Since(validationStart)
	if txn != nil {
		txn.AddAttribute("validation.status", "success")
		txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
	}

	handlerStart := time.Now()
	result, err := invoke(c)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
		}
		return err
	}

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
	}

	logger.Info().
		Dur("validation_duration", validationDuration).
		Dur("handler_duration", handlerDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed")

	return c.JSON(status, result)
}
