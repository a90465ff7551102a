package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/chinsis/paramdemo/internal/middleware"
	"github.com/chinsis/paramdemo/internal/server"
)

// HealthHandler exposes a system endpoint that monitors and load
// balancers can use to verify the service is alive. This system has no
// downstream dependencies, so there are no sub-checks to report: if the
// process answers, it is healthy.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(s)}
}

// CheckHealth returns the service status, a UTC timestamp, and the
// configured environment.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
	}

	logger.Debug().Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
