package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chinsis/paramdemo/internal/config"
	"github.com/chinsis/paramdemo/internal/errs"
	"github.com/chinsis/paramdemo/internal/logger"
	"github.com/chinsis/paramdemo/internal/router"
	"github.com/chinsis/paramdemo/internal/server"
)

// newTestRouter assembles the full engine (middleware chain, error
// handler, routes) so requests exercise the same path production
// traffic takes.
func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "8080",
			ReadTimeout:        10,
			WriteTimeout:       10,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
		},
		Observability: config.DefaultObservabilityConfig(),
	}
	cfg.Observability.Logging.Level = "disabled"

	loggerService, err := logger.NewLoggerService(cfg)
	require.NoError(t, err)

	log := logger.New(cfg, loggerService)

	srv, err := server.New(cfg, log, loggerService)
	require.NoError(t, err)

	return router.New(srv)
}

// do serves a request through the router and returns the recorder.
func do(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals a JSON response body into a generic map.
func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload), "body: %s", rec.Body.String())
	return payload
}

// decodeError unmarshals a failure response into the error schema.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()

	var payload errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload), "body: %s", rec.Body.String())
	return payload
}

// errorFields collects the field names from a failure response.
func errorFields(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()

	payload := decodeError(t, rec)
	fields := make([]string, 0, len(payload.Errors))
	for _, fieldErr := range payload.Errors {
		fields = append(fields, fieldErr.Field)
	}
	return fields
}

func TestHealthEndpoint(t *testing.T) {
	e := newTestRouter(t)

	rec := do(t, e, http.MethodGet, "/status", "")

	require.Equal(t, http.StatusOK, rec.Code)
	payload := decode(t, rec)
	assert.Equal(t, "healthy", payload["status"])
	assert.Equal(t, "test", payload["environment"])
	assert.NotEmpty(t, payload["timestamp"])
}

func TestUnknownRouteReturnsNotFoundSchema(t *testing.T) {
	e := newTestRouter(t)

	rec := do(t, e, http.MethodGet, "/nope", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	payload := decodeError(t, rec)
	assert.Equal(t, "NOT_FOUND", payload.Code)
	assert.Equal(t, "Route not found", payload.Message)
}

func TestRequestIDIsEchoed(t *testing.T) {
	e := newTestRouter(t)

	t.Run("generated when absent", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/status", "")
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("reused when supplied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/status", nil)
		req.Header.Set("X-Request-ID", "test-correlation-id")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "test-correlation-id", rec.Header().Get("X-Request-ID"))
	})
}
