package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest("GET", "/", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestGetLoggerFallsBackToNop(t *testing.T) {
	c := newContext()

	// Without EnhanceContext, GetLogger must still return a usable
	// logger instead of nil.
	logger := GetLogger(c)
	require.NotNil(t, logger)
	logger.Info().Msg("must not panic")
}

func TestGetRequestIDWithoutMiddleware(t *testing.T) {
	assert.Empty(t, GetRequestID(newContext()))
}

func TestRequestIDMiddleware(t *testing.T) {
	c := newContext()

	var seen string
	handler := RequestID()(func(c echo.Context) error {
		seen = GetRequestID(c)
		return nil
	})

	require.NoError(t, handler(c))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, c.Response().Header().Get(RequestIDHeader))
}
