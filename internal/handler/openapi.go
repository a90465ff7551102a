package handler

import (
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/chinsis/paramdemo/internal/server"
)

// OpenAPIHandler serves the API documentation UI.
//
// The UI is a static HTML shell that loads static/openapi.json, the
// hand-maintained document describing every endpoint's declared
// constraints. It is where the "item-query" deprecation flag surfaces;
// the flag has no runtime effect.
type OpenAPIHandler struct {
	Handler
}

// NewOpenAPIHandler constructs an OpenAPIHandler.
func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{Handler: NewHandler(s)}
}

// ServeOpenAPIUI reads static/openapi.html and serves it as HTML.
// Caching is disabled so documentation edits appear immediately.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")

	templateBytes, err := os.ReadFile("static/openapi.html")
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	return c.HTML(http.StatusOK, string(templateBytes))
}
