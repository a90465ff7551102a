package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chinsis/paramdemo/internal/handler"
)

// registerItemRoutes maps the item demo endpoints.
//
// "/items" and "/items/" are distinct routes on purpose, mirroring the
// API this demo documents. "/itemes/about" keeps its original spelling.
func registerItemRoutes(e *echo.Echo, h *handler.Handlers) {
	e.GET("/items", handler.Handle(h.Items.ReadItems, http.StatusOK))
	e.POST("/items/", handler.Handle(h.Items.CreateItem, http.StatusOK))
	e.GET("/items/:item_id", handler.Handle(h.Items.ReadItemByID, http.StatusOK))
	e.GET("/itemes/about", handler.Handle(h.Items.About, http.StatusOK))
}

// registerUserRoutes maps the user demo endpoints. The creation path
// glues a static prefix and the path parameter into one segment
// (/users/create42 -> user_id=42).
func registerUserRoutes(e *echo.Echo, h *handler.Handlers) {
	e.POST("/users/create:user_id", handler.Handle(h.Users.CreateUser, http.StatusOK))
	e.PUT("/users/:user_id", handler.Handle(h.Users.UpdateUser, http.StatusOK))
}

// registerSystemRoutes maps endpoints that are not part of the demo
// surface: health, the docs UI, and the static assets it loads.
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	e.GET("/status", h.Health.CheckHealth)

	// Serves openapi.json and openapi.html.
	e.Static("/static", "static")

	e.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
