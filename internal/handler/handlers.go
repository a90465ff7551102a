package handler

import (
	"github.com/chinsis/paramdemo/internal/server"
)

// Handlers groups all HTTP handlers so router setup passes one object
// around instead of many.
type Handlers struct {
	Items   *ItemHandler    // Items serves the item demo endpoints.
	Users   *UserHandler    // Users serves the user demo endpoints.
	Health  *HealthHandler  // Health serves the service health endpoint.
	OpenAPI *OpenAPIHandler // OpenAPI serves the API documentation UI.
}

// NewHandlers constructs the handler container from the app container.
func NewHandlers(s *server.Server) *Handlers {
	return &Handlers{
		Items:   NewItemHandler(s),
		Users:   NewUserHandler(s),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
