package handler

import (
	"github.com/quickbite/api/internal/server"
	"github.com/quickbite/api/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// passes one object around instead of many.
type Handlers struct {
	MenuItems *MenuItemHandler
	Health    *HealthHandler
	OpenAPI   *OpenAPIHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		MenuItems: NewMenuItemHandler(s, services),
		Health:    NewHealthHandler(s),
		OpenAPI:   NewOpenAPIHandler(s),
	}
}
