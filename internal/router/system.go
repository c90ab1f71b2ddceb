package router

import (
	"github.com/labstack/echo/v4"

	"github.com/quickbite/api/internal/handler"
)

// registerSystemRoutes registers endpoints that are not business logic:
// health probes, docs, and static assets.
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	e.GET("/health", h.Health.CheckHealth)
	e.GET("/health/ready", h.Health.CheckReadiness)

	e.Static("/static", "static")
	e.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
