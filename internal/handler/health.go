package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/quickbite/api/internal/middleware"
	"github.com/quickbite/api/internal/server"
)

// HealthHandler exposes the liveness and readiness probes.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(s)}
}

const readinessPingTimeout = 5 * time.Second

// CheckHealth is the liveness probe. It always returns 200 and never
// touches the store: it answers "is the process up", not "is the
// database reachable".
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "OK",
		"message":   "QuickBite API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// CheckReadiness is the readiness probe: 200 when the database answers a
// bounded ping, 503 otherwise.
func (h *HealthHandler) CheckReadiness(c echo.Context) error {
	logger := middleware.GetLogger(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessPingTimeout)
	defer cancel()

	response := map[string]interface{}{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks": map[string]string{
			"database": "healthy",
		},
	}

	if err := h.server.DB.Pool.Ping(ctx); err != nil {
		logger.Error().Err(err).Msg("readiness check failed")
		response["status"] = "unavailable"
		response["checks"] = map[string]string{"database": "unreachable"}
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}
