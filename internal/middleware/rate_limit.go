package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/quickbite/api/internal/server"
)

// RateLimitMiddleware enforces a per-client request rate using echo's
// in-memory token-bucket store, keyed by client ip.
type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{server: s}
}

// Limit returns the rate-limiting middleware. Exceeding the configured
// rate yields a 429 through the global error handler.
func (rl *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStore(rate.Limit(rl.server.Config.Server.RateLimit)),
	})
}
