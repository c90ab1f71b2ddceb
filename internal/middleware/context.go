package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/quickbite/api/internal/server"
)

// LoggerKey is the echo context key for the request-scoped logger.
const LoggerKey = "logger"

// ContextEnhancer builds a request-scoped child logger carrying the
// request id, method, route path, and client ip, and stores it in echo
// context for handlers and the request logger to pick up.
type ContextEnhancer struct {
	server *server.Server
}

func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext returns the middleware. It must run after RequestID.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			c.Set(LoggerKey, &contextLogger)

			return next(c)
		}
	}
}

// GetLogger returns the request-scoped logger, falling back to a disabled
// logger when the enhancer did not run (e.g. in isolated handler tests).
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}
	disabled := zerolog.Nop()
	return &disabled
}
