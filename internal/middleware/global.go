package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/quickbite/api/internal/errs"
	"github.com/quickbite/api/internal/server"
	"github.com/quickbite/api/internal/sqlerr"
)

// GlobalMiddlewares groups the middleware applied to every route and the
// global error handler.
type GlobalMiddlewares struct {
	server *server.Server
}

func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{server: s}
}

// CORS returns echo's CORS middleware configured from server config.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
	})
}

// RequestLogger emits one structured log line per request, with severity
// picked from the response status class.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status

			// When a handler returns an error the final status is decided
			// by the global error handler after this hook runs, so derive
			// it from the error type instead of logging a stale 200.
			if v.Error != nil {
				var httpErr *errs.HTTPError
				var echoErr *echo.HTTPError

				if errors.As(v.Error, &httpErr) {
					statusCode = httpErr.Status
				} else if errors.As(v.Error, &echoErr) {
					statusCode = echoErr.Code
				}
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Recover turns handler panics into 500 responses instead of crashing the
// process.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

// Secure adds standard security-related response headers.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// errorResponse is the wire envelope for every failure.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// GlobalErrorHandler is the final error funnel for the entire HTTP server.
// Whatever a handler or middleware returns ends up here and is translated
// into the {success,error,message} envelope.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			if echoErr.Code == http.StatusNotFound {
				// Route-level 404: the client hit a path that doesn't exist.
				httpErr = errs.NewNotFoundError("The requested resource was not found")
			} else {
				httpErr = &errs.HTTPError{
					Status:  echoErr.Code,
					Label:   http.StatusText(echoErr.Code),
					Message: fmt.Sprintf("%v", echoErr.Message),
				}
			}
		} else {
			// Likely a database or driver error that escaped the service
			// layer; sqlerr classifies it or falls back to a 500.
			converted := sqlerr.HandleError(err)
			if !errors.As(converted, &httpErr) {
				httpErr = errs.NewInternalServerError(err.Error())
			}
		}
	}

	message := httpErr.Message
	if httpErr.Status >= http.StatusInternalServerError && !global.server.Config.IsDevelopment() {
		message = "Internal server error"
	}

	logger := GetLogger(c)
	event := logger.Warn()
	if httpErr.Status >= http.StatusInternalServerError {
		event = logger.Error().Err(err)
	}
	event.
		Int("status", httpErr.Status).
		Str("error", httpErr.Label).
		Msg("request failed")

	if jsonErr := c.JSON(httpErr.Status, errorResponse{
		Success: false,
		Error:   httpErr.Label,
		Message: message,
	}); jsonErr != nil {
		logger.Error().Err(jsonErr).Msg("failed to write error response")
	}
}
