package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/quickbite/api/internal/middleware"
	"github.com/quickbite/api/internal/server"
	"github.com/quickbite/api/internal/validation"
)

// Handler is the base type holding shared application dependencies.
// Concrete handlers embed it to reach config and logger via the server
// container.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// validatablePtr constrains PReq to be a pointer to Req that knows how to
// validate itself. A fresh Req is allocated per request, so payloads are
// never shared between concurrent requests.
type validatablePtr[Req any] interface {
	*Req
	validation.Validatable
}

// Handle wraps a typed endpoint function with binding, validation, error
// propagation, and per-request logging, and writes the result as JSON
// with the given status.
//
// Usage:
//
//	g.POST("", handler.Handle(h.MenuItems.Create, http.StatusCreated))
func Handle[Req any, PReq validatablePtr[Req], Res any](
	fn func(c echo.Context, req PReq) (Res, error),
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := middleware.GetLogger(c)
		start := time.Now()

		req := PReq(new(Req))
		if err := validation.BindAndValidate(c, req); err != nil {
			logger.Debug().
				Dur("duration", time.Since(start)).
				Msg("request validation failed")
			return err
		}

		result, err := fn(c, req)
		if err != nil {
			logger.Debug().
				Dur("duration", time.Since(start)).
				Msg("handler execution failed")
			return err
		}

		logger.Debug().
			Dur("duration", time.Since(start)).
			Msg("request completed")

		return c.JSON(status, result)
	}
}
