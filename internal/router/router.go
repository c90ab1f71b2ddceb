// Package router initializes the HTTP router (using echo).
//
// It registers the middleware stack and maps paths to their handlers.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickbite/api/internal/handler"
	"github.com/quickbite/api/internal/middleware"
	"github.com/quickbite/api/internal/server"
)

// New builds the echo instance with the full middleware stack and all
// routes registered.
func New(s *server.Server, mw *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	e.Use(
		mw.Global.Recover(),
		middleware.RequestID(),
		mw.ContextEnhancer.EnhanceContext(),
		mw.Global.RequestLogger(),
		mw.Global.CORS(),
		mw.Global.Secure(),
		mw.RateLimit.Limit(),
	)

	registerSystemRoutes(e, h)
	registerMenuItemRoutes(e, h)

	return e
}

// registerMenuItemRoutes maps the menu-item CRUD and search endpoints.
// Echo matches static segments before parameters, so /menu-items/search
// never collides with /menu-items/:id.
func registerMenuItemRoutes(e *echo.Echo, h *handler.Handlers) {
	items := e.Group("/menu-items")

	items.GET("", handler.Handle(h.MenuItems.List, http.StatusOK))
	items.GET("/search", handler.Handle(h.MenuItems.Search, http.StatusOK))
	items.GET("/:id", handler.Handle(h.MenuItems.Get, http.StatusOK))
	items.POST("", handler.Handle(h.MenuItems.Create, http.StatusCreated))
	items.PUT("/:id", handler.Handle(h.MenuItems.Update, http.StatusOK))
	items.DELETE("/:id", handler.Handle(h.MenuItems.Delete, http.StatusOK))
}
