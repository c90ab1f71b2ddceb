package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/quickbite/api/internal/server"
)

// OpenAPIHandler serves the static API documentation.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{Handler: NewHandler(s)}
}

// ServeOpenAPIUI serves the documentation page, which loads the OpenAPI
// document from /static/openapi.json.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	return c.File("static/openapi.html")
}
