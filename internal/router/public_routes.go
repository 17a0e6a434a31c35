package router

import (
	"github.com/labstack/echo/v4"

	"github.com/scholarstream/api/internal/handler"
)

// RegisterPublic registers the unauthenticated catalog endpoints. Guests
// browse, search, filter and sort the scholarship listing without a
// session. The caller passes the response-cache and rate-limit middleware
// so these hot read paths are the cached ones.
func RegisterPublic(e *echo.Echo, h *handler.CatalogHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1", mw...)
	g.GET("/scholarships", h.ListScholarships)
	g.GET("/scholarships/top", h.TopScholarships)
	g.GET("/scholarships/options", h.ScholarshipOptions)
	g.GET("/scholarships/:id", h.GetScholarship)
}
