package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scholarstream/api/internal/middleware"
	"github.com/scholarstream/api/internal/nav"
)

// NavHandler serves the role-aware dashboard sidebar.
type NavHandler struct {
	Roles middleware.RoleSource
}

func NewNavHandler(roles middleware.RoleSource) *NavHandler { return &NavHandler{Roles: roles} }

// Sidebar resolves the caller's role state and returns the composed
// sections. The composition itself is a pure function of the state, so the
// sidebar cannot disagree with what the route guards enforce.
func (h *NavHandler) Sidebar(c echo.Context) error {
	st := h.Roles.StateFor(c.Request().Context(), middleware.Email(c))
	return c.JSON(http.StatusOK, echo.Map{
		"role":     st.Role,
		"sections": nav.Compose(st),
	})
}
