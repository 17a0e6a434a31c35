package middleware // middleware provides shared request processing for handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/scholarstream/api/internal/role"
)

// RoleSource resolves the capability state for an identity email. It is
// implemented by role.Resolver; tests substitute a stub.
type RoleSource interface {
	StateFor(ctx context.Context, email string) role.State
}

// DashboardPath is where users failing a role predicate are sent.
const DashboardPath = "/dashboard"

// RequireRole returns the single parameterized route guard. It resolves
// the current role state for the authenticated email and gates the request
// with the given predicate:
//
//   - Grant: the handler runs, with the resolved state stored under
//     "role_state" so handlers and the nav endpoint reuse it instead of
//     resolving twice.
//   - Wait: the identity is not established yet; answer 401 without
//     redirecting, so a client mid-login is not bounced off a route it
//     would be allowed onto.
//   - Redirect: 303 back to the dashboard root, carrying the attempted
//     path in the "from" query parameter.
//
// The handler is never invoked on a failed predicate, so protected content
// cannot leak even partially.
func RequireRole(src RoleSource, p role.Predicate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email := Email(c)
			st := src.StateFor(c.Request().Context(), email)

			switch role.Gate(email != "", st, p) {
			case role.Grant:
				c.Set("role_state", st)
				return next(c)
			case role.Wait:
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "session not established"})
			default:
				target := DashboardPath + "?from=" + url.QueryEscape(c.Request().URL.Path)
				return c.Redirect(http.StatusSeeOther, target)
			}
		}
	}
}

// RoleState returns the state stored by RequireRole, falling back to the
// loading state when the middleware did not run.
func RoleState(c echo.Context) role.State {
	if st, ok := c.Get("role_state").(role.State); ok {
		return st
	}
	return role.Loading()
}
