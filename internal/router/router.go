// Package router defines how HTTP routes are registered for the API. Route
// families are split by audience: public catalog browsing, auth, and the
// three role-gated dashboard groups. All role gating goes through the one
// parameterized guard so the groups cannot drift apart.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/scholarstream/api/internal/handler"
)

// RegisterRoutes registers routes that need no authentication or handler
// dependencies. Currently that is only the health check used by load
// balancers and monitoring.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication endpoints. Unauthenticated
// operations live under /v1/auth; /v1/me sits behind the JWT middleware
// alone, with no role guard, because every role may ask who it is.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtAuth echo.MiddlewareFunc) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	e.GET("/v1/me", a.Me, jwtAuth)
}
