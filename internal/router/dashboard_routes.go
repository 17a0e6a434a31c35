package router

import (
	"github.com/labstack/echo/v4"

	"github.com/scholarstream/api/internal/handler"
	"github.com/scholarstream/api/internal/middleware"
	"github.com/scholarstream/api/internal/role"
)

// Dashboard wires the role-gated dashboard route families. Every group
// hangs off the same JWT middleware and the same parameterized guard with
// a different predicate; the guard redirects failed predicates back to
// /dashboard.
type Dashboard struct {
	JWTAuth  echo.MiddlewareFunc
	Roles    middleware.RoleSource
	Nav      *handler.NavHandler
	Students *handler.StudentHandler
	Mods     *handler.ModeratorHandler
	Users    *handler.AdminUserHandler
	Catalog  *handler.ScholarshipAdminHandler
	Stats    *handler.AdminStatsHandler
}

// Register attaches all dashboard routes to the Echo instance.
func (d Dashboard) Register(e *echo.Echo) {
	// The sidebar needs only an identity; its content is role-derived.
	e.GET("/v1/dashboard/nav", d.Nav.Sidebar, d.JWTAuth)

	student := e.Group("/v1/dashboard",
		d.JWTAuth,
		middleware.RequireRole(d.Roles, role.StudentOnly),
	)
	student.POST("/applications", d.Students.Apply)
	student.GET("/my-applications", d.Students.MyApplications)
	student.DELETE("/applications/:id", d.Students.CancelApplication)
	student.POST("/reviews", d.Students.CreateReview)
	student.PUT("/reviews/:id", d.Students.UpdateReview)
	student.DELETE("/reviews/:id", d.Students.DeleteReview)
	student.GET("/my-reviews", d.Students.MyReviews)

	mod := e.Group("/v1/dashboard/moderation",
		d.JWTAuth,
		middleware.RequireRole(d.Roles, role.ModeratorOrAdmin),
	)
	mod.GET("/applications", d.Mods.ListApplications)
	mod.PUT("/applications/:id/status", d.Mods.UpdateApplicationStatus)
	mod.GET("/reviews", d.Mods.ListReviews)
	mod.DELETE("/reviews/:id", d.Mods.DeleteReview)
	// Editing scholarships is open to moderators; create/delete stay admin.
	mod.PUT("/scholarships/:id", d.Catalog.Update)

	admin := e.Group("/v1/admin",
		d.JWTAuth,
		middleware.RequireRole(d.Roles, role.AdminOnly),
	)
	admin.GET("/users", d.Users.ListUsers)
	admin.PUT("/users/:id/role", d.Users.UpdateUserRole)
	admin.DELETE("/users/:id", d.Users.DeleteUser)
	admin.POST("/scholarships", d.Catalog.Create)
	admin.DELETE("/scholarships/:id", d.Catalog.Delete)
	admin.GET("/stats", d.Stats.GetStats)
}
