package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/scholarstream/api/internal/role"
)

// stubRoles maps emails to resolved states without touching any backend.
type stubRoles struct{ states map[string]role.State }

func (s stubRoles) StateFor(_ context.Context, email string) role.State {
	if email == "" {
		return role.Loading()
	}
	if st, ok := s.states[role.Normalize(email)]; ok {
		return st
	}
	return role.Resolved(role.Student)
}

func request(t *testing.T, guard echo.MiddlewareFunc, email, path string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	// Stand-in for JWTAuth: place the identity email in the context.
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if email != "" {
				c.Set("email", email)
			}
			return next(c)
		}
	})
	e.GET(path, func(c echo.Context) error {
		return c.String(http.StatusOK, "protected")
	}, guard)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAdminRouteGrantsAdmin(t *testing.T) {
	src := stubRoles{states: map[string]role.State{"a@x.com": role.Resolved(role.Admin)}}
	guard := RequireRole(src, role.AdminOnly)

	rec := request(t, guard, "a@x.com", "/dashboard/manage-users")
	if rec.Code != http.StatusOK || rec.Body.String() != "protected" {
		t.Fatalf("admin got %d %q, want protected content", rec.Code, rec.Body.String())
	}
}

func TestStudentRouteRedirectsAdmin(t *testing.T) {
	src := stubRoles{states: map[string]role.State{"a@x.com": role.Resolved(role.Admin)}}
	guard := RequireRole(src, role.StudentOnly)

	rec := request(t, guard, "a@x.com", "/dashboard/my-applications")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("got %d, want 303 redirect", rec.Code)
	}
	loc := rec.Header().Get("Location")
	if loc != "/dashboard?from=%2Fdashboard%2Fmy-applications" {
		t.Fatalf("redirect location %q must target the dashboard and carry the attempted path", loc)
	}
	if rec.Body.String() == "protected" {
		t.Fatal("protected content leaked alongside the redirect")
	}
}

func TestGuardWaitsWithoutRedirectWhileUnresolved(t *testing.T) {
	guard := RequireRole(stubRoles{}, role.AdminOnly)

	rec := request(t, guard, "", "/dashboard/manage-users")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("got %d, want 401 while the session is unresolved", rec.Code)
	}
	if rec.Header().Get("Location") != "" {
		t.Fatal("an unresolved session must not be redirected")
	}
}

func TestModeratorRouteAdmitsBothElevatedRoles(t *testing.T) {
	src := stubRoles{states: map[string]role.State{
		"m@x.com": role.Resolved(role.Moderator),
		"a@x.com": role.Resolved(role.Admin),
		"s@x.com": role.Resolved(role.Student),
	}}
	guard := RequireRole(src, role.ModeratorOrAdmin)

	for email, want := range map[string]int{
		"m@x.com": http.StatusOK,
		"a@x.com": http.StatusOK,
		"s@x.com": http.StatusSeeOther,
	} {
		if rec := request(t, guard, email, "/dashboard/manage-applications"); rec.Code != want {
			t.Errorf("%s: got %d, want %d", email, rec.Code, want)
		}
	}
}

func TestFailedLookupFailsClosedOffPrivilegedRoutes(t *testing.T) {
	src := stubRoles{states: map[string]role.State{"x@x.com": role.Failed()}}

	if rec := request(t, RequireRole(src, role.AdminOnly), "x@x.com", "/dashboard/manage-users"); rec.Code != http.StatusSeeOther {
		t.Fatalf("failed lookup reached an admin route: %d", rec.Code)
	}
	if rec := request(t, RequireRole(src, role.StudentOnly), "x@x.com", "/dashboard/my-applications"); rec.Code != http.StatusOK {
		t.Fatalf("failed lookup must still reach student routes: %d", rec.Code)
	}
}
