package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func adminContext(t *testing.T, method, target string, body string, actorID float64, paramID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", actorID) // as JWTAuth stores it (JSON numbers are float64)
	c.SetParamNames("id")
	c.SetParamValues(paramID)
	return c, rec
}

func TestIsSelfTarget(t *testing.T) {
	cases := []struct {
		actor, target uint64
		want          bool
	}{
		{7, 7, true},
		{7, 8, false},
		{0, 0, false}, // no identity never counts as self
		{0, 7, false},
	}
	for _, cse := range cases {
		if got := isSelfTarget(cse.actor, cse.target); got != cse.want {
			t.Errorf("isSelfTarget(%d,%d) = %v, want %v", cse.actor, cse.target, got, cse.want)
		}
	}
}

// The self-protection rules must reject the request before any repository
// or broker call: the handlers below are built with nil dependencies, so a
// rejection that reached them would panic the test.
func TestUpdateUserRoleRejectsSelfBeforeAnyBackendCall(t *testing.T) {
	h := NewAdminUserHandler(nil, nil, nil)
	c, rec := adminContext(t, http.MethodPut, "/v1/admin/users/7/role", `{"role":"student"}`, 7, "7")

	if err := h.UpdateUserRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("got %d, want 403 for self role change", rec.Code)
	}
}

func TestDeleteUserRejectsSelfBeforeAnyBackendCall(t *testing.T) {
	h := NewAdminUserHandler(nil, nil, nil)
	c, rec := adminContext(t, http.MethodDelete, "/v1/admin/users/7", "", 7, "7")

	if err := h.DeleteUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("got %d, want 403 for self delete", rec.Code)
	}
}

func TestUpdateUserRoleRejectsInvalidID(t *testing.T) {
	h := NewAdminUserHandler(nil, nil, nil)
	c, rec := adminContext(t, http.MethodPut, "/v1/admin/users/abc/role", `{"role":"admin"}`, 7, "abc")

	if err := h.UpdateUserRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400 for malformed id", rec.Code)
	}
}
