package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/scholarstream/api/internal/config"
)

// A token minted without an email claim leaves no identity in the context.
// Me must answer 401 rather than reporting an empty, capability-free role.
// The handler is built with nil dependencies so any backend call would
// panic the test.
func TestMeRejectsTokenWithoutEmailClaim(t *testing.T) {
	h := NewAuthHandler(config.Config{}, nil, nil, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", float64(7)) // subject present, email claim absent

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("got %d, want 401 when the email claim is missing", rec.Code)
	}
}
