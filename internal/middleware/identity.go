package middleware

// identity.go defines helpers shared across middleware and handlers for
// reading the authenticated identity that JWTAuth stored in the context.
// The identity is absent (zero values) on unauthenticated routes.

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// Email returns the authenticated email, or "" when no identity is
// established on this request.
func Email(c echo.Context) string {
	if v, ok := c.Get("email").(string); ok {
		return v
	}
	return ""
}

// UserID returns the authenticated user id, or 0 when absent. JWT claims
// decode numbers as float64, so both numeric and string subjects are
// accepted.
func UserID(c echo.Context) uint64 {
	switch v := c.Get("user_id").(type) {
	case float64:
		if v > 0 {
			return uint64(v)
		}
	case uint64:
		return v
	case string:
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
	}
	return 0
}
