package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/scholarstream/api/internal/config"
)

// RateLimit returns a Redis fixed-window request limiter keyed by client IP
// and route. Each window of cfg.Window allows cfg.Limit requests; the first
// hit in a window creates the counter with an expiry, so idle keys clean
// themselves up. With limiting disabled or no Redis client it is a no-op.
// Redis failures fail open: a broken limiter must not take the API down.
func RateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			window := time.Now().Unix() / int64(cfg.Window.Seconds())
			key := fmt.Sprintf("%s:%s:%s:%d", cfg.Prefix, c.RealIP(), c.Path(), window)

			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if n == 1 {
				_ = rdb.Expire(ctx, key, cfg.Window).Err()
			}

			remaining := int64(cfg.Limit) - n
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if n > int64(cfg.Limit) {
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "rate limit exceeded"})
			}
			return next(c)
		}
	}
}
