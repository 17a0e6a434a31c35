package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/scholarstream/api/internal/config"
)

// cachedResponse is the stored envelope for one cache entry. Headers are
// kept so replays look byte-identical to the original response.
type cachedResponse struct {
	Status int         `json:"status"`
	Header http.Header `json:"header"`
	Body   []byte      `json:"body"`
}

// responseRecorder captures status and body while forwarding to the client,
// up to a byte limit beyond which the entry is not cached.
type responseRecorder struct {
	http.ResponseWriter
	status   int
	buf      bytes.Buffer
	written  int64
	limit    int64
	overflow bool
}

func (w *responseRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseRecorder) Write(b []byte) (int, error) {
	w.written += int64(len(b))
	if w.limit > 0 && w.written > w.limit {
		w.overflow = true
	} else {
		w.buf.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

// cacheKey hashes route and query under the configured prefix. The catalog
// endpoints are the intended consumers, so the query string (filters, sort)
// is always part of the key.
func cacheKey(prefix string, c echo.Context) string {
	r := c.Request()
	sum := sha1.Sum([]byte(r.Method + ":" + c.Path() + "?" + r.URL.RawQuery))
	return fmt.Sprintf("%s:%x", prefix, sum[:])
}

// ResponseCache returns a Redis-backed response cache for the public
// catalog routes. With caching disabled or no Redis client it is a no-op
// passthrough. Only 200 responses within the body limit are stored; replays
// carry an X-Cache: HIT header.
func ResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !cfg.Methods[strings.ToUpper(c.Request().Method)] {
				return next(c)
			}

			ctx := c.Request().Context()
			key := cacheKey(cfg.Prefix, c)

			if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var entry cachedResponse
				if json.Unmarshal(raw, &entry) == nil {
					for k, vals := range entry.Header {
						if strings.EqualFold(k, "Content-Length") {
							continue
						}
						for _, v := range vals {
							c.Response().Header().Add(k, v)
						}
					}
					c.Response().Header().Set("X-Cache", "HIT")
					c.Response().WriteHeader(entry.Status)
					_, err := c.Response().Write(entry.Body)
					return err
				}
			}

			rec := &responseRecorder{
				ResponseWriter: c.Response().Writer,
				status:         http.StatusOK,
				limit:          int64(cfg.MaxBodyBytes),
			}
			c.Response().Writer = rec
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}

			if rec.status == http.StatusOK && !rec.overflow {
				entry := cachedResponse{
					Status: rec.status,
					Header: c.Response().Header().Clone(),
					Body:   rec.buf.Bytes(),
				}
				if payload, err := json.Marshal(entry); err == nil {
					// Detached context: the request may already be done.
					_ = rdb.SetEx(context.Background(), key, payload, ttl).Err()
				}
			}
			return nil
		}
	}
}
