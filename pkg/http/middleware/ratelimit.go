package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Allower decides whether a request identified by key may proceed.
type Allower interface {
	Allow(key string) bool
}

// RateLimit returns admission-control middleware. Rejected requests
// short-circuit before any handler work with a 429 envelope advising
// exponential backoff.
func RateLimit(limiter Allower) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limiter == nil || limiter.Allow(c.RealIP()) {
				return next(c)
			}
			c.Response().Header().Set("Retry-After", "1")
			return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
				"error": map[string]interface{}{
					"code":    "RATE_LIMITED",
					"message": "too many requests, retry with exponential backoff (1s, 2s, 4s, 8s)",
				},
			})
		}
	}
}
