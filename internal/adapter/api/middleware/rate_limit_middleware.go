package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"inventra/internal/infrastructure/ratelimit"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// Limit throttles an action per caller. Falls back to the client IP when the
// request is unauthenticated.
func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := c.Get("uid").(string)
			if !ok || caller == "" {
				caller = c.RealIP()
			}

			allowed, wait := m.limiter.Allow(caller, action)
			if !allowed {
				return echo.NewHTTPError(http.StatusTooManyRequests,
					fmt.Sprintf("Rate limit exceeded, retry in %s", wait.Round(time.Second)))
			}

			return next(c)
		}
	}
}
