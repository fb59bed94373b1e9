package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/nfrund/backstory/internal/view"
)

// RateLimitMessage is the body of a denied request.
const RateLimitMessage = "Too many requests. Please try again later."

// RateLimitRedirect is where a denied plain form post is sent back to.
const RateLimitRedirect = "/#contact"

// RateLimiter limits each client IP to perMinute requests per minute, with a
// burst of the same size, on the routes it is applied to. A denied plain form
// post is redirected back with a flash when sessions are available.
func RateLimiter(perMinute int) echo.MiddlewareFunc {
	config := middleware.RateLimiterConfig{
		// NewRateLimiterMemoryStore is a simple in-memory store suitable for single-instance deployments.
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(perMinute) / 60),
			Burst:     perMinute,
			ExpiresIn: 3 * time.Minute,
		}),

		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			// htmx ignores 4xx bodies unless told to swap them.
			if c.Request().Header.Get("HX-Request") == "true" {
				c.Response().Header().Set("HX-Reswap", "none")
				return c.String(http.StatusTooManyRequests, RateLimitMessage)
			}
			if view.HasSession(c) {
				view.SetFlashError(c, RateLimitMessage)
				return c.Redirect(http.StatusSeeOther, RateLimitRedirect)
			}
			return c.String(http.StatusTooManyRequests, RateLimitMessage)
		},
	}
	return middleware.RateLimiterWithConfig(config)
}
