package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"ichthyo-signup/internal/config"
)

// limiterIdleExpiry is how long an idle client's bucket is kept.
const limiterIdleExpiry = 10 * time.Minute

// SignupRateLimiter applies a token bucket per client IP to the routes it wraps.
func SignupRateLimiter(cfg config.RateLimitConfig) echo.MiddlewareFunc {
	if cfg.Requests <= 0 || cfg.Interval <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	perRequest := cfg.Interval / time.Duration(cfg.Requests)
	if perRequest <= 0 {
		perRequest = time.Second
	}

	expiry := cfg.Interval
	if expiry < limiterIdleExpiry {
		expiry = limiterIdleExpiry
	}

	store := echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Every(perRequest),
		Burst:     cfg.Requests,
		ExpiresIn: expiry,
	})

	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, map[string]string{
				"status":  "error",
				"message": "Unable to identify client.",
			})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, map[string]string{
				"status":  "error",
				"message": "Too many signup attempts. Please wait a moment and try again.",
			})
		},
	})
}
