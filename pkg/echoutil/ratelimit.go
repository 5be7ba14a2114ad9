package echoutil

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	apierr "github.com/mardi4nfdi/fdofacade/pkg/api/types/errors"
	"golang.org/x/time/rate"
)

// RateLimiter limits requests per client IP to limit per second, allowing burst.
//
// If limit is 0, it returns nil, meaning no middleware is needed.
func RateLimiter(limit float64, burst int) echo.MiddlewareFunc {
	if limit <= 0 {
		return nil
	}

	store := middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(limit),
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		},
	)
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return apierr.InternalServerError(err)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return apierr.TooManyRequests("slow down and retry later.")
		},
	})
}
