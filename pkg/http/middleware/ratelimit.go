package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	applogger "FinFrame/pkg/logger"
)

// RateLimitConfig limits requests under Prefix per client IP.
type RateLimitConfig struct {
	Prefix    string
	RPS       float64
	Burst     int
	ExpiresIn time.Duration // idle visitors are forgotten after this
}

// RateLimit rejects requests with 429 once the client IP has used up its
// tokens. Paths outside Prefix are not counted.
func RateLimit(cfg RateLimitConfig, l *applogger.Logger) echo.MiddlewareFunc {
	store := echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.RPS),
		Burst:     cfg.Burst,
		ExpiresIn: cfg.ExpiresIn,
	})
	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return !strings.HasPrefix(c.Request().URL.Path, cfg.Prefix)
		},
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		Store: store,
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, map[string]interface{}{
				"status":  http.StatusForbidden,
				"message": http.StatusText(http.StatusForbidden),
			})
		},
		DenyHandler: func(c echo.Context, ip string, err error) error {
			l.Debug("rate limited", applogger.String("ip", ip), applogger.String("path", c.Request().URL.Path))
			return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
				"status":  http.StatusTooManyRequests,
				"code":    "ERR_RATE_LIMITED",
				"message": http.StatusText(http.StatusTooManyRequests),
			})
		},
	})
}
