package middleware

import (
	"net/http"

	"foamstock/config"
	"foamstock/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

const defaultRateLimit = "1000-H"

// RateLimitMiddleware throttles requests per client IP using an in-memory
// sliding window.
type RateLimitMiddleware struct {
	limiter *limiter.Limiter
}

// NewRateLimitMiddleware builds the limiter from the configured formatted
// rate, e.g. "1000-H" for a thousand requests per hour.
func NewRateLimitMiddleware(cfg *config.Config) (*RateLimitMiddleware, error) {
	formatted := cfg.HTTP.RateLimit
	if formatted == "" {
		formatted = defaultRateLimit
	}

	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid rate limit %q", formatted)
	}

	return &RateLimitMiddleware{
		limiter: limiter.New(memory.NewStore(), rate),
	}, nil
}

// Limit rejects requests over the configured rate with 429.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		limiterCtx, err := m.limiter.Get(c.Request().Context(), c.RealIP())
		if err != nil {
			return errors.WithStack(err)
		}

		if limiterCtx.Reached {
			return response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests", "")
		}

		return next(c)
	}
}
