package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
)

// TimeoutMiddleware bounds every request context. Store calls observe the deadline;
// the handler itself is not preempted.
type TimeoutMiddleware struct {
	timeout time.Duration
}

// NewTimeoutMiddleware creates a middleware applying timeout to each request context.
func NewTimeoutMiddleware(timeout time.Duration) *TimeoutMiddleware {
	return &TimeoutMiddleware{timeout: timeout}
}

func (m *TimeoutMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.timeout <= 0 {
			return next(c)
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), m.timeout)
		defer cancel()

		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
