package middleware

import (
	deliverymiddleware "acorn/internal/delivery/middleware"
	"acorn/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latency per route template.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		done := m.metrics.RequestStarted()

		err := next(c)

		status := c.Response().Status
		if err != nil && !c.Response().Committed {
			status = deliverymiddleware.StatusOf(err)
		}
		done(c.Request().Method, c.Path(), status)

		return err
	}
}
