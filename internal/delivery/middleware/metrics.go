package middleware

import (
	"strconv"
	"time"

	"pixelforge/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

const unmatchedRoute = "unmatched"

// MetricsMiddleware records request count, latency and in-flight requests per route template.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle records the final status; errors are resolved into responses here when no inner middleware did it.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		method := c.Request().Method

		route := c.Path()
		if route == "" {
			route = unmatchedRoute
		}

		m.metrics.InFlight.WithLabelValues(method, route).Inc()
		defer m.metrics.InFlight.WithLabelValues(method, route).Dec()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		status := strconv.Itoa(c.Response().Status)
		m.metrics.RequestsTotal.WithLabelValues(method, route, status).Inc()
		m.metrics.RequestsDuration.WithLabelValues(method, route, status).Observe(time.Since(start).Seconds())

		return nil
	}
}
