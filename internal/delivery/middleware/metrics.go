package middleware

import (
	"time"

	"directory/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

const unmatchedRoute = "unmatched"

// Metrics records request count and latency per route template. It must run
// outside LoggerMiddleware so the response status is final when it reads it.
func Metrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		route := c.Path()
		if route == "" {
			route = unmatchedRoute
		}
		metrics.ObserveHTTPRequest(route, c.Request().Method, c.Response().Status, time.Since(start))

		return err
	}
}
