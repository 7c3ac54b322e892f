// Package middleware provides Echo middleware for catalog-gateway.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/donaldgifford/catalog-gateway/internal/metrics"
)

// unmatchedRoute labels requests that hit no registered route, so arbitrary
// URLs cannot grow the label set.
const unmatchedRoute = "unmatched"

// metricsSkipPaths are operational endpoints excluded from request metrics.
var metricsSkipPaths = map[string]struct{}{
	"/metrics": {},
	"/healthz": {},
	"/readyz":  {},
}

// healthGauges maps probe paths to their 0/1 gauge.
var healthGauges = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// Metrics returns Echo middleware that records request duration and status,
// labelled by route template (for example
// /api/v1/products/:productId/files/:fileId/binary) rather than raw path.
// Probe paths update up/down gauges instead.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, skip := metricsSkipPaths[c.Request().URL.Path]; skip {
				err := next(c)
				updateHealthGauge(c.Request().URL.Path, c.Response().Status)
				return err
			}

			start := time.Now()

			err := next(c)
			if err != nil {
				// Let echo write the error so the recorded status is final.
				c.Error(err)
				err = nil
			}

			route := routeLabel(c)
			status := strconv.Itoa(c.Response().Status)
			method := c.Request().Method

			metrics.HTTPRequestDuration.
				WithLabelValues(method, route, status).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, route, status).
				Inc()

			return err
		}
	}
}

func routeLabel(c echo.Context) string {
	path := c.Path()
	if path == "" || path == "/*" {
		return unmatchedRoute
	}
	return path
}

func updateHealthGauge(path string, status int) {
	gauge, ok := healthGauges[path]
	if !ok {
		return
	}

	if status >= 200 && status < 300 {
		gauge.Set(1)
	} else {
		gauge.Set(0)
	}
}
