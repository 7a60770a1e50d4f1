package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	ListedRowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_listed_rows_total",
		Help: "Rows returned by listing endpoints",
	}, []string{"entity"})

	FixtureLoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_fixture_loads_total",
		Help: "Start-up fixture loads by mode",
	}, []string{"mode"})
)

// Middleware records request count and latency per route template.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
			labels := []string{c.Request().Method, c.Path(), strconv.Itoa(status)}

			HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
			HTTPRequestsTotal.WithLabelValues(labels...).Inc()
			return err
		}
	}
}
