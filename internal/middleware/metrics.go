package middleware

import (
	"net/http"
	"time"

	"github.com/deppfellow/form-demo/internal/server"
	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latency per route.
type MetricsMiddleware struct {
	server *server.Server
}

func NewMetricsMiddleware(s *server.Server) *MetricsMiddleware {
	return &MetricsMiddleware{server: s}
}

// Observe records every request once the rest of the chain has run.
// Unmatched routes are grouped under "unmatched" to bound cardinality.
func (m *MetricsMiddleware) Observe() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := ResponseStatus(c.Response().Status, err)

			route := c.Path()
			if route == "" || status == http.StatusNotFound {
				route = "unmatched"
			}

			m.server.Metrics.ObserveRequest(c.Request().Method, route, status, time.Since(start))

			return err
		}
	}
}
