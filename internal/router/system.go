package router

import (
	"github.com/deppfellow/form-demo/internal/handler"
	"github.com/deppfellow/form-demo/internal/server"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the form
// logic: liveness, metrics and API docs.
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/health", h.Health.CheckHealth)

	if obs := s.Config.Observability; obs != nil && obs.Metrics.Enabled {
		r.GET(obs.Metrics.Path, echo.WrapHandler(s.Metrics.Handler()))
	}

	r.GET("/openapi.json", h.OpenAPI.ServeSpec)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
