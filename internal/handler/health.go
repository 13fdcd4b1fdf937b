package handler

import (
	"net/http"

	"github.com/deppfellow/form-demo/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler serves the liveness endpoint used by load balancers and
// uptime monitors. The service has no dependencies, so answering is
// the whole check.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth always returns 200 {"status":"ok"}.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
