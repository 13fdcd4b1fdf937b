package handler

import (
	"github.com/deppfellow/form-demo/internal/server"
	"github.com/deppfellow/form-demo/internal/service"
)

// Handlers groups all HTTP handlers so router setup receives one object.
type Handlers struct {
	Health  *HealthHandler
	Form    *FormHandler
	OpenAPI *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		Form:    NewFormHandler(s, services),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
