package service

import (
	"github.com/deppfellow/form-demo/internal/server"
)

// Services groups every service so handlers get one dependency.
type Services struct {
	Form *FormService
}

func NewServices(s *server.Server) *Services {
	return &Services{
		Form: NewFormService(s),
	}
}
