package router

import (
	"github.com/deppfellow/form-demo/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerFormRoutes(r *echo.Echo, h *handler.Handlers) {
	forms := r.Group(handler.FormRoutePrefix)

	forms.POST("/buttons", h.Form.SubmitButtons())
	forms.POST("/customer", h.Form.SubmitCustomer())
	forms.POST("/product", h.Form.SubmitProduct())
	forms.POST("/employee", h.Form.SubmitEmployee())
}
