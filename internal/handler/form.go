package handler

import (
	"net/http"

	"github.com/deppfellow/form-demo/internal/form"
	"github.com/deppfellow/form-demo/internal/response"
	"github.com/deppfellow/form-demo/internal/server"
	"github.com/deppfellow/form-demo/internal/service"
	"github.com/labstack/echo/v4"
)

// FormHandler serves the four form endpoints. A submission answers
// 200 {"message":"ok","code":200} or an error carrying the mapped
// status and body.
type FormHandler struct {
	Handler
	services *service.Services
}

func NewFormHandler(s *server.Server, services *service.Services) *FormHandler {
	return &FormHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

func (h *FormHandler) SubmitButtons() echo.HandlerFunc {
	return submitForm(h, func() *form.ButtonsRequest { return &form.ButtonsRequest{} })
}

func (h *FormHandler) SubmitCustomer() echo.HandlerFunc {
	return submitForm(h, func() *form.CustomerRequest { return &form.CustomerRequest{} })
}

func (h *FormHandler) SubmitProduct() echo.HandlerFunc {
	return submitForm(h, func() *form.ProductRequest { return &form.ProductRequest{} })
}

func (h *FormHandler) SubmitEmployee() echo.HandlerFunc {
	return submitForm(h, func() *form.EmployeeRequest { return &form.EmployeeRequest{} })
}

func submitForm[R form.Request](h *FormHandler, newReq func() R) echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req R) (response.APIResponse, error) {
		res := h.services.Form.Submit(c.Request().Context(), req)
		return res, res.Err()
	}, http.StatusOK, newReq)
}
