package service

import (
	"context"

	"github.com/deppfellow/form-demo/internal/form"
	"github.com/deppfellow/form-demo/internal/response"
	"github.com/deppfellow/form-demo/internal/server"
	"github.com/rs/zerolog"
)

type FormService struct {
	server *server.Server
}

func NewFormService(s *server.Server) *FormService {
	return &FormService{server: s}
}

// Submit evaluates req and counts the result. It never fails: every
// outcome, including forced errors, is a response value.
func (fs *FormService) Submit(ctx context.Context, req form.Request) response.APIResponse {
	res := form.Evaluate(req)

	fs.server.Metrics.ObserveSubmission(req.Kind().String(), res.Code)

	overridden := req.Override() != nil && response.IsOverride(*req.Override())
	zerolog.Ctx(ctx).Debug().
		Str("form", req.Kind().String()).
		Bool("override", overridden).
		Int("code", res.Code).
		Str("result", res.Message).
		Msg("form evaluated")

	return res
}
