// Package response maps validation outcomes and override codes onto
// the `{message, code}` payload returned to callers.
//
// It is a leaf of the core: form validators produce an Outcome and this
// package decides the status code and body. Nothing here performs I/O.
package response

import (
	"net/http"

	"github.com/deppfellow/form-demo/internal/errs"
)

// MessageOK is the fixed success body.
const MessageOK = "ok"

// APIResponse is the body written for every form submission.
// Code is also the HTTP status.
type APIResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// OK reports whether the response is the success acknowledgment.
func (r APIResponse) OK() bool {
	return r.Code == http.StatusOK
}

// Err converts a failing response into an *errs.HTTPError so it can be
// returned from an Echo handler and written by the global error handler.
// It returns nil for a success response.
func (r APIResponse) Err() error {
	if r.OK() {
		return nil
	}
	return errs.New(r.Code, r.Message)
}

// IsOverride reports whether code is one of the accepted override codes.
func IsOverride(code int) bool {
	switch code {
	case http.StatusOK, http.StatusBadRequest, http.StatusInternalServerError:
		return true
	}
	return false
}

// ForCode maps a status code onto its generic response:
//
//	200 -> ("ok", 200)
//	400 -> ("bad_request", 400)
//	any other -> ("server_error", 500)
func ForCode(code int) APIResponse {
	switch code {
	case http.StatusOK:
		return APIResponse{Message: MessageOK, Code: http.StatusOK}
	case http.StatusBadRequest:
		return APIResponse{Message: errs.MessageBadRequest, Code: http.StatusBadRequest}
	default:
		return APIResponse{Message: errs.MessageServerError, Code: http.StatusInternalServerError}
	}
}

// FromOutcome maps a validation outcome onto a response.
//
// Field failures keep their specific message with a 400 status. Forced
// outcomes collapse to the generic body of their code, discarding any
// message.
func FromOutcome(o Outcome) APIResponse {
	switch o.Kind {
	case KindInvalid:
		return APIResponse{Message: o.Message, Code: http.StatusBadRequest}
	case KindForced:
		return ForCode(o.Code)
	default:
		return ForCode(http.StatusOK)
	}
}

// Resolve applies the override policy: a forceCode in {200,400,500} wins
// and evaluate is never called; otherwise the outcome of evaluate is mapped.
func Resolve(forceCode *int, evaluate func() Outcome) APIResponse {
	if forceCode != nil && IsOverride(*forceCode) {
		return ForCode(*forceCode)
	}
	return FromOutcome(evaluate())
}
