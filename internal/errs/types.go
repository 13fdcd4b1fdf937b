package errs

import (
	"net/http"
)

// Generic response bodies. These literals are part of the external
// contract and are compared verbatim by existing callers.
const (
	MessageBadRequest  = "bad_request"
	MessageServerError = "server_error"
)

// New creates an HTTPError with an arbitrary status and message.
func New(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// message is either a field-level validation message
// (e.g. "Invalid age range") or the generic "bad_request" body.
func NewBadRequestError(message string) *HTTPError {
	return New(http.StatusBadRequest, message)
}

// NewNotFoundError creates a 404 Not Found HTTPError with the
// "not_found" body.
func NewNotFoundError() *HTTPError {
	return New(http.StatusNotFound, MakeLowerCaseWithUnderscores(http.StatusText(http.StatusNotFound)))
}

// NewInternalServerError creates a 500 HTTPError.
//
// The body is always the generic "server_error" text; the real cause
// is logged, never sent to the client.
func NewInternalServerError() *HTTPError {
	return New(http.StatusInternalServerError, MessageServerError)
}

// FromStatus builds an HTTPError for an arbitrary HTTP status using the
// snake_case status text as message ("Method Not Allowed" ->
// "method_not_allowed"). 500 keeps the "server_error" body.
func FromStatus(status int) *HTTPError {
	switch status {
	case http.StatusBadRequest:
		return NewBadRequestError(MessageBadRequest)
	case http.StatusNotFound:
		return NewNotFoundError()
	case http.StatusInternalServerError:
		return NewInternalServerError()
	}

	text := http.StatusText(status)
	if text == "" {
		return NewInternalServerError()
	}
	return New(status, MakeLowerCaseWithUnderscores(text))
}
