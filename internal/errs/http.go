package errs

import (
	"net/http"
	"strings"
)

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error() and is serialized
// directly as the response body:
//
//	{ "message": "bad_request", "code": 400 }
//
// Code doubles as the HTTP status the global error handler writes.
type HTTPError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
// It returns the Message, so logging the error shows the client text.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also a *HTTPError.
//
// It does NOT compare Code/Message, only the type.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// Status returns the HTTP status to write for this error.
// Codes outside the valid HTTP range fall back to 500.
func (e *HTTPError) Status() int {
	if e.Code < 100 || e.Code > 599 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// WithMessage returns a *copy* of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
	}
}

// MakeLowerCaseWithUnderscores converts a string into lower_case_with_underscores.
//
// Example:
//
//	"Bad Request" -> "bad_request"
//
// Used to derive stable machine-readable messages from HTTP status text.
func MakeLowerCaseWithUnderscores(str string) string {
	return strings.ToLower(strings.ReplaceAll(str, " ", "_"))
}
