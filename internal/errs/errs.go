// Package errs define custom error types and utilities.
//
// Its purpose is to create the error structure returned to API
// clients (HTTPError) so every failure, whether raised by a form
// rule, a forced response code or the router itself, leaves the
// server with the same `{message, code}` shape.
package errs
