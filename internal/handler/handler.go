// Package handler is the first layer after the router.
//
// It decodes requests, hands them to the service layer and writes the
// result. Failures are returned as errors and written by the global
// error handler.
package handler
