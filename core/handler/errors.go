package handler

import (
	"fmt"
	"net/http"
)

// Error is an intentional, handler-signaled HTTP failure. Returning one from
// a chain step aborts the chain; the framework resolves it to a response with
// the given status. An empty Message yields an empty body; a non-empty
// Message is written as a plain-text body. Any other error returned by a step
// resolves to 500 with the error text as body.
type Error struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e Error) Error() string {
	if e.Message == "" {
		return http.StatusText(e.Status)
	}
	return e.Message
}

// WithMessage returns a copy of the error with a custom message.
func (e Error) WithMessage(message string) Error {
	e.Message = message
	return e
}

// Status creates an Error carrying only a status code. It resolves to that
// status with an empty body.
func Status(code int) Error {
	return Error{Status: code}
}

// Errorf creates a 500 Error with a formatted message.
func Errorf(format string, args ...any) Error {
	return Error{Status: http.StatusInternalServerError, Message: fmt.Sprintf(format, args...)}
}

// Predefined HTTP errors using http.StatusText for default messages.
var (
	ErrBadRequest          = Error{Status: http.StatusBadRequest, Message: http.StatusText(http.StatusBadRequest)}
	ErrUnauthorized        = Error{Status: http.StatusUnauthorized, Message: http.StatusText(http.StatusUnauthorized)}
	ErrForbidden           = Error{Status: http.StatusForbidden, Message: http.StatusText(http.StatusForbidden)}
	ErrNotFound            = Error{Status: http.StatusNotFound, Message: http.StatusText(http.StatusNotFound)}
	ErrMethodNotAllowed    = Error{Status: http.StatusMethodNotAllowed, Message: http.StatusText(http.StatusMethodNotAllowed)}
	ErrConflict            = Error{Status: http.StatusConflict, Message: http.StatusText(http.StatusConflict)}
	ErrUnprocessableEntity = Error{Status: http.StatusUnprocessableEntity, Message: http.StatusText(http.StatusUnprocessableEntity)}
	ErrTooManyRequests     = Error{Status: http.StatusTooManyRequests, Message: http.StatusText(http.StatusTooManyRequests)}
	ErrInternalServerError = Error{Status: http.StatusInternalServerError, Message: http.StatusText(http.StatusInternalServerError)}
	ErrNotImplemented      = Error{Status: http.StatusNotImplemented, Message: http.StatusText(http.StatusNotImplemented)}
	ErrServiceUnavailable  = Error{Status: http.StatusServiceUnavailable, Message: http.StatusText(http.StatusServiceUnavailable)}
)
