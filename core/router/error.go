package router

import (
	"errors"
	"fmt"
)

var (
	// Registration errors
	ErrInvalidPattern   = errors.New("invalid route path pattern")
	ErrWildcardPosition = errors.New("wildcard '*' must be the last segment in a pattern")
	ErrDuplicateParam   = errors.New("routing pattern contains duplicate param name")
	ErrInvalidMethod    = errors.New("invalid http method")
	ErrDuplicateRoute   = errors.New("route already registered")
	ErrEmptyChain       = errors.New("chain must contain at least one step")

	// Dispatch errors
	ErrNoResponse = errors.New("chain completed without a response")
)

// PanicError interface allows external callers to detect and inspect panics
// recovered during dispatch, with access to the original panic value and the
// stack trace captured at the panic point.
type PanicError interface {
	error
	// Value returns the original panic value.
	Value() any
	// Stack returns the stack trace captured at the panic point.
	Stack() []byte
}

// panicError is the private implementation of PanicError.
type panicError struct {
	value any
	stack []byte
}

// Error implements the error interface.
func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

// Value returns the original panic value.
func (e *panicError) Value() any {
	return e.value
}

// Stack returns the stack trace.
func (e *panicError) Stack() []byte {
	return e.stack
}

// Unwrap allows errors.Is/As to work with wrapped panics.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
