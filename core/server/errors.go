package server

import "errors"

var (
	// ErrServerAlreadyRunning is returned when Start is called on a server
	// that is already serving.
	ErrServerAlreadyRunning = errors.New("server already running")

	// ErrMissingAddress is returned when the server address is not provided.
	ErrMissingAddress = errors.New("server address is required")
)
