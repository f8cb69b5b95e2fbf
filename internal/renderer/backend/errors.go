package backend

import "errors"

var (
	// ErrNotInitialized is returned when the terminal is used before Init.
	ErrNotInitialized = errors.New("backend: not initialized")

	// ErrInjected is returned by NullBackend when failure injection triggers.
	ErrInjected = errors.New("backend: injected write failure")
)
