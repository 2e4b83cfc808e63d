package app

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyRunning indicates Run was called on a running application.
	ErrAlreadyRunning = errors.New("app: already running")

	errNoScreen = errors.New("no screen")
)

// InitError reports a component that failed to start.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("app: init %s: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
