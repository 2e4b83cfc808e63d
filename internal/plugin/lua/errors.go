package lua

import (
	"errors"
	"fmt"
)

var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua: state is closed")

	// ErrTimeout is returned when a call runs past the execution timeout.
	ErrTimeout = errors.New("lua: execution timeout")

	// ErrNoBuffer is raised by the buffer API when no buffer is attached.
	ErrNoBuffer = errors.New("lua: no buffer")

	// ErrCommandTaken is raised when a plugin registers a command name
	// already handled outside the plugin host.
	ErrCommandTaken = errors.New("lua: command already registered")
)

// LoadError reports a plugin file that failed to load.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("lua: load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
