package editor

import "errors"

var (
	// ErrNoFile indicates an operation that needs a file path but the
	// session has none.
	ErrNoFile = errors.New("editor: no file")

	// ErrModified indicates a reload or open was refused because the
	// buffer has unsaved changes.
	ErrModified = errors.New("editor: buffer has unsaved changes")
)
