package document

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("document: file not found")

	// ErrDecode indicates the file content is not valid text.
	ErrDecode = errors.New("document: invalid text encoding")

	// ErrIsDir indicates the path names a directory.
	ErrIsDir = errors.New("document: path is a directory")

	// ErrNoPath indicates a save without a target path.
	ErrNoPath = errors.New("document: no path")
)

// DecodeError reports where decoding a file failed.
type DecodeError struct {
	Path   string
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("document: %s: decode at byte %d: %v", e.Path, e.Offset, e.Err)
	}
	return fmt.Sprintf("document: %s: invalid UTF-8 at byte %d", e.Path, e.Offset)
}

// Unwrap returns ErrDecode and the underlying cause, if any.
func (e *DecodeError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrDecode, e.Err}
	}
	return []error{ErrDecode}
}
