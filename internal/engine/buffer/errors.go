package buffer

import (
	"errors"
	"fmt"
)

// ErrInvariant indicates the buffer reached an impossible state.
var ErrInvariant = errors.New("buffer: invariant violated")

// InvariantError describes which invariant broke and after which operation.
type InvariantError struct {
	Op     string
	Detail string
	Err    error
}

func (e *InvariantError) Error() string {
	if e.Err != nil && !errors.Is(e.Err, ErrInvariant) {
		return fmt.Sprintf("buffer: invariant violated after %s: %s: %v", e.Op, e.Detail, e.Err)
	}
	return fmt.Sprintf("buffer: invariant violated after %s: %s", e.Op, e.Detail)
}

// Unwrap lets errors.Is match both ErrInvariant and the underlying cause.
func (e *InvariantError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvariant}
	}
	return []error{ErrInvariant, e.Err}
}
