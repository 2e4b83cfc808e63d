package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrNoHandler indicates no handler was found for an action.
	ErrNoHandler = errors.New("dispatcher: no handler for action")

	// ErrPanic indicates the handler panicked.
	ErrPanic = errors.New("dispatcher: handler panic")

	// ErrInvalidAction indicates an empty action name.
	ErrInvalidAction = errors.New("dispatcher: invalid action")

	// ErrBuiltinAction indicates an attempt to register a handler under a
	// built-in action name.
	ErrBuiltinAction = errors.New("dispatcher: action is built in")
)
