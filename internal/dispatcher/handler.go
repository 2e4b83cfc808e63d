package dispatcher

import (
	"fmt"

	"github.com/dshills/scribe/internal/engine/buffer"
)

// Handler runs a fire-once action.
type Handler interface {
	Handle(ctx *Context) error
}

// HandlerFunc is a function adapter for the Handler interface.
type HandlerFunc func(ctx *Context) error

// Handle implements Handler.
func (f HandlerFunc) Handle(ctx *Context) error {
	if f == nil {
		return fmt.Errorf("%w: nil handler function", ErrNoHandler)
	}
	return f(ctx)
}

// Context is passed to a handler for the duration of one call.
type Context struct {
	// Buffer is the buffer the command applies to.
	Buffer *buffer.Buffer

	// Command is the command being executed.
	Command Command

	message string
}

// Action returns the action name being handled.
func (c *Context) Action() string {
	return c.Command.Action
}

// Arg returns the argument of the binding that triggered the action.
func (c *Context) Arg() string {
	return c.Command.Arg
}

// SetMessage sets a status message reported in the Result.
func (c *Context) SetMessage(format string, args ...any) {
	c.message = fmt.Sprintf(format, args...)
}

// Message returns the status message set by the handler.
func (c *Context) Message() string {
	return c.message
}
