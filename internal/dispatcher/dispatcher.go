package dispatcher

import (
	"fmt"
	"runtime"
	"time"

	"github.com/dshills/scribe/internal/engine/buffer"
	"github.com/dshills/scribe/internal/input/key"
	"github.com/dshills/scribe/internal/input/keymap"
	"github.com/dshills/scribe/internal/log"
)

// Dispatcher resolves key events to commands and applies them.
type Dispatcher struct {
	keymaps  *keymap.Registry
	handlers *Registry

	config  Config
	metrics *Metrics
}

// New creates a dispatcher resolving keys through keymaps.
// A nil registry means no keys are bound.
func New(config Config, keymaps *keymap.Registry) *Dispatcher {
	if keymaps == nil {
		keymaps = keymap.NewRegistry()
	}
	if config.PageLines <= 0 {
		config.PageLines = DefaultPageLines
	}

	d := &Dispatcher{
		keymaps:  keymaps,
		handlers: NewRegistry(),
		config:   config,
	}
	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}
	return d
}

// NewWithDefaults creates a dispatcher with the default keymap.
func NewWithDefaults() *Dispatcher {
	keymaps := keymap.NewRegistry()
	// The default keymap is static and always parses.
	_ = keymaps.Register(keymap.Default())
	return New(DefaultConfig(), keymaps)
}

// Resolve maps a key event to a command.
func (d *Dispatcher) Resolve(ev key.Event) Command {
	if ev.IsZero() {
		return Command{}
	}

	if b, ok := d.keymaps.Lookup(ev); ok {
		if cmd, ok := BuiltinCommand(b.Action); ok {
			return cmd
		}
		if d.handlers.Has(b.Action) {
			return FireOnceWith(b.Action, b.Arg)
		}
		log.Debug(log.CatInput, "binding has no handler", "key", ev.Spec(), "action", b.Action)
		return Command{}
	}

	if ev.IsPrintable() {
		return Insert(ev.Rune)
	}
	return Command{}
}

// Repeatable reports whether holding ev should repeat its command.
// It implements repeat.Classifier.
func (d *Dispatcher) Repeatable(ev key.Event) bool {
	return d.Resolve(ev).Repeatable()
}

// Dispatch resolves ev and applies the result to buf.
func (d *Dispatcher) Dispatch(ev key.Event, buf *buffer.Buffer) Result {
	return d.Apply(d.Resolve(ev), buf)
}

// Apply executes cmd against buf.
func (d *Dispatcher) Apply(cmd Command, buf *buffer.Buffer) Result {
	start := time.Now()
	result := d.apply(cmd, buf)

	if d.metrics != nil && cmd.Kind != KindNone {
		d.metrics.Record(cmd.Name(), time.Since(start), result.Status)
	}
	if result.IsError() {
		log.ErrorErr(log.CatInput, "command failed", result.Err, "command", cmd.String())
	}
	return result
}

func (d *Dispatcher) apply(cmd Command, buf *buffer.Buffer) Result {
	if buf == nil {
		return noOp(cmd)
	}

	switch cmd.Kind {
	case KindInsertChar:
		if cmd.Char == 0 {
			return noOp(cmd)
		}
		buf.InsertChar(cmd.Char)
		return success(cmd)
	case KindDeleteBack:
		return changed(cmd, buf.DeleteBeforeCaret())
	case KindDeleteForward:
		return changed(cmd, buf.DeleteAtCaret())
	case KindFireOnce:
		return d.fire(cmd, buf)
	}

	if !cmd.Kind.IsMovement() {
		return noOp(cmd)
	}

	before := buf.Caret()
	switch cmd.Kind {
	case KindMoveLeft:
		buf.MoveCaret(-1)
	case KindMoveRight:
		buf.MoveCaret(1)
	case KindMoveUp:
		buf.MoveLines(-1)
	case KindMoveDown:
		buf.MoveLines(1)
	case KindLineStart:
		buf.MoveToLineStart()
	case KindLineEnd:
		buf.MoveToLineEnd()
	case KindPageUp:
		buf.MoveLines(-d.config.PageLines)
	case KindPageDown:
		buf.MoveLines(d.config.PageLines)
	case KindBufferStart:
		buf.MoveToStart()
	case KindBufferEnd:
		buf.MoveToEnd()
	}
	return changed(cmd, buf.Caret() != before)
}

// fire runs the handler for a fire-once command.
func (d *Dispatcher) fire(cmd Command, buf *buffer.Buffer) Result {
	h := d.handlers.Get(cmd.Action)
	if h == nil {
		return failure(cmd, fmt.Errorf("%w: %s", ErrNoHandler, cmd.Action))
	}

	ctx := &Context{Buffer: buf, Command: cmd}

	var err error
	if d.config.RecoverFromPanic {
		err = d.handleWithRecovery(h, ctx)
	} else {
		err = h.Handle(ctx)
	}

	if err != nil {
		r := failure(cmd, err)
		r.Message = ctx.Message()
		return r
	}
	return Result{Status: StatusOK, Command: cmd, Message: ctx.Message()}
}

// handleWithRecovery executes a handler with panic recovery.
func (d *Dispatcher) handleWithRecovery(h Handler, ctx *Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)
			log.Error(log.CatInput, "handler panic", "action", ctx.Action(), "panic", r, "stack", string(stack[:n]))

			err = fmt.Errorf("%w: %s: %v", ErrPanic, ctx.Action(), r)

			if d.metrics != nil {
				d.metrics.RecordPanic(ctx.Action())
			}
		}
	}()

	return h.Handle(ctx)
}

// Handlers returns the fire-once handler registry.
func (d *Dispatcher) Handlers() *Registry {
	return d.handlers
}

// Keymaps returns the keymap registry used by Resolve.
func (d *Dispatcher) Keymaps() *keymap.Registry {
	return d.keymaps
}

// Metrics returns the metrics collector (may be nil if disabled).
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Config returns the dispatcher configuration.
func (d *Dispatcher) Config() Config {
	return d.config
}

// SetPageLines sets how far PageUp and PageDown move. Values below one
// are ignored.
func (d *Dispatcher) SetPageLines(n int) {
	if n > 0 {
		d.config.PageLines = n
	}
}
