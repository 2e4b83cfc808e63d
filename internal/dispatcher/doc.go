// Package dispatcher turns fired key events into editing commands and
// applies them to a buffer.
//
// # Commands
//
// A Command is a tagged variant: its Kind selects the operation, Char
// carries the rune for KindInsertChar and Action names the handler for
// KindFireOnce.
//
//	Command{Kind: KindMoveLeft}
//	Insert('a')
//	FireOnce("file.save")
//
// # Resolution
//
// Resolve maps a key event to a Command:
//
//  1. The keymap binding for the event, if any, names an action. Built-in
//     action names ("cursor.moveLeft", "editor.newline", ...) map to their
//     command kind; an action with a registered Handler becomes a fire-once
//     command.
//  2. An unbound printable character becomes an insert.
//  3. Everything else resolves to KindNone, which has no effect.
//
// Fire-once commands are never repeated while a key is held; Repeatable
// exposes that classification to the key-repeat scheduler.
//
// # Handlers
//
// Fire-once actions such as saving or quitting are implemented by handlers
// registered by name:
//
//	d.Handlers().Register("file.save", dispatcher.HandlerFunc(func(ctx *dispatcher.Context) error {
//	    return save(ctx.Buffer.Text())
//	}))
//
// Handler errors and panics are reported in the Result returned by Apply;
// they never escape the dispatcher.
package dispatcher
