package dispatcher

import "fmt"

// Kind identifies the operation a Command performs.
type Kind uint8

const (
	// KindNone has no effect.
	KindNone Kind = iota
	// KindInsertChar inserts Command.Char before the caret.
	KindInsertChar
	// KindDeleteBack deletes the rune before the caret.
	KindDeleteBack
	// KindDeleteForward deletes the rune at the caret.
	KindDeleteForward
	KindMoveLeft
	KindMoveRight
	KindMoveUp
	KindMoveDown
	KindLineStart
	KindLineEnd
	KindPageUp
	KindPageDown
	KindBufferStart
	KindBufferEnd
	// KindFireOnce runs the handler registered for Command.Action.
	KindFireOnce

	kindCount
)

var kindNames = [kindCount]string{
	KindNone:          "none",
	KindInsertChar:    "insertChar",
	KindDeleteBack:    "deleteBack",
	KindDeleteForward: "deleteForward",
	KindMoveLeft:      "moveLeft",
	KindMoveRight:     "moveRight",
	KindMoveUp:        "moveUp",
	KindMoveDown:      "moveDown",
	KindLineStart:     "lineStart",
	KindLineEnd:       "lineEnd",
	KindPageUp:        "pageUp",
	KindPageDown:      "pageDown",
	KindBufferStart:   "bufferStart",
	KindBufferEnd:     "bufferEnd",
	KindFireOnce:      "fireOnce",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// IsMovement reports whether the kind only moves the caret.
func (k Kind) IsMovement() bool {
	return k >= KindMoveLeft && k <= KindBufferEnd
}

// IsEdit reports whether the kind changes buffer content.
func (k Kind) IsEdit() bool {
	return k == KindInsertChar || k == KindDeleteBack || k == KindDeleteForward
}

// Command is one resolved editing operation.
type Command struct {
	Kind Kind

	// Char is the rune to insert for KindInsertChar.
	Char rune

	// Action is the handler name for KindFireOnce.
	Action string

	// Arg is the binding's argument for KindFireOnce, if any.
	Arg string
}

// Insert returns a command inserting r.
func Insert(r rune) Command {
	return Command{Kind: KindInsertChar, Char: r}
}

// FireOnce returns a command running the handler registered for action.
func FireOnce(action string) Command {
	return Command{Kind: KindFireOnce, Action: action}
}

// FireOnceWith returns a fire-once command carrying arg.
func FireOnceWith(action, arg string) Command {
	return Command{Kind: KindFireOnce, Action: action, Arg: arg}
}

// IsZero reports whether c is the no-op command.
func (c Command) IsZero() bool {
	return c.Kind == KindNone
}

// Repeatable reports whether holding the key that produced c should repeat
// it. Fire-once and no-op commands never repeat.
func (c Command) Repeatable() bool {
	return c.Kind != KindNone && c.Kind != KindFireOnce
}

// Name returns a stable name for logs and metrics: the action for fire-once
// commands, otherwise the kind.
func (c Command) Name() string {
	if c.Kind == KindFireOnce {
		return c.Action
	}
	return c.Kind.String()
}

// String returns a readable form such as insertChar('a') or fireOnce(file.save).
func (c Command) String() string {
	switch c.Kind {
	case KindInsertChar:
		return fmt.Sprintf("%s(%q)", c.Kind, c.Char)
	case KindFireOnce:
		if c.Arg != "" {
			return fmt.Sprintf("%s(%s %q)", c.Kind, c.Action, c.Arg)
		}
		return fmt.Sprintf("%s(%s)", c.Kind, c.Action)
	default:
		return c.Kind.String()
	}
}
