// Package buffer provides the editable text buffer and its caret.
//
// A Buffer owns a rune sequence that always ends with a line terminator
// and a single caret offset into it. All editing goes through the Buffer's
// primitives, which keep three invariants:
//
//   - the content is never empty and its last rune is '\n'
//   - 0 <= caret <= Len()-1
//   - the line index partitions the content (see package lines)
//
// Editing operations never fail. Boundary cases (backspace at the start,
// forward delete on the final terminator, moving past either end) clamp
// or do nothing.
//
// Basic usage:
//
//	buf := buffer.New()
//	buf.InsertText("hello\nworld")
//	buf.MoveLines(-1)       // caret to row 0, same column where possible
//	buf.MoveToLineEnd()
//	buf.DeleteBeforeCaret() // "hell\nworld"
//
// A Buffer is not safe for concurrent use. It is owned by a single editor
// session and driven from one goroutine.
//
// Development assertions:
//
// WithInvariantChecks(true) makes every operation validate the invariants
// afterwards and panic with an *InvariantError when one is broken. Tests
// enable it; production sessions enable it in debug mode.
package buffer
