package buffer

import (
	"fmt"
	"slices"

	"github.com/dshills/scribe/internal/engine/lines"
)

// Buffer is an editable rune sequence with a single caret.
type Buffer struct {
	content  []rune
	lines    lines.Index
	caret    int
	revision uint64
	checks   bool
}

// New creates a buffer holding a single empty line.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		content: []rune{lines.Terminator},
	}
	b.lines = lines.Compute(b.content)

	for _, opt := range opts {
		opt(b)
	}

	b.verify("new")
	return b
}

// Read Operations

// Text returns the document text: the content without the buffer's own
// trailing terminator.
func (b *Buffer) Text() string {
	return string(b.content[:len(b.content)-1])
}

// Content returns the full content including the trailing terminator.
func (b *Buffer) Content() string {
	return string(b.content)
}

// Len returns the number of runes, including the trailing terminator.
func (b *Buffer) Len() int {
	return len(b.content)
}

// RuneAt returns the rune at offset.
func (b *Buffer) RuneAt(offset int) (rune, bool) {
	if offset < 0 || offset >= len(b.content) {
		return 0, false
	}
	return b.content[offset], true
}

// Revision returns a counter incremented by every content mutation.
func (b *Buffer) Revision() uint64 {
	return b.revision
}

// Caret returns the caret offset.
func (b *Buffer) Caret() int {
	return b.caret
}

// Row returns the row the caret is on.
func (b *Buffer) Row() int {
	return b.lines.RowOf(b.caret)
}

// Col returns the caret's offset within its row.
func (b *Buffer) Col() int {
	return b.lines.ColOf(b.caret)
}

// Lines returns the current line index.
func (b *Buffer) Lines() lines.Index {
	return b.lines
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return b.lines.Len()
}

// LineText returns the text of row without its terminator.
// Out-of-range rows yield "".
func (b *Buffer) LineText(row int) string {
	if row < 0 || row >= b.lines.Len() {
		return ""
	}
	l := b.lines.At(row)
	return string(b.content[l.Start:l.End])
}

// Edit Operations

// InsertChar inserts r before the caret and advances the caret past it.
func (b *Buffer) InsertChar(r rune) {
	b.content = slices.Insert(b.content, b.caret, r)
	b.caret++
	b.changed("insert")
}

// InsertText inserts every rune of s at the caret, in order, leaving the
// caret after the last one. It is equivalent to calling InsertChar for each
// rune but recomputes lines once.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		return
	}
	runes := []rune(s)
	b.content = slices.Insert(b.content, b.caret, runes...)
	b.caret += len(runes)
	b.changed("insert text")
}

// DeleteBeforeCaret removes the rune before the caret (backspace).
// It reports whether anything was removed; at offset 0 it does nothing.
func (b *Buffer) DeleteBeforeCaret() bool {
	if b.caret == 0 {
		return false
	}
	b.content = slices.Delete(b.content, b.caret-1, b.caret)
	b.caret--
	b.changed("delete before caret")
	return true
}

// DeleteAtCaret removes the rune under the caret (forward delete).
// The buffer's trailing terminator is never removed.
func (b *Buffer) DeleteAtCaret() bool {
	if b.caret >= len(b.content)-1 {
		return false
	}
	b.content = slices.Delete(b.content, b.caret, b.caret+1)
	b.changed("delete at caret")
	return true
}

// Reset discards all content, leaving a single empty line.
func (b *Buffer) Reset() {
	b.content = []rune{lines.Terminator}
	b.caret = 0
	b.changed("reset")
}

// Caret Movement

// MoveCaret moves the caret horizontally by delta runes, clamped to the
// buffer. Movement crosses line boundaries.
func (b *Buffer) MoveCaret(delta int) {
	b.caret = clamp(b.caret+delta, 0, len(b.content)-1)
	b.verify("move caret")
}

// MoveLines moves the caret vertically by delta rows. The target row is
// clamped to the document; the column is kept where the target row is long
// enough and clamped to its end otherwise.
func (b *Buffer) MoveLines(delta int) {
	row := b.lines.RowOf(b.caret)
	col := b.caret - b.lines.At(row).Start

	target := b.lines.At(clamp(row+delta, 0, b.lines.Len()-1))
	b.caret = min(target.Start+col, target.End)
	b.verify("move lines")
}

// MoveToLineStart puts the caret on the first rune of its row.
func (b *Buffer) MoveToLineStart() {
	b.caret = b.lines.At(b.lines.RowOf(b.caret)).Start
	b.verify("move to line start")
}

// MoveToLineEnd puts the caret on its row's terminator.
func (b *Buffer) MoveToLineEnd() {
	b.caret = b.lines.At(b.lines.RowOf(b.caret)).End
	b.verify("move to line end")
}

// MoveToStart puts the caret at offset 0.
func (b *Buffer) MoveToStart() {
	b.caret = 0
	b.verify("move to start")
}

// MoveToEnd puts the caret on the trailing terminator.
func (b *Buffer) MoveToEnd() {
	b.caret = len(b.content) - 1
	b.verify("move to end")
}

// SetCaret moves the caret to offset, clamped to the buffer.
func (b *Buffer) SetCaret(offset int) {
	b.caret = clamp(offset, 0, len(b.content)-1)
	b.verify("set caret")
}

// Invariants

// CheckInvariants reports the first broken invariant, or nil.
func (b *Buffer) CheckInvariants() error {
	return b.validate("check")
}

// changed recomputes the line index after a content mutation. Every
// insert or delete shifts the offsets of later lines, so the index is
// rebuilt whether or not a terminator was involved.
func (b *Buffer) changed(op string) {
	b.revision++
	b.lines = lines.Compute(b.content)
	b.verify(op)
}

func (b *Buffer) verify(op string) {
	if !b.checks {
		return
	}
	if err := b.validate(op); err != nil {
		panic(err)
	}
}

func (b *Buffer) validate(op string) error {
	n := len(b.content)
	switch {
	case n == 0:
		return &InvariantError{Op: op, Detail: "content is empty"}
	case b.content[n-1] != lines.Terminator:
		return &InvariantError{Op: op, Detail: "content does not end with a terminator"}
	case b.caret < 0 || b.caret > n-1:
		return &InvariantError{Op: op, Detail: fmt.Sprintf("caret %d outside [0, %d]", b.caret, n-1)}
	}

	if err := b.lines.Validate(n); err != nil {
		return &InvariantError{Op: op, Detail: "stale line index", Err: err}
	}
	if _, ok := b.lines.Locate(b.caret); !ok {
		return &InvariantError{Op: op, Detail: fmt.Sprintf("caret %d on no line", b.caret)}
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
