package buffer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dshills/scribe/internal/engine/lines"
)

func newTestBuffer(text string) *Buffer {
	return New(WithInvariantChecks(true), WithText(text))
}

func TestNew(t *testing.T) {
	b := New(WithInvariantChecks(true))

	require.Equal(t, "", b.Text())
	require.Equal(t, 1, b.Len())
	require.Equal(t, 1, b.LineCount())
	require.Equal(t, 0, b.Caret())
	require.Equal(t, "", b.Text())
	require.Equal(t, "\n", b.Content())
}

func TestWithText(t *testing.T) {
	b := newTestBuffer("line1\nline2\nline3")

	require.Equal(t, 3, b.LineCount())
	require.Equal(t, "line1", b.LineText(0))
	require.Equal(t, "line2", b.LineText(1))
	require.Equal(t, "line3", b.LineText(2))
	require.Equal(t, "", b.LineText(3))
	require.Equal(t, 0, b.Caret())
}

func TestInsertChar(t *testing.T) {
	b := newTestBuffer("")
	for _, r := range "hi" {
		b.InsertChar(r)
	}

	require.Equal(t, "hi", b.Text())
	require.Equal(t, 2, b.Caret())
	require.Equal(t, uint64(2), b.Revision())
}

func TestInsertTerminatorSplitsLine(t *testing.T) {
	b := newTestBuffer("hello world")
	b.SetCaret(5)

	b.InsertChar('\n')

	require.Equal(t, 2, b.LineCount())
	require.Equal(t, "hello", b.LineText(0))
	require.Equal(t, " world", b.LineText(1))
	require.Equal(t, 1, b.Row(), "caret should be on the new second line")
	require.Equal(t, 0, b.Col())
}

func TestInsertText(t *testing.T) {
	b := newTestBuffer("ad")
	b.SetCaret(1)

	b.InsertText("b\nc")

	require.Equal(t, "ab\ncd", b.Text())
	require.Equal(t, 4, b.Caret())
	require.Equal(t, 1, b.Row())
	require.Equal(t, 1, b.Col())
}

func TestDeleteBeforeCaret(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		caret     int
		want      string
		wantCaret int
		changed   bool
	}{
		{"at start is a no-op", "abc", 0, "abc", 0, false},
		{"middle", "abc", 2, "ac", 1, true},
		{"joins lines", "ab\ncd", 3, "abcd", 2, true},
		{"empty document", "", 0, "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuffer(tt.text)
			b.SetCaret(tt.caret)
			rev := b.Revision()

			got := b.DeleteBeforeCaret()

			require.Equal(t, tt.changed, got)
			require.Equal(t, tt.want, b.Text())
			require.Equal(t, tt.wantCaret, b.Caret())
			if !tt.changed {
				require.Equal(t, rev, b.Revision())
			}
		})
	}
}

func TestDeleteAtCaret(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		caret   int
		want    string
		changed bool
	}{
		{"first rune", "abc", 0, "bc", true},
		{"joins lines", "ab\ncd", 2, "abcd", true},
		{"final terminator is kept", "abc", 3, "abc", false},
		{"empty document", "", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuffer(tt.text)
			b.SetCaret(tt.caret)

			got := b.DeleteAtCaret()

			require.Equal(t, tt.changed, got)
			require.Equal(t, tt.want, b.Text())
			require.Equal(t, tt.caret, b.Caret(), "forward delete leaves the caret in place")
		})
	}
}

func TestMoveCaretClamps(t *testing.T) {
	b := newTestBuffer("ab\ncd")

	b.MoveCaret(-5)
	require.Equal(t, 0, b.Caret())

	b.MoveCaret(3)
	require.Equal(t, 3, b.Caret())
	require.Equal(t, 1, b.Row())

	b.MoveCaret(100)
	require.Equal(t, b.Len()-1, b.Caret())
}

func TestMoveLines(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		caret   int
		delta   int
		wantRow int
		wantCol int
	}{
		{"down clamps column to shorter line", "abcdef\nxy", 5, 1, 1, 2},
		{"down keeps column", "abc\nxyz", 2, 1, 1, 2},
		{"up keeps column", "abc\nxyz", 6, -1, 0, 2},
		{"up from first row stays", "abc\nxyz", 1, -1, 0, 1},
		{"down from last row stays", "abc\nxyz", 5, 1, 1, 1},
		{"page clamps to last row", "a\nb\nc\nd", 0, 10, 3, 0},
		{"single line", "hello", 3, 1, 0, 3},
		{"onto blank line", "abc\n\nxyz", 2, 1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuffer(tt.text)
			b.SetCaret(tt.caret)

			b.MoveLines(tt.delta)

			require.Equal(t, tt.wantRow, b.Row())
			require.Equal(t, tt.wantCol, b.Col())
		})
	}
}

func TestMoveToLineStartAndEnd(t *testing.T) {
	b := newTestBuffer("abc\nhello\nz")
	b.SetCaret(6)

	b.MoveToLineEnd()
	require.Equal(t, 9, b.Caret())
	require.Equal(t, 5, b.Col())

	b.MoveToLineStart()
	require.Equal(t, 4, b.Caret())
	require.Equal(t, 0, b.Col())
}

func TestMoveToStartAndEnd(t *testing.T) {
	b := newTestBuffer("abc\ndef")
	b.SetCaret(2)

	b.MoveToEnd()
	require.Equal(t, 7, b.Caret())
	require.Equal(t, 1, b.Row())

	b.MoveToStart()
	require.Equal(t, 0, b.Caret())
}

func TestReset(t *testing.T) {
	b := newTestBuffer("abc\ndef")
	b.MoveToEnd()

	b.Reset()

	require.Equal(t, 1, b.Len())
	require.Equal(t, 0, b.Caret())
	require.Equal(t, 1, b.LineCount())
}

func TestRuneAt(t *testing.T) {
	b := newTestBuffer("ab")

	r, ok := b.RuneAt(1)
	require.True(t, ok)
	require.Equal(t, 'b', r)

	r, ok = b.RuneAt(2)
	require.True(t, ok)
	require.Equal(t, lines.Terminator, r)

	_, ok = b.RuneAt(3)
	require.False(t, ok)
}

func TestLineTextOutOfRange(t *testing.T) {
	b := newTestBuffer("abc")

	require.Equal(t, "abc", b.LineText(0))
	require.Equal(t, "", b.LineText(5))
	require.Equal(t, "", b.LineText(-1))
}

func TestInvariantViolationPanics(t *testing.T) {
	b := newTestBuffer("abc")
	b.caret = 42

	err := b.CheckInvariants()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvariant))

	var ie *InvariantError
	require.True(t, errors.As(err, &ie))
	require.Contains(t, ie.Detail, "caret 42")

	require.Panics(t, func() { b.verify("test") })
}

func TestStaleLineIndexIsDetected(t *testing.T) {
	b := newTestBuffer("abc\ndef")
	b.content = append(b.content[:3], b.content[4:]...) // drop a terminator behind the index's back

	err := b.CheckInvariants()
	require.ErrorIs(t, err, ErrInvariant)
	require.ErrorIs(t, err, lines.ErrNotPartition)
}

func TestWithoutChecksDoesNotPanic(t *testing.T) {
	b := New(WithText("abc"))
	b.caret = 42

	require.NotPanics(t, func() { b.verify("test") })
}

// Property tests

type op int

const (
	opInsert op = iota
	opNewline
	opBackspace
	opDelete
	opLeft
	opRight
	opUp
	opDown
	opLineStart
	opLineEnd
	opCount
)

func apply(b *Buffer, o op, r rune) {
	switch o {
	case opInsert:
		b.InsertChar(r)
	case opNewline:
		b.InsertChar('\n')
	case opBackspace:
		b.DeleteBeforeCaret()
	case opDelete:
		b.DeleteAtCaret()
	case opLeft:
		b.MoveCaret(-1)
	case opRight:
		b.MoveCaret(1)
	case opUp:
		b.MoveLines(-1)
	case opDown:
		b.MoveLines(1)
	case opLineStart:
		b.MoveToLineStart()
	case opLineEnd:
		b.MoveToLineEnd()
	}
}

func TestOperationsKeepInvariantsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := New(WithInvariantChecks(true))
		steps := rapid.IntRange(0, 200).Draw(t, "steps")

		for i := 0; i < steps; i++ {
			o := op(rapid.IntRange(0, int(opCount)-1).Draw(t, "op"))
			r := rapid.SampledFrom([]rune{'a', 'Z', ' ', '\t', 'é', '世'}).Draw(t, "rune")
			apply(b, o, r)

			if b.Caret() < 0 || b.Caret() > b.Len()-1 {
				t.Fatalf("caret %d outside [0, %d]", b.Caret(), b.Len()-1)
			}
			idx := b.Lines()
			for row := 0; row+1 < idx.Len(); row++ {
				if idx.At(row).End+1 != idx.At(row+1).Start {
					t.Fatalf("gap between rows %d and %d: %v", row, row+1, idx.Lines())
				}
			}
		}
	})
}

func TestBackspaceAtStartProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-z\n ]{0,40}`).Draw(t, "text")
		b := newTestBuffer(text)
		b.MoveToStart()

		require.False(t, b.DeleteBeforeCaret())
		require.Equal(t, text, b.Text())
		require.Equal(t, 0, b.Caret())
	})
}

func TestInsertTextRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Filter(func(s string) bool {
			return !strings.ContainsRune(s, 0)
		}).Draw(t, "s")
		want := string([]rune(s)) // invalid UTF-8 decodes to U+FFFD either way

		b := New(WithInvariantChecks(true))
		b.InsertText(s)

		require.Equal(t, want, b.Text())
	})
}

func TestInsertTextMatchesInsertCharProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		prefix := rapid.StringMatching(`[a-c\n]{0,10}`).Draw(t, "prefix")
		s := rapid.StringMatching(`[x-z\n\t]{0,20}`).Draw(t, "s")
		caret := rapid.IntRange(0, len(prefix)).Draw(t, "caret")

		bulk := newTestBuffer(prefix)
		bulk.SetCaret(caret)
		bulk.InsertText(s)

		each := newTestBuffer(prefix)
		each.SetCaret(caret)
		for _, r := range s {
			each.InsertChar(r)
		}

		require.Equal(t, each.Content(), bulk.Content())
		require.Equal(t, each.Caret(), bulk.Caret())
		require.Equal(t, each.Lines().Lines(), bulk.Lines().Lines())
	})
}
