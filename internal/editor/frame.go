package editor

import (
	"time"

	"github.com/dshills/scribe/internal/input/key"
)

// Frame is the input for one tick.
type Frame struct {
	// Pressed is the key newly pressed this frame, or nil.
	Pressed *key.Event

	// Released reports that the held key went up this frame.
	Released bool

	// Elapsed is the time since the previous frame.
	Elapsed time.Duration
}

// Press returns a frame pressing ev.
func Press(ev key.Event, elapsed time.Duration) Frame {
	return Frame{Pressed: &ev, Elapsed: elapsed}
}

// Idle returns a frame with no key activity.
func Idle(elapsed time.Duration) Frame {
	return Frame{Elapsed: elapsed}
}

// Snapshot is a read-only copy of what a renderer needs.
type Snapshot struct {
	// Lines holds the text of every row, without terminators.
	Lines []string

	// Row and Col locate the caret; Caret is its rune offset.
	Row, Col, Caret int

	// LineCount is len(Lines).
	LineCount int

	// Path is the file being edited, or "" for a scratch buffer.
	Path string

	// Dirty reports unsaved changes.
	Dirty bool

	// Message is the latest status message.
	Message string
}

// CaretRune returns the rune under the caret; a row's end yields '\n'.
func (s Snapshot) CaretRune() rune {
	if s.Row < 0 || s.Row >= len(s.Lines) {
		return '\n'
	}
	line := []rune(s.Lines[s.Row])
	if s.Col < 0 || s.Col >= len(line) {
		return '\n'
	}
	return line[s.Col]
}
