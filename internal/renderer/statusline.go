package renderer

import (
	"fmt"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/scribe/internal/editor"
	"github.com/dshills/scribe/internal/renderer/backend"
)

// noName is shown for a buffer without a file.
const noName = "[No Name]"

// StatusLine is the bottom row: file name, modified marker, message and
// caret position.
type StatusLine struct {
	filename   string
	modified   bool
	line       int // 1-based
	col        int // 1-based
	totalLines int
	message    string
}

// NewStatusLine creates an empty status line.
func NewStatusLine() *StatusLine {
	return &StatusLine{line: 1, col: 1}
}

// Update copies the displayed state from snap.
func (s *StatusLine) Update(snap editor.Snapshot) {
	s.filename = snap.Path
	s.modified = snap.Dirty
	s.line = snap.Row + 1
	s.col = snap.Col + 1
	s.totalLines = snap.LineCount
	s.message = snap.Message
}

// Left returns the file part, such as "notes.txt [+]".
func (s *StatusLine) Left() string {
	name := noName
	if s.filename != "" {
		name = filepath.Base(s.filename)
	}
	if s.modified {
		name += " [+]"
	}
	return name
}

// Right returns the position part, such as "Ln 3, Col 7 | 42%".
func (s *StatusLine) Right() string {
	pos := fmt.Sprintf("Ln %d, Col %d", s.line, s.col)
	switch {
	case s.totalLines <= 1:
		return pos
	case s.line <= 1:
		return pos + " | Top"
	case s.line >= s.totalLines:
		return pos + " | Bot"
	}
	return fmt.Sprintf("%s | %d%%", pos, s.line*100/s.totalLines)
}

// Message returns the displayed status message.
func (s *StatusLine) Message() string {
	return s.message
}

// render draws the status line on row. The position is right-aligned and
// wins over the message when space runs out.
func (s *StatusLine) render(surface backend.Surface, row, width int, p palette) {
	surface.Fill(0, row, width, 1, ' ', p.statusDim)

	right := s.Right() + " "
	rightStart := width - runewidth.StringWidth(right)

	left := " " + s.Left() + " "
	col := drawString(surface, 0, row, left, rightStart, p.status)
	if s.message != "" {
		col = drawString(surface, col+1, row, s.message, rightStart-1, p.statusDim)
	}
	if rightStart > col {
		drawString(surface, rightStart, row, right, width, p.statusDim)
	}
}

// drawString draws text from x up to (not including) column limit and
// returns the column after the last drawn rune.
func drawString(surface backend.Surface, x, y int, text string, limit int, style tcell.Style) int {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}
		surface.SetContent(x, y, r, style)
		x += w
	}
	return x
}
