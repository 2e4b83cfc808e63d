// Package backend connects the renderer and input to a terminal.
package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/scribe/internal/input/key"
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventInterrupt
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Width and Height are set for EventResize.
	Width, Height int

	// Data is set for EventInterrupt.
	Data any
}

// Surface is what the renderer draws on.
// Positions outside the surface are silently ignored.
type Surface interface {
	// Size returns the surface dimensions in cells.
	Size() (width, height int)

	// SetContent sets one cell.
	SetContent(x, y int, r rune, style tcell.Style)

	// Fill sets every cell of the w×h rectangle at x, y.
	Fill(x, y, w, h int, r rune, style tcell.Style)

	// ShowCursor positions and displays the terminal cursor.
	ShowCursor(x, y int)

	// HideCursor hides the terminal cursor.
	HideCursor()

	// Show flushes pending changes to the display.
	Show()
}
