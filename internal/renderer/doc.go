// Package renderer draws editor snapshots onto a cell surface.
//
// The screen is split into three areas:
//
//	┌─────┬──────────────────────────┐
//	│  1  │ text area                │
//	│  2  │ (background0/foreground0)│
//	│ ... │                          │
//	├─────┴──────────────────────────┤
//	│ status line                    │
//	└────────────────────────────────┘
//
// The line-number bar is as wide as the label of the last line and uses
// the background1/foreground1 theme slots. The caret is drawn as a block
// in the text color with the rune under it redrawn in the background
// color. Tabs are expanded to tab-size spaces.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, theme.Default(), renderer.DefaultOptions())
//	r.Render(session.Snapshot())
package renderer
