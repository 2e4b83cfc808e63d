package renderer

import "github.com/dshills/scribe/internal/renderer/layout"

// Options configures the renderer.
type Options struct {
	// ShowLineNumbers draws the line-number bar.
	ShowLineNumbers bool

	// ShowStatusLine reserves the bottom row for the status line.
	ShowStatusLine bool

	// TabSize is how many spaces a tab is drawn as.
	TabSize int

	// Margins are kept between the caret and the text area edges.
	Margins layout.Margins
}

// DefaultOptions returns sensible defaults for a terminal.
func DefaultOptions() Options {
	return Options{
		ShowLineNumbers: true,
		ShowStatusLine:  true,
		TabSize:         layout.DefaultStyle().TabSize,
		Margins:         layout.DefaultMargins(),
	}
}

// WithLineNumbers returns o with line numbers toggled.
func (o Options) WithLineNumbers(enabled bool) Options {
	o.ShowLineNumbers = enabled
	return o
}

// WithStatusLine returns o with the status line toggled.
func (o Options) WithStatusLine(enabled bool) Options {
	o.ShowStatusLine = enabled
	return o
}

// WithTabSize returns o with the tab size set. Sizes below one are
// ignored.
func (o Options) WithTabSize(size int) Options {
	if size >= 1 {
		o.TabSize = size
	}
	return o
}
