package renderer

import (
	"unicode"

	"github.com/dshills/scribe/internal/editor"
	"github.com/dshills/scribe/internal/renderer/backend"
	"github.com/dshills/scribe/internal/renderer/layout"
	"github.com/dshills/scribe/internal/theme"
)

// Renderer draws snapshots onto a surface. It keeps the scroll position
// between frames.
type Renderer struct {
	surface backend.Surface
	theme   *theme.Theme
	palette palette
	opts    Options

	grid        layout.Style
	view        *layout.Viewport
	status      *StatusLine
	gutterWidth int
}

// New creates a renderer. A nil theme means the default theme.
func New(surface backend.Surface, th *theme.Theme, opts Options) *Renderer {
	r := &Renderer{
		surface: surface,
		view:    layout.NewViewport(0, 0),
		status:  NewStatusLine(),
	}
	r.SetTheme(th)
	r.SetOptions(opts)
	return r
}

// SetTheme replaces the theme.
func (r *Renderer) SetTheme(th *theme.Theme) {
	if th == nil {
		th = theme.Default()
	}
	r.theme = th
	r.palette = newPalette(th)
}

// Theme returns the current theme.
func (r *Renderer) Theme() *theme.Theme {
	return r.theme
}

// SetOptions replaces the options.
func (r *Renderer) SetOptions(opts Options) {
	if opts.TabSize < 1 {
		opts.TabSize = layout.DefaultStyle().TabSize
	}
	r.opts = opts
	r.grid = layout.DefaultStyle()
	r.grid.TabSize = opts.TabSize
	r.view.Margins = opts.Margins
}

// Options returns the current options.
func (r *Renderer) Options() Options {
	return r.opts
}

// Viewport returns the text area viewport.
func (r *Renderer) Viewport() *layout.Viewport {
	return r.view
}

// StatusLine returns the status line.
func (r *Renderer) StatusLine() *StatusLine {
	return r.status
}

// GutterWidth returns the width of the line-number bar as of the last
// render.
func (r *Renderer) GutterWidth() int {
	return r.gutterWidth
}

// PageLines returns how many rows a page movement should cover: the text
// area height less one row of overlap.
func (r *Renderer) PageLines() int {
	_, height := r.surface.Size()
	return max(height-r.statusRows(height)-1, 1)
}

// Render draws snap and flushes the surface.
func (r *Renderer) Render(snap editor.Snapshot) {
	width, height := r.surface.Size()
	if width <= 0 || height <= 0 {
		return
	}
	r.resize(snap.LineCount, width, height)

	caretLine := lineAt(snap, snap.Row)
	caretCol := layout.DisplayColumn(caretLine, snap.Col, r.opts.TabSize)
	r.view.Reveal(snap.Row, caretCol)

	if r.gutterWidth > 0 {
		r.surface.Fill(0, 0, r.gutterWidth, r.view.Height, ' ', r.palette.gutter)
	}
	r.surface.Fill(r.gutterWidth, 0, r.view.Width, r.view.Height, ' ', r.palette.text)

	for y := 0; y < r.view.Height; y++ {
		row := r.view.Top + y
		if row >= len(snap.Lines) {
			break
		}
		if r.gutterWidth > 0 {
			r.drawLineNumber(row, y, row == snap.Row)
		}
		r.drawLine(lineAt(snap, row), y)
	}
	r.drawCaret(snap, caretCol)

	if rows := r.statusRows(height); rows > 0 {
		r.status.Update(snap)
		r.status.render(r.surface, height-rows, width, r.palette)
	}

	r.surface.HideCursor()
	r.surface.Show()
}

func (r *Renderer) statusRows(height int) int {
	if r.opts.ShowStatusLine && height > 1 {
		return 1
	}
	return 0
}

func (r *Renderer) resize(lineCount, width, height int) {
	r.gutterWidth = 0
	if r.opts.ShowLineNumbers {
		if w := layout.GutterWidth(lineCount); w < width {
			r.gutterWidth = w
		}
	}
	r.view.Resize(width-r.gutterWidth, height-r.statusRows(height))
}

func (r *Renderer) drawLineNumber(row, y int, current bool) {
	style := r.palette.gutterDim
	if current {
		style = r.palette.gutter
	}
	drawString(r.surface, 0, y, layout.GutterLabel(row+1), r.gutterWidth, style)
}

func (r *Renderer) drawLine(line []rune, y int) {
	col := 0
	for _, c := range layout.ExpandLine(line, r.opts.TabSize) {
		sx := col - r.view.Left
		if sx >= r.view.Width {
			return
		}
		if sx >= 0 && sx+c.Width <= r.view.Width {
			r.surface.SetContent(r.gutterWidth+sx, y, c.Rune, r.palette.text)
		}
		col += c.Width
	}
}

// drawCaret draws the caret block at display column col of the caret row.
// A visible rune under the caret is redrawn in the background color.
func (r *Renderer) drawCaret(snap editor.Snapshot, col int) {
	if !r.view.Contains(snap.Row, col) {
		return
	}
	px, py := r.grid.CaretPosition(snap.Row-r.view.Top, col-r.view.Left)
	x, y := r.gutterWidth+int(px), int(py)

	ch := snap.CaretRune()
	if unicode.IsSpace(ch) {
		r.surface.SetContent(x, y, ' ', r.palette.caret)
		return
	}
	r.surface.SetContent(x, y, layout.Glyph(ch), r.palette.caretGlyph)
}

func lineAt(snap editor.Snapshot, row int) []rune {
	if row < 0 || row >= len(snap.Lines) {
		return nil
	}
	return []rune(snap.Lines[row])
}
