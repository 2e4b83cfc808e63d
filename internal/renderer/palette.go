package renderer

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/scribe/internal/theme"
)

// dimAmount is how far inactive line numbers fade into the bar.
const dimAmount = 0.45

// palette holds the cell styles derived from a theme.
type palette struct {
	text       tcell.Style
	caret      tcell.Style
	caretGlyph tcell.Style
	gutter     tcell.Style
	gutterDim  tcell.Style
	status     tcell.Style
	statusDim  tcell.Style
}

func newPalette(th *theme.Theme) palette {
	bg0 := th.TCell(theme.Background0)
	bg1 := th.TCell(theme.Background1)
	fg0 := th.TCell(theme.Foreground0)
	fg1 := th.TCell(theme.Foreground1)
	fg1Dim := toTCell(th.Blend(theme.Foreground1, theme.Background1, dimAmount))

	base := tcell.StyleDefault
	return palette{
		text:       base.Background(bg0).Foreground(fg0),
		caret:      base.Background(fg0).Foreground(fg0),
		caretGlyph: base.Background(fg0).Foreground(bg0),
		gutter:     base.Background(bg1).Foreground(fg1),
		gutterDim:  base.Background(bg1).Foreground(fg1Dim),
		status:     base.Background(fg1Dim).Foreground(bg0).Bold(true),
		statusDim:  base.Background(bg1).Foreground(fg1),
	}
}

func toTCell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
