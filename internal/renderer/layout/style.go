package layout

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Style holds the metrics used to place text.
type Style struct {
	// TextPadding is the gap between the text area edge and the text.
	TextPadding float64

	// CellWidth and CellHeight are the size of one character cell.
	CellWidth  float64
	CellHeight float64

	// LineSpacing is the extra gap between consecutive lines.
	LineSpacing float64

	// TabSize is how many cells a tab occupies.
	TabSize int
}

// DefaultStyle returns a one-unit grid with no padding, which is what a
// terminal uses.
func DefaultStyle() Style {
	return Style{
		CellWidth:  1,
		CellHeight: 1,
		TabSize:    4,
	}
}

// CaretPosition returns the top-left corner of the caret cell at row and
// display column col.
func (s Style) CaretPosition(row, col int) (x, y float64) {
	x = s.TextPadding + float64(col)*s.CellWidth
	y = s.TextPadding + float64(row)*s.CellHeight + float64(row)*s.LineSpacing
	return x, y
}

// GutterLabel returns the line-number text for the 1-based line n.
func GutterLabel(n int) string {
	return fmt.Sprintf(" %d ", n)
}

// GutterWidth returns the width of the line-number bar for a buffer with
// lineCount lines. The bar is as wide as the label of the last line.
func GutterWidth(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return runewidth.StringWidth(GutterLabel(lineCount))
}
