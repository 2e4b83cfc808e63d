package layout

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Replacement is drawn in place of control and zero-width runes.
const Replacement = '?'

// Cell is one drawn rune.
type Cell struct {
	// Rune is what is drawn. Tabs are drawn as spaces.
	Rune rune

	// Width is the number of terminal columns the cell occupies.
	Width int

	// Index is the rune index in the source line.
	Index int
}

// RuneWidth returns how many columns r occupies. A tab occupies tabSize
// columns; control and zero-width runes occupy one.
func RuneWidth(r rune, tabSize int) int {
	if r == '\t' {
		return max(tabSize, 1)
	}
	if unicode.IsControl(r) {
		return 1
	}
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

// DisplayColumn returns the column at which rune index col of line starts.
// Indices past the end count as one column each.
func DisplayColumn(line []rune, col, tabSize int) int {
	width := 0
	for i := 0; i < col; i++ {
		if i < len(line) {
			width += RuneWidth(line[i], tabSize)
		} else {
			width++
		}
	}
	return width
}

// ExpandLine returns the cells for line. A tab yields tabSize space cells
// sharing the tab's index.
func ExpandLine(line []rune, tabSize int) []Cell {
	cells := make([]Cell, 0, len(line))
	for i, r := range line {
		switch {
		case r == '\t':
			for j := 0; j < max(tabSize, 1); j++ {
				cells = append(cells, Cell{Rune: ' ', Width: 1, Index: i})
			}
		default:
			g := Glyph(r)
			cells = append(cells, Cell{Rune: g, Width: RuneWidth(g, tabSize), Index: i})
		}
	}
	return cells
}

// Glyph returns the rune drawn for r: control and zero-width runes are
// drawn as Replacement.
func Glyph(r rune) rune {
	if unicode.IsControl(r) || runewidth.RuneWidth(r) == 0 {
		return Replacement
	}
	return r
}
