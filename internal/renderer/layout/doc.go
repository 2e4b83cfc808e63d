// Package layout converts buffer positions into screen positions.
//
// Style places the caret on a pixel grid, as a graphical host would.
// Cells, DisplayColumn and Viewport do the same for a terminal grid,
// where tabs expand to a fixed number of columns and wide runes take two.
package layout
