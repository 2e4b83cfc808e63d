package layout

// Margins is how many rows and columns to keep between the caret and the
// viewport edge.
type Margins struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// DefaultMargins returns the margins used by the terminal host.
func DefaultMargins() Margins {
	return Margins{Top: 2, Bottom: 2, Left: 4, Right: 4}
}

// maxMarginRatio limits margins to 1/3 of the viewport dimension.
const maxMarginRatio = 3

// Viewport is the visible window onto the buffer, in rows and display
// columns.
type Viewport struct {
	Top    int
	Left   int
	Width  int
	Height int

	Margins Margins
}

// NewViewport creates a viewport at the origin with default margins.
func NewViewport(width, height int) *Viewport {
	return &Viewport{
		Width:   width,
		Height:  height,
		Margins: DefaultMargins(),
	}
}

// Resize changes the viewport size, keeping its origin.
func (v *Viewport) Resize(width, height int) {
	v.Width = max(width, 0)
	v.Height = max(height, 0)
}

// Bottom returns the last visible row.
func (v *Viewport) Bottom() int {
	return v.Top + v.Height - 1
}

// Contains reports whether row and display column col are visible.
func (v *Viewport) Contains(row, col int) bool {
	return row >= v.Top && row <= v.Bottom() && col >= v.Left && col < v.Left+v.Width
}

// EffectiveMargins returns the margins clamped to the viewport size.
func (v *Viewport) EffectiveMargins() Margins {
	m := v.Margins
	maxVertical := v.Height / maxMarginRatio
	maxHorizontal := v.Width / maxMarginRatio
	m.Top = min(max(m.Top, 0), maxVertical)
	m.Bottom = min(max(m.Bottom, 0), maxVertical)
	m.Left = min(max(m.Left, 0), maxHorizontal)
	m.Right = min(max(m.Right, 0), maxHorizontal)
	return m
}

// Reveal scrolls minimally so that row and display column col are visible
// with the margins around them. It reports whether the viewport moved.
func (v *Viewport) Reveal(row, col int) bool {
	if v.Width <= 0 || v.Height <= 0 {
		return false
	}
	m := v.EffectiveMargins()
	top, left := v.Top, v.Left

	if row < v.Top+m.Top {
		top = max(row-m.Top, 0)
	} else if row > v.Bottom()-m.Bottom {
		top = max(row-v.Height+m.Bottom+1, 0)
	}

	screenCol := col - v.Left
	if screenCol < m.Left {
		left = max(col-m.Left, 0)
	} else if screenCol > v.Width-1-m.Right {
		left = max(col-v.Width+m.Right+1, 0)
	}

	moved := top != v.Top || left != v.Left
	v.Top, v.Left = top, left
	return moved
}
