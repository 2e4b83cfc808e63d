package lines

import (
	"errors"
	"fmt"
)

// Terminator is the rune that closes every line.
const Terminator = '\n'

// ErrNotPartition indicates an index does not partition its buffer.
var ErrNotPartition = errors.New("lines: index does not partition buffer")

// Line delimits one line of a buffer.
type Line struct {
	// Start is the offset of the first rune of the line.
	Start int

	// End is the offset of the terminator that closes the line.
	End int
}

// Len returns the number of runes in the line, excluding the terminator.
func (l Line) Len() int {
	return l.End - l.Start
}

// Contains reports whether a caret at offset belongs to this line.
func (l Line) Contains(offset int) bool {
	return offset >= l.Start && offset <= l.End
}

// String returns a compact representation for debugging.
func (l Line) String() string {
	return fmt.Sprintf("[%d,%d]", l.Start, l.End)
}

// Index is an ordered list of lines covering a buffer.
type Index struct {
	lines []Line
}

// Compute scans content once and returns one Line per terminator.
// Runes after the final terminator do not form a line.
func Compute(content []rune) Index {
	idx := Index{lines: make([]Line, 0, 16)}
	begin := 0
	for i, r := range content {
		if r == Terminator {
			idx.lines = append(idx.lines, Line{Start: begin, End: i})
			begin = i + 1
		}
	}
	return idx
}

// Len returns the number of lines.
func (idx Index) Len() int {
	return len(idx.lines)
}

// At returns the line at row i. It panics if i is out of range.
func (idx Index) At(i int) Line {
	return idx.lines[i]
}

// Lines returns a copy of all lines.
func (idx Index) Lines() []Line {
	out := make([]Line, len(idx.lines))
	copy(out, idx.lines)
	return out
}

// Locate returns the first row whose range contains offset.
// ok is false when no line contains it, which only happens when the
// offset lies outside the buffer the index was computed from.
func (idx Index) Locate(offset int) (row int, ok bool) {
	// Lines are sorted and contiguous, so binary search is exact.
	lo, hi := 0, len(idx.lines)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if idx.lines[mid].End < offset {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(idx.lines) && idx.lines[lo].Contains(offset) {
		return lo, true
	}
	return 0, false
}

// RowOf returns the row containing offset, or 0 when none does.
// The zero fallback hides a broken invariant; use Locate where the caller
// can act on it.
func (idx Index) RowOf(offset int) int {
	row, _ := idx.Locate(offset)
	return row
}

// ColOf returns offset relative to the start of its row.
func (idx Index) ColOf(offset int) int {
	if len(idx.lines) == 0 {
		return offset
	}
	return offset - idx.lines[idx.RowOf(offset)].Start
}

// Validate checks that the index partitions a buffer of the given length.
func (idx Index) Validate(length int) error {
	if len(idx.lines) == 0 {
		return fmt.Errorf("%w: no lines for length %d", ErrNotPartition, length)
	}
	if idx.lines[0].Start != 0 {
		return fmt.Errorf("%w: first line starts at %d", ErrNotPartition, idx.lines[0].Start)
	}
	for i := 0; i < len(idx.lines); i++ {
		l := idx.lines[i]
		if l.End < l.Start {
			return fmt.Errorf("%w: line %d is %s", ErrNotPartition, i, l)
		}
		if i > 0 && idx.lines[i-1].End+1 != l.Start {
			return fmt.Errorf("%w: gap between line %d %s and line %d %s",
				ErrNotPartition, i-1, idx.lines[i-1], i, l)
		}
	}
	if last := idx.lines[len(idx.lines)-1]; last.End != length-1 {
		return fmt.Errorf("%w: last line ends at %d, buffer length %d", ErrNotPartition, last.End, length)
	}
	return nil
}
