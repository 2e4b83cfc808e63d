// Package lines derives line boundaries from a rune buffer.
//
// An Index partitions a buffer into lines. Each Line records the offset of
// its first rune (Start) and the offset of the terminator that closes it
// (End). A line's text is content[Start:End]; a caret may rest anywhere in
// [Start, End], including on the terminator itself.
//
// The index is a derived value: it is never edited in place. Callers
// recompute it with Compute after every mutation that shifts offsets.
//
// For a well-formed buffer (non-empty, last rune '\n') the lines satisfy:
//
//	lines[0].Start == 0
//	lines[i].End+1 == lines[i+1].Start
//	lines[len-1].End == len(content)-1
//
// Validate checks these conditions.
package lines
