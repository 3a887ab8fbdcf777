package mdast

import "sort"

// LineIndex is a random-access view of source text as logical lines.
// It records the start offset of every line so that byte offsets can be
// resolved back to 1-based line numbers. A LineIndex is built once and
// never mutated, so it is safe to read from multiple goroutines.
type LineIndex struct {
	source []byte

	// starts[i] is the byte offset of logical line i (0-based internally).
	// There is always at least one entry: an empty source has one empty
	// logical line, and a source ending in '\n' has an explicit trailing
	// empty line so "one past the last newline" is addressable.
	starts []int
}

// NewLineIndex scans source once, splitting on '\n', and records each
// line's start offset.
func NewLineIndex(source []byte) *LineIndex {
	starts := make([]int, 1, 16)
	starts[0] = 0

	for idx, char := range source {
		if char == '\n' {
			starts = append(starts, idx+1)
		}
	}

	return &LineIndex{source: source, starts: starts}
}

// LineCount returns the number of logical lines.
func (ix *LineIndex) LineCount() int {
	return len(ix.starts)
}

// Line returns the text of the 1-based logical line, excluding the line
// terminator. Out-of-range line numbers return the empty string.
func (ix *LineIndex) Line(line int) string {
	if line < 1 || line > len(ix.starts) {
		return ""
	}
	start := ix.starts[line-1]
	end := len(ix.source)
	if line < len(ix.starts) {
		end = ix.starts[line] - 1 // exclude the '\n'
	}
	return string(ix.source[start:end])
}

// LineStart returns the byte offset of the 1-based logical line.
// Out-of-range line numbers return 0.
func (ix *LineIndex) LineStart(line int) int {
	if line < 1 || line > len(ix.starts) {
		return 0
	}
	return ix.starts[line-1]
}

// LineNumberFor returns the 1-based line number containing the given byte
// offset. Offsets at or past the end of the source resolve to the last line.
func (ix *LineIndex) LineNumberFor(offset int) int {
	if offset < 0 {
		return 1
	}

	// Binary search for the first line starting after offset.
	idx := sort.Search(len(ix.starts), func(i int) bool {
		return ix.starts[i] > offset
	})
	return idx
}

// PositionFor converts a byte offset to a 1-based (line, column) pair.
// Column counts bytes from the line start.
func (ix *LineIndex) PositionFor(offset int) (int, int) {
	line := ix.LineNumberFor(offset)
	return line, offset - ix.starts[line-1] + 1
}
