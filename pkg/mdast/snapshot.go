package mdast

// Snapshot is an immutable view of a Markdown source at a specific time.
// It holds the raw bytes, a line index, and the parsed tree root.
type Snapshot struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Source is the full source bytes.
	Source []byte

	// Lines is the line index over Source.
	Lines *LineIndex

	// Root is the tree root node (Document). Nil until parsed.
	Root *Node
}

// NewSnapshot creates a Snapshot from source bytes and builds its line
// index. It does not parse; that requires a Parser.
func NewSnapshot(path string, source []byte) *Snapshot {
	return &Snapshot{
		Path:   path,
		Source: source,
		Lines:  NewLineIndex(source),
	}
}

// LineContent returns the content of a 1-based line number, excluding the
// newline. Out-of-range line numbers return the empty string.
func (s *Snapshot) LineContent(line int) string {
	return s.Lines.Line(line)
}

// LineCount returns the number of logical lines in the source.
func (s *Snapshot) LineCount() int {
	return s.Lines.LineCount()
}
