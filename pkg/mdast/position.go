package mdast

import "bytes"

// SourceRange represents a byte range in the source content.
type SourceRange struct {
	// StartOffset is the byte index where the range begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the range ends (exclusive).
	EndOffset int
}

// Len returns the length of the range in bytes.
func (r SourceRange) Len() int {
	return r.EndOffset - r.StartOffset
}

// IsZero returns true for the unknown-position range.
func (r SourceRange) IsZero() bool {
	return r.StartOffset == 0 && r.EndOffset == 0
}

// SourcePosition represents a range in 1-based line/column form.
type SourcePosition struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// IsValid returns true if both start and end positions are valid.
func (sp SourcePosition) IsValid() bool {
	return sp.StartLine > 0 && sp.StartColumn > 0 &&
		sp.EndLine > 0 && sp.EndColumn > 0
}

// SourcePosition returns the line/column range for this node.
// Returns an invalid position if the node has no associated file or its
// span is unknown.
func (n *Node) SourcePosition() SourcePosition {
	if n.File == nil || n.Span.IsZero() && n.Kind != NodeDocument {
		return SourcePosition{}
	}

	startLine, startCol := n.File.Lines.PositionFor(n.Span.StartOffset)
	endLine, endCol := n.File.Lines.PositionFor(n.Span.EndOffset)

	return SourcePosition{
		StartLine:   startLine,
		StartColumn: startCol,
		EndLine:     endLine,
		EndColumn:   endCol,
	}
}

// Text returns the source bytes this node covers.
// Returns nil if the node has no associated file.
func (n *Node) Text() []byte {
	if n.File == nil {
		return nil
	}
	if n.Span.StartOffset < 0 || n.Span.EndOffset > len(n.File.Source) {
		return nil
	}
	return n.File.Source[n.Span.StartOffset:n.Span.EndOffset]
}

// PlainText returns the concatenated text content of all NodeText
// descendants. This is the rendered plain-text view of a text-bearing
// node such as a heading.
func (n *Node) PlainText() string {
	var buf bytes.Buffer
	_ = Walk(n, func(node *Node) error {
		if node.Kind == NodeText && node.Inline != nil {
			buf.Write(node.Inline.Text)
		}
		return nil
	})
	return buf.String()
}
