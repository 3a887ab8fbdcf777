package lint

import (
	"strings"

	"github.com/lazypower/VoidReader-sub001/pkg/mdast"
)

// HeadingLevel returns the heading level for a heading node, or 0 if the
// node is not a heading.
func HeadingLevel(n *mdast.Node) int {
	if n == nil || n.Kind != mdast.NodeHeading || n.Block == nil {
		return 0
	}
	return n.Block.HeadingLevel
}

// IsOrderedList returns true if the node is an ordered list.
func IsOrderedList(n *mdast.Node) bool {
	if n == nil || n.Kind != mdast.NodeList || n.Block == nil || n.Block.List == nil {
		return false
	}
	return n.Block.List.Ordered
}

// IsFencedCodeBlock returns true if the code block is fenced (not indented).
func IsFencedCodeBlock(n *mdast.Node) bool {
	if n == nil || n.Kind != mdast.NodeCodeBlock || n.Block == nil || n.Block.CodeBlock == nil {
		return false
	}
	return !n.Block.CodeBlock.Indented
}

// IsBlankLine returns true if the 1-based line contains only whitespace.
func IsBlankLine(file *mdast.Snapshot, line int) bool {
	return strings.TrimSpace(file.LineContent(line)) == ""
}

// TrailingWhitespaceRun returns the number of trailing whitespace
// characters on a line, excluding the line terminator.
func TrailingWhitespaceRun(line string) int {
	return len(line) - len(strings.TrimRight(line, " \t"))
}

// IsHardBreak reports whether a line ends in the two-space hard line
// break convention: exactly two trailing whitespace characters, both of
// them literal spaces.
func IsHardBreak(line string) bool {
	return TrailingWhitespaceRun(line) == 2 && strings.HasSuffix(line, "  ")
}
