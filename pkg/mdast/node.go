// Package mdast provides the Markdown document tree consumed by the lint
// engine. It defines an immutable snapshot of a parsed source: the raw
// bytes, a line index, and an AST whose nodes carry byte ranges back into
// the source.
package mdast

// NodeKind classifies the type of an AST node.
type NodeKind uint8

// Node kinds for block-level and inline-level Markdown elements.
const (
	NodeDocument NodeKind = iota

	// Block-level nodes.
	NodeParagraph
	NodeHeading
	NodeList
	NodeListItem
	NodeBlockquote
	NodeCodeBlock
	NodeThematicBreak
	NodeHTMLBlock

	// Inline-level nodes.
	NodeText
	NodeEmphasis
	NodeStrong
	NodeCodeSpan
	NodeLink
	NodeImage

	// Fallback for unrecognized content.
	NodeRaw
)

// Node is a single node in the Markdown tree. Nodes form a tree structure
// with parent/child/sibling pointers and reference their source bytes via
// Span.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Span is the byte range this node covers in the source.
	// A zero-length span at offset 0 means the position is unknown.
	Span SourceRange

	// File is a back-reference to the containing Snapshot.
	File *Snapshot

	// Block holds attributes for block-level nodes.
	Block *BlockAttrs

	// Inline holds attributes for inline-level nodes.
	Inline *InlineAttrs
}

// NewNode creates a detached node of the given kind.
func NewNode(kind NodeKind) *Node {
	return &Node{Kind: kind}
}

// IsBlock returns true if this is a block-level node.
func (n *Node) IsBlock() bool {
	switch n.Kind {
	case NodeDocument, NodeParagraph, NodeHeading, NodeList, NodeListItem,
		NodeBlockquote, NodeCodeBlock, NodeThematicBreak, NodeHTMLBlock:
		return true
	default:
		return false
	}
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// AppendChild attaches child as the last child of parent.
func AppendChild(parent, child *Node) {
	child.Parent = parent
	child.Prev = parent.LastChild
	child.Next = nil

	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
	}
	parent.LastChild = child
}

// SetFile sets the File back-reference on every node in the tree.
func SetFile(root *Node, file *Snapshot) {
	if root == nil {
		return
	}
	root.File = file
	for child := root.FirstChild; child != nil; child = child.Next {
		SetFile(child, file)
	}
}
