package mdast

// BlockAttrs holds attributes for block-level nodes.
type BlockAttrs struct {
	// HeadingLevel is the heading level (1-6) for NodeHeading.
	HeadingLevel int

	// List holds list-specific attributes for NodeList.
	List *ListAttrs

	// CodeBlock holds code block attributes for NodeCodeBlock.
	CodeBlock *CodeBlockAttrs
}

// ListAttrs holds attributes for list nodes.
type ListAttrs struct {
	// Ordered is true for ordered lists (1., 2., etc.).
	Ordered bool

	// BulletMarker is the bullet character used ("-", "+", "*").
	// Empty for ordered lists.
	BulletMarker string

	// StartNumber is the starting number for ordered lists.
	StartNumber int
}

// CodeBlockAttrs holds attributes for code block nodes.
type CodeBlockAttrs struct {
	// FenceChar is the fence character ('`' or '~'), or 0 for indented blocks.
	FenceChar byte

	// Info is the info string (language identifier, etc.).
	Info string

	// Indented is true for indented code blocks (vs fenced).
	Indented bool

	// Closed is true if a matching closing fence was found.
	// Always true for indented blocks.
	Closed bool
}

// InlineAttrs holds attributes for inline-level nodes.
type InlineAttrs struct {
	// Text holds the text content for NodeText and NodeCodeSpan.
	Text []byte

	// EmphasisLevel indicates emphasis strength (1 for emphasis, 2 for strong).
	EmphasisLevel int

	// Destination is the URL for NodeLink and NodeImage.
	Destination string
}

// IsFenced returns true if the code block is fenced rather than indented.
func (a *CodeBlockAttrs) IsFenced() bool {
	return a != nil && !a.Indented
}
