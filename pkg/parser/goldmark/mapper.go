package goldmark

import (
	"strings"

	"github.com/yuin/goldmark/ast"

	"github.com/lazypower/VoidReader-sub001/pkg/mdast"
)

// fenceTokenLength is the number of fence characters that open or close a
// fenced code block.
const fenceTokenLength = 3

// mapper converts a goldmark AST into an mdast.Node tree, computing the
// byte span of each node from goldmark's text segments.
type mapper struct {
	source []byte
	lines  *mdast.LineIndex

	// lastLine is the last source line covered by a mapped node, tracked
	// so fence positions goldmark drops can be recovered by scanning
	// forward from it.
	lastLine int
}

func newMapper(source []byte, lines *mdast.LineIndex) *mapper {
	return &mapper{source: source, lines: lines}
}

// mapDocument converts a goldmark document node to an mdast.Node tree.
func (m *mapper) mapDocument(gmDoc ast.Node) *mdast.Node {
	doc := mdast.NewNode(mdast.NodeDocument)
	doc.Span = mdast.SourceRange{StartOffset: 0, EndOffset: len(m.source)}
	m.mapChildren(gmDoc, doc)
	return doc
}

// mapChildren recursively maps all children of a goldmark node.
func (m *mapper) mapChildren(gmParent ast.Node, parent *mdast.Node) {
	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		if mdNode := m.mapNode(child); mdNode != nil {
			mdast.AppendChild(parent, mdNode)
			if !mdNode.Span.IsZero() {
				m.lastLine = max(m.lastLine, m.lines.LineNumberFor(mdNode.Span.EndOffset-1))
			}
		}
	}
}

// mapNode converts a single goldmark node and its subtree.
func (m *mapper) mapNode(gmNode ast.Node) *mdast.Node {
	var node *mdast.Node

	switch gmn := gmNode.(type) {
	case *ast.Heading:
		node = mdast.NewNode(mdast.NodeHeading)
		node.Block = &mdast.BlockAttrs{HeadingLevel: gmn.Level}
		m.mapChildren(gmNode, node)
		span := m.extendToLineStart(m.blockOrChildSpan(gmNode, node))
		node.Span = m.extendOverSetextUnderline(span)

	case *ast.Paragraph:
		node = mdast.NewNode(mdast.NodeParagraph)
		m.mapChildren(gmNode, node)
		node.Span = m.extendToLineStart(m.blockOrChildSpan(gmNode, node))

	case *ast.List:
		node = m.mapList(gmn)

	case *ast.ListItem:
		node = mdast.NewNode(mdast.NodeListItem)
		m.mapChildren(gmNode, node)
		node.Span = m.extendToLineStart(childUnion(node))

	case *ast.Blockquote:
		node = mdast.NewNode(mdast.NodeBlockquote)
		m.mapChildren(gmNode, node)
		node.Span = m.extendToLineStart(m.blockOrChildSpan(gmNode, node))

	case *ast.FencedCodeBlock:
		node = m.mapFencedCodeBlock(gmn)

	case *ast.CodeBlock:
		node = m.mapIndentedCodeBlock(gmn)

	case *ast.ThematicBreak:
		node = mdast.NewNode(mdast.NodeThematicBreak)

	case *ast.HTMLBlock:
		node = mdast.NewNode(mdast.NodeHTMLBlock)
		node.Span = m.extendToLineStart(m.blockOrChildSpan(gmNode, node))

	case *ast.Text:
		node = mdast.NewNode(mdast.NodeText)
		seg := gmn.Segment
		node.Inline = &mdast.InlineAttrs{Text: m.source[seg.Start:seg.Stop]}
		node.Span = mdast.SourceRange{StartOffset: seg.Start, EndOffset: seg.Stop}

	case *ast.String:
		node = mdast.NewNode(mdast.NodeText)
		node.Inline = &mdast.InlineAttrs{Text: gmn.Value}

	case *ast.Emphasis:
		node = m.mapEmphasis(gmn)

	case *ast.CodeSpan:
		node = mdast.NewNode(mdast.NodeCodeSpan)
		m.mapChildren(gmNode, node)
		node.Span = childUnion(node)

	case *ast.Link:
		node = mdast.NewNode(mdast.NodeLink)
		node.Inline = &mdast.InlineAttrs{Destination: string(gmn.Destination)}
		m.mapChildren(gmNode, node)
		node.Span = childUnion(node)

	case *ast.Image:
		node = mdast.NewNode(mdast.NodeImage)
		node.Inline = &mdast.InlineAttrs{Destination: string(gmn.Destination)}
		m.mapChildren(gmNode, node)
		node.Span = childUnion(node)

	default:
		// Fallback for extension nodes (tables, strikethrough, task
		// boxes): keep their children reachable under a raw node.
		node = mdast.NewNode(mdast.NodeRaw)
		m.mapChildren(gmNode, node)
		node.Span = m.blockOrChildSpan(gmNode, node)
	}

	return node
}

func (m *mapper) mapList(gmn *ast.List) *mdast.Node {
	node := mdast.NewNode(mdast.NodeList)

	attrs := &mdast.ListAttrs{Ordered: gmn.IsOrdered()}
	if attrs.Ordered {
		attrs.StartNumber = gmn.Start
	} else {
		attrs.BulletMarker = string(gmn.Marker)
	}
	node.Block = &mdast.BlockAttrs{List: attrs}

	m.mapChildren(gmn, node)
	node.Span = childUnion(node)
	return node
}

// mapEmphasis maps both emphasis (level 1) and strong (level 2) spans.
// The span is widened past the text content to cover the delimiters, so
// the character at the span start is the delimiter itself.
func (m *mapper) mapEmphasis(gmn *ast.Emphasis) *mdast.Node {
	kind := mdast.NodeEmphasis
	if gmn.Level >= 2 {
		kind = mdast.NodeStrong
	}

	node := mdast.NewNode(kind)
	node.Inline = &mdast.InlineAttrs{EmphasisLevel: gmn.Level}
	m.mapChildren(gmn, node)

	span := childUnion(node)
	if !span.IsZero() {
		span.StartOffset = max(span.StartOffset-gmn.Level, 0)
		span.EndOffset = min(span.EndOffset+gmn.Level, len(m.source))
	}
	node.Span = span
	return node
}

// mapFencedCodeBlock computes a span covering the opening fence through
// the closing fence. Goldmark's segments cover only the interior lines,
// so the fence lines are recovered from the line index. An unterminated
// block keeps its span up to the last interior line and is marked unclosed.
func (m *mapper) mapFencedCodeBlock(gmn *ast.FencedCodeBlock) *mdast.Node {
	node := mdast.NewNode(mdast.NodeCodeBlock)

	fenceLine := 0
	lastLine := 0

	if lines := gmn.Lines(); lines != nil && lines.Len() > 0 {
		fenceLine = m.lines.LineNumberFor(lines.At(0).Start) - 1
		lastLine = m.lines.LineNumberFor(lines.At(lines.Len() - 1).Start)
	} else if gmn.Info != nil {
		fenceLine = m.lines.LineNumberFor(gmn.Info.Segment.Start)
		lastLine = fenceLine
	}

	attrs := &mdast.CodeBlockAttrs{Indented: false}
	if gmn.Info != nil {
		seg := gmn.Info.Segment
		attrs.Info = string(m.source[seg.Start:seg.Stop])
	}
	node.Block = &mdast.BlockAttrs{CodeBlock: attrs}

	if fenceLine < 1 {
		// An empty fence with no info string carries no segments at all,
		// so locate the opening fence by scanning the source.
		fenceLine = m.findFenceLine(m.lastLine + 1)
		if fenceLine < 1 {
			return node
		}
		lastLine = fenceLine
	}

	fenceText := strings.TrimLeft(m.lines.Line(fenceLine), " \t")
	if fenceText != "" {
		attrs.FenceChar = fenceText[0]
	}
	token := strings.Repeat(string(attrs.FenceChar), fenceTokenLength)

	start := m.lines.LineStart(fenceLine)
	end := lineEnd(m.lines, lastLine)

	// Scan forward for the matching closing fence.
	for ln := lastLine + 1; ln <= m.lines.LineCount(); ln++ {
		trimmed := strings.TrimSpace(m.lines.Line(ln))
		if strings.HasPrefix(trimmed, token) {
			attrs.Closed = true
			end = lineEnd(m.lines, ln)
			break
		}
	}

	node.Span = mdast.SourceRange{StartOffset: start, EndOffset: end}
	return node
}

// findFenceLine returns the first line at or after from whose content,
// ignoring leading indentation, opens a fenced code block.
func (m *mapper) findFenceLine(from int) int {
	for ln := max(from, 1); ln <= m.lines.LineCount(); ln++ {
		trimmed := strings.TrimLeft(m.lines.Line(ln), " \t")
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			return ln
		}
	}
	return 0
}

func (m *mapper) mapIndentedCodeBlock(gmn *ast.CodeBlock) *mdast.Node {
	node := mdast.NewNode(mdast.NodeCodeBlock)
	node.Block = &mdast.BlockAttrs{
		CodeBlock: &mdast.CodeBlockAttrs{Indented: true, Closed: true},
	}
	node.Span = m.extendToLineStart(m.blockOrChildSpan(gmn, node))
	return node
}

// blockOrChildSpan derives a span from a block node's line segments,
// falling back to the union of mapped children.
func (m *mapper) blockOrChildSpan(gmNode ast.Node, node *mdast.Node) mdast.SourceRange {
	if lines := gmNode.Lines(); lines != nil && lines.Len() > 0 {
		return mdast.SourceRange{
			StartOffset: lines.At(0).Start,
			EndOffset:   lines.At(lines.Len() - 1).Stop,
		}
	}
	return childUnion(node)
}

// childUnion returns the smallest span covering all children with known
// spans.
func childUnion(node *mdast.Node) mdast.SourceRange {
	var span mdast.SourceRange
	first := true

	for child := node.FirstChild; child != nil; child = child.Next {
		if child.Span.IsZero() {
			continue
		}
		if first {
			span = child.Span
			first = false
			continue
		}
		span.StartOffset = min(span.StartOffset, child.Span.StartOffset)
		span.EndOffset = max(span.EndOffset, child.Span.EndOffset)
	}

	return span
}

// extendToLineStart widens a span's start to the beginning of its line so
// block spans include their syntax markers ('#', '-', '>').
func (m *mapper) extendToLineStart(span mdast.SourceRange) mdast.SourceRange {
	if span.IsZero() {
		return span
	}
	line := m.lines.LineNumberFor(span.StartOffset)
	span.StartOffset = m.lines.LineStart(line)
	return span
}

// extendOverSetextUnderline widens a setext heading's span to include the
// '=' or '-' underline line, which goldmark's segments exclude. ATX
// headings are returned unchanged.
func (m *mapper) extendOverSetextUnderline(span mdast.SourceRange) mdast.SourceRange {
	if span.IsZero() {
		return span
	}

	firstLine := m.lines.LineNumberFor(span.StartOffset)
	if strings.HasPrefix(strings.TrimLeft(m.lines.Line(firstLine), " \t"), "#") {
		return span
	}

	underline := m.lines.LineNumberFor(span.EndOffset-1) + 1
	if isSetextUnderline(m.lines.Line(underline)) {
		span.EndOffset = lineEnd(m.lines, underline)
	}
	return span
}

// isSetextUnderline reports whether a line is a run of '=' or '-'
// characters marking the preceding text as a heading.
func isSetextUnderline(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || (trimmed[0] != '=' && trimmed[0] != '-') {
		return false
	}
	return strings.Trim(trimmed, string(trimmed[0])) == ""
}

// lineEnd returns the byte offset just past the content of a 1-based line,
// excluding its newline.
func lineEnd(lines *mdast.LineIndex, line int) int {
	return lines.LineStart(line) + len(lines.Line(line))
}
