// Package goldmark provides a lint.Parser implementation backed by the
// goldmark library. It maps the goldmark AST onto the mdast tree, giving
// every node a byte span back into the source.
package goldmark

import (
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/lazypower/VoidReader-sub001/pkg/mdast"
)

// Parser implements lint.Parser using goldmark with the GFM extensions
// enabled.
type Parser struct {
	md goldmark.Markdown
}

// New creates a new goldmark-based parser.
func New() *Parser {
	return &Parser{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// Parse converts raw Markdown bytes into a fully-populated Snapshot.
//
// The method:
//  1. Checks for context cancellation.
//  2. Builds a Snapshot shell with path, source, and line index.
//  3. Parses the source with goldmark.
//  4. Maps the goldmark AST onto mdast nodes, computing byte spans.
//  5. Sets File back-references throughout the tree.
func (p *Parser) Parse(ctx context.Context, path string, source []byte) (*mdast.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	snapshot := mdast.NewSnapshot(path, copySource(source))

	reader := text.NewReader(snapshot.Source)
	gmDoc := p.md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	mapper := newMapper(snapshot.Source, snapshot.Lines)
	snapshot.Root = mapper.mapDocument(gmDoc)

	mdast.SetFile(snapshot.Root, snapshot)

	return snapshot, nil
}

// copySource returns a defensive copy so callers may reuse their buffer.
func copySource(source []byte) []byte {
	if source == nil {
		return []byte{}
	}
	dup := make([]byte, len(source))
	copy(dup, source)
	return dup
}
