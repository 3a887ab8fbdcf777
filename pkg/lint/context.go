package lint

import (
	"context"

	"github.com/lazypower/VoidReader-sub001/pkg/mdast"
)

// RuleContext provides everything a rule needs to perform one check pass.
//
// RuleContext stores context.Context as a field (Ctx) rather than passing
// it as a method parameter: it is a short-lived parameter object created
// per rule invocation, and the field keeps the Rule interface to a single
// Apply method while still supporting cancellation via Cancelled().
type RuleContext struct {
	// Ctx is the context for cancellation.
	Ctx context.Context

	// File is the parsed snapshot.
	File *mdast.Snapshot

	// Root is the tree root node (convenience alias for File.Root).
	Root *mdast.Node

	// cache groups nodes by kind, built lazily on first access and
	// shared between the rules of one engine run.
	cache *nodeCache
}

// NewRuleContext creates a RuleContext for the given snapshot.
func NewRuleContext(ctx context.Context, file *mdast.Snapshot) *RuleContext {
	var root *mdast.Node
	if file != nil {
		root = file.Root
	}

	return &RuleContext{
		Ctx:   ctx,
		File:  file,
		Root:  root,
		cache: &nodeCache{},
	}
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}

// Headings returns all heading nodes in document order.
// Do not mutate the returned slice.
func (rc *RuleContext) Headings() []*mdast.Node {
	rc.cache.build(rc.Root)
	return rc.cache.headings
}

// ListItems returns all list item nodes in document order.
// Do not mutate the returned slice.
func (rc *RuleContext) ListItems() []*mdast.Node {
	rc.cache.build(rc.Root)
	return rc.cache.listItems
}

// CodeBlocks returns all code block nodes in document order.
// Do not mutate the returned slice.
func (rc *RuleContext) CodeBlocks() []*mdast.Node {
	rc.cache.build(rc.Root)
	return rc.cache.codeBlocks
}

// EmphasisSpans returns all emphasis and strong nodes in document order.
// Do not mutate the returned slice.
func (rc *RuleContext) EmphasisSpans() []*mdast.Node {
	rc.cache.build(rc.Root)
	return rc.cache.emphasis
}

// nodeCache categorizes tree nodes by kind with a single walk, so rules
// sharing a RuleContext do not each re-walk the tree.
type nodeCache struct {
	headings   []*mdast.Node
	listItems  []*mdast.Node
	codeBlocks []*mdast.Node
	emphasis   []*mdast.Node

	built bool
}

func (nc *nodeCache) build(root *mdast.Node) {
	if nc.built || root == nil {
		return
	}

	_ = mdast.Walk(root, func(node *mdast.Node) error {
		switch node.Kind {
		case mdast.NodeHeading:
			nc.headings = append(nc.headings, node)
		case mdast.NodeListItem:
			nc.listItems = append(nc.listItems, node)
		case mdast.NodeCodeBlock:
			nc.codeBlocks = append(nc.codeBlocks, node)
		case mdast.NodeEmphasis, mdast.NodeStrong:
			nc.emphasis = append(nc.emphasis, node)
		}
		return nil
	})

	nc.built = true
}
