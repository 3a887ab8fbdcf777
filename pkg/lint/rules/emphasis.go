package rules

import (
	"fmt"

	"github.com/lazypower/VoidReader-sub001/pkg/lint"
)

// EmphasisStyleRule enforces consistent emphasis markers across both
// emphasis (single-delimiter) and strong (double-delimiter) spans.
type EmphasisStyleRule struct {
	lint.BaseRule
}

// NewEmphasisStyleRule creates a new emphasis style rule.
func NewEmphasisStyleRule() *EmphasisStyleRule {
	return &EmphasisStyleRule{
		BaseRule: lint.NewBaseRule(
			"MD049",
			"emphasis-style",
			"Emphasis markers should be consistent",
			[]string{"emphasis", "style"},
			true,
		),
	}
}

// Apply reads the delimiter character at each span's recorded start
// position. The first '*' or '_' observed sets the expected style; later
// spans with the other marker warn at their exact position. Characters
// that are neither marker (e.g. from spans the parser widened oddly) are
// ignored rather than guessed at.
func (r *EmphasisStyleRule) Apply(ctx *lint.RuleContext) ([]lint.Warning, error) {
	if ctx.Root == nil || ctx.File == nil {
		return nil, nil
	}

	var warnings []lint.Warning
	var expected byte

	for _, span := range ctx.EmphasisSpans() {
		if ctx.Cancelled() {
			return warnings, ctx.Ctx.Err()
		}

		if span.Span.IsZero() || span.Span.StartOffset >= len(ctx.File.Source) {
			continue
		}

		marker := ctx.File.Source[span.Span.StartOffset]
		if marker != '*' && marker != '_' {
			continue
		}

		if expected == 0 {
			expected = marker
			continue
		}

		if marker != expected {
			pos := span.SourcePosition()
			warnings = append(warnings, lint.NewWarningAt(r.ID(), ctx.File.Path,
				pos.StartLine, pos.StartColumn,
				fmt.Sprintf("Emphasis marker %q does not match expected style %q", marker, expected)))
		}
	}

	return warnings, nil
}
