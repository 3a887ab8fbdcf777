package rules

import (
	"fmt"
	"strings"

	"github.com/lazypower/VoidReader-sub001/pkg/lint"
	"github.com/lazypower/VoidReader-sub001/pkg/mdast"
)

// headingTrailingPunctuation is the set of characters MD026 rejects at
// the end of a heading. Question marks are deliberately allowed.
const headingTrailingPunctuation = ".,;:!"

// HeadingIncrementRule checks that heading levels increment by one.
type HeadingIncrementRule struct {
	lint.BaseRule
}

// NewHeadingIncrementRule creates a new heading increment rule.
func NewHeadingIncrementRule() *HeadingIncrementRule {
	return &HeadingIncrementRule{
		BaseRule: lint.NewBaseRule(
			"MD001",
			"heading-increment",
			"Heading levels should only increment by one level at a time",
			[]string{"headings"},
			false,
		),
	}
}

// Apply checks that heading levels increment by at most one. Only
// headings that are direct children of the document are tracked, so a
// heading nested in a blockquote does not reset the sequence. The first
// heading may be any level.
func (r *HeadingIncrementRule) Apply(ctx *lint.RuleContext) ([]lint.Warning, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	var warnings []lint.Warning
	var prevLevel int

	for child := ctx.Root.FirstChild; child != nil; child = child.Next {
		if ctx.Cancelled() {
			return warnings, ctx.Ctx.Err()
		}

		if child.Kind != mdast.NodeHeading {
			continue
		}

		level := lint.HeadingLevel(child)
		if level == 0 {
			continue
		}

		if prevLevel > 0 && level > prevLevel+1 {
			pos := child.SourcePosition()
			warnings = append(warnings, lint.NewWarningAt(r.ID(), ctx.File.Path,
				pos.StartLine, 1,
				fmt.Sprintf("Heading level jumped from %d to %d", prevLevel, level)))
		}

		prevLevel = level
	}

	return warnings, nil
}

// HeadingBlankLinesRule checks for blank lines around headings.
type HeadingBlankLinesRule struct {
	lint.BaseRule
}

// NewHeadingBlankLinesRule creates a new heading blank lines rule.
func NewHeadingBlankLinesRule() *HeadingBlankLinesRule {
	return &HeadingBlankLinesRule{
		BaseRule: lint.NewBaseRule(
			"MD022",
			"blanks-around-headings",
			"Headings should be surrounded by blank lines",
			[]string{"headings", "blank_lines"},
			true,
		),
	}
}

// Apply checks that each heading has a blank line before and after it.
// Both warnings are reported at the heading's start line, not at the
// adjacent line.
func (r *HeadingBlankLinesRule) Apply(ctx *lint.RuleContext) ([]lint.Warning, error) {
	if ctx.Root == nil || ctx.File == nil {
		return nil, nil
	}

	var warnings []lint.Warning

	for _, heading := range ctx.Headings() {
		if ctx.Cancelled() {
			return warnings, ctx.Ctx.Err()
		}

		pos := heading.SourcePosition()
		if !pos.IsValid() {
			continue
		}

		if pos.StartLine > 1 && !lint.IsBlankLine(ctx.File, pos.StartLine-1) {
			warnings = append(warnings, lint.NewWarningAt(r.ID(), ctx.File.Path,
				pos.StartLine, 1, "Missing blank line before heading"))
		}

		if pos.EndLine < ctx.File.LineCount() && !lint.IsBlankLine(ctx.File, pos.EndLine+1) {
			warnings = append(warnings, lint.NewWarningAt(r.ID(), ctx.File.Path,
				pos.StartLine, 1, "Missing blank line after heading"))
		}
	}

	return warnings, nil
}

// NoTrailingPunctuationRule checks for trailing punctuation in headings.
type NoTrailingPunctuationRule struct {
	lint.BaseRule
}

// NewNoTrailingPunctuationRule creates a new trailing punctuation rule.
func NewNoTrailingPunctuationRule() *NoTrailingPunctuationRule {
	return &NoTrailingPunctuationRule{
		BaseRule: lint.NewBaseRule(
			"MD026",
			"no-trailing-punctuation",
			"Headings should not end with punctuation",
			[]string{"headings"},
			true,
		),
	}
}

// Apply checks each heading's rendered plain text for trailing
// punctuation.
func (r *NoTrailingPunctuationRule) Apply(ctx *lint.RuleContext) ([]lint.Warning, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	var warnings []lint.Warning

	for _, heading := range ctx.Headings() {
		if ctx.Cancelled() {
			return warnings, ctx.Ctx.Err()
		}

		text := strings.TrimSpace(heading.PlainText())
		if text == "" {
			continue
		}

		runes := []rune(text)
		last := runes[len(runes)-1]
		if !strings.ContainsRune(headingTrailingPunctuation, last) {
			continue
		}

		warnings = append(warnings, lint.NewWarning(r.ID(), heading,
			fmt.Sprintf("Trailing punctuation %q in heading", last)))
	}

	return warnings, nil
}
