package rules

import (
	"github.com/lazypower/VoidReader-sub001/pkg/lint"
)

// FenceBlankLinesRule checks for blank lines around fenced code blocks.
type FenceBlankLinesRule struct {
	lint.BaseRule
}

// NewFenceBlankLinesRule creates a new fence blank lines rule.
func NewFenceBlankLinesRule() *FenceBlankLinesRule {
	return &FenceBlankLinesRule{
		BaseRule: lint.NewBaseRule(
			"MD031",
			"blanks-around-fences",
			"Fenced code blocks should be surrounded by blank lines",
			[]string{"code", "blank_lines"},
			true,
		),
	}
}

// Apply checks that each fenced code block has a blank line before its
// opening fence and after its closing fence. The "before" warning is
// reported at the block's start line, the "after" warning at its end
// line. Indented code blocks are not checked.
func (r *FenceBlankLinesRule) Apply(ctx *lint.RuleContext) ([]lint.Warning, error) {
	if ctx.Root == nil || ctx.File == nil {
		return nil, nil
	}

	var warnings []lint.Warning

	for _, block := range ctx.CodeBlocks() {
		if ctx.Cancelled() {
			return warnings, ctx.Ctx.Err()
		}

		if !lint.IsFencedCodeBlock(block) {
			continue
		}

		pos := block.SourcePosition()
		if !pos.IsValid() {
			continue
		}

		if pos.StartLine > 1 && !lint.IsBlankLine(ctx.File, pos.StartLine-1) {
			warnings = append(warnings, lint.NewWarningAt(r.ID(), ctx.File.Path,
				pos.StartLine, 1, "Missing blank line before fenced code block"))
		}

		if pos.EndLine < ctx.File.LineCount() && !lint.IsBlankLine(ctx.File, pos.EndLine+1) {
			warnings = append(warnings, lint.NewWarningAt(r.ID(), ctx.File.Path,
				pos.EndLine, 1, "Missing blank line after fenced code block"))
		}
	}

	return warnings, nil
}
