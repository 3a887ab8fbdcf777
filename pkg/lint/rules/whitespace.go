package rules

import (
	"fmt"

	"github.com/lazypower/VoidReader-sub001/pkg/lint"
)

// TrailingWhitespaceRule checks for trailing whitespace on lines.
type TrailingWhitespaceRule struct {
	lint.BaseRule
}

// NewTrailingWhitespaceRule creates a new trailing whitespace rule.
func NewTrailingWhitespaceRule() *TrailingWhitespaceRule {
	return &TrailingWhitespaceRule{
		BaseRule: lint.NewBaseRule(
			"MD009",
			"no-trailing-spaces",
			"Lines should not have trailing whitespace",
			[]string{"whitespace"},
			true,
		),
	}
}

// Apply warns on every line with trailing whitespace, except the
// two-space hard line break convention.
func (r *TrailingWhitespaceRule) Apply(ctx *lint.RuleContext) ([]lint.Warning, error) {
	if ctx.File == nil {
		return nil, nil
	}

	var warnings []lint.Warning

	for lineNum := 1; lineNum <= ctx.File.LineCount(); lineNum++ {
		if ctx.Cancelled() {
			return warnings, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		line := ctx.File.LineContent(lineNum)
		run := lint.TrailingWhitespaceRun(line)
		if run == 0 || lint.IsHardBreak(line) {
			continue
		}

		warnings = append(warnings, lint.NewWarningAt(r.ID(), ctx.File.Path,
			lineNum, len(line)-run+1, "Trailing whitespace"))
	}

	return warnings, nil
}

// MultipleBlankLinesRule checks for runs of consecutive blank lines.
type MultipleBlankLinesRule struct {
	lint.BaseRule
}

// NewMultipleBlankLinesRule creates a new multiple blank lines rule.
func NewMultipleBlankLinesRule() *MultipleBlankLinesRule {
	return &MultipleBlankLinesRule{
		BaseRule: lint.NewBaseRule(
			"MD012",
			"no-multiple-blanks",
			"Multiple consecutive blank lines",
			[]string{"whitespace", "blank_lines"},
			true,
		),
	}
}

// Apply emits one warning per run of more than one blank line, at the
// run's first line. A run still open at end of document is also checked.
func (r *MultipleBlankLinesRule) Apply(ctx *lint.RuleContext) ([]lint.Warning, error) {
	if ctx.File == nil {
		return nil, nil
	}

	var warnings []lint.Warning
	runStart := 0
	runLen := 0

	flush := func() {
		if runLen > 1 {
			warnings = append(warnings, lint.NewWarningAt(r.ID(), ctx.File.Path,
				runStart, 1,
				fmt.Sprintf("%d consecutive blank lines", runLen)))
		}
		runLen = 0
	}

	for lineNum := 1; lineNum <= ctx.File.LineCount(); lineNum++ {
		if ctx.Cancelled() {
			return warnings, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		if lint.IsBlankLine(ctx.File, lineNum) {
			if runLen == 0 {
				runStart = lineNum
			}
			runLen++
			continue
		}
		flush()
	}
	flush()

	return warnings, nil
}
