package pretty

import (
	"fmt"
	"strings"

	"github.com/lazypower/VoidReader-sub001/pkg/config"
	"github.com/lazypower/VoidReader-sub001/pkg/lint"
)

// FormatWarning formats a single lint warning for terminal output.
// The sourceLine, when non-empty, is rendered beneath the warning
// with a caret marking the column.
func (s *Styles) FormatWarning(w *lint.Warning, sourceLine string) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(w.Path),
		w.Line,
		w.Column,
	)

	ruleDisplay := s.RuleID.Render("(" + w.RuleID + ")")

	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		s.FormatSeverity(w.Severity),
		s.Message.Render(w.Message),
		ruleDisplay,
	))

	if sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, w.Column))
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	default:
		return string(sev)
	}
}

// FormatSourceContext formats the source line with a caret marker.
func (s *Styles) FormatSourceContext(line string, column int) string {
	const indent = "        "

	var builder strings.Builder
	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")
	if column > 0 {
		builder.WriteString(indent + strings.Repeat(" ", column-1) + s.Caret.Render("^") + "\n")
	}
	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount > 0 {
		word := "issues"
		if issueCount == 1 {
			word = "issue"
		}
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", issueCount, word))
	}
	return header
}
