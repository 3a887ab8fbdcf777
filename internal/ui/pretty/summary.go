package pretty

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/lazypower/VoidReader-sub001/pkg/runner"
)

const (
	defaultTermWidth = 80
	maxDividerWidth  = 40
)

// FormatLintSummary formats run statistics as a single line, e.g.
// "3 issues (1 error, 2 warnings) in 2 files".
func (s *Styles) FormatLintSummary(stats runner.Stats) string {
	if stats.WarningsTotal == 0 {
		return s.Success.Render("No issues found") +
			s.Dim.Render(fmt.Sprintf(" (%d files checked)", stats.FilesProcessed)) + "\n"
	}

	issueWord := "issues"
	if stats.WarningsTotal == 1 {
		issueWord = "issue"
	}

	var severityParts []string
	if errors := stats.WarningsBySeverity["error"]; errors > 0 {
		word := "errors"
		if errors == 1 {
			word = "error"
		}
		severityParts = append(severityParts, s.Error.Render(fmt.Sprintf("%d %s", errors, word)))
	}
	if warnings := stats.WarningsBySeverity["warning"]; warnings > 0 {
		word := "warnings"
		if warnings == 1 {
			word = "warning"
		}
		severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d %s", warnings, word)))
	}

	head := fmt.Sprintf("%d %s", stats.WarningsTotal, issueWord)
	if len(severityParts) > 0 {
		head += " (" + strings.Join(severityParts, ", ") + ")"
	}

	fileWord := "files"
	if stats.FilesWithIssues == 1 {
		fileWord = "file"
	}
	return fmt.Sprintf("%s in %d %s\n", head, stats.FilesWithIssues, fileWord)
}

// FormatFormatSummary formats the outcome of a format run.
func (s *Styles) FormatFormatSummary(stats runner.Stats, wrote bool) string {
	if stats.FilesChanged == 0 {
		return s.Success.Render("All files already formatted") +
			s.Dim.Render(fmt.Sprintf(" (%d files checked)", stats.FilesProcessed)) + "\n"
	}

	fileWord := "files"
	if stats.FilesChanged == 1 {
		fileWord = "file"
	}

	var line string
	if wrote {
		line = s.Success.Render(fmt.Sprintf("Reformatted %d %s", stats.FilesWritten, fileWord))
		if stats.FilesSkipped > 0 {
			line += s.Warning.Render(fmt.Sprintf(", %d skipped (modified during run)", stats.FilesSkipped))
		}
	} else {
		line = s.Failure.Render(fmt.Sprintf("%d %s would be reformatted", stats.FilesChanged, fileWord))
	}
	return line + "\n"
}

// Divider renders a horizontal rule sized to the writer's terminal,
// capped so wide terminals do not produce a full-width line.
func (s *Styles) Divider(writer io.Writer) string {
	width := terminalWidth(writer)
	if width > maxDividerWidth {
		width = maxDividerWidth
	}
	return s.Dim.Render(strings.Repeat("-", width)) + "\n"
}

func terminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
