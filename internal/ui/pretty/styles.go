// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains the styled renderers for CLI output.
type Styles struct {
	// Severity styles
	Error   lipgloss.Style
	Warning lipgloss.Style

	// Warning components
	FilePath   lipgloss.Style
	Location   lipgloss.Style
	RuleID     lipgloss.Style
	Message    lipgloss.Style
	SourceLine lipgloss.Style
	Caret      lipgloss.Style

	// Summary styles
	Success lipgloss.Style
	Failure lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a Styles set for the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return &Styles{
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		FilePath:   lipgloss.NewStyle().Bold(true),
		Location:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		RuleID:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Message:    lipgloss.NewStyle(),
		SourceLine: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Caret:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Success:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:       lipgloss.NewStyle().Bold(true),
	}
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Error:      plain,
		Warning:    plain,
		FilePath:   plain,
		Location:   plain,
		RuleID:     plain,
		Message:    plain,
		SourceLine: plain,
		Caret:      plain,
		Success:    plain,
		Failure:    plain,
		Dim:        plain,
		Bold:       plain,
	}
}

// IsColorEnabled determines whether color output should be used.
// Mode values: "auto" (default), "always", "never". In auto mode,
// color is enabled only when the writer is a TTY and NO_COLOR is
// unset (https://no-color.org/).
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
