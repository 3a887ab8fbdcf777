// Package lint provides the rule engine, warnings, and registry for the
// Markdown style checker.
package lint

import (
	"github.com/lazypower/VoidReader-sub001/pkg/config"
	"github.com/lazypower/VoidReader-sub001/pkg/mdast"
)

// Warning represents a single style violation found in a document.
type Warning struct {
	// RuleID is the identifier of the rule that produced this warning.
	RuleID string

	// RuleName is the human-readable name of the rule (e.g., "no-trailing-spaces").
	RuleName string

	// Message is the human-readable description of the issue.
	Message string

	// Severity indicates the importance of the warning.
	Severity config.Severity

	// Path is the path to the file containing the issue.
	Path string

	// Line is the 1-based line number where the issue starts.
	Line int

	// Column is the 1-based column number where the issue starts.
	Column int
}

// Rule defines the interface that all lint rules implement. The rule set
// is a closed catalogue constructed once at startup; rules are pure
// functions of the parsed snapshot and produce warnings without mutating
// anything.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "MD001").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// Tags returns categorization tags for this rule (e.g., ["headings"]).
	Tags() []string

	// CanFix reports whether a formatter pass eliminates this rule's
	// violations. Heading-increment violations are intentionally not
	// fixable: the correct target level is ambiguous.
	CanFix() bool

	// Apply executes the rule against the given context and returns
	// warnings. Rules return an error only for internal failures, never
	// for violations.
	Apply(ctx *RuleContext) ([]Warning, error)
}

// NewWarning constructs a warning positioned at a node's start.
func NewWarning(ruleID string, node *mdast.Node, message string) Warning {
	w := Warning{
		RuleID:   ruleID,
		Message:  message,
		Severity: config.SeverityWarning,
	}
	if node != nil {
		pos := node.SourcePosition()
		w.Line = pos.StartLine
		w.Column = pos.StartColumn
		if node.File != nil {
			w.Path = node.File.Path
		}
	}
	return w
}

// NewWarningAt constructs a warning at an explicit line/column position.
func NewWarningAt(ruleID, path string, line, column int, message string) Warning {
	return Warning{
		RuleID:   ruleID,
		Message:  message,
		Severity: config.SeverityWarning,
		Path:     path,
		Line:     line,
		Column:   column,
	}
}
