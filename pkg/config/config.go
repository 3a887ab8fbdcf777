// Package config defines configuration types for the style checker.
// These are pure data structures; YAML loading lives alongside in yaml.go.
package config

import "slices"

// Severity represents the severity level of a lint warning.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Config is the root configuration structure, typically loaded from a
// .mdstyle.yaml file and overridden by CLI flags.
type Config struct {
	// Enable restricts linting to the listed rule ids. Empty means all
	// rules run.
	Enable []string `yaml:"enable"`

	// Disable removes rule ids from the enabled set.
	Disable []string `yaml:"disable"`

	// Format holds formatter options.
	Format FormatConfig `yaml:"format"`
}

// FormatConfig is the YAML representation of formatter options. Pointer
// fields distinguish "unset" from an explicit false.
type FormatConfig struct {
	ListMarker             string `yaml:"list_marker"`
	EmphasisMarker         string `yaml:"emphasis_marker"`
	EnsureTrailingNewline  *bool  `yaml:"ensure_trailing_newline"`
	CollapseBlankLines     *bool  `yaml:"collapse_blank_lines"`
	TrimTrailingWhitespace *bool  `yaml:"trim_trailing_whitespace"`
}

// Default returns a configuration with all rules enabled and default
// formatter options.
func Default() *Config {
	return &Config{}
}

// ResolveEnabled computes the effective enabled-rule set from the full
// catalogue and the enable/disable lists. A nil return means "all rules";
// unknown ids in either list are silently ignored.
func ResolveEnabled(all, enable, disable []string) []string {
	if len(enable) == 0 && len(disable) == 0 {
		return nil
	}

	base := all
	if len(enable) > 0 {
		base = enable
	}

	var enabled []string
	for _, id := range base {
		if slices.Contains(disable, id) {
			continue
		}
		if slices.Contains(all, id) {
			enabled = append(enabled, id)
		}
	}

	// A fully-filtered set must stay non-nil: nil means "all enabled".
	if enabled == nil {
		enabled = []string{}
	}
	return enabled
}
