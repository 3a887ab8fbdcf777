package format

import (
	"fmt"
	"strings"

	"github.com/lazypower/VoidReader-sub001/pkg/config"
)

// Options configures the formatter pipeline. The zero value is not
// useful; start from DefaultOptions or OptionsFromConfig.
type Options struct {
	// ListMarker is the canonical unordered list marker: '-', '*' or '+'.
	ListMarker byte

	// EmphasisMarker is the canonical emphasis delimiter: '*' or '_'.
	EmphasisMarker byte

	// EnsureTrailingNewline appends a final newline to non-empty output.
	EnsureTrailingNewline bool

	// CollapseBlankLines collapses runs of 2+ blank lines to exactly 1.
	CollapseBlankLines bool

	// TrimTrailingWhitespace strips trailing whitespace from lines,
	// preserving two-space hard line breaks.
	TrimTrailingWhitespace bool
}

// DefaultOptions returns the canonical house style.
func DefaultOptions() Options {
	return Options{
		ListMarker:             '-',
		EmphasisMarker:         '*',
		EnsureTrailingNewline:  true,
		CollapseBlankLines:     true,
		TrimTrailingWhitespace: true,
	}
}

// Validate checks the marker enum values. Invalid markers are a
// construction-time error, never a runtime failure of Format.
func (o Options) Validate() error {
	if !strings.ContainsRune("-*+", rune(o.ListMarker)) {
		return fmt.Errorf("invalid list marker %q: must be one of - * +", o.ListMarker)
	}
	if o.EmphasisMarker != '*' && o.EmphasisMarker != '_' {
		return fmt.Errorf("invalid emphasis marker %q: must be * or _", o.EmphasisMarker)
	}
	return nil
}

// OptionsFromConfig builds Options from the YAML config representation,
// applying defaults for unset fields and validating marker values.
func OptionsFromConfig(fc config.FormatConfig) (Options, error) {
	opts := DefaultOptions()

	if fc.ListMarker != "" {
		if len(fc.ListMarker) != 1 {
			return opts, fmt.Errorf("invalid list marker %q: must be one of - * +", fc.ListMarker)
		}
		opts.ListMarker = fc.ListMarker[0]
	}
	if fc.EmphasisMarker != "" {
		if len(fc.EmphasisMarker) != 1 {
			return opts, fmt.Errorf("invalid emphasis marker %q: must be * or _", fc.EmphasisMarker)
		}
		opts.EmphasisMarker = fc.EmphasisMarker[0]
	}
	if fc.EnsureTrailingNewline != nil {
		opts.EnsureTrailingNewline = *fc.EnsureTrailingNewline
	}
	if fc.CollapseBlankLines != nil {
		opts.CollapseBlankLines = *fc.CollapseBlankLines
	}
	if fc.TrimTrailingWhitespace != nil {
		opts.TrimTrailingWhitespace = *fc.TrimTrailingWhitespace
	}

	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}
