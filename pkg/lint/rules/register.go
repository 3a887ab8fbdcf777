package rules

import "github.com/lazypower/VoidReader-sub001/pkg/lint"

// RegisterAll registers the built-in rule catalogue with the given
// registry. Registration order is the tie-break for warnings at the same
// position, so the order here is stable and deliberate.
func RegisterAll(registry *lint.Registry) {
	// Heading rules
	registry.Register(NewHeadingIncrementRule())      // MD001
	registry.Register(NewHeadingBlankLinesRule())     // MD022
	registry.Register(NewNoTrailingPunctuationRule()) // MD026

	// List rules
	registry.Register(NewUnorderedListStyleRule()) // MD004

	// Whitespace rules
	registry.Register(NewTrailingWhitespaceRule()) // MD009
	registry.Register(NewMultipleBlankLinesRule()) // MD012

	// Code block rules
	registry.Register(NewFenceBlankLinesRule()) // MD031

	// Emphasis rules
	registry.Register(NewEmphasisStyleRule()) // MD049
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
}
