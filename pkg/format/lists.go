package format

import "regexp"

// listMarkerPattern matches an unordered list marker at line start:
// optional leading whitespace, one marker character, one or more
// spaces. The required trailing space distinguishes a marker from a
// horizontal rule (--- or ***), which has no space after the first
// character.
var listMarkerPattern = regexp.MustCompile(`^([ \t]*)[-*+]( +)`)

// normalizeListMarkers rewrites every unordered list marker to the
// canonical marker in place, preserving the exact leading whitespace
// and trailing spaces so indentation-based nesting is untouched.
func normalizeListMarkers(lines []string, marker byte) {
	replacement := "${1}" + string(marker) + "${2}"
	for i, line := range lines {
		lines[i] = listMarkerPattern.ReplaceAllString(line, replacement)
	}
}
