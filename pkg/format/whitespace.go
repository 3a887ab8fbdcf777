package format

import "strings"

// trimTrailingWhitespace strips trailing spaces and tabs from every
// line in place. A line ending in exactly two trailing spaces is a
// hard line break and is left untouched; any other trailing run,
// including three or more spaces, is removed entirely.
func trimTrailingWhitespace(lines []string) {
	for i, line := range lines {
		trimmed := strings.TrimRight(line, " \t")
		run := len(line) - len(trimmed)
		if run == 0 {
			continue
		}
		if run == 2 && strings.HasSuffix(line, "  ") {
			continue
		}
		lines[i] = trimmed
	}
}

// collapseBlankLines suppresses every blank line that immediately
// follows another blank line. The first blank line of a run is kept
// as-is, whitespace included.
func collapseBlankLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	prevBlank := false
	for _, line := range lines {
		blank := isBlank(line)
		if blank && prevBlank {
			continue
		}
		out = append(out, line)
		prevBlank = blank
	}
	return out
}
