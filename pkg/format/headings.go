package format

import "strings"

// trailingPunctuation is the set stripped from heading ends. A
// question mark is deliberately not in the set.
const trailingPunctuation = ".,;:!"

// stripHeadingPunctuation removes trailing punctuation from ATX
// heading lines in place. Spaces exposed by the removal are stripped
// too, so a rewritten heading never ends with dangling whitespace.
func stripHeadingPunctuation(lines []string) {
	for i, line := range lines {
		if !isHeadingLine(line) {
			continue
		}
		stripped := strings.TrimRight(line, trailingPunctuation)
		if stripped == line {
			continue
		}
		lines[i] = strings.TrimRight(stripped, " ")
	}
}

// padHeadings ensures exactly one blank line immediately before and
// after every ATX heading, except at the document boundaries.
func padHeadings(lines []string) []string {
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if !isHeadingLine(line) {
			out = append(out, line)
			continue
		}
		if len(out) > 0 && !isBlank(out[len(out)-1]) {
			out = append(out, "")
		}
		out = append(out, line)
		if i+1 < len(lines) && !isBlank(lines[i+1]) {
			out = append(out, "")
		}
	}
	return out
}
