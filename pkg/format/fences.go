package format

import "strings"

// padFencedBlocks ensures exactly one blank line immediately before
// and after every fenced code block, except at the document
// boundaries. A block's closing line is the next line whose trimmed
// content starts with the same fence token that opened it; when no
// closer exists the fence is unterminated and the remainder of the
// document is left untouched.
func padFencedBlocks(lines []string) []string {
	out := make([]string, 0, len(lines))
	i := 0
	for i < len(lines) {
		token := fenceToken(strings.TrimSpace(lines[i]))
		if token == "" {
			out = append(out, lines[i])
			i++
			continue
		}

		closer := -1
		for j := i + 1; j < len(lines); j++ {
			if strings.HasPrefix(strings.TrimSpace(lines[j]), token) {
				closer = j
				break
			}
		}
		if closer < 0 {
			out = append(out, lines[i:]...)
			return out
		}

		if len(out) > 0 && !isBlank(out[len(out)-1]) {
			out = append(out, "")
		}
		out = append(out, lines[i:closer+1]...)
		if closer+1 < len(lines) && !isBlank(lines[closer+1]) {
			out = append(out, "")
		}
		i = closer + 1
	}
	return out
}
