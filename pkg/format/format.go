// Package format implements the Markdown formatter: a pure, ordered
// pipeline of text-level passes that rewrite a whole document. The
// pass order is load-bearing; later passes assume the normalized state
// left by earlier ones. Every pass degrades gracefully on input it
// cannot confidently transform, leaving that region untouched.
package format

import "strings"

// Format rewrites text according to opts. It is deterministic and
// idempotent: Format(Format(text)) == Format(text) for fixed options.
func Format(text string, opts Options) string {
	lines := strings.Split(text, "\n")

	normalizeListMarkers(lines, opts.ListMarker)
	normalizeEmphasis(lines, opts.EmphasisMarker)
	stripHeadingPunctuation(lines)
	if opts.TrimTrailingWhitespace {
		trimTrailingWhitespace(lines)
	}
	if opts.CollapseBlankLines {
		lines = collapseBlankLines(lines)
	}
	lines = padFencedBlocks(lines)
	lines = padHeadings(lines)
	alignTables(lines)

	out := strings.Join(lines, "\n")
	if opts.EnsureTrailingNewline && out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}

// WouldChange reports whether Format would rewrite text. It is the
// check behind "needs reformatting" without mutating anything.
func WouldChange(text string, opts Options) bool {
	return Format(text, opts) != text
}

// isBlank reports whether a line has no non-whitespace content.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// isHeadingLine reports whether a line is an ATX heading: one to six '#'
// characters followed by whitespace or end of line. Seven or more hashes,
// or a hash run glued to text, is ordinary content.
func isHeadingLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	hashes := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
	if hashes < 1 || hashes > 6 {
		return false
	}
	rest := trimmed[hashes:]
	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}

// fenceToken returns the code-fence token opening trimmed, or "" if
// the line does not start a fence. Matching closers must use the same
// token: a ~~~ fence is not closed by ```.
func fenceToken(trimmed string) string {
	if strings.HasPrefix(trimmed, "```") {
		return "```"
	}
	if strings.HasPrefix(trimmed, "~~~") {
		return "~~~"
	}
	return ""
}
