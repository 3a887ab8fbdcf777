package format

import "strings"

// normalizeEmphasis converts emphasis and strong delimiters to the
// canonical marker, line by line. Strong (double-delimiter) spans are
// converted before emphasis (single-delimiter) spans: an italic
// pattern applied first would wrongly split a bold delimiter pair.
func normalizeEmphasis(lines []string, marker byte) {
	var from byte = '_'
	if marker == '_' {
		from = '*'
	}
	if from == marker {
		return
	}
	for i, line := range lines {
		if strings.IndexByte(line, from) < 0 {
			continue
		}
		line = convertStrong(line, from, marker)
		line = convertEmphasis(line, from, marker)
		lines[i] = line
	}
}

// convertStrong rewrites ffXff spans to ttXtt, where X is non-empty
// and contains no delimiter character. An opener whose span cannot be
// closed that way is emitted verbatim, both characters at once, so a
// triple delimiter (***X***) is never partially converted.
func convertStrong(line string, from, to byte) string {
	var b strings.Builder
	b.Grow(len(line))
	i := 0
	for i < len(line) {
		if line[i] != from || i+1 >= len(line) || line[i+1] != from {
			b.WriteByte(line[i])
			i++
			continue
		}
		// Content runs from the opener to the first delimiter byte,
		// which must start a matching double closer.
		j := i + 2
		for j < len(line) && line[j] != from {
			j++
		}
		if j > i+2 && j+1 < len(line) && line[j+1] == from {
			b.WriteByte(to)
			b.WriteByte(to)
			b.WriteString(line[i+2 : j])
			b.WriteByte(to)
			b.WriteByte(to)
			i = j + 2
			continue
		}
		b.WriteByte(from)
		b.WriteByte(from)
		i += 2
	}
	return b.String()
}

// convertEmphasis rewrites single-delimiter fXf spans to tXt. The
// adjacency checks require both delimiters to stand alone, so a
// surviving double delimiter is never matched as two italics.
func convertEmphasis(line string, from, to byte) string {
	var b strings.Builder
	b.Grow(len(line))
	i := 0
	for i < len(line) {
		if line[i] != from {
			b.WriteByte(line[i])
			i++
			continue
		}
		lone := (i == 0 || line[i-1] != from) && i+1 < len(line) && line[i+1] != from
		if !lone {
			b.WriteByte(from)
			i++
			continue
		}
		j := i + 1
		for j < len(line) && line[j] != from {
			j++
		}
		if j < len(line) && (j+1 >= len(line) || line[j+1] != from) {
			b.WriteByte(to)
			b.WriteString(line[i+1 : j])
			b.WriteByte(to)
			i = j + 1
			continue
		}
		b.WriteByte(from)
		i++
	}
	return b.String()
}
