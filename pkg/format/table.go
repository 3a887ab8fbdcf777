package format

import (
	"strings"
	"unicode/utf8"
)

// separatorWidth is the column width a separator cell contributes: the
// minimum rendered separator is three dashes, so data cells only widen
// a column beyond that.
const separatorWidth = 3

// alignTables reflows pipe-table column widths in place. A table is a
// maximal run of at least two consecutive lines that each contain a
// pipe and do not open a code fence. Runs the aligner cannot parse
// into columns are left unmodified.
func alignTables(lines []string) {
	start := -1
	for i := 0; i <= len(lines); i++ {
		if i < len(lines) && isTableLine(lines[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 && i-start >= 2 {
			alignRun(lines[start:i])
		}
		start = -1
	}
}

func isTableLine(line string) bool {
	if !strings.Contains(line, "|") {
		return false
	}
	return fenceToken(strings.TrimSpace(line)) == ""
}

// rowCells parses a table line into trimmed cell contents: trim the
// line, drop one optional leading and one optional trailing pipe,
// split on the remaining pipes.
func rowCells(line string) []string {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")
	if trimmed == "" {
		return nil
	}
	cells := strings.Split(trimmed, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

// isSeparatorRow reports whether every cell consists solely of dashes
// and alignment colons.
func isSeparatorRow(cells []string) bool {
	for _, cell := range cells {
		if cell == "" {
			return false
		}
		if strings.Trim(cell, "-:") != "" {
			return false
		}
	}
	return len(cells) > 0
}

func alignRun(run []string) {
	rows := make([][]string, len(run))
	separator := make([]bool, len(run))
	cols := 0
	for i, line := range run {
		rows[i] = rowCells(line)
		separator[i] = isSeparatorRow(rows[i])
		cols = max(cols, len(rows[i]))
	}
	if cols == 0 {
		return
	}

	// Column width is the longest cell in the column; a separator row
	// contributes a fixed minimum for every column. Short rows count
	// as empty cells.
	widths := make([]int, cols)
	for i, cells := range rows {
		for c := 0; c < cols; c++ {
			w := 0
			if separator[i] {
				w = separatorWidth
			} else if c < len(cells) {
				w = utf8.RuneCountInString(cells[c])
			}
			widths[c] = max(widths[c], w)
		}
	}

	for i, cells := range rows {
		fields := make([]string, cols)
		for c := 0; c < cols; c++ {
			cell := ""
			if c < len(cells) {
				cell = cells[c]
			}
			if separator[i] {
				fields[c] = separatorField(cell, widths[c])
			} else {
				fields[c] = cell + strings.Repeat(" ", widths[c]-utf8.RuneCountInString(cell))
			}
		}
		run[i] = "| " + strings.Join(fields, " | ") + " |"
	}
}

// separatorField renders a separator cell at the given width. The
// alignment colons overlay the dash run rather than extending it, so
// the field width stays identical across alignments.
func separatorField(cell string, width int) string {
	field := strings.Repeat("-", width)
	if strings.HasPrefix(cell, ":") {
		field = ":" + field[1:]
	}
	if strings.HasSuffix(cell, ":") {
		field = field[:width-1] + ":"
	}
	return field
}
