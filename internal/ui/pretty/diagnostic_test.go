package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lazypower/VoidReader-sub001/internal/ui/pretty"
	"github.com/lazypower/VoidReader-sub001/pkg/config"
	"github.com/lazypower/VoidReader-sub001/pkg/lint"
)

func TestFormatWarning_Basic(t *testing.T) {
	styles := pretty.NewStyles(false) // No colors for easier testing

	w := &lint.Warning{
		RuleID:   "MD001",
		Message:  "Heading level jumped from 1 to 3",
		Severity: config.SeverityWarning,
		Path:     "test.md",
		Line:     10,
		Column:   1,
	}

	result := styles.FormatWarning(w, "")

	assert.Contains(t, result, "test.md:10:1")
	assert.Contains(t, result, "warning")
	assert.Contains(t, result, "Heading level jumped from 1 to 3")
	assert.Contains(t, result, "(MD001)")
}

func TestFormatWarning_WithContext(t *testing.T) {
	styles := pretty.NewStyles(false)

	w := &lint.Warning{
		RuleID:   "MD026",
		Message:  "trailing punctuation",
		Severity: config.SeverityWarning,
		Path:     "test.md",
		Line:     5,
		Column:   3,
	}

	result := styles.FormatWarning(w, "## Heading.")

	assert.Contains(t, result, "## Heading.")
	// The caret lands under column 3.
	caretLine := ""
	for _, line := range strings.Split(result, "\n") {
		if strings.Contains(line, "^") {
			caretLine = line
		}
	}
	assert.True(t, strings.HasSuffix(caretLine, "  ^"), "caret line = %q", caretLine)
}

func TestFormatSeverity(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t, "error", styles.FormatSeverity(config.SeverityError))
	assert.Equal(t, "warning", styles.FormatSeverity(config.SeverityWarning))
}

func TestFormatFileHeader(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t, "docs/a.md (1 issue)", styles.FormatFileHeader("docs/a.md", 1))
	assert.Equal(t, "docs/a.md (3 issues)", styles.FormatFileHeader("docs/a.md", 3))
	assert.Equal(t, "docs/a.md", styles.FormatFileHeader("docs/a.md", 0))
}
