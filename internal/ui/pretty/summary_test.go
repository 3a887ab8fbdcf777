package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lazypower/VoidReader-sub001/internal/ui/pretty"
	"github.com/lazypower/VoidReader-sub001/pkg/runner"
)

func TestFormatLintSummary(t *testing.T) {
	styles := pretty.NewStyles(false)

	t.Run("no issues", func(t *testing.T) {
		stats := runner.Stats{FilesProcessed: 4}

		out := styles.FormatLintSummary(stats)
		assert.Contains(t, out, "No issues found")
		assert.Contains(t, out, "4 files checked")
	})

	t.Run("mixed severities", func(t *testing.T) {
		stats := runner.Stats{
			FilesProcessed:     3,
			FilesWithIssues:    2,
			WarningsTotal:      3,
			WarningsBySeverity: map[string]int{"error": 1, "warning": 2},
		}

		out := styles.FormatLintSummary(stats)
		assert.Contains(t, out, "3 issues")
		assert.Contains(t, out, "1 error")
		assert.Contains(t, out, "2 warnings")
	})

	t.Run("singular issue", func(t *testing.T) {
		stats := runner.Stats{
			FilesProcessed:     1,
			FilesWithIssues:    1,
			WarningsTotal:      1,
			WarningsBySeverity: map[string]int{"warning": 1},
		}

		out := styles.FormatLintSummary(stats)
		assert.Contains(t, out, "1 issue")
		assert.NotContains(t, out, "1 issues")
	})
}

func TestFormatFormatSummary(t *testing.T) {
	styles := pretty.NewStyles(false)

	t.Run("nothing to do", func(t *testing.T) {
		out := styles.FormatFormatSummary(runner.Stats{FilesProcessed: 2}, false)
		assert.Contains(t, out, "already formatted")
	})

	t.Run("check mode", func(t *testing.T) {
		stats := runner.Stats{FilesProcessed: 3, FilesChanged: 2}
		out := styles.FormatFormatSummary(stats, false)
		assert.Contains(t, out, "2 files would be reformatted")
	})

	t.Run("write mode", func(t *testing.T) {
		stats := runner.Stats{FilesProcessed: 3, FilesChanged: 2, FilesWritten: 2}
		out := styles.FormatFormatSummary(stats, true)
		assert.Contains(t, out, "Reformatted 2 files")
	})

	t.Run("write mode with skips", func(t *testing.T) {
		stats := runner.Stats{FilesProcessed: 3, FilesChanged: 2, FilesWritten: 1, FilesSkipped: 1}
		out := styles.FormatFormatSummary(stats, true)
		assert.Contains(t, out, "1 skipped")
	})
}
