package runner

import "github.com/lazypower/VoidReader-sub001/pkg/lint"

// FileOutcome is the per-file result of a run.
type FileOutcome struct {
	// Path is the absolute path that was processed.
	Path string

	// Lint holds the lint result. Only set in ModeLint.
	Lint *lint.FileResult

	// Changed reports whether the formatter produced different text.
	// Set in the format modes.
	Changed bool

	// Written reports whether the file was rewritten on disk.
	Written bool

	// Skipped is set when a rewrite was abandoned because the file
	// changed on disk between read and write.
	Skipped bool

	// Error is set if the file could not be processed at all.
	Error error
}

// Stats aggregates a run.
type Stats struct {
	FilesDiscovered    int
	FilesProcessed     int
	FilesErrored       int
	FilesSkipped       int
	FilesWithIssues    int
	FilesChanged       int
	FilesWritten       int
	WarningsTotal      int
	WarningsBySeverity map[string]int
}

// Result is the overall outcome of a run. Files are ordered by path
// regardless of worker completion order.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasIssues reports whether any lint warnings were found.
func (r *Result) HasIssues() bool {
	return r != nil && r.Stats.WarningsTotal > 0
}

// HasFailures reports whether any error-severity warnings were found.
func (r *Result) HasFailures() bool {
	return r != nil && r.Stats.WarningsBySeverity["error"] > 0
}

// HasChanges reports whether the formatter found or wrote any
// differing files.
func (r *Result) HasChanges() bool {
	return r != nil && r.Stats.FilesChanged > 0
}

func newResult(capacity int) *Result {
	return &Result{
		Files: make([]FileOutcome, 0, capacity),
		Stats: Stats{WarningsBySeverity: make(map[string]int)},
	}
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	r.Stats.FilesProcessed++

	if outcome.Skipped {
		r.Stats.FilesSkipped++
	}
	if outcome.Changed {
		r.Stats.FilesChanged++
	}
	if outcome.Written {
		r.Stats.FilesWritten++
	}

	if outcome.Lint == nil {
		return
	}
	if len(outcome.Lint.Warnings) > 0 {
		r.Stats.FilesWithIssues++
	}
	r.Stats.WarningsTotal += len(outcome.Lint.Warnings)
	for _, w := range outcome.Lint.Warnings {
		severity := string(w.Severity)
		if severity == "" {
			severity = "warning"
		}
		r.Stats.WarningsBySeverity[severity]++
	}
}
