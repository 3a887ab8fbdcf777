package logging

// Field name constants for structured logging. Constants prevent
// typos across call sites.
const (
	FieldError      = "error"
	FieldPaths      = "paths"
	FieldConfig     = "config"
	FieldWorkingDir = "working_dir"

	FieldJobs    = "jobs"
	FieldWrite   = "write"
	FieldCheck   = "check"
	FieldElapsed = "elapsed"

	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesChanged    = "files_changed"
	FieldFilesWritten    = "files_written"
	FieldFilesSkipped    = "files_skipped"
	FieldFilesWithIssues = "files_with_issues"
	FieldWarningsTotal   = "warnings_total"

	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	FieldName        = "name"
	FieldFixable     = "fixable"
	FieldDescription = "description"
)
