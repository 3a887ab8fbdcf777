// Package runner orchestrates linting and formatting across many
// files: discovery, a bounded worker pool, and deterministic result
// aggregation.
package runner

// Mode selects what the runner does with each discovered file.
type Mode int

const (
	// ModeLint parses and lints each file, collecting warnings.
	ModeLint Mode = iota

	// ModeFormatCheck reports which files the formatter would rewrite
	// without touching anything on disk.
	ModeFormatCheck

	// ModeFormatWrite rewrites files in place, atomically.
	ModeFormatWrite
)

// Options controls a single runner invocation.
type Options struct {
	// Mode selects lint, format --check, or format -w behavior.
	Mode Mode

	// Paths are the user-specified files or directories to process.
	// Empty defaults to the current working directory.
	Paths []string

	// WorkingDir resolves relative Paths. Empty means the process
	// working directory.
	WorkingDir string

	// Extensions lists the file extensions (lowercase, leading dot)
	// treated as Markdown during directory walks. Empty means
	// DefaultExtensions. Files named explicitly on the command line
	// bypass this filter via content detection.
	Extensions []string

	// ExcludeGlobs skips matching files and directories, relative to
	// WorkingDir.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs bounds the worker pool. Zero or negative means one worker
	// per CPU.
	Jobs int

	// Enabled restricts linting to these rule ids. Nil means every
	// registered rule; empty non-nil means none.
	Enabled []string
}

// DefaultExtensions returns the extensions walked directories are
// filtered by.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
