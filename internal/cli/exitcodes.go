package cli

import (
	"errors"

	"github.com/lazypower/VoidReader-sub001/pkg/fsutil"
	"github.com/lazypower/VoidReader-sub001/pkg/runner"
)

// Exit codes for mdstyle.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitIssues indicates the run completed but found issues: lint
	// errors, or files needing reformatting under fmt --check.
	ExitIssues = 1

	// ExitWarnings indicates lint found warnings under strict mode.
	ExitWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeForError maps an error returned by command execution to a
// process exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrWarningsFound):
		return ExitWarnings
	case errors.Is(err, ErrIssuesFound):
		return ExitIssues
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfigLoad):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// ExitCodeFromResult determines the lint exit code from a result.
// Warnings only affect the code in strict mode.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}
	if result.Stats.WarningsBySeverity["error"] > 0 {
		return ExitIssues
	}
	if strict && result.Stats.WarningsBySeverity["warning"] > 0 {
		return ExitWarnings
	}
	return ExitSuccess
}
