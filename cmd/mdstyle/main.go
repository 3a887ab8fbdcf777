// Package main is the entry point for the mdstyle CLI.
package main

import (
	"errors"
	"os"

	"github.com/lazypower/VoidReader-sub001/internal/cli"
	"github.com/lazypower/VoidReader-sub001/internal/logging"
)

// Build-time variables set via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// The issue/warning sentinels are exit-code signals, not
		// failures; everything else is worth a message.
		if !errors.Is(err, cli.ErrIssuesFound) && !errors.Is(err, cli.ErrWarningsFound) {
			logging.Default().Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCodeForError(err)
	}
	return cli.ExitSuccess
}
