package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lazypower/VoidReader-sub001/internal/logging"
	"github.com/lazypower/VoidReader-sub001/pkg/config"
	"github.com/lazypower/VoidReader-sub001/pkg/format"
	"github.com/lazypower/VoidReader-sub001/pkg/lint"
	_ "github.com/lazypower/VoidReader-sub001/pkg/lint/rules" // Register built-in rules
	goldmarkparser "github.com/lazypower/VoidReader-sub001/pkg/parser/goldmark"
	"github.com/lazypower/VoidReader-sub001/pkg/reporter"
	"github.com/lazypower/VoidReader-sub001/pkg/runner"
)

// Sentinel errors that signal a non-zero exit without an error
// message. ErrWarningsFound maps to ExitWarnings, everything else
// that reaches main maps to ExitIssues.
var (
	ErrIssuesFound   = errors.New("issues found")
	ErrWarningsFound = errors.New("warnings found")

	// ErrUsage marks invalid command-line usage; ErrConfigLoad marks
	// configuration file failures. Both select their exit codes.
	ErrUsage      = errors.New("invalid usage")
	ErrConfigLoad = errors.New("failed to load configuration")
)

type lintFlags struct {
	format    string
	ignore    []string
	enable    []string
	disable   []string
	jobs      int
	strict    bool
	noContext bool
	compact   bool
}

const lintLongDescription = `Lint Markdown files for style issues.

By default, lints all .md and .markdown files in the current directory
and subdirectories. Specify paths to lint specific files or directories.

Examples:
  mdstyle lint                   # Lint current directory
  mdstyle lint docs/             # Lint docs directory
  mdstyle lint README.md         # Lint single file
  mdstyle lint --enable MD009    # Run only selected rules
  mdstyle lint --format json     # Output as JSON for CI
  mdstyle lint --strict          # Treat warnings as errors`

func newLintCommand() *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint Markdown files",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs to disable")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")

	return cmd
}

func runLint(cmd *cobra.Command, args []string, flags *lintFlags) error {
	logger := logging.Default()

	outputFormat := reporter.Format(flags.format)
	if !outputFormat.IsValid() {
		return fmt.Errorf("%w: unsupported output format %q (want text or json)", ErrUsage, flags.format)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, workDir, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigLoad, err)
	}

	// CLI enable/disable flags override the config file lists.
	enable := cfg.Enable
	if len(flags.enable) > 0 {
		enable = flags.enable
	}
	disable := cfg.Disable
	if len(flags.disable) > 0 {
		disable = flags.disable
	}
	enabled := config.ResolveEnabled(lint.DefaultRegistry.IDs(), enable, disable)

	parser := goldmarkparser.New()
	engine := lint.NewEngine(parser, lint.DefaultRegistry)
	lintRunner := runner.New(engine, format.DefaultOptions())

	runOpts := runner.Options{
		Mode:         runner.ModeLint,
		Paths:        args,
		WorkingDir:   workDir,
		ExcludeGlobs: flags.ignore,
		Jobs:         flags.jobs,
		Enabled:      enabled,
	}

	logger.Debug("starting lint run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	start := time.Now()
	result, err := lintRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("lint run failed"), err)
	}
	logger.Debug("lint run complete",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesWithIssues, result.Stats.FilesWithIssues,
		logging.FieldWarningsTotal, result.Stats.WarningsTotal,
		logging.FieldElapsed, time.Since(start),
	)

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      outputFormat,
		Color:       colorMode(cmd),
		ShowContext: !flags.noContext,
		ShowSummary: true,
		Compact:     flags.compact,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	switch ExitCodeFromResult(result, flags.strict) {
	case ExitIssues:
		return ErrIssuesFound
	case ExitWarnings:
		return ErrWarningsFound
	}
	return nil
}
