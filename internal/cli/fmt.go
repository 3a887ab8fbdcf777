package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lazypower/VoidReader-sub001/internal/logging"
	"github.com/lazypower/VoidReader-sub001/internal/ui/pretty"
	"github.com/lazypower/VoidReader-sub001/pkg/format"
	"github.com/lazypower/VoidReader-sub001/pkg/fsutil"
	"github.com/lazypower/VoidReader-sub001/pkg/runner"
)

type fmtFlags struct {
	write          bool
	check          bool
	listMarker     string
	emphasisMarker string
	ignore         []string
	jobs           int
}

const fmtLongDescription = `Format Markdown files into canonical style.

The formatter normalizes list and emphasis markers, strips trailing
punctuation from headings, trims trailing whitespace (preserving hard
line breaks), collapses blank-line runs, pads headings and fenced code
blocks with blank lines, and aligns pipe-table columns. Formatting is
idempotent: formatting an already formatted file changes nothing.

Without -w or --check, the formatted content of each file is printed
to stdout.

Examples:
  mdstyle fmt README.md          # Print formatted content
  mdstyle fmt -w docs/           # Rewrite files in place
  mdstyle fmt --check docs/      # Exit non-zero if formatting differs
  mdstyle fmt -w --list-marker '*' notes.md`

func newFmtCommand() *cobra.Command {
	flags := &fmtFlags{}

	cmd := &cobra.Command{
		Use:   "fmt [paths...]",
		Short: "Format Markdown files",
		Long:  fmtLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "rewrite files in place")
	cmd.Flags().BoolVar(&flags.check, "check", false, "report files that need formatting without writing")
	cmd.Flags().StringVar(&flags.listMarker, "list-marker", "", "unordered list marker: -, * or +")
	cmd.Flags().StringVar(&flags.emphasisMarker, "emphasis-marker", "", "emphasis marker: * or _")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")

	return cmd
}

func runFmt(cmd *cobra.Command, args []string, flags *fmtFlags) error {
	if flags.write && flags.check {
		return fmt.Errorf("%w: -w and --check are mutually exclusive", ErrUsage)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, workDir, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigLoad, err)
	}

	// CLI marker flags override the config file.
	fc := cfg.Format
	if flags.listMarker != "" {
		fc.ListMarker = flags.listMarker
	}
	if flags.emphasisMarker != "" {
		fc.EmphasisMarker = flags.emphasisMarker
	}
	fmtOpts, err := format.OptionsFromConfig(fc)
	if err != nil {
		return err
	}

	if !flags.write && !flags.check {
		return printFormatted(ctx, cmd, args, workDir, fmtOpts, flags)
	}

	mode := runner.ModeFormatCheck
	if flags.write {
		mode = runner.ModeFormatWrite
	}

	fmtRunner := runner.New(nil, fmtOpts)
	runOpts := runner.Options{
		Mode:         mode,
		Paths:        args,
		WorkingDir:   workDir,
		ExcludeGlobs: flags.ignore,
		Jobs:         flags.jobs,
	}

	logging.Default().Debug("starting format run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWrite, flags.write,
		logging.FieldCheck, flags.check,
		logging.FieldJobs, runOpts.Jobs,
	)

	start := time.Now()
	result, err := fmtRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("format run failed"), err)
	}
	logging.Default().Debug("format run complete",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesChanged, result.Stats.FilesChanged,
		logging.FieldFilesWritten, result.Stats.FilesWritten,
		logging.FieldFilesSkipped, result.Stats.FilesSkipped,
		logging.FieldElapsed, time.Since(start),
	)

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd), out))

	listed := false
	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(out, "%s: %s\n",
				styles.FilePath.Render(file.Path),
				styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			listed = true
			continue
		}
		if file.Changed {
			fmt.Fprintln(out, styles.FilePath.Render(file.Path))
			listed = true
		}
	}
	if listed {
		fmt.Fprint(out, styles.Divider(out))
	}
	fmt.Fprint(out, styles.FormatFormatSummary(result.Stats, flags.write))

	if result.Stats.FilesErrored > 0 {
		return ErrIssuesFound
	}
	if flags.check && result.HasChanges() {
		return ErrIssuesFound
	}
	return nil
}

// printFormatted runs the formatter over explicitly discovered files
// and writes the results to stdout, leaving the files untouched.
func printFormatted(ctx context.Context, cmd *cobra.Command, args []string, workDir string, opts format.Options, flags *fmtFlags) error {
	files, err := runner.Discover(ctx, runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		ExcludeGlobs: flags.ignore,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, path := range files {
		content, _, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			return err
		}
		fmt.Fprint(out, format.Format(string(content), opts))
	}
	return nil
}
