package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/lazypower/VoidReader-sub001/internal/ui/pretty"
	"github.com/lazypower/VoidReader-sub001/pkg/runner"
)

// TextReporter formats results as styled terminal output, warnings
// grouped by file.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var total int
	for _, file := range result.Files {
		select {
		case <-ctx.Done():
			return total, fmt.Errorf("report cancelled: %w", ctx.Err())
		default:
		}

		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(file.Path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}
		if file.Lint == nil || len(file.Lint.Warnings) == 0 {
			continue
		}

		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(file.Path, len(file.Lint.Warnings)))
		for i := range file.Lint.Warnings {
			w := &file.Lint.Warnings[i]

			var sourceLine string
			if r.opts.ShowContext && file.Lint.Snapshot != nil {
				sourceLine = file.Lint.Snapshot.LineContent(w.Line)
			}
			fmt.Fprint(r.bw, r.styles.FormatWarning(w, sourceLine))
			total++
		}
		fmt.Fprintln(r.bw)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatLintSummary(result.Stats))
	}
	return total, nil
}
