// Package reporter formats lint results for humans and machines.
package reporter

import (
	"context"
	"fmt"

	"github.com/lazypower/VoidReader-sub001/pkg/runner"
)

// Reporter formats and writes lint results.
type Reporter interface {
	// Report writes formatted output for the given result. It returns
	// the number of issues reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}
	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
