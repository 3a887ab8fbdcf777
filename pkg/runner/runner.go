package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/lazypower/VoidReader-sub001/pkg/format"
	"github.com/lazypower/VoidReader-sub001/pkg/fsutil"
	"github.com/lazypower/VoidReader-sub001/pkg/lint"
)

// Runner processes many files through the lint engine or the
// formatter using a bounded worker pool.
type Runner struct {
	Engine *lint.Engine

	// Format holds the formatter options used by the format modes.
	Format format.Options
}

// New creates a Runner around an engine and formatter options.
func New(engine *lint.Engine, fmtOpts format.Options) *Runner {
	return &Runner{Engine: engine, Format: fmtOpts}
}

// Run discovers files under opts.Paths and processes them
// concurrently according to opts.Mode. Outcomes are returned in
// discovery (path) order regardless of which worker finished first.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := newResult(len(files))
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; index by path and rebuild in
	// discovery order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}
	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome, opts Options) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.processFile(ctx, path, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

func (r *Runner) processFile(ctx context.Context, path string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	switch opts.Mode {
	case ModeLint:
		fr, err := r.Engine.LintFile(ctx, path, content, opts.Enabled)
		if err != nil {
			outcome.Error = err
			return outcome
		}
		outcome.Lint = fr

	case ModeFormatCheck:
		outcome.Changed = format.WouldChange(string(content), r.Format)

	case ModeFormatWrite:
		formatted := format.Format(string(content), r.Format)
		if formatted == string(content) {
			return outcome
		}
		outcome.Changed = true

		// Refuse to clobber edits made since the read.
		modified, err := fsutil.CheckModified(ctx, info)
		if err != nil {
			outcome.Error = err
			return outcome
		}
		if modified {
			outcome.Skipped = true
			return outcome
		}

		if err := fsutil.WriteAtomic(ctx, path, []byte(formatted), info.Mode); err != nil {
			outcome.Error = err
			return outcome
		}
		outcome.Written = true
	}

	return outcome
}
