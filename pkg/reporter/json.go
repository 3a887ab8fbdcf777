package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/lazypower/VoidReader-sub001/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path     string        `json:"path"`
	Warnings []JSONWarning `json:"warnings"`
	Error    string        `json:"error,omitempty"`
}

// JSONWarning represents a single lint warning.
type JSONWarning struct {
	RuleID   string `json:"ruleId"`
	RuleName string `json:"ruleName"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int            `json:"filesChecked"`
	FilesWithIssues int            `json:"filesWithIssues"`
	FilesErrored    int            `json:"filesErrored"`
	TotalIssues     int            `json:"totalIssues"`
	BySeverity      map[string]int `json:"bySeverity"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := buildJSONOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}
	return output.Summary.TotalIssues, nil
}

func buildJSONOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{BySeverity: make(map[string]int)},
	}
	if result == nil {
		return output
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:     file.Path,
			Warnings: make([]JSONWarning, 0),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
			output.Summary.FilesErrored++
		}

		if file.Lint != nil {
			for _, w := range file.Lint.Warnings {
				severity := string(w.Severity)
				if severity == "" {
					severity = "warning"
				}
				fileResult.Warnings = append(fileResult.Warnings, JSONWarning{
					RuleID:   w.RuleID,
					RuleName: w.RuleName,
					Severity: severity,
					Message:  w.Message,
					Line:     w.Line,
					Column:   w.Column,
				})
				output.Summary.TotalIssues++
				output.Summary.BySeverity[severity]++
			}
		}

		if len(fileResult.Warnings) > 0 {
			output.Summary.FilesWithIssues++
		}
		output.Files = append(output.Files, fileResult)
		output.Summary.FilesChecked++
	}
	return output
}
