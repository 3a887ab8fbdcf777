package reporter

import (
	"io"
	"os"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Format identifies an output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// IsValid reports whether the format is supported.
func (f Format) IsValid() bool {
	return f == FormatText || f == FormatJSON
}

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format selects the output format.
	Format Format

	// Color controls colorized output: "auto", "always", "never".
	Color string

	// ShowContext includes source line context beneath each warning.
	ShowContext bool

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// Compact minifies JSON output.
	Compact bool
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       "auto",
		ShowContext: true,
		ShowSummary: true,
	}
}
