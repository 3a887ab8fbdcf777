package logging_test

import (
	"context"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/lazypower/VoidReader-sub001/internal/logging"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		level    string
		expected log.Level
	}{
		{"debug level", "debug", log.DebugLevel},
		{"info level", "info", log.InfoLevel},
		{"warn level", "warn", log.WarnLevel},
		{"warning level", "warning", log.WarnLevel},
		{"error level", "error", log.ErrorLevel},
		{"invalid defaults to info", "invalid", log.InfoLevel},
		{"empty defaults to info", "", log.InfoLevel},
		{"case insensitive DEBUG", "DEBUG", log.DebugLevel},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			logger := logging.New(testCase.level)
			if logger == nil {
				t.Fatal("New returned nil logger")
			}
			if logger.GetLevel() != testCase.expected {
				t.Errorf("expected level %v, got %v", testCase.expected, logger.GetLevel())
			}
		})
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	first := logging.Default()
	second := logging.Default()

	if first == nil {
		t.Fatal("Default returned nil logger")
	}
	if first != second {
		t.Error("Default should return the same logger instance")
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("nil context returns default", func(t *testing.T) {
		t.Parallel()

		//nolint:staticcheck // Testing nil context handling explicitly
		logger := logging.FromContext(nil)
		if logger != logging.Default() {
			t.Error("expected the default logger")
		}
	})

	t.Run("bare context returns default", func(t *testing.T) {
		t.Parallel()

		logger := logging.FromContext(context.Background())
		if logger != logging.Default() {
			t.Error("expected the default logger")
		}
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		custom := logging.New("debug")
		ctx := logging.WithLogger(context.Background(), custom)

		if logging.FromContext(ctx) != custom {
			t.Error("expected the attached logger")
		}
	})
}
