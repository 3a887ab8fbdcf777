package lint_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lazypower/VoidReader-sub001/pkg/lint"
	"github.com/lazypower/VoidReader-sub001/pkg/mdast"
)

// mockParser implements lint.Parser for testing.
type mockParser struct {
	parseFunc func(ctx context.Context, path string, content []byte) (*mdast.Snapshot, error)
}

func (p *mockParser) Parse(ctx context.Context, path string, content []byte) (*mdast.Snapshot, error) {
	if p.parseFunc != nil {
		return p.parseFunc(ctx, path, content)
	}
	// Default: return a minimal snapshot with an empty document.
	snapshot := mdast.NewSnapshot(path, content)
	snapshot.Root = mdast.NewNode(mdast.NodeDocument)
	return snapshot, nil
}

// warningRule is a test rule that returns a fixed set of warnings.
type warningRule struct {
	lint.BaseRule
	warnings []lint.Warning
	err      error
}

func (r *warningRule) Apply(_ *lint.RuleContext) ([]lint.Warning, error) {
	return r.warnings, r.err
}

func newWarningRule(id string, warnings ...lint.Warning) *warningRule {
	return &warningRule{
		BaseRule: lint.NewBaseRule(id, "test-"+id, "test rule", nil, false),
		warnings: warnings,
	}
}

func TestNewEngine(t *testing.T) {
	t.Parallel()

	parser := &mockParser{}
	registry := lint.NewRegistry()

	engine := lint.NewEngine(parser, registry)

	if engine.Parser != parser {
		t.Error("Parser mismatch")
	}
	if engine.Registry != registry {
		t.Error("Registry mismatch")
	}
}

func TestEngine_LintFile_Basic(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newWarningRule("T001",
		lint.NewWarningAt("T001", "", 1, 1, "problem"),
	))
	engine := lint.NewEngine(&mockParser{}, registry)

	result, err := engine.LintFile(context.Background(), "test.md", []byte("# Hello"), nil)
	if err != nil {
		t.Fatalf("LintFile: %v", err)
	}

	if len(result.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(result.Warnings))
	}
	if !result.HasIssues() {
		t.Error("HasIssues should be true")
	}

	w := result.Warnings[0]
	if w.Path != "test.md" {
		t.Errorf("Path = %q, want %q", w.Path, "test.md")
	}
	if w.RuleName != "test-T001" {
		t.Errorf("RuleName = %q, want %q", w.RuleName, "test-T001")
	}
}

func TestEngine_LintFile_EnabledSelection(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newWarningRule("T001", lint.NewWarningAt("T001", "", 1, 1, "a")))
	registry.Register(newWarningRule("T002", lint.NewWarningAt("T002", "", 2, 1, "b")))
	engine := lint.NewEngine(&mockParser{}, registry)

	tests := []struct {
		name    string
		enabled []string
		wantIDs []string
	}{
		{
			name:    "nil runs all rules",
			enabled: nil,
			wantIDs: []string{"T001", "T002"},
		},
		{
			name:    "empty non-nil runs nothing",
			enabled: []string{},
			wantIDs: nil,
		},
		{
			name:    "subset",
			enabled: []string{"T002"},
			wantIDs: []string{"T002"},
		},
		{
			name:    "unknown ids ignored",
			enabled: []string{"T001", "MD999", "bogus"},
			wantIDs: []string{"T001"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := engine.LintFile(context.Background(), "test.md", []byte("text"), tt.enabled)
			if err != nil {
				t.Fatalf("LintFile: %v", err)
			}

			var gotIDs []string
			for _, w := range result.Warnings {
				gotIDs = append(gotIDs, w.RuleID)
			}

			if len(gotIDs) != len(tt.wantIDs) {
				t.Fatalf("rule ids = %v, want %v", gotIDs, tt.wantIDs)
			}
			for i := range gotIDs {
				if gotIDs[i] != tt.wantIDs[i] {
					t.Errorf("rule ids = %v, want %v", gotIDs, tt.wantIDs)
				}
			}
		})
	}
}

func TestEngine_LintFile_WarningOrder(t *testing.T) {
	t.Parallel()

	// Register rules out of positional order so the sort has work to do.
	// TA and TB both warn at 3:1; TB registered first wins the tie.
	registry := lint.NewRegistry()
	registry.Register(newWarningRule("TB",
		lint.NewWarningAt("TB", "", 3, 1, "tie, registered first"),
		lint.NewWarningAt("TB", "", 1, 5, "later column"),
	))
	registry.Register(newWarningRule("TA",
		lint.NewWarningAt("TA", "", 3, 1, "tie, registered second"),
		lint.NewWarningAt("TA", "", 1, 2, "earlier column"),
	))
	engine := lint.NewEngine(&mockParser{}, registry)

	result, err := engine.LintFile(context.Background(), "test.md", []byte("text"), nil)
	if err != nil {
		t.Fatalf("LintFile: %v", err)
	}

	want := []struct {
		ruleID string
		line   int
		column int
	}{
		{"TA", 1, 2},
		{"TB", 1, 5},
		{"TB", 3, 1},
		{"TA", 3, 1},
	}

	if len(result.Warnings) != len(want) {
		t.Fatalf("expected %d warnings, got %d", len(want), len(result.Warnings))
	}
	for i, w := range result.Warnings {
		if w.RuleID != want[i].ruleID || w.Line != want[i].line || w.Column != want[i].column {
			t.Errorf("warning %d = %s at %d:%d, want %s at %d:%d",
				i, w.RuleID, w.Line, w.Column, want[i].ruleID, want[i].line, want[i].column)
		}
	}
}

func TestEngine_LintFile_RuleErrorIsolation(t *testing.T) {
	t.Parallel()

	ruleErr := errors.New("internal failure")

	registry := lint.NewRegistry()
	registry.Register(&warningRule{
		BaseRule: lint.NewBaseRule("TERR", "test-err", "failing rule", nil, false),
		err:      ruleErr,
	})
	registry.Register(newWarningRule("TOK", lint.NewWarningAt("TOK", "", 1, 1, "still ran")))
	engine := lint.NewEngine(&mockParser{}, registry)

	result, err := engine.LintFile(context.Background(), "test.md", []byte("text"), nil)
	if err != nil {
		t.Fatalf("LintFile: %v", err)
	}

	if len(result.Warnings) != 1 || result.Warnings[0].RuleID != "TOK" {
		t.Errorf("expected the healthy rule's warning, got %v", result.Warnings)
	}
	if !errors.Is(result.RuleErrors["TERR"], ruleErr) {
		t.Errorf("RuleErrors[TERR] = %v, want %v", result.RuleErrors["TERR"], ruleErr)
	}
}

func TestEngine_LintFile_ParseError(t *testing.T) {
	t.Parallel()

	parseErr := errors.New("bad input")
	parser := &mockParser{
		parseFunc: func(_ context.Context, _ string, _ []byte) (*mdast.Snapshot, error) {
			return nil, parseErr
		},
	}
	engine := lint.NewEngine(parser, lint.NewRegistry())

	result, err := engine.LintFile(context.Background(), "test.md", []byte("text"), nil)
	if !errors.Is(err, parseErr) {
		t.Errorf("err = %v, want wrapped %v", err, parseErr)
	}
	if result != nil {
		t.Error("result should be nil on parse failure")
	}
}

func TestEngine_LintFile_Cancellation(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newWarningRule("T001"))
	engine := lint.NewEngine(&mockParser{}, registry)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.LintFile(ctx, "test.md", []byte("text"), nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
