package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lazypower/VoidReader-sub001/internal/cli"
	"github.com/lazypower/VoidReader-sub001/pkg/fsutil"
	"github.com/lazypower/VoidReader-sub001/pkg/runner"
)

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}

	cmd := cli.NewRootCommand(info)

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}
	if cmd.Use != "mdstyle" {
		t.Errorf("expected Use to be 'mdstyle', got %q", cmd.Use)
	}
	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}
	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})

	expectedSubcommands := []string{"lint", "fmt", "rules", "version"}

	for _, name := range expectedSubcommands {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}
		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result *runner.Result
		strict bool
		want   int
	}{
		{
			name:   "nil result",
			result: nil,
			want:   cli.ExitSuccess,
		},
		{
			name:   "clean run",
			result: &runner.Result{},
			want:   cli.ExitSuccess,
		},
		{
			name: "warnings without strict",
			result: &runner.Result{
				Stats: runner.Stats{WarningsBySeverity: map[string]int{"warning": 3}},
			},
			want: cli.ExitSuccess,
		},
		{
			name: "warnings with strict",
			result: &runner.Result{
				Stats: runner.Stats{WarningsBySeverity: map[string]int{"warning": 3}},
			},
			strict: true,
			want:   cli.ExitWarnings,
		},
		{
			name: "errors",
			result: &runner.Result{
				Stats: runner.Stats{WarningsBySeverity: map[string]int{"error": 1, "warning": 2}},
			},
			want: cli.ExitIssues,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := cli.ExitCodeFromResult(tt.result, tt.strict)
			if got != tt.want {
				t.Errorf("ExitCodeFromResult() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitSuccess},
		{"issues", cli.ErrIssuesFound, cli.ExitIssues},
		{"warnings", cli.ErrWarningsFound, cli.ExitWarnings},
		{"usage", cli.ErrUsage, cli.ExitInvalidUsage},
		{"config", cli.ErrConfigLoad, cli.ExitConfigError},
		{"io", fsutil.ErrNotFound, cli.ExitIOError},
		{"other", errors.New("boom"), cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := cli.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLintCommand_JSONOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	content := "# One\n### Three\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	var out bytes.Buffer
	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"lint", "--format", "json", "--color", "never", path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var output struct {
		Files []struct {
			Path     string `json:"path"`
			Warnings []struct {
				RuleID string `json:"ruleId"`
				Line   int    `json:"line"`
			} `json:"warnings"`
		} `json:"files"`
		Summary struct {
			TotalIssues int `json:"totalIssues"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(out.Bytes(), &output); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out.String())
	}

	if len(output.Files) != 1 {
		t.Fatalf("expected 1 file in output, got %d", len(output.Files))
	}
	if output.Summary.TotalIssues == 0 {
		t.Error("expected issues for a heading level jump")
	}

	found := false
	for _, w := range output.Files[0].Warnings {
		if w.RuleID == "MD001" && w.Line == 2 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an MD001 warning at line 2, got %+v", output.Files[0].Warnings)
	}
}

func TestLintCommand_StrictExit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(path, []byte("# One\n### Three\n"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	var out bytes.Buffer
	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"lint", "--strict", "--color", "never", path})

	err := cmd.Execute()
	if !errors.Is(err, cli.ErrWarningsFound) {
		t.Errorf("Execute() error = %v, want ErrWarningsFound", err)
	}
}

func TestLintCommand_InvalidFormat(t *testing.T) {
	var out bytes.Buffer
	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"lint", "--format", "xml"})

	if err := cmd.Execute(); err == nil {
		t.Error("expected an error for an unsupported output format")
	}
}

func TestFmtCommand_WriteAndCheckExclusive(t *testing.T) {
	var out bytes.Buffer
	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"fmt", "-w", "--check", "."})

	if err := cmd.Execute(); err == nil {
		t.Error("expected an error when -w and --check are combined")
	}
}

func TestFmtCommand_PrintsFormatted(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(path, []byte("# Title.\n"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	var out bytes.Buffer
	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"fmt", path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if out.String() != "# Title\n" {
		t.Errorf("stdout = %q, want %q", out.String(), "# Title\n")
	}

	// The source file is untouched.
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(content) != "# Title.\n" {
		t.Errorf("file content = %q, want original", content)
	}
}

func TestFmtCommand_Check(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(path, []byte("# Title."), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	var out bytes.Buffer
	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"fmt", "--check", "--color", "never", path})

	err := cmd.Execute()
	if !errors.Is(err, cli.ErrIssuesFound) {
		t.Errorf("Execute() error = %v, want ErrIssuesFound", err)
	}
	if !bytes.Contains(out.Bytes(), []byte("would be reformatted")) {
		t.Errorf("output missing check summary: %q", out.String())
	}
}

func TestFmtCommand_Write(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(path, []byte("# Title.\n\n\ntext\n"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	var out bytes.Buffer
	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"fmt", "-w", "--color", "never", path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(content) != "# Title\n\ntext\n" {
		t.Errorf("file content = %q, want formatted", content)
	}
}

func TestRulesCommand_JSON(t *testing.T) {
	var out bytes.Buffer
	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"rules", "--format", "json"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var rules []struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Fixable bool   `json:"fixable"`
	}
	if err := json.Unmarshal(out.Bytes(), &rules); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out.String())
	}
	if len(rules) != 8 {
		t.Errorf("expected 8 built-in rules, got %d", len(rules))
	}

	for _, r := range rules {
		if r.ID == "MD001" && r.Fixable {
			t.Error("heading-increment must not be marked fixable")
		}
	}
}
