package lint

import (
	"context"
	"fmt"
	"sort"

	"github.com/lazypower/VoidReader-sub001/pkg/mdast"
)

// Parser parses Markdown content into a Snapshot.
//
// The lint package defines this interface as the consumer; the
// parser/goldmark package provides the concrete implementation.
// Implementations must be deterministic for a given (path, content) pair,
// side-effect free, and safe for concurrent use.
type Parser interface {
	Parse(ctx context.Context, path string, content []byte) (*mdast.Snapshot, error)
}

// FileResult contains the results of linting a single document.
type FileResult struct {
	// Snapshot is the parsed document.
	Snapshot *mdast.Snapshot

	// Warnings contains all issues found, sorted by (line, column) with
	// ties broken by rule registration order.
	Warnings []Warning

	// RuleErrors contains any internal errors from rule execution.
	RuleErrors map[string]error
}

// HasIssues returns true if any warnings were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Warnings) > 0
}

// Engine coordinates parsing and rule execution.
type Engine struct {
	// Parser parses Markdown sources into Snapshots.
	Parser Parser

	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates a new Engine with the given parser and registry.
func NewEngine(parser Parser, registry *Registry) *Engine {
	return &Engine{
		Parser:   parser,
		Registry: registry,
	}
}

// LintFile parses and lints a single document.
//
// enabled selects the rules to run by id: nil means every registered rule,
// an empty non-nil slice selects nothing, and unknown ids are silently
// ignored. Warnings are returned sorted; the engine performs no
// deduplication, so two rules may legitimately warn at the same position.
func (e *Engine) LintFile(
	ctx context.Context,
	path string,
	content []byte,
	enabled []string,
) (*FileResult, error) {
	snapshot, err := e.Parser.Parse(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	result := &FileResult{
		Snapshot:   snapshot,
		RuleErrors: make(map[string]error),
	}
	if err := runRules(ctx, e.Registry, snapshot, path, enabled, result); err != nil {
		return result, err
	}
	return result, nil
}

// Run lints an already parsed snapshot against the default registry
// and returns the sorted warnings. Rule errors are discarded; callers
// that need them use Engine.LintFile.
func Run(snapshot *mdast.Snapshot, enabled []string) []Warning {
	result := &FileResult{RuleErrors: make(map[string]error)}
	path := ""
	if snapshot != nil {
		path = snapshot.Path
	}
	_ = runRules(context.Background(), DefaultRegistry, snapshot, path, enabled, result)
	return result.Warnings
}

func runRules(
	ctx context.Context,
	registry *Registry,
	snapshot *mdast.Snapshot,
	path string,
	enabled []string,
	result *FileResult,
) error {
	var enabledSet map[string]struct{}
	if enabled != nil {
		enabledSet = make(map[string]struct{}, len(enabled))
		for _, id := range enabled {
			enabledSet[id] = struct{}{}
		}
	}

	ruleCtx := NewRuleContext(ctx, snapshot)

	// Run rules in registration order so the stable sort below breaks
	// position ties by the owning rule's registration order.
	for _, rule := range registry.Rules() {
		select {
		case <-ctx.Done():
			return fmt.Errorf("linting cancelled: %w", ctx.Err())
		default:
		}

		if enabledSet != nil {
			if _, ok := enabledSet[rule.ID()]; !ok {
				continue
			}
		}

		warnings, err := rule.Apply(ruleCtx)
		if err != nil {
			result.RuleErrors[rule.ID()] = err
			continue
		}

		for i := range warnings {
			if warnings[i].Path == "" {
				warnings[i].Path = path
			}
			if warnings[i].RuleName == "" {
				warnings[i].RuleName = rule.Name()
			}
		}

		result.Warnings = append(result.Warnings, warnings...)
	}

	sort.SliceStable(result.Warnings, func(i, j int) bool {
		if result.Warnings[i].Line != result.Warnings[j].Line {
			return result.Warnings[i].Line < result.Warnings[j].Line
		}
		return result.Warnings[i].Column < result.Warnings[j].Column
	})

	return nil
}
