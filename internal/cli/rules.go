package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lazypower/VoidReader-sub001/internal/logging"
	"github.com/lazypower/VoidReader-sub001/pkg/lint"
	_ "github.com/lazypower/VoidReader-sub001/pkg/lint/rules" // Register built-in rules
)

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Fixable     bool   `json:"fixable"`
}

func newRulesCommand() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available lint rules",
		Long: `List all available lint rules with their IDs, descriptions,
and whether the formatter can eliminate the violation.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules := lint.DefaultRegistry.Rules()

			if outputFormat == formatJSON {
				return outputRulesJSON(cmd.OutOrStdout(), rules)
			}

			logger := logging.NewInteractive()
			logger.Info("available rules")
			for _, rule := range rules {
				fixable := "-"
				if rule.CanFix() {
					fixable = "yes"
				}
				logger.Info(rule.ID(),
					logging.FieldName, rule.Name(),
					logging.FieldFixable, fixable,
					logging.FieldDescription, rule.Description(),
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outputFormat, "format", "text", "output format: text, json")

	return cmd
}

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(w io.Writer, rules []lint.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Fixable:     rule.CanFix(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
