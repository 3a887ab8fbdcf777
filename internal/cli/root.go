// Package cli provides the Cobra command structure for mdstyle.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/lazypower/VoidReader-sub001/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdstyle command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdstyle",
		Short: "A Markdown style checker and formatter",
		Long: `mdstyle checks Markdown documents against a set of internally
consistent style rules and rewrites them into canonical form.

The lint command reports style violations with precise positions; the
fmt command applies an ordered pipeline of formatting passes, including
pipe-table column alignment, and is idempotent by construction.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newLintCommand())
	rootCmd.AddCommand(newFmtCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
