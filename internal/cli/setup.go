package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lazypower/VoidReader-sub001/internal/logging"
	"github.com/lazypower/VoidReader-sub001/pkg/config"
)

// loadConfig resolves the effective configuration for a command: the
// --config flag if given, otherwise the nearest .mdstyle.yaml found
// walking up from the working directory, otherwise defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	cfg, loadedFrom, err := config.Load(configPath, workDir)
	if err != nil {
		return nil, "", err
	}
	if loadedFrom != "" {
		logging.Default().Debug("loaded configuration", logging.FieldConfig, loadedFrom)
	}
	return cfg, workDir, nil
}

// colorMode reads the persistent --color flag, defaulting to auto.
func colorMode(cmd *cobra.Command) string {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		return "auto"
	}
	return mode
}
