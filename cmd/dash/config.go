package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dash-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default tuning YAML",
	Long: `Writes the built-in tuning file to stdout. Save it under
~/.arcade/configs/dash.yaml or pass an edited copy with --config.

Examples:
  dash config > ~/.arcade/configs/dash.yaml
  dash config > tuning.yaml && dash play dash --config tuning.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
	return err
}
