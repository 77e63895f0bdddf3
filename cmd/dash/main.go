// dash is a terminal side-scrolling reflex platformer.
//
// Usage:
//
//	dash list              - List available variants
//	dash play <variant>    - Play a variant directly
//	dash menu              - Start menu to pick variants interactively
//	dash serve             - Start SSH server for remote play
//	dash scores <variant>  - Show the best runs for a variant
//	dash config            - Print the default tuning YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.arcade/dash.db)
//	--config <path>       - Load a tuning YAML over the built-in defaults
//	--log <path>          - Write the event log to a file
//	--log-level <level>   - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dash-arcade/internal/config"
	"github.com/vovakirdan/dash-arcade/internal/games/dash"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dash",
	Short: "Dash - a reflex platformer in your terminal",
	Long: `Dash is a side-scrolling reflex platformer for the terminal.

Jump over spikes, bounce off orbs and land on platforms while the
world scrolls past. In Boss Run the obstacles stop after a while and
a boss takes the stage: stomp it ten times to win.

Available commands:
  list     - Show all variants
  play     - Play a specific variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View the best runs
  config   - Print the default tuning YAML

Examples:
  dash list
  dash play dash
  dash play dash_boss --seed 42
  dash menu --config ./tuning.yaml
  dash serve --ssh :2222
  dash scores dash_boss
  dash config > ~/.arcade/configs/dash.yaml`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return checkGlobalFlags()
	},
}

// checkGlobalFlags validates the persistent flags and loads the tuning once
// so a bad --config fails before any screen is drawn.
func checkGlobalFlags() error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, err := config.LoadDash(flagConfig); err != nil {
		return err
	}
	dash.SetConfigPath(flagConfig)
	return nil
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/dash.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log", "", "Write the event log to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
