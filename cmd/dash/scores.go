package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dash-arcade/internal/registry"
	"github.com/vovakirdan/dash-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresRun   string
)

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show the best runs for a variant",
	Long: `Display the best runs and run statistics for the specified variant.

Examples:
  dash scores dash
  dash scores dash_boss --limit 20
  dash scores dash --clear
  dash scores --run 3f2a9c1e-...`,
	Args: func(cmd *cobra.Command, args []string) error {
		if flagScoresRun != "" {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded run of the variant")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show a single run by its id")
}

func runScores(cmd *cobra.Command, args []string) {
	if flagScoresRun != "" {
		showRun(flagScoresRun)
		return
	}

	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'dash list' to see available variants.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}

	if flagScoresClear {
		err := store.ClearRuns(gameID)
		store.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all runs for %s.\n", game.Title())
		return
	}

	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
	stats, statsErr := store.GetGameStats(gameID)
	store.Close()

	fmt.Printf("Best Runs - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'dash play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-10s  %-4s  %s\n", "Rank", "Score", "Outcome", "Boss", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %-4s  %s\n", "----", "-----", "-------", "----", "----")

	for i, r := range runs {
		boss := "-"
		if r.BossReached {
			boss = "yes"
		}
		fmt.Printf("  %-4d  %-8d  %-10s  %-4s  %s\n",
			i+1, r.Score, strings.ReplaceAll(r.Outcome, "_", " "), boss,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if statsErr == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Victories: %d  Boss reached: %d  Average: %.0f\n",
			stats.HighScore, stats.Runs, stats.Victories, stats.BossReached, stats.AvgScore)
	}
}

func showRun(runID string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	run, err := store.RunByID(runID)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		os.Exit(1)
	}
	if run == nil {
		fmt.Fprintf(os.Stderr, "Error: no run with id %q\n", runID)
		os.Exit(1)
	}

	writeRunDetail(os.Stdout, *run)
}

// writeRunDetail prints one run as aligned key/value lines.
func writeRunDetail(w io.Writer, r storage.Run) {
	boss := "no"
	if r.BossReached {
		boss = "yes"
	}
	fmt.Fprintf(w, "Run      %s\n", r.RunID)
	fmt.Fprintf(w, "Variant  %s\n", r.GameID)
	fmt.Fprintf(w, "Session  %s\n", r.SessionID)
	fmt.Fprintf(w, "Score    %d\n", r.Score)
	fmt.Fprintf(w, "Outcome  %s\n", strings.ReplaceAll(r.Outcome, "_", " "))
	fmt.Fprintf(w, "Boss     %s\n", boss)
	fmt.Fprintf(w, "Ticks    %d\n", r.Ticks)
	fmt.Fprintf(w, "Date     %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
}
