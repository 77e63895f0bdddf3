package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dash-arcade/internal/games/dash"
	"github.com/vovakirdan/dash-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available variants",
	Long:  `Shows a list of all registered game variants.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-16s  %-4s  %s\n", maxIDLen, "ID", "Title", "Boss", "Description")
	fmt.Printf("  %-*s  %-16s  %-4s  %s\n", maxIDLen, "--", "-----", "----", "-----------")

	for _, g := range games {
		boss := "no"
		if v, ok := dash.LookupVariant(g.ID); ok && v.BossEnabled {
			boss = "yes"
		}
		fmt.Printf("  %-*s  %-16s  %-4s  %s\n", maxIDLen, g.ID, g.Title, boss, g.Summary)
	}

	fmt.Println()
	fmt.Println("Run 'dash play <id>' to play a variant.")
}
