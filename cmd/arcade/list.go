package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt-arcade/internal/registry"
	"github.com/vovakirdan/tilt-arcade/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Play counts are best effort; a missing database just hides the column.
	played := playCounts()

	// Print header
	fmt.Printf("  %-*s  %-24s  %-6s  %s\n", maxIDLen, "ID", "Title", "Played", "About")
	fmt.Printf("  %-*s  %-24s  %-6s  %s\n", maxIDLen, "--", "-----", "------", "-----")

	// Print games
	for _, g := range games {
		fmt.Printf("  %-*s  %-24s  %-6d  %s\n", maxIDLen, g.ID, g.Title, played[g.ID], g.Description)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}

func playCounts() map[string]int {
	counts := make(map[string]int)
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return counts
	}
	defer store.Close()

	stats, err := store.GetAllGamesStats()
	if err != nil {
		return counts
	}
	for id, st := range stats {
		counts[id] = st.GamesCount
	}
	return counts
}
