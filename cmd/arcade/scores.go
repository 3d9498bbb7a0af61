package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt-arcade/internal/registry"
	"github.com/vovakirdan/tilt-arcade/internal/rules"
	"github.com/vovakirdan/tilt-arcade/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game.
Time trials also list the stored best times.

Examples:
  arcade scores tilt
  arcade scores tilt_trial
  arcade scores tilt --all
  arcade scores tilt --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

var (
	flagClearScores bool
	flagAllScores   bool
)

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the stored scores (and best times for time trials)")
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "List every stored score instead of the top 10")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	if flagClearScores {
		clearScores(store, gameID)
		store.Close()
		return
	}

	// Get top scores
	var scores []storage.ScoreEntry
	if flagAllScores {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	// Show high score
	fmt.Println()
	if len(scores) > 0 {
		highScore, err := store.HighScore(gameID)
		if err == nil {
			fmt.Printf("Best: %d\n", highScore)
		}
	}
	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Games: %d  Avg: %.1f  Last played: %s\n",
			stats.GamesCount, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}

	if gameID == "tilt_trial" {
		printBestTimes(store)
	}
}

// printBestTimes lists every stored best time.
func printBestTimes(store *storage.Store) {
	times, err := store.AllBestTimes()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving best times: %v\n", err)
		return
	}
	if len(times) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Best Times")
	fmt.Printf("  %-14s  %-10s  %s\n", "Course", "Time", "Date")
	fmt.Printf("  %-14s  %-10s  %s\n", "------", "----", "----")
	for _, bt := range times {
		fmt.Printf("  %-14s  %-10s  %s\n", bt.Key, rules.FormatTime(bt.Seconds), bt.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

func clearScores(store *storage.Store, gameID string) {
	if err := store.ClearScores(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
		os.Exit(1)
	}
	if gameID == "tilt_trial" {
		key := rules.DefaultConfig().BestTimeKey
		if err := store.ClearBestTime(key); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing best time: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Printf("Cleared scores for %s.\n", gameID)
}
