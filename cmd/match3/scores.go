package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var flagRounds int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent rounds for a mode",
	Long: `Display the top 10 high scores, aggregate stats and the most recent
rounds for the specified mode (default: match3).

Examples:
  match3 scores
  match3 scores match3_endless
  match3 scores --rounds 25`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRounds, "rounds", 10, "Number of recent rounds to show (0 to hide)")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "match3"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'match3 list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'match3 play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Games: %d  Average: %.1f  Rounds: %d  Longest cascade: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.RoundsCount, stats.MaxCascade)
	} else {
		logger.Warn("could not load stats", "mode", gameID, "err", err)
	}

	if flagRounds <= 0 {
		return
	}
	rounds, err := store.RecentRounds(gameID, flagRounds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		return
	}
	if len(rounds) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent Rounds")
	fmt.Println()
	fmt.Printf("  %-4s  %-7s  %-5s  %-7s  %-10s  %s\n", "Turn", "Points", "Tiles", "Cascade", "Seed", "Date")
	fmt.Printf("  %-4s  %-7s  %-5s  %-7s  %-10s  %s\n", "----", "------", "-----", "-------", "----", "----")
	for _, r := range rounds {
		fmt.Printf("  %-4d  %-7d  %-5d  %-7d  %-10s  %s\n",
			r.Turn, r.Points, r.Removed, r.Cascades, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
