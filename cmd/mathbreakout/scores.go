package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-breakout/internal/platform/tui"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high-score table",
	Long: `Display the top 10 high scores.

With --interactive the table opens in a scrollable view; the SQLite
backend also shows a summary of every game played.

Examples:
  mathbreakout scores
  mathbreakout scores --interactive
  mathbreakout scores --store sqlite --scores ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive table view")
}

func runScores(_ *cobra.Command, _ []string) error {
	a, err := setup(false)
	if err != nil {
		return err
	}
	defer a.Close()

	if flagInteractive {
		w, h := terminalSize()
		_, err := tui.RunScoreboard(a.store, w, h)
		return err
	}

	scores, err := a.store.Load()
	if err != nil {
		return fmt.Errorf("cannot load scores: %w", err)
	}

	fmt.Println("High Scores - Math Breakout")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'mathbreakout play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Level, entry.Date)
	}

	if src, ok := a.store.(tui.StatsSource); ok {
		stats, err := src.Stats()
		if err == nil && stats.GamesCount > 0 {
			fmt.Println()
			fmt.Printf("Games played: %d  Average: %.0f  Best level: %d\n", stats.GamesCount, stats.AvgScore, stats.MaxLevel)
		}
	}
	return nil
}
