// mathbreakout is a brick-breaker where every brick asks an arithmetic question.
//
// Usage:
//
//	mathbreakout               - Launcher menu
//	mathbreakout play          - Play in the terminal
//	mathbreakout window        - Play in a desktop window
//	mathbreakout scores        - Show the high-score table
//	mathbreakout instructions  - Show controls and rules
//
// Global flags:
//
//	--config <path>      - Game config YAML
//	--scores <path>      - High-score file or database
//	--store <backend>    - Score backend: json or sqlite
//	--seed <value>       - RNG seed for reproducible games
//	--difficulty <name>  - Preset: easy, normal, hard, fixed
//	--sounds <dir>       - Directory with WAV sound assets
//	--log-file <path>    - Log file used by the terminal frontend
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagScores     string
	flagStore      string
	flagSeed       int64
	flagDifficulty string
	flagSounds     string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mathbreakout",
	Short: "Math Breakout - every brick is an arithmetic problem",
	Long: `Math Breakout is a brick-breaker where the ball never breaks a brick on
its own. Each hit opens a math problem: answer it right to destroy the
brick and score, answer wrong and lose a life.

Available commands:
  play          - Play in this terminal
  window        - Play in a desktop window
  scores        - View high scores
  instructions  - Show controls and rules

Running without a command opens the launcher menu.

Examples:
  mathbreakout
  mathbreakout play --difficulty easy
  mathbreakout window --seed 42
  mathbreakout scores --store sqlite --scores ~/.mathbreakout/scores.db`,
	SilenceUsage: true,
	RunE:         runLauncher,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagScores, "scores", "", "Path to the high-score file (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "Score backend: json, sqlite (default from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagSounds, "sounds", "", "Directory with sound assets (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.mathbreakout/mathbreakout.log", "Log file for terminal play")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(instructionsCmd)
}
