package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-breakout/internal/core"
	"github.com/vovakirdan/math-breakout/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start Math Breakout in the terminal.

Controls:
  Left/Right, A/D  - Move paddle
  Up/Down, Enter   - Menu navigation
  0-9, -           - Type an answer
  Enter            - Submit answer
  Esc              - Close problem / pause
  Space            - Pause
  Q                - Quit (menu or pause screen)
  Ctrl+S           - Save a text screenshot

Difficulty options:
  easy   - More lives, wider paddle, slower ball
  normal - Default settings
  hard   - Fewer lives, narrower paddle, faster ball
  fixed  - Ball speed does not grow with level

Examples:
  mathbreakout play
  mathbreakout play --difficulty hard
  mathbreakout play --seed 42 --store sqlite`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	a, err := setup(true)
	if err != nil {
		return err
	}
	defer a.Close()
	a.startAudio()

	w, h := terminalSize()
	return playTerminal(a, core.RuntimeConfig{ScreenW: w, ScreenH: h, Seed: flagSeed})
}

// playTerminal runs one game machine until the player quits it.
func playTerminal(a *app, launch core.RuntimeConfig) error {
	m := a.newMachine(launch)
	if err := tui.Run(m, a.cfg.Screen.Width, a.cfg.Screen.Height, launch.ScreenW, launch.ScreenH, a.logger); err != nil {
		return fmt.Errorf("terminal game: %w", err)
	}
	return nil
}
