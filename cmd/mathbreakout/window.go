package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-breakout/internal/core"
	"github.com/vovakirdan/math-breakout/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start Math Breakout in a desktop window.

The window uses the playfield size from the config (1024x768 by default)
and the same controls as the terminal game, plus mouse clicks on menus.

Examples:
  mathbreakout window
  mathbreakout window --sounds ./sounds`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	a, err := setup(false)
	if err != nil {
		return err
	}
	defer a.Close()
	a.startAudio()

	return playWindow(a, core.RuntimeConfig{Seed: flagSeed})
}

// playWindow runs the game in a window. Ebitengine allows one window per
// process, so callers must not call it twice.
func playWindow(a *app, launch core.RuntimeConfig) error {
	m := a.newMachine(launch)
	if err := gui.Run(m, a.cfg.Screen.Width, a.cfg.Screen.Height, a.logger); err != nil {
		return fmt.Errorf("window game: %w", err)
	}
	return nil
}

// hasDesktop reports whether a window can likely be opened.
func hasDesktop() bool {
	switch runtime.GOOS {
	case "windows", "darwin":
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}
