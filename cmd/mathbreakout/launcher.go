package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-breakout/internal/core"
	"github.com/vovakirdan/math-breakout/internal/platform/tui"
)

// runLauncher shows the launcher menu until the player quits. After a
// terminal game or the scoreboard the menu comes back.
func runLauncher(_ *cobra.Command, _ []string) error {
	a, err := setup(true)
	if err != nil {
		return err
	}
	defer a.Close()
	a.startAudio()

	items := tui.DefaultMenuItems(hasDesktop())

	for {
		w, h := terminalSize()
		choice, err := tui.RunMenu(items, w, h)
		if err != nil {
			return err
		}

		switch choice {
		case tui.LaunchTerminal:
			if err := playTerminal(a, core.RuntimeConfig{ScreenW: w, ScreenH: h, Seed: flagSeed}); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}

		case tui.LaunchWindow:
			// Only one window per process, so the launcher ends here
			return playWindow(a, core.RuntimeConfig{Seed: flagSeed})

		case tui.LaunchScores:
			goBack, err := tui.RunScoreboard(a.store, w, h)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !goBack {
				return nil
			}

		default:
			return nil
		}
	}
}
