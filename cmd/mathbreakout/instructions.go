package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-breakout/internal/games/mathbreakout"
)

var instructionsCmd = &cobra.Command{
	Use:   "instructions",
	Short: "Show controls and rules",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("How to play Math Breakout")
		fmt.Println()
		for _, line := range mathbreakout.Instructions() {
			fmt.Println("  " + line)
		}
	},
}
