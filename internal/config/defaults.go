package config

import (
	_ "embed"
)

//go:embed defaults/mathbreakout.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It matches defaults/mathbreakout.yaml and is used when the embedded file
// cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  1024,
			Height: 768,
		},
		Paddle: PaddleConfig{
			Width:        100,
			Height:       20,
			BottomOffset: 50,
			Speed:        10,
		},
		Ball: BallConfig{
			Size:      20,
			BaseSpeed: 5,
		},
		Bricks: BricksConfig{
			Width:   80,
			Height:  30,
			Gap:     5,
			OffsetX: 50,
			OffsetY: 50,
			Columns: 10,
		},
		Progression: ProgressionConfig{
			SpeedPerLevel: 0.5,
			BaseRows:      5,
			MaxRows:       12,
		},
		Gameplay: GameplayConfig{
			Lives:               6,
			ResetLivesOnLevelUp: true,
			StartLevel:          1,
		},
		Display: DisplayConfig{
			PlayingFPS: 60,
			IdleFPS:    30,
			Stars:      100,
		},
		Audio: AudioConfig{
			Enabled:   true,
			SoundsDir: "sounds",
			Volume:    1.0,
		},
		Scores: ScoresConfig{
			Backend: BackendJSON,
			Path:    "~/.mathbreakout/high_scores.json",
		},
	}
}
