// Package config provides YAML-based game configuration loading, environment
// overrides and difficulty presets for Math Breakout.
package config

import (
	"errors"
	"fmt"
)

// Config contains all tunable settings of the game.
type Config struct {
	Screen      ScreenConfig      `yaml:"screen"`
	Paddle      PaddleConfig      `yaml:"paddle" envPrefix:"PADDLE_"`
	Ball        BallConfig        `yaml:"ball" envPrefix:"BALL_"`
	Bricks      BricksConfig      `yaml:"bricks"`
	Progression ProgressionConfig `yaml:"progression" envPrefix:"PROGRESSION_"`
	Gameplay    GameplayConfig    `yaml:"gameplay" envPrefix:"GAMEPLAY_"`
	Display     DisplayConfig     `yaml:"display" envPrefix:"DISPLAY_"`
	Audio       AudioConfig       `yaml:"audio" envPrefix:"AUDIO_"`
	Scores      ScoresConfig      `yaml:"scores" envPrefix:"SCORES_"`
}

// ScreenConfig is the playfield size in pixels.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PaddleConfig defines the paddle geometry and speed.
type PaddleConfig struct {
	Width        float64 `yaml:"width" env:"WIDTH"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from paddle top to screen bottom
	Speed        float64 `yaml:"speed" env:"SPEED"`
}

// BallConfig defines the ball size and base speed.
type BallConfig struct {
	Size      float64 `yaml:"size"`
	BaseSpeed float64 `yaml:"base_speed" env:"BASE_SPEED"`
}

// BricksConfig defines the brick grid geometry.
type BricksConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Gap     float64 `yaml:"gap"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Columns int     `yaml:"columns"`
}

// ProgressionConfig defines how levels get harder.
type ProgressionConfig struct {
	SpeedPerLevel float64 `yaml:"speed_per_level" env:"SPEED_PER_LEVEL"`
	BaseRows      int     `yaml:"base_rows"`
	MaxRows       int     `yaml:"max_rows" env:"MAX_ROWS"`
}

// GameplayConfig defines lives and level rules.
type GameplayConfig struct {
	Lives               int  `yaml:"lives" env:"LIVES"`
	ResetLivesOnLevelUp bool `yaml:"reset_lives_on_level_up" env:"RESET_LIVES_ON_LEVEL_UP"`
	StartLevel          int  `yaml:"start_level" env:"START_LEVEL"`
}

// DisplayConfig defines frame rates and decoration.
type DisplayConfig struct {
	PlayingFPS int `yaml:"playing_fps" env:"PLAYING_FPS"`
	IdleFPS    int `yaml:"idle_fps" env:"IDLE_FPS"`
	Stars      int `yaml:"stars" env:"STARS"`
}

// AudioConfig defines sound settings.
type AudioConfig struct {
	Enabled   bool    `yaml:"enabled" env:"ENABLED"`
	SoundsDir string  `yaml:"sounds_dir" env:"SOUNDS_DIR"`
	Volume    float64 `yaml:"volume" env:"VOLUME"`
}

// ScoresConfig defines where high scores live.
type ScoresConfig struct {
	Backend string `yaml:"backend" env:"BACKEND"` // "json" or "sqlite"
	Path    string `yaml:"path" env:"PATH"`
}

// Score backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	var errs []error

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 || c.Paddle.Speed <= 0 {
		errs = append(errs, errors.New("paddle width, height and speed must be positive"))
	}
	if c.Paddle.Width > float64(c.Screen.Width) {
		errs = append(errs, errors.New("paddle is wider than the screen"))
	}
	if c.Ball.Size <= 0 || c.Ball.BaseSpeed <= 0 {
		errs = append(errs, errors.New("ball size and base speed must be positive"))
	}
	if c.Bricks.Width <= 0 || c.Bricks.Height <= 0 || c.Bricks.Columns <= 0 {
		errs = append(errs, errors.New("brick width, height and columns must be positive"))
	}
	if c.Progression.BaseRows < 0 || c.Progression.MaxRows <= 0 {
		errs = append(errs, errors.New("progression rows must be positive"))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("lives must be positive, got %d", c.Gameplay.Lives))
	}
	if c.Gameplay.StartLevel < 1 {
		errs = append(errs, fmt.Errorf("start level must be at least 1, got %d", c.Gameplay.StartLevel))
	}
	if c.Display.PlayingFPS <= 0 || c.Display.IdleFPS <= 0 {
		errs = append(errs, errors.New("frame rates must be positive"))
	}
	if c.Audio.Volume < 0 {
		errs = append(errs, errors.New("volume must not be negative"))
	}
	switch c.Scores.Backend {
	case BackendJSON, BackendSQLite:
	default:
		errs = append(errs, fmt.Errorf("unknown scores backend %q", c.Scores.Backend))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
