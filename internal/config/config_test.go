package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults differ from DefaultConfig():\n%+v\n%+v", cfg, DefaultConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadCustomPathLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "gameplay:\n  lives: 3\n  reset_lives_on_level_up: false\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 3 {
		t.Errorf("Lives = %d, expected 3", cfg.Gameplay.Lives)
	}
	if cfg.Gameplay.ResetLivesOnLevelUp {
		t.Error("ResetLivesOnLevelUp should be false")
	}
	if cfg.Screen.Width != 1024 {
		t.Errorf("unset keys should keep defaults, Screen.Width = %d", cfg.Screen.Width)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("gameplay: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed custom config should fail")
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := DefaultConfig()
	err := ApplyEnv(&cfg, map[string]string{
		"MATHBREAKOUT_GAMEPLAY_LIVES":                   "9",
		"MATHBREAKOUT_GAMEPLAY_RESET_LIVES_ON_LEVEL_UP": "false",
		"MATHBREAKOUT_BALL_BASE_SPEED":                  "7.5",
		"MATHBREAKOUT_SCORES_BACKEND":                   "sqlite",
		"MATHBREAKOUT_AUDIO_ENABLED":                    "false",
	})
	if err != nil {
		t.Fatalf("ApplyEnv() failed: %v", err)
	}

	if cfg.Gameplay.Lives != 9 {
		t.Errorf("Lives = %d, expected 9", cfg.Gameplay.Lives)
	}
	if cfg.Gameplay.ResetLivesOnLevelUp {
		t.Error("ResetLivesOnLevelUp should be false")
	}
	if cfg.Ball.BaseSpeed != 7.5 {
		t.Errorf("BaseSpeed = %v, expected 7.5", cfg.Ball.BaseSpeed)
	}
	if cfg.Scores.Backend != BackendSQLite {
		t.Errorf("Backend = %q, expected sqlite", cfg.Scores.Backend)
	}
	if cfg.Audio.Enabled {
		t.Error("audio should be disabled")
	}
	if cfg.Paddle.Width != 100 {
		t.Errorf("untouched field changed: Paddle.Width = %v", cfg.Paddle.Width)
	}
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	cfg := DefaultConfig()
	err := ApplyEnv(&cfg, map[string]string{"MATHBREAKOUT_GAMEPLAY_LIVES": "many"})
	if err == nil {
		t.Error("non-numeric lives should fail")
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errSub string
	}{
		{"zero lives", func(c *Config) { c.Gameplay.Lives = 0 }, "lives"},
		{"bad backend", func(c *Config) { c.Scores.Backend = "redis" }, "backend"},
		{"huge paddle", func(c *Config) { c.Paddle.Width = 5000 }, "wider"},
		{"level zero", func(c *Config) { c.Gameplay.StartLevel = 0 }, "start level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.errSub) {
				t.Errorf("error %q does not mention %q", err, tc.errSub)
			}
		})
	}
}

func TestProgression(t *testing.T) {
	p := NewProgression(DefaultConfig())

	tests := []struct {
		level int
		speed float64
		rows  int
	}{
		{1, 5.5, 6},
		{2, 6.0, 7},
		{7, 8.5, 12},
		{20, 15.0, 12},
	}

	for _, tc := range tests {
		if got := p.BallSpeed(tc.level); got != tc.speed {
			t.Errorf("BallSpeed(%d) = %v, expected %v", tc.level, got, tc.speed)
		}
		if got := p.BrickRows(tc.level); got != tc.rows {
			t.Errorf("BrickRows(%d) = %d, expected %d", tc.level, got, tc.rows)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	ApplyPreset(&cfg, ParsePreset("hard"))
	if cfg.Gameplay.Lives != 4 {
		t.Errorf("hard lives = %d, expected 4", cfg.Gameplay.Lives)
	}

	cfg = DefaultConfig()
	ApplyPreset(&cfg, ParsePreset("fixed"))
	if NewProgression(cfg).BallSpeed(9) != cfg.Ball.BaseSpeed {
		t.Error("fixed preset should disable speed growth")
	}

	cfg = DefaultConfig()
	ApplyPreset(&cfg, ParsePreset("bogus"))
	if cfg != DefaultConfig() {
		t.Error("unknown preset should not change the config")
	}
}
