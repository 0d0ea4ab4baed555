package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/math-breakout/internal/audio"
	"github.com/vovakirdan/math-breakout/internal/config"
	"github.com/vovakirdan/math-breakout/internal/core"
	"github.com/vovakirdan/math-breakout/internal/games/mathbreakout"
	"github.com/vovakirdan/math-breakout/internal/highscore"
	"github.com/vovakirdan/math-breakout/internal/storage"
)

// app holds everything a frontend needs to run the game.
type app struct {
	cfg        config.Config
	logger     *log.Logger
	store      highscore.Store
	closeStore func() error
	player     *audio.Player
	logFile    *os.File
}

// loadConfig resolves the configuration from files, .env, environment and flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.LoadDotEnv(".env"); err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg, nil); err != nil {
		return cfg, err
	}

	config.ApplyPreset(&cfg, config.ParsePreset(flagDifficulty))
	if flagStore != "" {
		cfg.Scores.Backend = flagStore
	}
	if flagScores != "" {
		cfg.Scores.Path = flagScores
	}
	if flagSounds != "" {
		cfg.Audio.SoundsDir = flagSounds
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the application logger. The terminal frontend owns the
// screen, so it logs to a file; the window frontend logs to stderr.
func newLogger(toFile bool) (*log.Logger, *os.File) {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "mathbreakout",
	}
	if !toFile {
		return log.NewWithOptions(os.Stderr, opts), nil
	}

	f, err := openLogFile(flagLogFile)
	if err != nil {
		return log.NewWithOptions(io.Discard, opts), nil
	}
	return log.NewWithOptions(f, opts), f
}

func openLogFile(path string) (*os.File, error) {
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// setup loads config and opens the score store.
func setup(logToFile bool) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, logFile := newLogger(logToFile)
	a := &app{cfg: cfg, logger: logger, logFile: logFile}

	store, closeStore, err := storage.Open(cfg.Scores, logger)
	if err != nil {
		// Continue without persistence - the game still works
		logger.Warn("could not open score store, scores will not be kept", "backend", cfg.Scores.Backend, "error", err)
		store, closeStore = &highscore.MemoryStore{}, func() error { return nil }
	}
	a.store, a.closeStore = store, closeStore

	logger.Info("started", "backend", cfg.Scores.Backend, "scores", cfg.Scores.Path, "difficulty", flagDifficulty)
	return a, nil
}

// startAudio opens the speaker. Without one the game runs silently.
func (a *app) startAudio() {
	a.player = audio.NewPlayer(a.cfg.Audio, a.logger)
	if err := a.player.Initialize(); err != nil {
		a.logger.Warn("audio disabled", "error", err)
	}
}

// newMachine creates a fresh game machine sharing the app's store and audio.
func (a *app) newMachine(launch core.RuntimeConfig) *mathbreakout.Machine {
	var sound core.SoundPlayer = core.NopSound{}
	if a.player != nil {
		sound = a.player
	}
	return mathbreakout.NewMachine(a.cfg, mathbreakout.Options{
		Sound:  sound,
		Store:  a.store,
		RNG:    launch.Source(),
		Logger: a.logger,
	})
}

// Close releases the store, audio and log file.
func (a *app) Close() {
	if a.player != nil {
		a.player.Close()
	}
	if err := a.closeStore(); err != nil {
		a.logger.Warn("cannot close score store", "error", err)
	}
	if a.logFile != nil {
		//nolint:errcheck // Best-effort close on exit
		a.logFile.Close()
	}
}

// terminalSize returns the current terminal size, or 80x24 when unknown.
func terminalSize() (int, int) {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	return cfg.ScreenW, cfg.ScreenH
}
