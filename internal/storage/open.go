package storage

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/math-breakout/internal/config"
	"github.com/vovakirdan/math-breakout/internal/highscore"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("storage: unknown backend")

// Open returns the store selected by cfg and a function that releases it.
func Open(cfg config.ScoresConfig, logger *log.Logger) (highscore.Store, func() error, error) {
	switch cfg.Backend {
	case config.BackendJSON, "":
		s, err := NewJSONStore(cfg.Path, logger)
		if err != nil {
			return nil, nil, err
		}
		return s, func() error { return nil }, nil
	case config.BackendSQLite:
		s, err := OpenSQLite(cfg.Path, logger)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w %q", ErrUnknownBackend, cfg.Backend)
	}
}

// orDiscard returns logger, or a logger that drops everything when nil.
func orDiscard(logger *log.Logger) *log.Logger {
	if logger != nil {
		return logger
	}
	return log.New(io.Discard)
}
