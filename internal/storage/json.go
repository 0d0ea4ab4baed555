package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/math-breakout/internal/config"
	"github.com/vovakirdan/math-breakout/internal/highscore"
)

// JSONStore keeps the high-score table in a JSON file:
//
//	[{"score": 1230, "level": 3, "date": "19/10/2026"}, ...]
type JSONStore struct {
	path   string
	logger *log.Logger
}

// NewJSONStore creates a store for the file at path. A leading ~ is expanded.
// The file is not touched until Load or Save.
func NewJSONStore(path string, logger *log.Logger) (*JSONStore, error) {
	expanded, err := config.ExpandHome(path)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	return &JSONStore{path: expanded, logger: orDiscard(logger)}, nil
}

// Path returns the file location.
func (s *JSONStore) Path() string {
	return s.path
}

// Load reads the table. A missing or malformed file yields an empty table;
// malformed files are logged and left in place until the next Save.
func (s *JSONStore) Load() ([]highscore.Entry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []highscore.Entry{}, nil
	}
	if err != nil {
		return []highscore.Entry{}, fmt.Errorf("storage: cannot read %s: %w", s.path, err)
	}

	var entries []highscore.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn("ignoring malformed high score file", "path", s.path, "error", err)
		return []highscore.Entry{}, nil
	}
	if entries == nil {
		entries = []highscore.Entry{}
	}
	return highscore.Normalize(entries), nil
}

// Save writes the table atomically through a temporary file.
func (s *JSONStore) Save(entries []highscore.Entry) error {
	if entries == nil {
		entries = []highscore.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: cannot encode scores: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".high_scores-*.json")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write scores: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", s.path, err)
	}
	return nil
}

var _ highscore.Store = (*JSONStore)(nil)
