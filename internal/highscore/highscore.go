// Package highscore holds the high-score table: its entries, ordering rules
// and the storage interface the game persists it through.
package highscore

import (
	"sort"
	"time"
)

// MaxEntries is the size of the table.
const MaxEntries = 10

// DateLayout formats entry dates as DD/MM/YYYY.
const DateLayout = "02/01/2006"

// Entry is one finished game.
type Entry struct {
	Score int    `json:"score"`
	Level int    `json:"level"`
	Date  string `json:"date"`
}

// NewEntry creates an entry dated at.
func NewEntry(score, level int, at time.Time) Entry {
	return Entry{Score: score, Level: level, Date: at.Format(DateLayout)}
}

// Store loads and saves the table.
type Store interface {
	// Load returns the saved table. Missing or malformed data yields an empty table.
	Load() ([]Entry, error)
	// Save replaces the saved table.
	Save(entries []Entry) error
}

// Insert returns a new table with e added, sorted by score descending and
// truncated to MaxEntries. Earlier entries win ties.
func Insert(table []Entry, e Entry) []Entry {
	out := make([]Entry, 0, len(table)+1)
	out = append(out, table...)
	out = append(out, e)
	return Normalize(out)
}

// Normalize sorts entries by score descending and truncates to MaxEntries.
// It sorts in place.
func Normalize(entries []Entry) []Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	return entries
}

// Qualifies reports whether score would enter the table.
func Qualifies(table []Entry, score int) bool {
	if len(table) < MaxEntries {
		return true
	}
	return score > table[len(table)-1].Score
}

// MemoryStore keeps the table in memory. Useful for tests and when no
// persistent store can be opened.
type MemoryStore struct {
	Entries []Entry
	Saves   int
	Err     error // Returned by Save when set
}

// Load returns a copy of the stored entries.
func (m *MemoryStore) Load() ([]Entry, error) {
	return append([]Entry(nil), m.Entries...), nil
}

// Save stores a copy of entries.
func (m *MemoryStore) Save(entries []Entry) error {
	if m.Err != nil {
		return m.Err
	}
	m.Saves++
	m.Entries = append([]Entry(nil), entries...)
	return nil
}

var _ Store = (*MemoryStore)(nil)

// Recorder is implemented by stores that also keep a history of every game.
type Recorder interface {
	Record(e Entry) error
}
