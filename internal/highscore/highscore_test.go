package highscore

import (
	"testing"
	"time"
)

func TestInsertKeepsSortedAndCapped(t *testing.T) {
	var table []Entry
	scores := []int{500, 120, 990, 40, 700, 700, 310, 85, 1200, 15, 600, 5, 880}

	for i, s := range scores {
		table = Insert(table, Entry{Score: s, Level: i + 1})

		if len(table) > MaxEntries {
			t.Fatalf("table grew to %d entries", len(table))
		}
		for j := 1; j < len(table); j++ {
			if table[j-1].Score < table[j].Score {
				t.Fatalf("table not sorted after inserting %d: %+v", s, table)
			}
		}
	}

	if len(table) != MaxEntries {
		t.Fatalf("len = %d, expected %d", len(table), MaxEntries)
	}
	if table[0].Score != 1200 || table[MaxEntries-1].Score != 85 {
		t.Errorf("unexpected bounds: first=%d last=%d", table[0].Score, table[MaxEntries-1].Score)
	}
}

func TestInsertStableTies(t *testing.T) {
	table := Insert(nil, Entry{Score: 700, Level: 1})
	table = Insert(table, Entry{Score: 700, Level: 2})

	if table[0].Level != 1 || table[1].Level != 2 {
		t.Errorf("earlier entry should win the tie: %+v", table)
	}
}

func TestInsertDoesNotMutateInput(t *testing.T) {
	table := []Entry{{Score: 10}, {Score: 5}}
	_ = Insert(table, Entry{Score: 50})
	if table[0].Score != 10 || len(table) != 2 {
		t.Errorf("input modified: %+v", table)
	}
}

func TestQualifies(t *testing.T) {
	var table []Entry
	for i := range MaxEntries {
		table = Insert(table, Entry{Score: (i + 1) * 100})
	}

	if Qualifies(table, 100) {
		t.Error("tying the lowest score should not qualify")
	}
	if !Qualifies(table, 101) {
		t.Error("beating the lowest score should qualify")
	}
	if !Qualifies(table[:3], 0) {
		t.Error("a short table accepts anything")
	}
}

func TestNewEntryDate(t *testing.T) {
	e := NewEntry(1230, 3, time.Date(2026, 10, 9, 18, 30, 0, 0, time.UTC))
	if e.Date != "09/10/2026" {
		t.Errorf("Date = %q, expected 09/10/2026", e.Date)
	}
}

func TestMemoryStore(t *testing.T) {
	m := &MemoryStore{}
	if err := m.Save([]Entry{{Score: 1}}); err != nil {
		t.Fatal(err)
	}
	got, _ := m.Load()
	got[0].Score = 99
	if m.Entries[0].Score != 1 {
		t.Error("Load should return a copy")
	}
	if m.Saves != 1 {
		t.Errorf("Saves = %d", m.Saves)
	}
}
