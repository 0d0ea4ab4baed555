package mathbreakout

import (
	"testing"
	"time"
)

func TestAward(t *testing.T) {
	tests := []struct {
		name    string
		level   int
		latency time.Duration
		want    int
	}{
		{"instant level 1", 1, 0, 210},
		{"slow level 1", 1, 10 * time.Second, 110},
		{"exactly at window", 1, 5 * time.Second, 110},
		{"half window level 3", 3, 2500 * time.Millisecond, 180},
		{"fraction truncated", 1, 3990 * time.Millisecond, 130},
		{"negative latency", 2, -time.Second, 220},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Award(tc.level, tc.latency); got != tc.want {
				t.Errorf("Award(%d, %v) = %d, expected %d", tc.level, tc.latency, got, tc.want)
			}
		})
	}
}

func TestAwardMonotonic(t *testing.T) {
	prev := Award(4, 0)
	for ms := 100; ms <= 8000; ms += 100 {
		got := Award(4, time.Duration(ms)*time.Millisecond)
		if got > prev {
			t.Fatalf("slower answer scored more: %d ms -> %d (prev %d)", ms, got, prev)
		}
		prev = got
	}
}
