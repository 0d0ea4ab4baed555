package mathbreakout

import "time"

// Scoring constants.
const (
	basePoints     = 100
	fastWindow     = 5.0 // Seconds within which an answer earns a speed bonus
	speedBonusRate = 20  // Points per second answered inside the window
	levelBonus     = 10  // Points per level
)

// Award returns the points for a correct answer given the level and how long
// the player took: 100 + max(0, 5 - seconds) * 20 + level * 10, truncated.
func Award(level int, latency time.Duration) int {
	secs := latency.Seconds()
	if secs < 0 {
		secs = 0
	}
	bonus := fastWindow - secs
	if bonus < 0 {
		bonus = 0
	}
	return int(basePoints + bonus*speedBonusRate + float64(level*levelBonus))
}
