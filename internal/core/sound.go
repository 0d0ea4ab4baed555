package core

// Cue names a sound effect the game can request.
type Cue int

const (
	CueBrickHit Cue = iota
	CueWrongAnswer
	CueGameOver
	CueLevelComplete
	CueMenuMove
	CueMenuSelect
)

// String returns the cue name, which is also its asset file stem.
func (c Cue) String() string {
	switch c {
	case CueBrickHit:
		return "brick_hit"
	case CueWrongAnswer:
		return "wrong_answer"
	case CueGameOver:
		return "game_over"
	case CueLevelComplete:
		return "level_complete"
	case CueMenuMove:
		return "menu_move"
	case CueMenuSelect:
		return "menu_select"
	default:
		return "unknown"
	}
}

// AllCues lists every cue in declaration order.
func AllCues() []Cue {
	return []Cue{CueBrickHit, CueWrongAnswer, CueGameOver, CueLevelComplete, CueMenuMove, CueMenuSelect}
}

// SoundPlayer plays cues. Implementations must not block the caller.
type SoundPlayer interface {
	Play(c Cue)
}

// NopSound discards every cue.
type NopSound struct{}

// Play does nothing.
func (NopSound) Play(Cue) {}
