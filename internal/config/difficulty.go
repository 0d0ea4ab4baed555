package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // Ball speed does not grow with level
)

// ParsePreset converts a command line value to a preset.
// Unknown values map to the empty preset, which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 8
		cfg.Paddle.Width = 130
		cfg.Ball.BaseSpeed = 4
		cfg.Progression.SpeedPerLevel = 0.25
	case DifficultyHard:
		cfg.Gameplay.Lives = 4
		cfg.Paddle.Width = 80
		cfg.Ball.BaseSpeed = 6
		cfg.Progression.SpeedPerLevel = 0.75
	case DifficultyFixed:
		cfg.Progression.SpeedPerLevel = 0
	}
}

// Progression derives per-level parameters from the config.
type Progression struct {
	cfg Config
}

// NewProgression creates a progression for cfg.
func NewProgression(cfg Config) *Progression {
	return &Progression{cfg: cfg}
}

// BallSpeed returns the ball speed (pixels per frame) for a level.
func (p *Progression) BallSpeed(level int) float64 {
	return p.cfg.Ball.BaseSpeed + p.cfg.Progression.SpeedPerLevel*float64(level)
}

// BrickRows returns the number of brick rows for a level, capped at MaxRows.
func (p *Progression) BrickRows(level int) int {
	rows := p.cfg.Progression.BaseRows + level
	if rows > p.cfg.Progression.MaxRows {
		rows = p.cfg.Progression.MaxRows
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}
