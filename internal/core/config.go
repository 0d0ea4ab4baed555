package core

// RuntimeConfig contains launch settings passed from the command line to a frontend.
type RuntimeConfig struct {
	ScreenW int   // Terminal width in characters (ignored by the window frontend)
	ScreenH int   // Terminal height in characters
	Seed    int64 // RNG seed; 0 means seed from the current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// Source returns the random source for the seed, or nil when the game
// should seed itself from the clock.
func (c RuntimeConfig) Source() Source {
	if c.Seed == 0 {
		return nil
	}
	return NewSimpleRNG(c.Seed)
}
