package mathbreakout

import "math"

// Snapshot is the session state flattened to primitives, used to compare
// runs in determinism tests.
type Snapshot struct {
	Frames    uint64
	Level     int
	Score     int
	Lives     int
	Phase     int
	PaddleX   float64
	BallX     float64
	BallY     float64
	BallVX    float64
	BallVY    float64
	AliveMask []bool // One entry per brick, in creation order
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	mask := make([]bool, s.arena.Len())
	for i := range mask {
		mask[i] = s.arena.Brick(i).Alive
	}
	return Snapshot{
		Frames:    s.frames,
		Level:     s.level,
		Score:     s.score,
		Lives:     s.lives,
		Phase:     int(s.phase),
		PaddleX:   s.paddle.X,
		BallX:     s.ball.X,
		BallY:     s.ball.Y,
		BallVX:    s.ball.VX,
		BallVY:    s.ball.VY,
		AliveMask: mask,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frames
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)

	for _, alive := range snap.AliveMask {
		h *= 31
		if alive {
			h++
		}
	}
	return h
}
