package mathbreakout

import (
	"math"
	"time"

	"github.com/vovakirdan/math-breakout/internal/config"
	"github.com/vovakirdan/math-breakout/internal/core"
)

// Phase is the sub-state of a running session.
type Phase int

const (
	PhasePlaying        Phase = iota // Physics runs every frame
	PhaseAwaitingAnswer              // A problem is open, physics is frozen
	PhaseOver                        // Game over or level complete, no more frames
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseAwaitingAnswer:
		return "awaiting_answer"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Serve angles, measured from vertical.
const (
	minServeAngle = math.Pi / 12
	maxServeAngle = math.Pi / 4
)

// pendingHit is a brick collision waiting for the player's answer.
// The bounce is computed at collision time and applied only once the
// question is answered.
type pendingHit struct {
	brick   int
	bounced Ball
	problem MathProblem
	posedAt time.Time
}

// Session is one playthrough of a level: paddle, ball, bricks, score and lives.
type Session struct {
	cfg   config.Config
	prog  *config.Progression
	rng   core.Source
	clock core.Clock
	gen   *ProblemGenerator

	level int
	score int
	lives int
	speed float64 // Ball speed for the current level

	paddle core.Rect
	ball   Ball
	arena  *Arena

	phase       Phase
	pending     *pendingHit
	ignoreBrick int // Brick skipped until the ball leaves it, -1 for none
	lastLatency time.Duration
	frames      uint64
}

// NewSession starts a fresh game at the configured start level.
func NewSession(cfg config.Config, rng core.Source, clock core.Clock) *Session {
	if clock == nil {
		clock = core.SystemClock{}
	}
	s := &Session{
		cfg:   cfg,
		prog:  config.NewProgression(cfg),
		rng:   rng,
		clock: clock,
		gen:   NewProblemGenerator(rng),
		lives: cfg.Gameplay.Lives,
	}
	s.startLevel(cfg.Gameplay.StartLevel)
	return s
}

// startLevel lays out a level and serves the ball.
func (s *Session) startLevel(level int) {
	s.level = level
	s.speed = s.prog.BallSpeed(level)
	s.arena = NewArena(BuildLayout(s.cfg.Bricks, s.prog.BrickRows(level)))

	w, h := s.screenSize()
	s.paddle = core.NewRect(
		(w-s.cfg.Paddle.Width)/2,
		h-s.cfg.Paddle.BottomOffset,
		s.cfg.Paddle.Width,
		s.cfg.Paddle.Height,
	)

	s.phase = PhasePlaying
	s.pending = nil
	s.ignoreBrick = -1
	s.serve()
}

// AdvanceLevel moves on to the next level after LevelCompleteEvent.
// Score carries over; lives reset when the config asks for it.
func (s *Session) AdvanceLevel() {
	if s.cfg.Gameplay.ResetLivesOnLevelUp {
		s.lives = s.cfg.Gameplay.Lives
	}
	s.startLevel(s.level + 1)
}

// serve centers the ball and launches it upward at a random tilt.
func (s *Session) serve() {
	w, h := s.screenSize()
	size := s.cfg.Ball.Size
	s.ball.Rect = core.NewRect(0, 0, size, size).CenteredAt(w/2, h/2)

	angle := minServeAngle + s.rng.Float64()*(maxServeAngle-minServeAngle)
	if s.rng.Intn(2) == 0 {
		angle = -angle
	}
	s.ball.VX, s.ball.VY = Velocity(s.speed, angle)
}

func (s *Session) screenSize() (float64, float64) {
	return float64(s.cfg.Screen.Width), float64(s.cfg.Screen.Height)
}

// Step advances the simulation by one frame. It does nothing unless the
// session is playing.
func (s *Session) Step(in core.InputFrame) []Event {
	if s.phase != PhasePlaying {
		return nil
	}
	if s.arena.Alive() == 0 {
		s.phase = PhaseOver
		return []Event{LevelCompleteEvent{Level: s.level, Score: s.score}}
	}
	s.frames++

	w, h := s.screenSize()

	// Paddle
	dx := 0.0
	if in.Down(core.ActionLeft) {
		dx -= s.cfg.Paddle.Speed
	}
	if in.Down(core.ActionRight) {
		dx += s.cfg.Paddle.Speed
	}
	s.paddle.X = core.ClampF(s.paddle.X+dx, 0, w-s.paddle.W)

	// Ball
	s.ball = s.ball.Advance()
	s.ball, _ = ResolveWalls(s.ball, w)
	s.ball, _ = ResolvePaddle(s.ball, s.paddle, s.speed)

	// A cancelled brick is ignored until the ball has left it
	if s.ignoreBrick >= 0 && !s.ball.Intersects(s.arena.Brick(s.ignoreBrick).Bounds) {
		s.ignoreBrick = -1
	}

	if i := s.arena.FirstHit(s.ball.Rect, s.ignoreBrick); i >= 0 {
		hit := ResolveBrick(s.ball, s.arena.Brick(i).Bounds)
		problem := s.gen.Generate(s.level)
		s.pending = &pendingHit{
			brick:   i,
			bounced: Renormalize(hit.Ball, s.speed),
			problem: problem,
			posedAt: s.clock.Now(),
		}
		s.phase = PhaseAwaitingAnswer
		return []Event{ProblemPosedEvent{BrickID: i, Problem: problem}}
	}

	if s.ball.Bottom() >= h {
		return s.loseLife()
	}
	return nil
}

// SubmitAnswer answers the open problem. It does nothing when no problem is open.
func (s *Session) SubmitAnswer(answer int) []Event {
	if s.phase != PhaseAwaitingAnswer || s.pending == nil {
		return nil
	}
	p := s.pending
	s.pending = nil
	s.phase = PhasePlaying
	s.lastLatency = s.clock.Now().Sub(p.posedAt)
	s.ball = p.bounced

	if !p.problem.Check(answer) {
		events := []Event{WrongAnswerEvent{Problem: p.problem, Given: answer}}
		return append(events, s.loseLife()...)
	}

	s.arena.Kill(p.brick)
	points := Award(s.level, s.lastLatency)
	s.score += points
	events := []Event{BrickDestroyedEvent{BrickID: p.brick, Points: points, Latency: s.lastLatency}}

	if s.arena.Alive() == 0 {
		s.phase = PhaseOver
		events = append(events, LevelCompleteEvent{Level: s.level, Score: s.score})
	}
	return events
}

// CancelAnswer closes the open problem without answering. The ball keeps
// its pre-collision position and velocity and the brick survives.
func (s *Session) CancelAnswer() []Event {
	if s.phase != PhaseAwaitingAnswer || s.pending == nil {
		return nil
	}
	brick := s.pending.brick
	s.pending = nil
	s.phase = PhasePlaying
	s.ignoreBrick = brick
	return []Event{ProblemCancelledEvent{BrickID: brick}}
}

// loseLife takes a life and either ends the game or serves a new ball.
func (s *Session) loseLife() []Event {
	s.lives--
	if s.lives <= 0 {
		s.lives = 0
		s.phase = PhaseOver
		return []Event{GameOverEvent{Score: s.score, Level: s.level}}
	}
	s.serve()
	return []Event{LifeLostEvent{LivesLeft: s.lives}}
}

// Level returns the current level, starting at 1.
func (s *Session) Level() int { return s.level }

// Score returns the accumulated score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Paddle returns the paddle box.
func (s *Session) Paddle() core.Rect { return s.paddle }

// Ball returns the ball.
func (s *Session) Ball() Ball { return s.ball }

// Arena returns the bricks. Callers must not modify it.
func (s *Session) Arena() *Arena { return s.arena }

// BallSpeed returns the ball speed of the current level.
func (s *Session) BallSpeed() float64 { return s.speed }

// LastLatency returns how long the most recent answer took.
func (s *Session) LastLatency() time.Duration { return s.lastLatency }

// Problem returns the open problem, if any.
func (s *Session) Problem() (MathProblem, bool) {
	if s.pending == nil {
		return MathProblem{}, false
	}
	return s.pending.problem, true
}
