package mathbreakout

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/math-breakout/internal/config"
	"github.com/vovakirdan/math-breakout/internal/core"
)

func newTestSession(t *testing.T, seed int64) (*Session, *core.ManualClock) {
	t.Helper()
	clock := &core.ManualClock{T: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)}
	return NewSession(config.DefaultConfig(), core.NewSimpleRNG(seed), clock), clock
}

// aimAt parks the ball just under brick i, overlapping its bottom face and
// moving straight up, so the next Step collides with it from below.
func aimAt(s *Session, i int) {
	b := s.arena.Brick(i).Bounds
	s.ball.Rect = s.ball.CenteredAt(b.CenterX(), b.Bottom()+s.ball.H/2-4)
	s.ball.VX, s.ball.VY = 0, -s.speed
}

// pose collides with the first living brick and returns the posed problem.
func pose(t *testing.T, s *Session) ProblemPosedEvent {
	t.Helper()
	target := s.arena.FirstHit(core.NewRect(0, 0, 1024, 768), -1)
	if target < 0 {
		t.Fatal("no living brick to aim at")
	}
	aimAt(s, target)
	events := s.Step(core.NewInputFrame())
	if len(events) != 1 {
		t.Fatalf("expected one event, got %#v", events)
	}
	posed, ok := events[0].(ProblemPosedEvent)
	if !ok {
		t.Fatalf("expected ProblemPosedEvent, got %#v", events[0])
	}
	if posed.BrickID != target {
		t.Fatalf("posed brick %d, expected %d", posed.BrickID, target)
	}
	return posed
}

func TestNewSession(t *testing.T) {
	s, _ := newTestSession(t, 1)

	if s.Level() != 1 || s.Score() != 0 || s.Lives() != 6 {
		t.Errorf("level=%d score=%d lives=%d", s.Level(), s.Score(), s.Lives())
	}
	if s.Arena().Len() != 60 || s.Arena().Alive() != 60 {
		t.Errorf("level 1 should have 60 bricks, got %d", s.Arena().Len())
	}
	if s.Phase() != PhasePlaying {
		t.Errorf("phase = %v", s.Phase())
	}
	if s.BallSpeed() != 5.5 {
		t.Errorf("BallSpeed() = %v, expected 5.5", s.BallSpeed())
	}

	b := s.Ball()
	if cx, cy := b.Center(); cx != 512 || cy != 384 {
		t.Errorf("ball center = (%v, %v), expected (512, 384)", cx, cy)
	}
	if b.VY >= 0 {
		t.Errorf("serve should go upward, VY = %v", b.VY)
	}
	if math.Abs(b.Speed()-5.5) > 1e-9 {
		t.Errorf("serve speed = %v", b.Speed())
	}

	p := s.Paddle()
	if p.X != 462 || p.Y != 718 || p.W != 100 {
		t.Errorf("paddle = %+v", p)
	}
}

func TestPaddleMovementClamped(t *testing.T) {
	s, _ := newTestSession(t, 1)

	left := core.NewInputFrame()
	left.Hold(core.ActionLeft)
	for range 100 {
		aimAtNothing(s)
		s.Step(left)
	}
	if s.Paddle().X != 0 {
		t.Errorf("paddle X = %v, expected 0", s.Paddle().X)
	}

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	aimAtNothing(s)
	s.Step(right)
	if s.Paddle().X != 10 {
		t.Errorf("paddle X = %v, expected 10", s.Paddle().X)
	}

	for range 200 {
		aimAtNothing(s)
		s.Step(right)
	}
	if s.Paddle().Right() != 1024 {
		t.Errorf("paddle right = %v, expected 1024", s.Paddle().Right())
	}
}

// aimAtNothing parks the ball in open space so a Step touches nothing.
func aimAtNothing(s *Session) {
	s.ball.Rect = s.ball.CenteredAt(512, 600)
	s.ball.VX, s.ball.VY = 0, -1
}

func TestCorrectAnswerDestroysBrick(t *testing.T) {
	s, clock := newTestSession(t, 7)

	posed := pose(t, s)
	if s.Phase() != PhaseAwaitingAnswer {
		t.Fatalf("phase = %v", s.Phase())
	}
	if p, ok := s.Problem(); !ok || p != posed.Problem {
		t.Fatal("Problem() should return the posed problem")
	}

	// Frozen while waiting
	before := s.Ball()
	if ev := s.Step(core.NewInputFrame()); ev != nil {
		t.Errorf("Step while awaiting answer returned %#v", ev)
	}
	if s.Ball() != before {
		t.Error("ball moved while awaiting answer")
	}

	clock.Advance(2 * time.Second)
	events := s.SubmitAnswer(posed.Problem.Answer)
	if len(events) != 1 {
		t.Fatalf("events = %#v", events)
	}
	destroyed, ok := events[0].(BrickDestroyedEvent)
	if !ok {
		t.Fatalf("expected BrickDestroyedEvent, got %#v", events[0])
	}
	if destroyed.Points != 170 || destroyed.Latency != 2*time.Second {
		t.Errorf("destroyed = %+v, expected 170 points after 2s", destroyed)
	}
	if s.Score() != 170 || s.Arena().Alive() != 59 {
		t.Errorf("score=%d alive=%d", s.Score(), s.Arena().Alive())
	}
	if s.Arena().Brick(posed.BrickID).Alive {
		t.Error("brick should be dead")
	}
	if s.Phase() != PhasePlaying {
		t.Errorf("phase = %v", s.Phase())
	}
	if s.Ball().VY <= 0 {
		t.Errorf("ball hit the brick bottom and should move down, VY = %v", s.Ball().VY)
	}
	if math.Abs(s.Ball().Speed()-s.BallSpeed()) > 1e-9 {
		t.Errorf("speed after brick = %v, expected %v", s.Ball().Speed(), s.BallSpeed())
	}
}

func TestWrongAnswerCostsLife(t *testing.T) {
	s, _ := newTestSession(t, 11)

	posed := pose(t, s)
	events := s.SubmitAnswer(posed.Problem.Answer + 1)
	if len(events) != 2 {
		t.Fatalf("events = %#v", events)
	}
	if _, ok := events[0].(WrongAnswerEvent); !ok {
		t.Errorf("first event = %#v", events[0])
	}
	lost, ok := events[1].(LifeLostEvent)
	if !ok || lost.LivesLeft != 5 {
		t.Errorf("second event = %#v", events[1])
	}
	if !s.Arena().Brick(posed.BrickID).Alive {
		t.Error("brick should survive a wrong answer")
	}
	if cx, cy := s.Ball().Center(); cx != 512 || cy != 384 {
		t.Errorf("ball should be re-centered, at (%v, %v)", cx, cy)
	}
	if s.Score() != 0 {
		t.Errorf("score = %d", s.Score())
	}
}

func TestSixWrongAnswersEndTheGame(t *testing.T) {
	s, _ := newTestSession(t, 5)

	var gameOver int
	for i := 1; i <= 6; i++ {
		posed := pose(t, s)
		events := s.SubmitAnswer(posed.Problem.Answer - 1)
		for _, ev := range events {
			if over, ok := ev.(GameOverEvent); ok {
				gameOver++
				if i != 6 {
					t.Fatalf("game over after %d wrong answers", i)
				}
				if over.Level != 1 {
					t.Errorf("GameOverEvent level = %d", over.Level)
				}
			}
		}
	}

	if gameOver != 1 {
		t.Errorf("GameOverEvent emitted %d times", gameOver)
	}
	if s.Lives() != 0 || s.Phase() != PhaseOver {
		t.Errorf("lives=%d phase=%v", s.Lives(), s.Phase())
	}
	if ev := s.Step(core.NewInputFrame()); ev != nil {
		t.Error("finished session should not step")
	}
}

func TestClearingLevelOne(t *testing.T) {
	s, clock := newTestSession(t, 3)

	var complete, over int
	for s.Phase() != PhaseOver {
		posed := pose(t, s)
		clock.Advance(time.Second)
		for _, ev := range s.SubmitAnswer(posed.Problem.Answer) {
			switch ev.(type) {
			case LevelCompleteEvent:
				complete++
			case GameOverEvent:
				over++
			}
		}
	}

	if complete != 1 || over != 0 {
		t.Errorf("LevelComplete=%d GameOver=%d", complete, over)
	}
	if s.Arena().Alive() != 0 {
		t.Errorf("%d bricks left", s.Arena().Alive())
	}
	// 60 answers at 1s each: 100 + 80 + 10
	if s.Score() != 60*190 {
		t.Errorf("score = %d, expected %d", s.Score(), 60*190)
	}
	if s.Lives() != 6 {
		t.Errorf("lives = %d", s.Lives())
	}
}

func TestAdvanceLevel(t *testing.T) {
	s, _ := newTestSession(t, 3)
	s.score = 500
	s.lives = 2

	s.AdvanceLevel()

	if s.Level() != 2 || s.Score() != 500 {
		t.Errorf("level=%d score=%d", s.Level(), s.Score())
	}
	if s.Lives() != 6 {
		t.Errorf("lives should reset to 6, got %d", s.Lives())
	}
	if s.Arena().Len() != 70 {
		t.Errorf("level 2 should have 70 bricks, got %d", s.Arena().Len())
	}
	if s.BallSpeed() != 6 {
		t.Errorf("level 2 speed = %v", s.BallSpeed())
	}
	if s.Phase() != PhasePlaying {
		t.Errorf("phase = %v", s.Phase())
	}
}

func TestAdvanceLevelKeepsLivesWhenConfigured(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Gameplay.ResetLivesOnLevelUp = false
	s := NewSession(cfg, core.NewSimpleRNG(1), nil)
	s.lives = 2

	s.AdvanceLevel()
	if s.Lives() != 2 {
		t.Errorf("lives = %d, expected 2", s.Lives())
	}
}

func TestCancelLeavesStateUntouched(t *testing.T) {
	s, _ := newTestSession(t, 9)

	posed := pose(t, s)
	ballAtCollision := s.Ball()

	events := s.CancelAnswer()
	if len(events) != 1 {
		t.Fatalf("events = %#v", events)
	}
	if _, ok := events[0].(ProblemCancelledEvent); !ok {
		t.Errorf("event = %#v", events[0])
	}
	if s.Ball() != ballAtCollision {
		t.Error("cancel must not move the ball")
	}
	if !s.Arena().Brick(posed.BrickID).Alive || s.Lives() != 6 || s.Score() != 0 {
		t.Error("cancel must not destroy, penalize or score")
	}
	if s.Phase() != PhasePlaying {
		t.Errorf("phase = %v", s.Phase())
	}

	// The ball is still inside the brick: the next frame must not re-prompt
	for _, ev := range s.Step(core.NewInputFrame()) {
		if p, ok := ev.(ProblemPosedEvent); ok && p.BrickID == posed.BrickID {
			t.Error("cancelled brick re-prompted while the ball was still inside it")
		}
	}
}

func TestAnswerWithoutProblemIsIgnored(t *testing.T) {
	s, _ := newTestSession(t, 1)
	if s.SubmitAnswer(3) != nil || s.CancelAnswer() != nil {
		t.Error("answers without an open problem should be ignored")
	}
}

func TestBottomCostsLife(t *testing.T) {
	s, _ := newTestSession(t, 2)
	s.ball.Rect = s.ball.CenteredAt(100, 760)
	s.ball.VX, s.ball.VY = 0, 5

	events := s.Step(core.NewInputFrame())
	if len(events) != 1 {
		t.Fatalf("events = %#v", events)
	}
	if lost, ok := events[0].(LifeLostEvent); !ok || lost.LivesLeft != 5 {
		t.Errorf("event = %#v", events[0])
	}
}

func TestOneBrickPerFrame(t *testing.T) {
	s, _ := newTestSession(t, 4)
	// Straddle bricks 0 and 1 in the first row
	s.ball.Rect = s.ball.CenteredAt(132.5, 65)
	s.ball.VX, s.ball.VY = 0, -1

	events := s.Step(core.NewInputFrame())
	if len(events) != 1 {
		t.Fatalf("events = %#v", events)
	}
	posed, ok := events[0].(ProblemPosedEvent)
	if !ok || posed.BrickID != 0 {
		t.Errorf("expected brick 0 posed, got %#v", events[0])
	}
	if s.Arena().Alive() != 60 {
		t.Error("no brick may be removed before the answer")
	}
}

func TestSessionDeterminism(t *testing.T) {
	run := func() Snapshot {
		s, clock := newTestSession(t, 12345)
		in := core.NewInputFrame()
		for i := range 2000 {
			in.Clear()
			if i%7 < 3 {
				in.Hold(core.ActionLeft)
			} else {
				in.Hold(core.ActionRight)
			}
			for _, ev := range s.Step(in) {
				if p, ok := ev.(ProblemPosedEvent); ok {
					clock.Advance(1500 * time.Millisecond)
					answer := p.Problem.Answer
					if i%3 == 0 {
						answer++
					}
					s.SubmitAnswer(answer)
				}
			}
			if s.Phase() == PhaseOver {
				break
			}
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if a.Hash() != b.Hash() {
		t.Errorf("determinism failed: %d != %d", a.Hash(), b.Hash())
	}
	if a.Score != b.Score || a.Lives != b.Lives || a.Frames != b.Frames {
		t.Errorf("runs differ: %+v vs %+v", a, b)
	}
}
