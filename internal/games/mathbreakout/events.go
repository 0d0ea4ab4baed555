package mathbreakout

import "time"

// Event is something that happened during a session frame or answer.
// The state machine reacts to events; the session never looks at the UI.
type Event interface {
	sessionEvent()
}

// ProblemPosedEvent is emitted when the ball hits a brick and the player
// must answer before play continues.
type ProblemPosedEvent struct {
	BrickID int
	Problem MathProblem
}

func (ProblemPosedEvent) sessionEvent() {}

// BrickDestroyedEvent is emitted after a correct answer.
type BrickDestroyedEvent struct {
	BrickID int
	Points  int
	Latency time.Duration
}

func (BrickDestroyedEvent) sessionEvent() {}

// WrongAnswerEvent is emitted after an incorrect answer. A LifeLostEvent or
// GameOverEvent always follows it.
type WrongAnswerEvent struct {
	Problem MathProblem
	Given   int
}

func (WrongAnswerEvent) sessionEvent() {}

// ProblemCancelledEvent is emitted when the player closes the dialog
// without answering.
type ProblemCancelledEvent struct {
	BrickID int
}

func (ProblemCancelledEvent) sessionEvent() {}

// LifeLostEvent is emitted when a life is lost and lives remain.
type LifeLostEvent struct {
	LivesLeft int
}

func (LifeLostEvent) sessionEvent() {}

// GameOverEvent is emitted when the last life is lost.
type GameOverEvent struct {
	Score int
	Level int
}

func (GameOverEvent) sessionEvent() {}

// LevelCompleteEvent is emitted once, when the last brick of a level is destroyed.
type LevelCompleteEvent struct {
	Level int
	Score int
}

func (LevelCompleteEvent) sessionEvent() {}
