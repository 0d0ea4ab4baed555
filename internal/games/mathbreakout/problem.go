package mathbreakout

import (
	"fmt"

	"github.com/vovakirdan/math-breakout/internal/core"
)

// Operator is one of the four arithmetic operations.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
)

// Symbol returns the operator as displayed to the player.
func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "×"
	case OpDiv:
		return "÷"
	default:
		return "?"
	}
}

// divisionMinLevel is the first level whose pool includes division.
const divisionMinLevel = 4

// MathProblem is a single arithmetic challenge.
type MathProblem struct {
	A, B   int
	Op     Operator
	Answer int
}

// String renders the prompt, e.g. "12 × 4 = ?".
func (p MathProblem) String() string {
	return fmt.Sprintf("%d %s %d = ?", p.A, p.Op.Symbol(), p.B)
}

// Check reports whether n is the correct answer.
func (p MathProblem) Check(n int) bool {
	return n == p.Answer
}

// ProblemGenerator builds problems whose operand ranges grow with the level.
type ProblemGenerator struct {
	rng core.Source
}

// NewProblemGenerator creates a generator drawing from rng.
func NewProblemGenerator(rng core.Source) *ProblemGenerator {
	return &ProblemGenerator{rng: rng}
}

// Operators returns the operator pool for a level.
func Operators(level int) []Operator {
	if level >= divisionMinLevel {
		return []Operator{OpAdd, OpSub, OpMul, OpDiv}
	}
	return []Operator{OpAdd, OpSub, OpMul}
}

// Generate returns a new problem for the given level. Levels below 1 are
// treated as level 1.
func (g *ProblemGenerator) Generate(level int) MathProblem {
	if level < 1 {
		level = 1
	}
	pool := Operators(level)
	op := pool[g.rng.Intn(len(pool))]

	var a, b, answer int
	switch op {
	case OpAdd:
		a = g.between(1, 20+5*level)
		b = g.between(1, 20+5*level)
		answer = a + b
	case OpSub:
		a = g.between(10, 50+10*level)
		b = g.between(1, a)
		answer = a - b
	case OpMul:
		a = g.between(1, 10+level)
		b = g.between(1, 10+level)
		answer = a * b
	case OpDiv:
		b = g.between(1, 10)
		answer = g.between(1, 10)
		a = b * answer
	}

	return MathProblem{A: a, B: b, Op: op, Answer: answer}
}

// between returns a uniform int in [lo, hi].
func (g *ProblemGenerator) between(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}
