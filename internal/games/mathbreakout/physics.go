package mathbreakout

import (
	"math"

	"github.com/vovakirdan/math-breakout/internal/core"
)

// Physics constants.
const (
	// MaxBounceAngle is the steepest paddle rebound, measured from vertical.
	MaxBounceAngle = math.Pi / 3
	// separation keeps a resolved ball from touching what it hit.
	separation = 1.0
)

// Ball is the bounding box of the ball plus its velocity in pixels per frame.
type Ball struct {
	core.Rect
	VX, VY float64
}

// Speed returns the velocity magnitude.
func (b Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// Advance moves the ball by one frame of velocity.
func (b Ball) Advance() Ball {
	b.Rect = b.Translate(b.VX, b.VY)
	return b
}

// Side identifies which face of a brick the ball struck.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Collision is the outcome of resolving the ball against a brick.
// Ball holds the corrected position and reflected velocity.
type Collision struct {
	Hit  bool
	Side Side
	Ball Ball
}

// ResolveWalls bounces the ball off the left, right and top walls.
// Horizontal and vertical contacts are handled independently, horizontal first.
// The bottom edge is a life loss, not a wall, and is left to the caller.
func ResolveWalls(b Ball, screenW float64) (Ball, bool) {
	hit := false

	if b.X <= 0 {
		b.X = 0
		b.VX = math.Abs(b.VX)
		hit = true
	} else if b.Right() >= screenW {
		b.X = screenW - b.W
		b.VX = -math.Abs(b.VX)
		hit = true
	}

	if b.Y <= 0 {
		b.Y = 0
		b.VY = math.Abs(b.VY)
		hit = true
	}

	return b, hit
}

// ResolvePaddle rebounds the ball off the paddle when they overlap.
// The rebound angle depends on where the ball struck: dead center sends it
// straight up, the edges up to MaxBounceAngle to either side.
func ResolvePaddle(b Ball, paddle core.Rect, speed float64) (Ball, bool) {
	if !b.Intersects(paddle) {
		return b, false
	}

	rel := core.ClampF((paddle.CenterX()-b.CenterX())/(paddle.W/2), -1, 1)
	vx, vy := Velocity(speed, rel*MaxBounceAngle)
	b.VX = -vx
	b.VY = vy
	b.Y = paddle.Y - b.H - separation

	return b, true
}

// Velocity returns the components of an upward velocity of the given speed,
// tilted by angle radians from vertical (positive tilts right).
func Velocity(speed, angle float64) (vx, vy float64) {
	return speed * math.Sin(angle), -speed * math.Cos(angle)
}

// ResolveBrick computes the bounce of the ball off a brick.
// The face with the smallest penetration wins; ties go to the first of
// left, right, top, bottom. The ball is moved flush outside that face and the
// matching velocity component points away from the brick.
func ResolveBrick(b Ball, brick core.Rect) Collision {
	if !b.Intersects(brick) {
		return Collision{Ball: b}
	}

	penetration := [...]struct {
		side  Side
		depth float64
	}{
		{SideLeft, b.Right() - brick.X},
		{SideRight, brick.Right() - b.X},
		{SideTop, b.Bottom() - brick.Y},
		{SideBottom, brick.Bottom() - b.Y},
	}

	best := penetration[0]
	for _, p := range penetration[1:] {
		if p.depth < best.depth {
			best = p
		}
	}

	switch best.side {
	case SideLeft:
		b.X = brick.X - b.W - separation
		b.VX = -math.Abs(b.VX)
	case SideRight:
		b.X = brick.Right() + separation
		b.VX = math.Abs(b.VX)
	case SideTop:
		b.Y = brick.Y - b.H - separation
		b.VY = -math.Abs(b.VY)
	case SideBottom:
		b.Y = brick.Bottom() + separation
		b.VY = math.Abs(b.VY)
	}

	return Collision{Hit: true, Side: best.side, Ball: b}
}

// Renormalize rescales the velocity to speed, keeping its direction.
// A stationary ball is launched straight up.
func Renormalize(b Ball, speed float64) Ball {
	mag := b.Speed()
	if mag == 0 {
		b.VX, b.VY = 0, -speed
		return b
	}
	k := speed / mag
	b.VX *= k
	b.VY *= k
	return b
}
