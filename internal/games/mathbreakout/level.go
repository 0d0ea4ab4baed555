// Package mathbreakout implements Math Breakout: a brick breaker where every
// brick asks an arithmetic question before it breaks.
package mathbreakout

import (
	"github.com/vovakirdan/math-breakout/internal/config"
	"github.com/vovakirdan/math-breakout/internal/core"
)

// Palette colors brick rows, cycling every five rows.
var Palette = []core.Color{
	core.ColorRed,
	core.ColorBlue,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorPurple,
}

// Brick is a single brick. Only Alive changes after creation.
type Brick struct {
	ID     int
	Row    int
	Col    int
	Bounds core.Rect
	Color  core.Color
	Alive  bool
}

// BuildLayout creates the bricks for a grid of the given number of rows,
// in row-major order.
func BuildLayout(cfg config.BricksConfig, rows int) []Brick {
	bricks := make([]Brick, 0, rows*cfg.Columns)
	for row := range rows {
		for col := range cfg.Columns {
			bricks = append(bricks, Brick{
				ID:  len(bricks),
				Row: row,
				Col: col,
				Bounds: core.NewRect(
					cfg.OffsetX+float64(col)*(cfg.Width+cfg.Gap),
					cfg.OffsetY+float64(row)*(cfg.Height+cfg.Gap),
					cfg.Width,
					cfg.Height,
				),
				Color: Palette[row%len(Palette)],
				Alive: true,
			})
		}
	}
	return bricks
}

// Arena holds the bricks of a level in a stable-indexed slice.
// Destroying a brick marks it dead; indices never shift.
type Arena struct {
	bricks []Brick
	alive  int
}

// NewArena takes ownership of bricks.
func NewArena(bricks []Brick) *Arena {
	a := &Arena{bricks: bricks}
	for _, b := range bricks {
		if b.Alive {
			a.alive++
		}
	}
	return a
}

// Len returns the total number of bricks, dead or alive.
func (a *Arena) Len() int {
	return len(a.bricks)
}

// Alive returns the number of bricks still standing.
func (a *Arena) Alive() int {
	return a.alive
}

// Brick returns the brick at index i.
func (a *Arena) Brick(i int) Brick {
	return a.bricks[i]
}

// Each calls fn for every living brick in creation order.
func (a *Arena) Each(fn func(Brick)) {
	for _, b := range a.bricks {
		if b.Alive {
			fn(b)
		}
	}
}

// Kill marks brick i dead. It returns false if it was already dead.
func (a *Arena) Kill(i int) bool {
	if i < 0 || i >= len(a.bricks) || !a.bricks[i].Alive {
		return false
	}
	a.bricks[i].Alive = false
	a.alive--
	return true
}

// FirstHit returns the index of the first living brick in creation order that
// overlaps r, ignoring index skip. It returns -1 when nothing is hit.
func (a *Arena) FirstHit(r core.Rect, skip int) int {
	for i, b := range a.bricks {
		if i == skip || !b.Alive {
			continue
		}
		if r.Intersects(b.Bounds) {
			return i
		}
	}
	return -1
}
