package mathbreakout

import (
	"testing"

	"github.com/vovakirdan/math-breakout/internal/config"
	"github.com/vovakirdan/math-breakout/internal/core"
)

func TestBuildLayoutGeometry(t *testing.T) {
	cfg := config.DefaultConfig().Bricks
	bricks := BuildLayout(cfg, 6)

	if len(bricks) != 60 {
		t.Fatalf("len = %d, expected 60", len(bricks))
	}

	first := bricks[0]
	if first.Bounds != core.NewRect(50, 50, 80, 30) {
		t.Errorf("first brick = %+v", first.Bounds)
	}

	// Row 1, column 2
	b := bricks[12]
	if b.Row != 1 || b.Col != 2 {
		t.Fatalf("brick 12 at row %d col %d", b.Row, b.Col)
	}
	if b.Bounds.X != 50+2*85 || b.Bounds.Y != 50+35 {
		t.Errorf("brick 12 at (%v, %v)", b.Bounds.X, b.Bounds.Y)
	}

	for i, b := range bricks {
		if b.ID != i || !b.Alive {
			t.Errorf("brick %d: ID=%d Alive=%v", i, b.ID, b.Alive)
		}
		if b.Color != Palette[b.Row%len(Palette)] {
			t.Errorf("brick %d has color %v", i, b.Color)
		}
	}

	// Rightmost brick stays inside a 1024 wide screen
	last := bricks[len(bricks)-1]
	if last.Bounds.Right() > 1024 {
		t.Errorf("last brick right edge %v exceeds screen", last.Bounds.Right())
	}
}

func TestPaletteCyclesAfterFiveRows(t *testing.T) {
	bricks := BuildLayout(config.DefaultConfig().Bricks, 12)
	if bricks[50].Color != core.ColorRed {
		t.Errorf("row 5 color = %v, expected red", bricks[50].Color)
	}
	if bricks[40].Color != core.ColorPurple {
		t.Errorf("row 4 color = %v, expected purple", bricks[40].Color)
	}
}

func TestArenaKill(t *testing.T) {
	a := NewArena(BuildLayout(config.DefaultConfig().Bricks, 2))

	if a.Len() != 20 || a.Alive() != 20 {
		t.Fatalf("Len=%d Alive=%d", a.Len(), a.Alive())
	}
	if !a.Kill(3) {
		t.Error("Kill(3) should succeed")
	}
	if a.Kill(3) {
		t.Error("second Kill(3) should report false")
	}
	if a.Kill(-1) || a.Kill(99) {
		t.Error("out of range Kill should report false")
	}
	if a.Alive() != 19 || a.Len() != 20 {
		t.Errorf("after kill Len=%d Alive=%d", a.Len(), a.Alive())
	}
	if a.Brick(4).ID != 4 {
		t.Error("indices must stay stable after a kill")
	}

	count := 0
	a.Each(func(b Brick) {
		if b.ID == 3 {
			t.Error("Each visited a dead brick")
		}
		count++
	})
	if count != 19 {
		t.Errorf("Each visited %d bricks, expected 19", count)
	}
}

func TestArenaFirstHitOrder(t *testing.T) {
	a := NewArena(BuildLayout(config.DefaultConfig().Bricks, 1))

	// Straddles brick 0 (x 50..130) and brick 1 (x 135..215)
	box := core.NewRect(120, 55, 20, 20)
	if got := a.FirstHit(box, -1); got != 0 {
		t.Errorf("FirstHit = %d, expected 0", got)
	}
	if got := a.FirstHit(box, 0); got != 1 {
		t.Errorf("FirstHit skipping 0 = %d, expected 1", got)
	}

	a.Kill(0)
	if got := a.FirstHit(box, -1); got != 1 {
		t.Errorf("FirstHit after kill = %d, expected 1", got)
	}

	if got := a.FirstHit(core.NewRect(500, 500, 20, 20), -1); got != -1 {
		t.Errorf("FirstHit in empty space = %d, expected -1", got)
	}
}
