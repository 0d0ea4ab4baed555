package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/math-breakout/internal/core"
)

func TestCellRendererScalesRects(t *testing.T) {
	// 800x400 playfield on 100x50 cells: 8 px per cell both ways
	r := NewCellRenderer(800, 400, 100, 50)

	r.DrawRect(core.NewRect(80, 40, 160, 24), core.ColorRed)
	r.Present()

	s := r.Front()
	cell := s.GetCell(10, 5)
	if cell.Rune != blockGlyph || cell.Color != core.ColorRed {
		t.Errorf("top-left cell = %+v", cell)
	}
	if s.GetCell(29, 7).Rune != blockGlyph {
		t.Error("bottom-right cell should be filled")
	}
	if s.GetCell(30, 5).Rune != ' ' || s.GetCell(10, 8).Rune != ' ' {
		t.Error("rect spilled outside its bounds")
	}
}

func TestCellRendererTinyShapes(t *testing.T) {
	r := NewCellRenderer(800, 400, 100, 50)

	r.DrawRect(core.NewRect(0, 0, 2, 2), core.ColorBlue)
	r.DrawEllipse(core.NewRect(400, 200, 4, 4), core.ColorWhite)
	r.DrawEllipse(core.NewRect(240, 240, 16, 16), core.ColorWhite)
	r.Present()

	s := r.Front()
	if s.GetCell(0, 0).Rune != blockGlyph {
		t.Error("sub-cell rect should still cover one cell")
	}
	if s.GetCell(50, 25).Rune != dotGlyph {
		t.Errorf("star cell = %q", s.GetCell(50, 25).Rune)
	}
	if s.GetCell(31, 31).Rune != ballGlyph {
		t.Errorf("ball cell = %q", s.GetCell(31, 31).Rune)
	}
}

func TestCellRendererTextAndMeasure(t *testing.T) {
	r := NewCellRenderer(800, 400, 100, 50)

	w, h := r.MeasureText("hello", core.FontBody)
	if w != 40 || h != 8 {
		t.Errorf("MeasureText = (%v, %v), expected (40, 8)", w, h)
	}

	r.DrawRect(core.NewRect(0, 0, 800, 400), core.ColorWhite)
	r.DrawText("12 + 3 = ?", core.FontBody, core.ColorBlack, 80, 80)
	r.Present()

	row := r.Front().Row(10)
	if !strings.Contains(row, "12 + 3 = ?") {
		t.Errorf("row 10 = %q", row)
	}
	if c := r.Front().GetCell(10, 10).Color; c == core.ColorBlack {
		t.Error("black text should be brightened")
	}
}

func TestCellRendererDoubleBuffer(t *testing.T) {
	r := NewCellRenderer(100, 100, 10, 10)

	r.DrawText("A", core.FontBody, core.ColorWhite, 0, 0)
	if r.Front().Get(0, 0) == 'A' {
		t.Error("drawing must not reach the front buffer before Present")
	}
	r.Present()
	if r.Front().Get(0, 0) != 'A' {
		t.Error("Present should show the frame")
	}

	r.DrawText("B", core.FontBody, core.ColorWhite, 10, 0)
	r.Present()
	if r.Front().Get(0, 0) == 'A' {
		t.Error("each frame starts from a clear buffer")
	}
}

func TestCellRendererOverlayDims(t *testing.T) {
	r := NewCellRenderer(100, 100, 10, 10)
	r.DrawRect(core.NewRect(0, 0, 100, 100), core.ColorRed)
	r.DrawOverlay(core.NewRect(0, 0, 50, 100), core.ColorBlack, 160)
	r.Present()

	if c := r.Front().GetCell(0, 0).Color; c != core.ColorGray {
		t.Errorf("dimmed cell color = %v", c)
	}
	if c := r.Front().GetCell(9, 0).Color; c != core.ColorRed {
		t.Errorf("cell outside overlay = %v", c)
	}
}

func TestRenderScreenGroupsColors(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.SetColored(0, 0, 'a', core.ColorRed)
	s.SetColored(1, 0, 'b', core.ColorRed)
	s.Set(2, 0, 'c')

	out := RenderScreen(s)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
	if !strings.Contains(out, "ab") || !strings.Contains(out, "c") {
		t.Errorf("output lost text: %q", out)
	}
}
