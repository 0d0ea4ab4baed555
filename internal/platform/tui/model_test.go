package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/math-breakout/internal/core"
)

// stubGame records the frames it receives.
type stubGame struct {
	frames  []core.InputFrame
	renders int
	rate    int
	quit    bool
}

func (g *stubGame) Update(in core.InputFrame) {
	cp := core.NewInputFrame()
	for a := range in.Actions {
		cp.Set(a)
	}
	for a := range in.Held {
		cp.Hold(a)
	}
	cp.Chars = append(cp.Chars, in.Chars...)
	cp.Pointer = in.Pointer
	g.frames = append(g.frames, cp)
}

func (g *stubGame) Render(r core.Renderer) {
	g.renders++
	r.DrawText("frame", core.FontBody, core.ColorWhite, 0, 0)
	r.Present()
}

func (g *stubGame) TickRate() int { return g.rate }
func (g *stubGame) Quit() bool    { return g.quit }

func TestModelTickDeliversInput(t *testing.T) {
	game := &stubGame{rate: 60}
	m := NewModel(game, 1000, 500, 100, 50, nil)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("5")})
	next, cmd := next.Update(TickMsg(now))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	if len(game.frames) != 1 {
		t.Fatalf("frames = %d", len(game.frames))
	}
	f := game.frames[0]
	if !f.Has(core.ActionLeft) || string(f.Chars) != "5" {
		t.Errorf("frame = %+v", f)
	}

	// The paddle key stays held on the next tick, but is no longer a press
	next.Update(TickMsg(now))
	f = game.frames[1]
	if f.Has(core.ActionLeft) || !f.Down(core.ActionLeft) || len(f.Chars) != 0 {
		t.Errorf("second frame = %+v", f)
	}

	if v := next.View(); v == "" {
		t.Error("view should show the presented frame")
	}
}

func TestModelQuits(t *testing.T) {
	game := &stubGame{rate: 30}
	m := NewModel(game, 1000, 500, 100, 50, nil)

	game.quit = true
	next, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit")
	}
	if next.View() != "" {
		t.Error("view should be empty after quitting")
	}

	game.quit = false
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
}

func TestModelMouseClick(t *testing.T) {
	game := &stubGame{rate: 30}
	m := NewModel(game, 800, 400, 100, 50, nil)

	next, _ := m.Update(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	next.Update(TickMsg(time.Now()))

	p := game.frames[0].Pointer
	if !p.Clicked || p.X != 84 || p.Y != 44 {
		t.Errorf("pointer = %+v, expected click at (84, 44)", p)
	}
}
