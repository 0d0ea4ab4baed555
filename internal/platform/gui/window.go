// Package gui runs Math Breakout in a desktop window with Ebitengine.
package gui

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/math-breakout/internal/core"
)

// binding ties an action to the keys that trigger it.
type binding struct {
	action core.Action
	keys   []ebiten.Key
}

var bindings = []binding{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ActionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{core.ActionConfirm, []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
	{core.ActionBack, []ebiten.Key{ebiten.KeyEscape}},
	{core.ActionBackspace, []ebiten.Key{ebiten.KeyBackspace}},
	{core.ActionPause, []ebiten.Key{ebiten.KeySpace}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}},
}

// Window is the ebiten.Game hosting a core.Game.
type Window struct {
	game     core.Game
	renderer *ImageRenderer
	frame    core.InputFrame
	width    int
	height   int
	tps      int
	logger   *log.Logger
}

// NewWindow creates a window for a width x height playfield.
func NewWindow(game core.Game, width, height int, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Window{
		game:     game,
		renderer: &ImageRenderer{},
		frame:    core.NewInputFrame(),
		width:    width,
		height:   height,
		logger:   logger,
	}
}

// Update polls input and advances the game one frame.
func (w *Window) Update() error {
	w.frame.Clear()
	w.poll(&w.frame)
	w.game.Update(w.frame)

	if w.game.Quit() {
		return ebiten.Termination
	}
	if rate := w.game.TickRate(); rate > 0 && rate != w.tps {
		ebiten.SetTPS(rate)
		w.tps = rate
		w.logger.Debug("tick rate changed", "tps", rate)
	}
	return nil
}

// poll reads keyboard, typed characters and mouse clicks into frame.
func (w *Window) poll(frame *core.InputFrame) {
	for _, b := range bindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				frame.Set(b.action)
			}
			if ebiten.IsKeyPressed(k) {
				frame.Hold(b.action)
			}
		}
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		frame.Type(r)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		frame.Click(float64(x), float64(y))
	}
}

// Draw renders the game onto the window.
func (w *Window) Draw(screen *ebiten.Image) {
	w.renderer.dst = screen
	w.game.Render(w.renderer)
}

// Layout keeps the playfield resolution whatever the window size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

// Run opens the window and blocks until the game quits or the window closes.
func Run(game core.Game, width, height int, logger *log.Logger) error {
	win := NewWindow(game, width, height, logger)

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Math Breakout")
	ebiten.SetTPS(game.TickRate())
	win.tps = game.TickRate()

	err := ebiten.RunGame(win)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
