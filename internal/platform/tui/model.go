package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/math-breakout/internal/core"
)

// Model is the Bubble Tea model hosting the game.
type Model struct {
	game       core.Game
	renderer   *CellRenderer
	keyMapper  *KeyMapper
	inputFrame *core.InputFrame
	logger     *log.Logger
	now        func() time.Time
	quitting   bool
}

// NewModel creates a model for a fieldW x fieldH playfield shown on a
// cols x rows terminal.
func NewModel(game core.Game, fieldW, fieldH, cols, rows int, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	frame := core.NewInputFrame()
	return Model{
		game:       game,
		renderer:   NewCellRenderer(fieldW, fieldH, cols, rows),
		keyMapper:  NewKeyMapper(),
		inputFrame: &frame,
		logger:     logger,
		now:        time.Now,
	}
}

// Init renders the first frame and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Render(m.renderer)
	return tickCmd(m.game.TickRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.renderer.Resize(msg.Width, msg.Height)
		m.game.Render(m.renderer)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records keyboard input for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if m.keyMapper.MapKeyToFrame(msg, m.inputFrame, m.now()) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse converts left clicks to playfield coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	sx, sy := m.renderer.scale()
	if sx == 0 || sy == 0 {
		return m, nil
	}
	m.inputFrame.Click((float64(msg.X)+0.5)/sx, (float64(msg.Y)+0.5)/sy)
	return m, nil
}

// handleTick advances the game by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.keyMapper.ApplyHeld(m.inputFrame, m.now())
	m.game.Update(*m.inputFrame)
	m.inputFrame.Clear()

	if m.game.Quit() {
		m.quitting = true
		return m, tea.Quit
	}

	m.game.Render(m.renderer)
	return m, tickCmd(m.game.TickRate())
}

// saveScreenshot saves the current frame as plain text.
func (m *Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".mathbreakout", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("mathbreakout_%s.txt", m.now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.renderer.Front().String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the last presented frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.renderer.Front())
}

// Run starts the Bubble Tea program for game.
func Run(game core.Game, fieldW, fieldH, cols, rows int, logger *log.Logger) error {
	model := NewModel(game, fieldW, fieldH, cols, rows, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks select menu entries
	)

	_, err := p.Run()
	return err
}
