package mathbreakout

import (
	"fmt"
	"io"
	"strconv"
	"time"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/math-breakout/internal/config"
	"github.com/vovakirdan/math-breakout/internal/core"
	"github.com/vovakirdan/math-breakout/internal/highscore"
)

// State is the top-level screen the game is on.
type State int

const (
	StateMenu          State = iota // Main menu and its side views
	StatePlaying                    // Session running
	StatePaused                     // Session frozen, waiting for resume or quit
	StateAnswerPrompt               // Answer dialog open
	StateLevelComplete              // Waiting for the player to continue
	StateGameOver                   // Summary shown, score saved
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateAnswerPrompt:
		return "answer_prompt"
	case StateLevelComplete:
		return "level_complete"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// MenuAction is an entry of the main menu.
type MenuAction int

const (
	MenuPlay MenuAction = iota
	MenuHighScores
	MenuInstructions
	MenuQuit
)

// Label returns the text shown for the action.
func (a MenuAction) Label() string {
	switch a {
	case MenuPlay:
		return "Play"
	case MenuHighScores:
		return "High Scores"
	case MenuInstructions:
		return "Instructions"
	case MenuQuit:
		return "Quit"
	default:
		return ""
	}
}

// MenuActions lists the main menu in display order.
func MenuActions() []MenuAction {
	return []MenuAction{MenuPlay, MenuHighScores, MenuInstructions, MenuQuit}
}

// MenuView selects what the menu state shows.
type MenuView int

const (
	ViewMain MenuView = iota
	ViewHighScores
	ViewInstructions
)

// maxAnswerLen bounds the answer buffer, sign included.
const maxAnswerLen = 7

// flashDuration is how long answer feedback stays on screen.
const flashDuration = 1500 * time.Millisecond

// star is one background dot.
type star struct {
	x, y, r float64
}

// Options carries the collaborators of a Machine. Nil fields get defaults.
type Options struct {
	Sound  core.SoundPlayer
	Store  highscore.Store
	Clock  core.Clock
	RNG    core.Source
	Logger *log.Logger
}

// Machine drives menus, sessions and the answer dialog. Frontends call
// Update once per frame with the frame's input, then Render.
type Machine struct {
	cfg    config.Config
	sound  core.SoundPlayer
	store  highscore.Store
	clock  core.Clock
	rng    core.Source
	logger *log.Logger

	state   State
	view    MenuView
	cursor  int
	session *Session
	answer  []rune
	stars   []star

	scores    []highscore.Entry
	final     highscore.Entry
	newRecord bool

	flash      string
	flashColor core.Color
	flashUntil time.Time

	quit bool
}

// NewMachine creates a machine showing the main menu.
func NewMachine(cfg config.Config, opts Options) *Machine {
	if opts.Sound == nil {
		opts.Sound = core.NopSound{}
	}
	if opts.Store == nil {
		opts.Store = &highscore.MemoryStore{}
	}
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	if opts.RNG == nil {
		opts.RNG = core.NewSimpleRNG(opts.Clock.Now().UnixNano())
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := &Machine{
		cfg:    cfg,
		sound:  opts.Sound,
		store:  opts.Store,
		clock:  opts.Clock,
		rng:    opts.RNG,
		logger: opts.Logger,
		state:  StateMenu,
	}
	m.stars = m.makeStars(cfg.Display.Stars)
	m.scores = m.loadScores()
	return m
}

func (m *Machine) makeStars(n int) []star {
	w, h := m.cfg.Screen.Width, m.cfg.Screen.Height
	stars := make([]star, n)
	for i := range stars {
		stars[i] = star{
			x: float64(m.rng.Intn(w + 1)),
			y: float64(m.rng.Intn(h + 1)),
			r: float64(1 + m.rng.Intn(3)),
		}
	}
	return stars
}

// loadScores reads the table; failures are logged and yield an empty table.
func (m *Machine) loadScores() []highscore.Entry {
	entries, err := m.store.Load()
	if err != nil {
		m.logger.Error("cannot load high scores", "error", err)
		return []highscore.Entry{}
	}
	return entries
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// View returns the menu view. Only meaningful in StateMenu.
func (m *Machine) View() MenuView { return m.view }

// Cursor returns the highlighted menu entry.
func (m *Machine) Cursor() int { return m.cursor }

// Session returns the running session, or nil in the menu.
func (m *Machine) Session() *Session { return m.session }

// Answer returns the answer typed so far.
func (m *Machine) Answer() string { return string(m.answer) }

// Scores returns the high-score table as last loaded or saved.
func (m *Machine) Scores() []highscore.Entry { return m.scores }

// Quit reports whether the player asked to leave the program.
func (m *Machine) Quit() bool { return m.quit }

// TickRate returns the frame rate the host should drive Update at.
func (m *Machine) TickRate() int {
	if m.state == StatePlaying {
		return m.cfg.Display.PlayingFPS
	}
	return m.cfg.Display.IdleFPS
}

// Update advances one frame.
func (m *Machine) Update(in core.InputFrame) {
	switch m.state {
	case StateMenu:
		m.updateMenu(in)
	case StatePlaying:
		m.updatePlaying(in)
	case StatePaused:
		m.updatePaused(in)
	case StateAnswerPrompt:
		m.updateAnswer(in)
	case StateLevelComplete:
		if in.Has(core.ActionConfirm) || in.Pointer.Clicked {
			m.session.AdvanceLevel()
			m.logger.Info("level started", "level", m.session.Level())
			m.state = StatePlaying
		}
	case StateGameOver:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionBack) || in.Pointer.Clicked {
			m.session = nil
			m.state = StateMenu
			m.view = ViewMain
			m.cursor = 0
		}
	}
}

func (m *Machine) updateMenu(in core.InputFrame) {
	if m.view != ViewMain {
		if in.Has(core.ActionBack) || in.Has(core.ActionConfirm) || in.Pointer.Clicked {
			m.sound.Play(core.CueMenuSelect)
			m.view = ViewMain
		}
		return
	}

	actions := MenuActions()
	switch {
	case in.Has(core.ActionUp):
		m.cursor = (m.cursor - 1 + len(actions)) % len(actions)
		m.sound.Play(core.CueMenuMove)
	case in.Has(core.ActionDown):
		m.cursor = (m.cursor + 1) % len(actions)
		m.sound.Play(core.CueMenuMove)
	case in.Has(core.ActionConfirm):
		m.activate(actions[m.cursor])
	case in.Has(core.ActionQuit):
		m.activate(MenuQuit)
	case in.Pointer.Clicked:
		for i, a := range actions {
			if m.menuItemRect(i).Contains(in.Pointer.X, in.Pointer.Y) {
				m.cursor = i
				m.activate(a)
				return
			}
		}
	}
}

// activate runs a menu action.
func (m *Machine) activate(a MenuAction) {
	m.sound.Play(core.CueMenuSelect)
	switch a {
	case MenuPlay:
		m.startGame()
	case MenuHighScores:
		m.scores = m.loadScores()
		m.view = ViewHighScores
	case MenuInstructions:
		m.view = ViewInstructions
	case MenuQuit:
		m.quit = true
	}
}

func (m *Machine) startGame() {
	cfg := m.cfg
	cfg.Gameplay.StartLevel = max(cfg.Gameplay.StartLevel, 1)
	m.session = NewSession(cfg, m.rng, m.clock)
	m.answer = m.answer[:0]
	m.flash = ""
	m.state = StatePlaying
	m.logger.Info("game started", "level", m.session.Level(), "lives", m.session.Lives())
}

func (m *Machine) updatePlaying(in core.InputFrame) {
	if in.Has(core.ActionPause) || in.Has(core.ActionBack) {
		m.state = StatePaused
		return
	}
	m.handle(m.session.Step(in))
}

func (m *Machine) updatePaused(in core.InputFrame) {
	switch {
	case in.Has(core.ActionQuit):
		m.logger.Info("game abandoned", "score", m.session.Score(), "level", m.session.Level())
		m.session = nil
		m.state = StateMenu
		m.view = ViewMain
	case in.Has(core.ActionPause), in.Has(core.ActionBack), in.Has(core.ActionConfirm):
		m.state = StatePlaying
	}
}

func (m *Machine) updateAnswer(in core.InputFrame) {
	for _, r := range in.Chars {
		m.typeRune(r)
	}
	if in.Has(core.ActionBackspace) && len(m.answer) > 0 {
		m.answer = m.answer[:len(m.answer)-1]
	}

	switch {
	case in.Has(core.ActionBack):
		m.answer = m.answer[:0]
		m.state = StatePlaying
		m.handle(m.session.CancelAnswer())
	case in.Has(core.ActionConfirm):
		n, err := strconv.Atoi(string(m.answer))
		if err != nil {
			return
		}
		m.answer = m.answer[:0]
		m.state = StatePlaying
		m.handle(m.session.SubmitAnswer(n))
	}
}

// typeRune accepts digits anywhere and a minus sign in first position.
func (m *Machine) typeRune(r rune) {
	if len(m.answer) >= maxAnswerLen {
		return
	}
	switch {
	case r >= '0' && r <= '9':
		m.answer = append(m.answer, r)
	case r == '-' && len(m.answer) == 0:
		m.answer = append(m.answer, r)
	case unicode.IsSpace(r):
	default:
		m.logger.Debug("ignored answer character", "rune", string(r))
	}
}

// handle reacts to session events.
func (m *Machine) handle(events []Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case ProblemPosedEvent:
			m.answer = m.answer[:0]
			m.state = StateAnswerPrompt
			m.logger.Debug("problem posed", "brick", e.BrickID, "problem", e.Problem.String())
		case BrickDestroyedEvent:
			m.sound.Play(core.CueBrickHit)
			m.setFlash(fmt.Sprintf("Correct! +%d", e.Points), core.ColorGreen)
			m.logger.Debug("brick destroyed", "brick", e.BrickID, "points", e.Points, "latency", e.Latency)
		case WrongAnswerEvent:
			m.sound.Play(core.CueWrongAnswer)
			m.setFlash(fmt.Sprintf("Wrong! %d %s %d = %d", e.Problem.A, e.Problem.Op.Symbol(), e.Problem.B, e.Problem.Answer), core.ColorRed)
		case ProblemCancelledEvent:
			m.state = StatePlaying
		case LifeLostEvent:
			m.logger.Debug("life lost", "lives", e.LivesLeft)
		case LevelCompleteEvent:
			m.sound.Play(core.CueLevelComplete)
			m.state = StateLevelComplete
			m.logger.Info("level complete", "level", e.Level, "score", e.Score)
		case GameOverEvent:
			m.finishGame(e)
		}
	}
}

func (m *Machine) setFlash(text string, c core.Color) {
	m.flash = text
	m.flashColor = c
	m.flashUntil = m.clock.Now().Add(flashDuration)
}

// finishGame records the final score and shows the summary.
func (m *Machine) finishGame(e GameOverEvent) {
	m.sound.Play(core.CueGameOver)
	m.state = StateGameOver

	m.final = highscore.NewEntry(e.Score, e.Level, m.clock.Now())
	m.scores = m.loadScores()
	m.newRecord = len(m.scores) == 0 || e.Score > m.scores[0].Score

	if highscore.Qualifies(m.scores, e.Score) {
		m.scores = highscore.Insert(m.scores, m.final)
		if err := m.store.Save(m.scores); err != nil {
			m.logger.Error("cannot save high scores", "error", err)
		}
	}
	if rec, ok := m.store.(highscore.Recorder); ok {
		if err := rec.Record(m.final); err != nil {
			m.logger.Error("cannot record game", "error", err)
		}
	}
	m.logger.Info("game over", "score", e.Score, "level", e.Level, "record", m.newRecord)
}

var _ core.Game = (*Machine)(nil)
