package mathbreakout

import (
	"fmt"

	"github.com/vovakirdan/math-breakout/internal/core"
)

// Dialog and menu geometry, in playfield pixels.
const (
	dialogW        = 400
	dialogH        = 300
	inputMinW      = 200
	inputH         = 50
	inputPad       = 5
	menuItemW      = 300
	menuItemH      = 50
	menuItemGap    = 20
	hudX           = 10
	hudLineSpacing = 40
)

// Overlay opacity for pause and dialog screens.
const (
	dimAlpha    = 160
	dialogAlpha = 140
)

var instructions = []string{
	"Move the paddle with Left/Right or A/D.",
	"Every brick hides an arithmetic problem.",
	"When the ball hits a brick, type the answer and press Enter.",
	"A correct answer breaks the brick. Faster answers score more.",
	"A wrong answer or a missed ball costs a life.",
	"Esc closes a problem without penalty; the brick stays.",
	"Division problems start at level 4.",
	"Space pauses. Q on the pause screen returns to the menu.",
}

// Instructions returns the rules shown on the instructions view.
func Instructions() []string {
	return append([]string(nil), instructions...)
}

// Render draws the current frame and presents it.
func (m *Machine) Render(r core.Renderer) {
	w, h := m.screenSize()
	r.DrawRect(core.NewRect(0, 0, w, h), core.ColorBlack)
	for _, s := range m.stars {
		r.DrawEllipse(core.NewRect(s.x-s.r, s.y-s.r, 2*s.r, 2*s.r), core.ColorWhite)
	}

	switch m.state {
	case StateMenu:
		switch m.view {
		case ViewHighScores:
			m.renderHighScores(r)
		case ViewInstructions:
			m.renderInstructions(r)
		default:
			m.renderMenu(r)
		}
	case StatePlaying:
		m.renderPlayfield(r)
		m.renderFlash(r)
	case StatePaused:
		m.renderPlayfield(r)
		r.DrawOverlay(core.NewRect(0, 0, w, h), core.ColorBlack, dimAlpha)
		m.drawCentered(r, "PAUSED", core.FontTitle, core.ColorWhite, h/2-40)
		m.drawCentered(r, "Space / Esc / Enter: resume    Q: menu", core.FontSmall, core.ColorGray, h/2+20)
	case StateAnswerPrompt:
		m.renderPlayfield(r)
		m.renderDialog(r)
	case StateLevelComplete:
		m.renderPlayfield(r)
		r.DrawOverlay(core.NewRect(0, 0, w, h), core.ColorBlack, dimAlpha)
		m.drawCentered(r, fmt.Sprintf("LEVEL %d COMPLETE", m.session.Level()), core.FontTitle, core.ColorGreen, h/2-60)
		m.drawCentered(r, fmt.Sprintf("Score: %d", m.session.Score()), core.FontBody, core.ColorWhite, h/2)
		m.drawCentered(r, "Press Enter to continue", core.FontSmall, core.ColorGray, h/2+50)
	case StateGameOver:
		m.renderPlayfield(r)
		r.DrawOverlay(core.NewRect(0, 0, w, h), core.ColorBlack, dimAlpha)
		m.drawCentered(r, "GAME OVER", core.FontTitle, core.ColorRed, h/2-60)
		m.drawCentered(r, fmt.Sprintf("Score: %d    Level: %d", m.final.Score, m.final.Level), core.FontBody, core.ColorWhite, h/2)
		if m.newRecord {
			m.drawCentered(r, "New high score!", core.FontBody, core.ColorYellow, h/2+40)
		}
		m.drawCentered(r, "Press Enter for the menu", core.FontSmall, core.ColorGray, h/2+90)
	}

	r.Present()
}

func (m *Machine) screenSize() (float64, float64) {
	return float64(m.cfg.Screen.Width), float64(m.cfg.Screen.Height)
}

// menuItemRect is the clickable box of menu entry i.
func (m *Machine) menuItemRect(i int) core.Rect {
	w, h := m.screenSize()
	top := h * 0.4
	return core.NewRect((w-menuItemW)/2, top+float64(i)*(menuItemH+menuItemGap), menuItemW, menuItemH)
}

// dialogRect is the answer dialog, centered on screen.
func (m *Machine) dialogRect() core.Rect {
	w, h := m.screenSize()
	return core.NewRect(0, 0, dialogW, dialogH).CenteredAt(w/2, h/2)
}

func (m *Machine) drawCentered(r core.Renderer, text string, font core.Font, c core.Color, y float64) {
	w, _ := m.screenSize()
	tw, _ := r.MeasureText(text, font)
	r.DrawText(text, font, c, (w-tw)/2, y)
}

func (m *Machine) renderMenu(r core.Renderer) {
	_, h := m.screenSize()
	m.drawCentered(r, "MATH BREAKOUT", core.FontTitle, core.ColorYellow, h*0.18)
	m.drawCentered(r, "Break the bricks by solving arithmetic", core.FontSmall, core.ColorGray, h*0.18+60)

	for i, a := range MenuActions() {
		box := m.menuItemRect(i)
		fill, text := core.ColorGray, core.ColorWhite
		if i == m.cursor {
			fill, text = core.ColorPurple, core.ColorBrightYellow
		}
		r.DrawRect(box, fill)
		tw, th := r.MeasureText(a.Label(), core.FontBody)
		r.DrawText(a.Label(), core.FontBody, text, box.CenterX()-tw/2, box.CenterY()-th/2)
	}

	m.drawCentered(r, "Up/Down: move    Enter: select    Q: quit", core.FontSmall, core.ColorGray, h-60)
}

func (m *Machine) renderHighScores(r core.Renderer) {
	w, h := m.screenSize()
	m.drawCentered(r, "HIGH SCORES", core.FontTitle, core.ColorYellow, h*0.12)

	if len(m.scores) == 0 {
		m.drawCentered(r, "No scores yet", core.FontBody, core.ColorGray, h*0.4)
	} else {
		left := w/2 - 220
		cols := []float64{left, left + 90, left + 230, left + 330}
		y := h * 0.25
		for i, label := range []string{"Rank", "Score", "Level", "Date"} {
			r.DrawText(label, core.FontBody, core.ColorCyan, cols[i], y)
		}
		for i, e := range m.scores {
			y += 40
			c := core.ColorWhite
			if i == 0 {
				c = core.ColorBrightYellow
			}
			row := []string{fmt.Sprintf("%d.", i+1), fmt.Sprint(e.Score), fmt.Sprint(e.Level), e.Date}
			for j, cell := range row {
				r.DrawText(cell, core.FontBody, c, cols[j], y)
			}
		}
	}

	m.drawCentered(r, "Esc: back", core.FontSmall, core.ColorGray, h-60)
}

func (m *Machine) renderInstructions(r core.Renderer) {
	_, h := m.screenSize()
	m.drawCentered(r, "HOW TO PLAY", core.FontTitle, core.ColorYellow, h*0.12)
	y := h * 0.28
	for _, line := range instructions {
		m.drawCentered(r, line, core.FontBody, core.ColorWhite, y)
		y += 44
	}
	m.drawCentered(r, "Esc: back", core.FontSmall, core.ColorGray, h-60)
}

// renderPlayfield draws bricks, paddle, ball and the HUD.
func (m *Machine) renderPlayfield(r core.Renderer) {
	s := m.session
	if s == nil {
		return
	}
	s.Arena().Each(func(b Brick) {
		r.DrawRect(b.Bounds, b.Color)
	})
	r.DrawRect(s.Paddle(), core.ColorBlue)
	r.DrawEllipse(s.Ball().Rect, core.ColorWhite)

	hud := []string{
		fmt.Sprintf("Score: %d", s.Score()),
		fmt.Sprintf("Lives: %d", s.Lives()),
		fmt.Sprintf("Level: %d", s.Level()),
	}
	for i, line := range hud {
		r.DrawText(line, core.FontBody, core.ColorWhite, hudX, hudX+float64(i)*hudLineSpacing)
	}
}

// renderFlash shows the feedback of the last answer for a short while.
func (m *Machine) renderFlash(r core.Renderer) {
	if m.flash == "" || !m.clock.Now().Before(m.flashUntil) {
		return
	}
	_, h := m.screenSize()
	m.drawCentered(r, m.flash, core.FontBody, m.flashColor, h*0.6)
}

// renderDialog draws the answer dialog: problem text and an input box that
// widens with the typed answer.
func (m *Machine) renderDialog(r core.Renderer) {
	w, h := m.screenSize()
	r.DrawOverlay(core.NewRect(0, 0, w, h), core.ColorBlack, dialogAlpha)

	box := m.dialogRect()
	r.DrawRect(box, core.ColorWhite)

	titleW, _ := r.MeasureText("Math Challenge", core.FontSmall)
	r.DrawText("Math Challenge", core.FontSmall, core.ColorGray, box.CenterX()-titleW/2, box.Y+20)

	if p, ok := m.session.Problem(); ok {
		text := p.String()
		tw, _ := r.MeasureText(text, core.FontBody)
		r.DrawText(text, core.FontBody, core.ColorBlack, box.CenterX()-tw/2, box.Y+100)
	}

	answer := m.Answer()
	tw, th := r.MeasureText(answer, core.FontBody)
	inputW := max(inputMinW, tw+2*inputPad)
	input := core.NewRect(box.CenterX()-inputW/2, box.Y+180, inputW, inputH)
	r.DrawRect(input, core.ColorGreen)
	r.DrawRect(input.Inset(2), core.ColorWhite)
	r.DrawText(answer, core.FontBody, core.ColorGreen, input.X+inputPad, input.CenterY()-th/2)

	hint := "Enter: submit    Esc: cancel"
	hw, _ := r.MeasureText(hint, core.FontSmall)
	r.DrawText(hint, core.FontSmall, core.ColorGray, box.CenterX()-hw/2, box.Bottom()-30)
}
