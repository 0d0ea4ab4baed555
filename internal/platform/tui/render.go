package tui

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/math-breakout/internal/core"
)

// Glyphs used to approximate shapes in cells.
const (
	blockGlyph = '█'
	ballGlyph  = '●'
	dotGlyph   = '·'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBlack:         lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
	core.ColorPurple:        lipgloss.NewStyle().Foreground(lipgloss.Color("90")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// CellRenderer implements core.Renderer on a pair of cell screens. The
// playfield is scaled to the terminal size; Present swaps the buffers.
type CellRenderer struct {
	fieldW, fieldH float64
	back, front    *core.Screen
}

// NewCellRenderer creates a renderer mapping a fieldW x fieldH playfield
// onto cols x rows cells.
func NewCellRenderer(fieldW, fieldH, cols, rows int) *CellRenderer {
	return &CellRenderer{
		fieldW: float64(fieldW),
		fieldH: float64(fieldH),
		back:   core.NewScreen(cols, rows),
		front:  core.NewScreen(cols, rows),
	}
}

// Resize changes the terminal size. Both buffers are cleared.
func (c *CellRenderer) Resize(cols, rows int) {
	c.back.Resize(cols, rows)
	c.front.Resize(cols, rows)
}

// Front returns the last presented frame.
func (c *CellRenderer) Front() *core.Screen {
	return c.front
}

func (c *CellRenderer) scale() (sx, sy float64) {
	return float64(c.back.Width()) / c.fieldW, float64(c.back.Height()) / c.fieldH
}

// cells returns the cell span covered by r, at least one cell each way.
func (c *CellRenderer) cells(r core.Rect) (x0, y0, x1, y1 int) {
	sx, sy := c.scale()
	x0 = int(math.Round(r.X * sx))
	y0 = int(math.Round(r.Y * sy))
	x1 = int(math.Round(r.Right() * sx))
	y1 = int(math.Round(r.Bottom() * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// DrawRect fills r with block glyphs. Black clears instead, so the terminal
// background shows through.
func (c *CellRenderer) DrawRect(r core.Rect, col core.Color) {
	x0, y0, x1, y1 := c.cells(r)
	if col == core.ColorBlack {
		c.back.FillRect(x0, y0, x1-x0, y1-y0, ' ', core.ColorDefault)
		return
	}
	c.back.FillRect(x0, y0, x1-x0, y1-y0, blockGlyph, col)
}

// DrawEllipse draws a dot for sub-cell ellipses, a ball glyph for small
// ones and a filled shape otherwise.
func (c *CellRenderer) DrawEllipse(r core.Rect, col core.Color) {
	sx, sy := c.scale()
	w, h := r.W*sx, r.H*sy
	cx, cy := int(r.CenterX()*sx), int(r.CenterY()*sy)

	switch {
	case w < 1 && h < 1:
		c.back.SetColored(cx, cy, dotGlyph, col)
	case w <= 2 && h <= 2:
		c.back.SetColored(cx, cy, ballGlyph, col)
	default:
		x0, y0, x1, y1 := c.cells(r)
		rx, ry := float64(x1-x0)/2, float64(y1-y0)/2
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				dx := (float64(x-x0) + 0.5 - rx) / rx
				dy := (float64(y-y0) + 0.5 - ry) / ry
				if dx*dx+dy*dy <= 1 {
					c.back.SetColored(x, y, blockGlyph, col)
				}
			}
		}
	}
}

// DrawText writes text starting at the cell containing (x, y). Font sizes
// collapse to one cell per rune. Black text is drawn bright so it stays
// readable on a dark terminal.
func (c *CellRenderer) DrawText(text string, _ core.Font, col core.Color, x, y float64) {
	sx, sy := c.scale()
	if col == core.ColorBlack {
		col = core.ColorBrightWhite
	}
	c.back.DrawTextColored(int(math.Round(x*sx)), int(math.Round(y*sy)), text, col)
}

// DrawOverlay dims every cell in r. Opaque overlays blank the cells.
func (c *CellRenderer) DrawOverlay(r core.Rect, col core.Color, alpha uint8) {
	x0, y0, x1, y1 := c.cells(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			cell := c.back.GetCell(x, y)
			switch {
			case alpha == 255:
				c.back.SetColored(x, y, ' ', col)
			case cell.Rune != ' ':
				c.back.SetColored(x, y, cell.Rune, core.ColorGray)
			}
		}
	}
}

// MeasureText returns the playfield size of text laid out one cell per rune.
func (c *CellRenderer) MeasureText(text string, _ core.Font) (w, h float64) {
	sx, sy := c.scale()
	return float64(utf8.RuneCountInString(text)) / sx, 1 / sy
}

// Present makes the back buffer visible and starts a new frame.
func (c *CellRenderer) Present() {
	c.back, c.front = c.front, c.back
	c.back.Clear()
}

var _ core.Renderer = (*CellRenderer)(nil)
