package gui

import (
	"image/color"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/math-breakout/internal/core"
)

// Glyph metrics of basicfont.Face7x13.
const (
	glyphW      = 7
	glyphH      = 13
	glyphAscent = 11
)

// fontScale maps font sizes to integer scales of the bitmap face.
var fontScale = map[core.Font]float64{
	core.FontSmall: 1,
	core.FontBody:  2,
	core.FontTitle: 4,
}

// asciiOperators swaps symbols the bitmap face lacks.
var asciiOperators = strings.NewReplacer("×", "x", "÷", "/")

// ImageRenderer implements core.Renderer on the ebiten screen image.
// Ebitengine presents the image once Draw returns.
type ImageRenderer struct {
	dst *ebiten.Image
}

// DrawRect fills r.
func (r *ImageRenderer) DrawRect(rect core.Rect, c core.Color) {
	vector.DrawFilledRect(r.dst, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), c.RGBA(), false)
}

// DrawEllipse fills the circle inscribed in rect.
func (r *ImageRenderer) DrawEllipse(rect core.Rect, c core.Color) {
	radius := math.Min(rect.W, rect.H) / 2
	vector.DrawFilledCircle(r.dst, float32(rect.CenterX()), float32(rect.CenterY()), float32(radius), c.RGBA(), true)
}

// DrawText draws text with its top-left corner at (x, y).
func (r *ImageRenderer) DrawText(s string, font core.Font, c core.Color, x, y float64) {
	scale := scaleOf(font)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y+glyphAscent*scale)
	op.ColorScale.ScaleWithColor(c.RGBA())
	text.DrawWithOptions(r.dst, asciiOperators.Replace(s), basicfont.Face7x13, op)
}

// DrawOverlay blends a translucent rectangle.
func (r *ImageRenderer) DrawOverlay(rect core.Rect, c core.Color, alpha uint8) {
	rgba := c.RGBA()
	tint := color.NRGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: alpha}
	vector.DrawFilledRect(r.dst, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), tint, false)
}

// MeasureText returns the drawn size of s.
func (r *ImageRenderer) MeasureText(s string, font core.Font) (w, h float64) {
	scale := scaleOf(font)
	n := utf8.RuneCountInString(asciiOperators.Replace(s))
	return float64(n*glyphW) * scale, glyphH * scale
}

// Present is a no-op: the frame is shown when Draw returns.
func (r *ImageRenderer) Present() {}

func scaleOf(font core.Font) float64 {
	if s, ok := fontScale[font]; ok {
		return s
	}
	return 2
}

var _ core.Renderer = (*ImageRenderer)(nil)
