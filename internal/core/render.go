package core

// Font selects a text size. Frontends map it to whatever they can draw.
type Font int

const (
	FontBody  Font = iota // HUD, menus, dialog text
	FontTitle             // Large headings
	FontSmall             // Hints and footers
)

// Renderer is the drawing surface the game paints each frame.
// Coordinates are playfield pixels; frontends scale as needed.
// Drawing goes to a back buffer until Present is called.
type Renderer interface {
	// DrawRect fills an axis-aligned rectangle.
	DrawRect(r Rect, c Color)
	// DrawEllipse fills the ellipse inscribed in r.
	DrawEllipse(r Rect, c Color)
	// DrawText draws text with its top-left corner at (x, y).
	DrawText(text string, font Font, c Color, x, y float64)
	// DrawOverlay blends a translucent rectangle over what is already drawn.
	DrawOverlay(r Rect, c Color, alpha uint8)
	// MeasureText returns the size text would occupy in playfield pixels.
	MeasureText(text string, font Font) (w, h float64)
	// Present swaps the back buffer to the display.
	Present()
}
