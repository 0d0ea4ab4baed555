package core

// Game is what a frontend drives: one Update per frame with the frame's
// input, then Render onto the frontend's surface.
type Game interface {
	Update(in InputFrame)
	Render(r Renderer)
	// TickRate is the frame rate the frontend should run at right now.
	TickRate() int
	// Quit reports whether the player asked to leave.
	Quit() bool
}
