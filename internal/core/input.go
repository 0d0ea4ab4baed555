package core

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends translate their native events into actions so the game never sees
// raw key codes.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Left arrow, A - move paddle left
	ActionRight            // Right arrow, D - move paddle right
	ActionUp               // Up arrow, W - menu navigation
	ActionDown             // Down arrow, S - menu navigation
	ActionConfirm          // Enter - select, submit answer, continue
	ActionBack             // Escape - cancel dialog, leave a view, pause
	ActionBackspace        // Backspace - delete last answer character
	ActionPause            // Space - pause/unpause
	ActionQuit             // Q - leave the pause screen for the menu
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionBackspace:
		return "Backspace"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is the mouse state for one frame, in playfield pixel units.
type Pointer struct {
	X, Y    float64
	Clicked bool
}

// InputFrame is everything the player did during one frame.
type InputFrame struct {
	// Actions holds actions triggered (pressed) this frame.
	Actions map[Action]bool
	// Held holds actions whose key is currently down.
	Held map[Action]bool
	// Chars holds printable characters typed this frame, in order.
	Chars []rune
	// Pointer is the mouse position and click state.
	Pointer Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Hold marks an action as currently held down.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Type appends a typed character.
func (f *InputFrame) Type(r rune) {
	f.Chars = append(f.Chars, r)
}

// Click records a pointer click at (x, y).
func (f *InputFrame) Click(x, y float64) {
	f.Pointer = Pointer{X: x, Y: y, Clicked: true}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Down returns true if the action was triggered or is held.
func (f InputFrame) Down(a Action) bool {
	return f.Has(a) || (f.Held != nil && f.Held[a])
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
	f.Chars = f.Chars[:0]
	f.Pointer = Pointer{}
}
