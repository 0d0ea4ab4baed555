package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/math-breakout/internal/core"
)

// holdWindow is how long a paddle key counts as held after its last press.
// Terminals report no key releases, only auto-repeat, so holding is inferred.
const holdWindow = 120 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	heldUntil map[core.Action]time.Time
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{heldUntil: make(map[core.Action]time.Time)}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a hard exit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c":
		return core.ActionNone, true
	case "left", "a":
		return core.ActionLeft, false
	case "right", "d":
		return core.ActionRight, false
	case "up", "w":
		return core.ActionUp, false
	case "down", "s":
		return core.ActionDown, false
	case "enter":
		return core.ActionConfirm, false
	case "esc":
		return core.ActionBack, false
	case "backspace":
		return core.ActionBackspace, false
	case " ":
		return core.ActionPause, false
	case "q":
		return core.ActionQuit, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message. Typed runes
// are recorded too, for the answer dialog. Returns true on a hard exit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, now time.Time) bool {
	action, isQuit := km.MapKey(msg)
	if isQuit {
		return true
	}
	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			frame.Type(r)
		}
	}
	if action == core.ActionNone {
		return false
	}

	frame.Set(action)
	switch action {
	case core.ActionLeft:
		delete(km.heldUntil, core.ActionRight)
		km.heldUntil[action] = now.Add(holdWindow)
	case core.ActionRight:
		delete(km.heldUntil, core.ActionLeft)
		km.heldUntil[action] = now.Add(holdWindow)
	}
	return false
}

// ApplyHeld marks paddle keys pressed within the hold window as held.
func (km *KeyMapper) ApplyHeld(frame *core.InputFrame, now time.Time) {
	for action, until := range km.heldUntil {
		if now.Before(until) {
			frame.Hold(action)
		} else {
			delete(km.heldUntil, action)
		}
	}
}

// MenuAction represents a launcher-menu action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
