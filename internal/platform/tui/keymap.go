package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/minimalism/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates an in-game key press to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case " ", "up", "w", "k", "z":
		return core.ActionJump, false
	case "r":
		return core.ActionRestart, false
	case "n", "enter":
		return core.ActionAdvance, false
	case "p":
		return core.ActionPause, false
	case "b", "esc":
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

// holdable reports whether an action is continuous (movement and jump)
// rather than a one-shot command.
func holdable(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionJump:
		return true
	}
	return false
}

// HeldKeys turns key presses into held state. Terminals only report
// presses (and auto-repeat), so a continuous action stays held for a hold
// window after its most recent press. One-shot actions are delivered to
// exactly one frame.
type HeldKeys struct {
	hold    time.Duration
	pressed map[core.Action]time.Time
	once    core.InputFrame
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(hold time.Duration) *HeldKeys {
	return &HeldKeys{
		hold:    hold,
		pressed: make(map[core.Action]time.Time),
		once:    core.NewInputFrame(),
	}
}

// Press records an action at time now. Pressing one direction releases
// the other.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if !holdable(a) {
		h.once.Set(a)
		return
	}
	switch a {
	case core.ActionLeft:
		delete(h.pressed, core.ActionRight)
	case core.ActionRight:
		delete(h.pressed, core.ActionLeft)
	}
	h.pressed[a] = now
}

// Frame returns the actions active at time now and consumes pending
// one-shot actions.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	frame := h.once.Clone()
	h.once.Clear()
	for a, t := range h.pressed {
		if now.Sub(t) < h.hold {
			frame.Set(a)
		} else {
			delete(h.pressed, a)
		}
	}
	return frame
}

// Reset releases everything.
func (h *HeldKeys) Reset() {
	clear(h.pressed)
	h.once.Clear()
}
