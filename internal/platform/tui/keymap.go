package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkovalev/tui-runner/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action. gameOver selects the routing:
// while the latch is set, jump inputs become restart requests.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, gameOver bool) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case " ", "up", "w":
		if gameOver {
			return core.ActionRestart, false
		}
		return core.ActionJump, false
	case "r":
		if gameOver {
			return core.ActionRestart, false
		}
		return core.ActionNone, false
	case "p", "esc":
		return core.ActionPause, false
	}

	return core.ActionNone, false
}

// MapMouse translates a mouse message to an action. A left-button press is
// the pointer-click jump/restart signal; everything else is ignored.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, gameOver bool) core.Action {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return core.ActionNone
	}
	if gameOver {
		return core.ActionRestart
	}
	return core.ActionJump
}
