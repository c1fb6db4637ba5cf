package ui

import "github.com/gdamore/tcell/v2"

// Action represents a seeker-requested action at the rite's screens.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionSelect
	ActionActivate
	ActionRestart
	ActionHelp
	ActionQuit
)

// keyToAction maps a tcell key event to an action. Digit shortcuts are
// handled by the pickers themselves.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyEnter:
		return ActionSelect
	case tcell.KeyEscape:
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return ActionUp
	case 'j', 'J':
		return ActionDown
	case 'a', 'A':
		return ActionActivate
	case 'r', 'R':
		return ActionRestart
	case '?':
		return ActionHelp
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}
