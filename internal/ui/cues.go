package ui

import (
	"github.com/gdamore/tcell/v2"

	"wardforge/internal/rite"
)

// bellCues maps stage cues to terminal bells: one beep per transition, two
// for the activation flourish.
type bellCues struct {
	screen tcell.Screen
}

func (b bellCues) Transition(from, to rite.Stage) {
	_ = b.screen.Beep()
}

func (b bellCues) Activation() {
	_ = b.screen.Beep()
	_ = b.screen.Beep()
}
