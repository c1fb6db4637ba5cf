// Package rite drives one forging session from intro to activation. It owns
// the stage, the attuned energy, and the choice tracker; rendering and cue
// playback sit behind one-way collaborator interfaces and never mutate
// anything here.
package rite

// Stage is one step of the four-step rite.
type Stage uint8

const (
	StageIntro Stage = iota
	StageDiagnostic
	StageConstruction
	StageActivation
)

var stageNames = [...]string{"intro", "diagnostic", "construction", "activation"}

// String returns the lowercase stage name.
func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "unknown"
}
