package rite

import (
	"errors"
	"strings"
)

// Rejected operations leave the session untouched; callers match these with
// errors.Is, or errors.As for NotReadyError.
var (
	// ErrFinalStage rejects advancing past activation.
	ErrFinalStage = errors.New("rite: already at the final stage")
	// ErrNotDiagnostic rejects energy selection outside the diagnostic stage.
	ErrNotDiagnostic = errors.New("rite: energy is chosen during the diagnostic")
	// ErrBlankEnergy rejects an empty energy tag.
	ErrBlankEnergy = errors.New("rite: energy tag is blank")
	// ErrBlankSymbol rejects an empty symbol identifier.
	ErrBlankSymbol = errors.New("rite: symbol id is blank")
	// ErrNotConstruction rejects ward choices and activation outside the
	// construction stage.
	ErrNotConstruction = errors.New("rite: ward choices belong to the construction stage")
	// ErrNotActivation rejects a restart before the ward is active.
	ErrNotActivation = errors.New("rite: restart is only possible from activation")
)

// NotReadyError reports an activation attempt while choices are still
// missing. At least one field is always true.
type NotReadyError struct {
	MissingColor  bool
	MissingSymbol bool
	MissingSigil  bool
}

func (e *NotReadyError) Error() string {
	var missing []string
	if e.MissingColor {
		missing = append(missing, "color")
	}
	if e.MissingSymbol {
		missing = append(missing, "symbol")
	}
	if e.MissingSigil {
		missing = append(missing, "sigil")
	}
	return "rite: ward is not ready: missing " + strings.Join(missing, ", ")
}
