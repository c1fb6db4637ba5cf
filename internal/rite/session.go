package rite

import (
	"strings"
	"sync"

	"wardforge/internal/shield"
	"wardforge/internal/sigil"
)

// LayerApplier receives the projected composite after every choice mutation
// and on reset. Calls are one-way: implementations store the parameters and
// repaint on their own schedule, and cannot report back.
type LayerApplier interface {
	ApplyLayers(shield.LayerParameters)
}

// Cues receives one-way stage-boundary signals. The terminal collaborator
// maps them to bell cues; the session never touches playback itself.
type Cues interface {
	Transition(from, to Stage)
	Activation()
}

// Session is one rite from intro to activation. All state lives here and in
// the embedded tracker; collaborators only ever see value snapshots.
//
// Mutations arrive from a single input goroutine, but the render loop reads
// snapshots from its own goroutine, so a mutex keeps every read consistent.
// In particular a reset is one critical section: no caller can observe flags
// cleared with values still standing.
type Session struct {
	mu      sync.Mutex
	stage   Stage
	energy  string
	tracker shield.Tracker

	layers LayerApplier
	cues   Cues
}

// New returns a Session at the intro stage. Either collaborator may be nil;
// missing ones are skipped.
func New(layers LayerApplier, cues Cues) *Session {
	return &Session{layers: layers, cues: cues}
}

// Stage returns the current stage.
func (s *Session) Stage() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

// Energy returns the attuned energy tag, or "" before the diagnostic.
func (s *Session) Energy() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.energy
}

// Choices returns a snapshot of the current choice set.
func (s *Session) Choices() shield.ChoiceSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.Snapshot()
}

// Complete reports whether all three ward choices have been made.
func (s *Session) Complete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.Complete()
}

// Snapshot returns stage, energy, and choices read in one critical section.
func (s *Session) Snapshot() (Stage, string, shield.ChoiceSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage, s.energy, s.tracker.Snapshot()
}

// Advance moves exactly one stage forward along the fixed order. Entering
// activation is gated exactly like Activate: the ward must be complete.
// From the final stage it returns ErrFinalStage and changes nothing. The
// matching cue fires after a successful move.
func (s *Session) Advance() (Stage, error) {
	s.mu.Lock()
	from := s.stage
	var err error
	switch from {
	case StageActivation:
		err = ErrFinalStage
	case StageConstruction:
		err = s.readyLocked()
		if err == nil {
			s.stage = StageActivation
		}
	default:
		s.stage = from + 1
	}
	to := s.stage
	s.mu.Unlock()

	if err != nil {
		return from, err
	}
	s.signal(from, to)
	return to, nil
}

// SelectEnergy records the diagnostic's outcome. Valid only during the
// diagnostic stage; answering again while still there overwrites the tag.
func (s *Session) SelectEnergy(tag string) error {
	if strings.TrimSpace(tag) == "" {
		return ErrBlankEnergy
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != StageDiagnostic {
		return ErrNotDiagnostic
	}
	s.energy = tag
	return nil
}

// SetColor picks the ward's base color. Construction stage only.
func (s *Session) SetColor(c shield.RGB) error {
	s.mu.Lock()
	if s.stage != StageConstruction {
		s.mu.Unlock()
		return ErrNotConstruction
	}
	cs := s.tracker.SetColor(c)
	s.mu.Unlock()

	s.apply(cs)
	return nil
}

// SetSymbol picks the orbiting symbol. Construction stage only. Re-picking
// replaces the full marker set on the next projection.
func (s *Session) SetSymbol(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrBlankSymbol
	}
	s.mu.Lock()
	if s.stage != StageConstruction {
		s.mu.Unlock()
		return ErrNotConstruction
	}
	cs := s.tracker.SetSymbol(id)
	s.mu.Unlock()

	s.apply(cs)
	return nil
}

// SubmitSigil generates a glyph from the typed word and stores it, running
// the generator exactly once per submission. A blank word empties the sigil
// without completing the choice: the ward's surface clears but the rite
// still waits for a word. Construction stage only.
func (s *Session) SubmitSigil(text string) error {
	s.mu.Lock()
	if s.stage != StageConstruction {
		s.mu.Unlock()
		return ErrNotConstruction
	}
	cs := s.tracker.SetSigil(sigil.Generate(text), text)
	s.mu.Unlock()

	s.apply(cs)
	return nil
}

// Activate seals the ward: construction to activation, gated on all three
// choices being made. On rejection the stage is unchanged and the error
// carries exactly which choices are missing.
func (s *Session) Activate() error {
	s.mu.Lock()
	if s.stage != StageConstruction {
		s.mu.Unlock()
		return ErrNotConstruction
	}
	err := s.readyLocked()
	if err == nil {
		s.stage = StageActivation
	}
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.signal(StageConstruction, StageActivation)
	return nil
}

// Reset ends the rite: back to intro with the energy and every choice wiped
// in one critical section. Valid only from activation. The renderer receives
// the neutral projection so nothing stale survives on screen.
func (s *Session) Reset() error {
	s.mu.Lock()
	if s.stage != StageActivation {
		s.mu.Unlock()
		return ErrNotActivation
	}
	from := s.stage
	s.stage = StageIntro
	s.energy = ""
	cs := s.tracker.Reset()
	s.mu.Unlock()

	s.apply(cs)
	s.signal(from, StageIntro)
	return nil
}

// readyLocked returns nil when the ward is complete, or a NotReadyError
// naming the gaps. Caller holds s.mu.
func (s *Session) readyLocked() error {
	cs := s.tracker.Snapshot()
	if cs.Complete() {
		return nil
	}
	return &NotReadyError{
		MissingColor:  !cs.HasColor,
		MissingSymbol: !cs.HasSymbol,
		MissingSigil:  !cs.HasSigil,
	}
}

// apply projects the full choice set and hands it to the renderer.
// Fire-and-forget: called without the lock, no reply expected.
func (s *Session) apply(cs shield.ChoiceSet) {
	if s.layers != nil {
		s.layers.ApplyLayers(shield.Project(cs))
	}
}

// signal fires the cue matching a completed stage change.
func (s *Session) signal(from, to Stage) {
	if s.cues == nil {
		return
	}
	if to == StageActivation {
		s.cues.Activation()
		return
	}
	s.cues.Transition(from, to)
}
