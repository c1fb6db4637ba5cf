// Package shield holds the ward's composition state: the three user choices
// made during construction and the projection that turns them into
// renderable layer parameters.
package shield

import (
	"fmt"

	"wardforge/internal/sigil"
)

// RGB is a display-independent color. Renderers convert it to whatever the
// terminal supports.
type RGB struct {
	R, G, B uint8
}

// Hex returns the #rrggbb form, used by the archive and logs.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ChoiceSet aggregates the three ward choices and their completion flags.
// Tracker maintains the invariant that a flag is true iff the stored value
// came from a non-blank submission since the last reset.
type ChoiceSet struct {
	Color    RGB
	HasColor bool

	Symbol    string
	HasSymbol bool

	Sigil     sigil.Glyph
	SigilText string
	HasSigil  bool
}

// Complete reports whether all three choices have been made.
func (cs ChoiceSet) Complete() bool {
	return cs.HasColor && cs.HasSymbol && cs.HasSigil
}

// Tracker owns the ChoiceSet for one rite. It is not safe for concurrent
// use on its own; rite.Session serializes access to it.
type Tracker struct {
	cs ChoiceSet
}

// SetColor stores the base color and marks the color choice complete.
func (t *Tracker) SetColor(c RGB) ChoiceSet {
	t.cs.Color = c
	t.cs.HasColor = true
	return t.cs
}

// SetSymbol stores the marker symbol and marks the symbol choice complete.
// Re-picking replaces the previous symbol outright.
func (t *Tracker) SetSymbol(id string) ChoiceSet {
	t.cs.Symbol = id
	t.cs.HasSymbol = true
	return t.cs
}

// SetSigil stores a generated glyph together with the text that produced it.
// A blank submission arrives as an empty glyph: the stored glyph empties and
// the completion flag drops, so the ward loses its surface marks but the
// choice does not count as made.
func (t *Tracker) SetSigil(g sigil.Glyph, source string) ChoiceSet {
	t.cs.Sigil = g
	t.cs.SigilText = source
	t.cs.HasSigil = !g.Empty()
	return t.cs
}

// Snapshot returns a copy of the current choice set.
func (t *Tracker) Snapshot() ChoiceSet { return t.cs }

// Complete reports whether all three choices have been made since the last
// reset.
func (t *Tracker) Complete() bool { return t.cs.Complete() }

// Reset clears every value and flag in one assignment; no partially-cleared
// state is ever visible through Snapshot.
func (t *Tracker) Reset() ChoiceSet {
	t.cs = ChoiceSet{}
	return t.cs
}
