// Package assets holds the rite's fixed content: the energy catalog, the
// ward symbols, the color palette, and the stage scripts. Everything here is
// data; behavior lives in internal/.
package assets

// EnergyDef defines one attunable energy. The diagnostic shows every Answer
// and attunes the seeker to the energy whose answer they pick.
type EnergyDef struct {
	Tag    string // stable identifier recorded by the session
	Name   string
	Emoji  string
	Answer string // the diagnostic answer that selects this energy
	Blurb  string // one-liner shown once attuned
}

// DiagnosticPrompt is the single question of the attunement diagnostic.
const DiagnosticPrompt = "The dark presses close. What answers first?"

// Energies is the ordered list of attunable energies. Order matters: the
// diagnostic presents answers in this order.
var Energies = []EnergyDef{
	{
		Tag:    "ember",
		Name:   "Ember",
		Emoji:  "🔥",
		Answer: "A spark that refuses to gutter",
		Blurb:  "Ember answers you. It has been waiting in the cold a long time, and it holds no grudge about it.",
	},
	{
		Tag:    "tide",
		Name:   "Tide",
		Emoji:  "🌊",
		Answer: "A slow pull no moon commands",
		Blurb:  "Tide answers you. It arrives without hurry and leaves nothing standing that wasn't meant to stand.",
	},
	{
		Tag:    "gale",
		Name:   "Gale",
		Emoji:  "🌬️",
		Answer: "A wind through doors no one opened",
		Blurb:  "Gale answers you. Locks are a suggestion. Walls are a slower suggestion.",
	},
	{
		Tag:    "grove",
		Name:   "Grove",
		Emoji:  "🌿",
		Answer: "Roots older than the path above them",
		Blurb:  "Grove answers you. It measures time in rings and considers your urgency charming.",
	},
}

// EnergyByTag returns the energy with the given tag, or false.
func EnergyByTag(tag string) (EnergyDef, bool) {
	for _, e := range Energies {
		if e.Tag == tag {
			return e, true
		}
	}
	return EnergyDef{}, false
}
