package assets

// RiteOpening is shown on the intro stage.
const RiteOpening = `The Wardhall — a round room with no door you remember
using. In its center, a shield waits on a stone stand.
It is blank. It has been blank for a very long time,
and it is tired of it.

Forge your ward: attune, choose, and speak the word.
Press Enter to begin...`

// DiagnosticOpening is shown above the attunement question.
const DiagnosticOpening = `The shield hums as you approach. Before it takes
a shape, it wants to know whose shape to take.`

// ConstructionOpening is shown when the forging begins.
const ConstructionOpening = `The surface ripples, waiting. Three choices
make a ward: a color, a symbol, a word.`

// ColorPrompt labels the color picker.
const ColorPrompt = "Choose the ward's color"

// SymbolPrompt labels the symbol picker.
const SymbolPrompt = "Choose the ward's symbol"

// SigilPrompt labels the sigil word entry.
const SigilPrompt = "Speak a word to bind into the sigil"

// ActivationCopy is shown once the ward is sealed.
const ActivationCopy = `The ward takes. Light settles into the grooves
like it has always lived there. The shield is yours —
until you set it down and begin again.`

// ActivationHint is the key hint on the activation stage.
const ActivationHint = "Press R to forge anew, Q to leave the hall"

// NotReadyCopy prefixes the list of missing choices when the seeker tries to
// seal an unfinished ward.
const NotReadyCopy = "The ward will not take. Still missing:"
