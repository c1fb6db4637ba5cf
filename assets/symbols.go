package assets

// SymbolDef defines one ward symbol. Three copies of the chosen symbol orbit
// the shield once it is set.
type SymbolDef struct {
	ID    string
	Name  string
	Emoji string
	Lore  string // one-liner shown on the symbol picker
}

// Symbols is the ordered list of pickable ward symbols.
var Symbols = []SymbolDef{
	{
		ID:    "flame",
		Name:  "The Flame",
		Emoji: "🔥",
		Lore:  "Burns what approaches. Warms what belongs. Has strong opinions about which is which.",
	},
	{
		ID:    "moon",
		Name:  "The Moon",
		Emoji: "🌙",
		Lore:  "Watches in shifts. The other shift is also the moon.",
	},
	{
		ID:    "star",
		Name:  "The Star",
		Emoji: "⭐",
		Lore:  "A light that already travelled the worst of the dark to get here.",
	},
	{
		ID:    "serpent",
		Name:  "The Serpent",
		Emoji: "🐍",
		Lore:  "Coils around what it keeps. Sheds what it no longer needs. Rarely confuses the two.",
	},
	{
		ID:    "key",
		Name:  "The Key",
		Emoji: "🗝️",
		Lore:  "Opens nothing by itself. Reminds every lock who it works for.",
	},
	{
		ID:    "eye",
		Name:  "The Eye",
		Emoji: "👁️",
		Lore:  "Does not blink. Has never needed to. Would rather not discuss it.",
	},
}

// SymbolByID returns the symbol with the given id, or false.
func SymbolByID(id string) (SymbolDef, bool) {
	for _, s := range Symbols {
		if s.ID == id {
			return s, true
		}
	}
	return SymbolDef{}, false
}
