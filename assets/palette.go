package assets

import "wardforge/internal/shield"

// ColorDef defines one pickable ward color.
type ColorDef struct {
	Name  string
	Emoji string
	Value shield.RGB
}

// Palette is the ordered list of pickable ward colors.
var Palette = []ColorDef{
	{Name: "Crimson", Emoji: "🔴", Value: shield.RGB{R: 205, G: 40, B: 60}},
	{Name: "Azure", Emoji: "🔵", Value: shield.RGB{R: 70, G: 130, B: 230}},
	{Name: "Viridian", Emoji: "🟢", Value: shield.RGB{R: 60, G: 170, B: 110}},
	{Name: "Gold", Emoji: "🟡", Value: shield.RGB{R: 230, G: 190, B: 60}},
	{Name: "Violet", Emoji: "🟣", Value: shield.RGB{R: 150, G: 80, B: 220}},
	{Name: "Flare", Emoji: "🟠", Value: shield.RGB{R: 240, G: 130, B: 40}},
	{Name: "Rose", Emoji: "🩷", Value: shield.RGB{R: 235, G: 120, B: 160}},
	{Name: "Silver", Emoji: "⚪", Value: shield.RGB{R: 200, G: 205, B: 215}},
}
