package render

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"
)

// Starfield is the Wardhall's ambient backdrop. Star positions are stored as
// fractions of the screen so a resize just re-spreads them, and each star
// twinkles on its own phase.
type Starfield struct {
	stars []star
}

type star struct {
	fx, fy float64
	glyph  rune
	phase  int
}

var starGlyphs = []rune{'.', '·', '+', '✦'}

// NewStarfield scatters count stars using the given source.
func NewStarfield(count int, rng *rand.Rand) *Starfield {
	f := &Starfield{stars: make([]star, count)}
	for i := range f.stars {
		f.stars[i] = star{
			fx:    rng.Float64(),
			fy:    rng.Float64(),
			glyph: starGlyphs[rng.Intn(len(starGlyphs))],
			phase: rng.Intn(24),
		}
	}
	return f
}

// Draw renders the stars that are lit on this frame. Each star is dark for
// one beat in three, offset by its phase.
func (f *Starfield) Draw(s tcell.Screen, frame int) {
	w, h := s.Size()
	if w < 1 || h < 1 {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for _, st := range f.stars {
		if (frame+st.phase)/8%3 == 2 {
			continue
		}
		x := int(st.fx * float64(w-1))
		y := int(st.fy * float64(h-1))
		s.SetContent(x, y, st.glyph, nil, style)
	}
}
