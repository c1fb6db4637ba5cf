package shield

import "wardforge/internal/sigil"

// Visual constants for the three-layer composite.
const (
	BaseGlow          = 0.5  // glow strength once a color is chosen
	BaseOpacity       = 0.2  // disc opacity once a color is chosen
	OverlayOpacityMin = 0.3  // opacity floor while a sigil overlay is visible
	MarkerCount       = 3    // orbiting symbols per ward
	MarkerOrbit       = 1.25 // orbit radius relative to the disc radius
	OverlayTileX      = 3    // sigil tiling across the disc
	OverlayTileY      = 2
)

// NeutralTint is the unlit disc color before any color is chosen.
var NeutralTint = RGB{R: 128, G: 128, B: 128}

// BaseLayer is the tinted disc under everything else. Opacity zero means
// the disc is invisible; renderers draw nothing for it.
type BaseLayer struct {
	Tint    RGB
	Glow    float64
	Opacity float64
}

// Marker is one orbiting symbol, positioned by its angle on the equator.
type Marker struct {
	Symbol   string  // symbol catalog ID
	AngleDeg float64 // degrees counterclockwise from east
}

// MarkerLayer is the full replacement set of orbiting symbols. Every
// projection rebuilds it from scratch; renderers discard whatever marker
// set they showed before.
type MarkerLayer struct {
	Markers []Marker
	Orbit   float64 // orbit radius relative to the disc radius
}

// OverlayLayer tiles the sigil glyph across the disc surface.
type OverlayLayer struct {
	Visible      bool
	Glyph        sigil.Glyph
	TileX, TileY int
}

// LayerParameters is one fully-specified render directive covering all three
// layers. Apply calls overwrite the collaborator's visual state wholesale;
// nothing merges with a previous call.
type LayerParameters struct {
	Base    BaseLayer
	Markers MarkerLayer
	Overlay OverlayLayer
}

// Project derives the composite's layer parameters from the entire choice
// set. Pure and idempotent: the same ChoiceSet always produces the same
// parameters, with any subset of choices present, every field specified.
//
// The layers are independent except for one rule: a visible sigil overlay
// raises the base opacity to OverlayOpacityMin. The floor only ever raises;
// a base opacity already above it is left alone.
func Project(cs ChoiceSet) LayerParameters {
	var p LayerParameters

	p.Base = BaseLayer{Tint: NeutralTint}
	if cs.HasColor {
		p.Base = BaseLayer{Tint: cs.Color, Glow: BaseGlow, Opacity: BaseOpacity}
	}

	p.Markers.Orbit = MarkerOrbit
	if cs.HasSymbol {
		p.Markers.Markers = make([]Marker, MarkerCount)
		for i := range p.Markers.Markers {
			p.Markers.Markers[i] = Marker{
				Symbol:   cs.Symbol,
				AngleDeg: float64(i) * 360 / MarkerCount,
			}
		}
	}

	if cs.HasSigil && !cs.Sigil.Empty() {
		p.Overlay = OverlayLayer{
			Visible: true,
			Glyph:   cs.Sigil,
			TileX:   OverlayTileX,
			TileY:   OverlayTileY,
		}
		p.Base.Opacity = floorOpacity(p.Base.Opacity)
	}

	return p
}

// floorOpacity raises v to the overlay floor; a value already above the
// floor passes through untouched.
func floorOpacity(v float64) float64 {
	if v < OverlayOpacityMin {
		return OverlayOpacityMin
	}
	return v
}
