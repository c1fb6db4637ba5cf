package shield

import (
	"reflect"
	"testing"

	"wardforge/internal/sigil"
)

func TestProjectEmptyChoiceSet(t *testing.T) {
	p := Project(ChoiceSet{})

	if p.Base.Opacity != 0 || p.Base.Glow != 0 {
		t.Errorf("neutral base = %+v, want invisible", p.Base)
	}
	if p.Base.Tint != NeutralTint {
		t.Errorf("neutral tint = %v, want %v", p.Base.Tint, NeutralTint)
	}
	if len(p.Markers.Markers) != 0 {
		t.Errorf("marker count = %d, want 0", len(p.Markers.Markers))
	}
	if p.Markers.Orbit != MarkerOrbit {
		t.Errorf("orbit = %f, want %f even with no markers", p.Markers.Orbit, float64(MarkerOrbit))
	}
	if p.Overlay.Visible {
		t.Error("overlay visible with no sigil")
	}
}

func TestProjectIdempotent(t *testing.T) {
	var tr Tracker
	tr.SetColor(azure)
	tr.SetSymbol("flame")
	tr.SetSigil(sigil.Generate("SHIELD"), "SHIELD")
	cs := tr.Snapshot()

	first := Project(cs)
	second := Project(cs)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("projections differ:\n%+v\n%+v", first, second)
	}
}

func TestProjectColorOnly(t *testing.T) {
	var tr Tracker
	tr.SetColor(azure)
	p := Project(tr.Snapshot())

	if p.Base.Tint != azure {
		t.Errorf("tint = %v, want %v", p.Base.Tint, azure)
	}
	if p.Base.Glow != BaseGlow {
		t.Errorf("glow = %f, want %f", p.Base.Glow, float64(BaseGlow))
	}
	if p.Base.Opacity != BaseOpacity {
		t.Errorf("opacity = %f, want %f", p.Base.Opacity, float64(BaseOpacity))
	}
	if len(p.Markers.Markers) != 0 || p.Overlay.Visible {
		t.Error("color choice leaked into other layers")
	}
}

func TestProjectMarkersEvenlySpaced(t *testing.T) {
	var tr Tracker
	tr.SetSymbol("flame")
	p := Project(tr.Snapshot())

	if len(p.Markers.Markers) != MarkerCount {
		t.Fatalf("marker count = %d, want %d", len(p.Markers.Markers), MarkerCount)
	}
	for i, m := range p.Markers.Markers {
		if m.Symbol != "flame" {
			t.Errorf("marker %d symbol = %q, want %q", i, m.Symbol, "flame")
		}
		want := float64(i) * 120
		if m.AngleDeg != want {
			t.Errorf("marker %d angle = %f, want %f", i, m.AngleDeg, want)
		}
	}
}

// Re-picking a symbol swaps the whole marker set; nothing accumulates.
func TestProjectMarkersReplaceOnRepick(t *testing.T) {
	var tr Tracker
	tr.SetSymbol("flame")
	before := Project(tr.Snapshot())
	tr.SetSymbol("moon")
	after := Project(tr.Snapshot())

	if len(after.Markers.Markers) != MarkerCount {
		t.Fatalf("marker count = %d after re-pick, want %d", len(after.Markers.Markers), MarkerCount)
	}
	for i, m := range after.Markers.Markers {
		if m.Symbol != "moon" {
			t.Errorf("marker %d symbol = %q, want %q", i, m.Symbol, "moon")
		}
		if m.AngleDeg != before.Markers.Markers[i].AngleDeg {
			t.Errorf("marker %d moved on re-pick: %f vs %f", i, m.AngleDeg, before.Markers.Markers[i].AngleDeg)
		}
	}
}

func TestProjectOverlayRaisesOpacity(t *testing.T) {
	var tr Tracker
	tr.SetColor(azure) // opacity 0.2
	tr.SetSigil(sigil.Generate("SHIELD"), "SHIELD")
	p := Project(tr.Snapshot())

	if !p.Overlay.Visible {
		t.Fatal("overlay not visible with a sigil present")
	}
	if p.Overlay.TileX != OverlayTileX || p.Overlay.TileY != OverlayTileY {
		t.Errorf("tiling = %d×%d, want %d×%d", p.Overlay.TileX, p.Overlay.TileY, OverlayTileX, OverlayTileY)
	}
	if p.Base.Opacity < OverlayOpacityMin {
		t.Errorf("opacity = %f, want ≥ %f", p.Base.Opacity, float64(OverlayOpacityMin))
	}
	if p.Base.Glow != BaseGlow || p.Base.Tint != azure {
		t.Error("overlay floor disturbed the color layer's other fields")
	}
}

// The floor never lowers an opacity already above it.
func TestFloorOpacityMonotonic(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, OverlayOpacityMin},
		{0.2, OverlayOpacityMin},
		{OverlayOpacityMin, OverlayOpacityMin},
		{0.9, 0.9},
		{1, 1},
	}
	for _, tc := range cases {
		if got := floorOpacity(tc.in); got != tc.want {
			t.Errorf("floorOpacity(%f) = %f, want %f", tc.in, got, tc.want)
		}
	}
}

func TestProjectSigilWithoutColor(t *testing.T) {
	var tr Tracker
	tr.SetSigil(sigil.Generate("WARD"), "WARD")
	p := Project(tr.Snapshot())

	if !p.Overlay.Visible {
		t.Fatal("overlay not visible")
	}
	if p.Base.Opacity != OverlayOpacityMin {
		t.Errorf("opacity = %f, want the floor %f", p.Base.Opacity, float64(OverlayOpacityMin))
	}
	if p.Base.Tint != NeutralTint {
		t.Errorf("tint = %v, want neutral %v", p.Base.Tint, NeutralTint)
	}
	if p.Base.Glow != 0 {
		t.Errorf("glow = %f, want 0 without a color", p.Base.Glow)
	}
}

// A blank sigil submission clears the overlay and releases the floor.
func TestProjectBlankSigilClearsOverlay(t *testing.T) {
	var tr Tracker
	tr.SetColor(azure)
	tr.SetSigil(sigil.Generate("SHIELD"), "SHIELD")
	tr.SetSigil(sigil.Generate(""), "")
	p := Project(tr.Snapshot())

	if p.Overlay.Visible {
		t.Error("overlay still visible after blank submission")
	}
	if p.Base.Opacity != BaseOpacity {
		t.Errorf("opacity = %f, want %f once the floor is released", p.Base.Opacity, float64(BaseOpacity))
	}
}

func TestProjectSubsets(t *testing.T) {
	glyph := sigil.Generate("WARD")
	cases := []struct {
		name string
		cs   ChoiceSet
	}{
		{"none", ChoiceSet{}},
		{"color", ChoiceSet{Color: azure, HasColor: true}},
		{"symbol", ChoiceSet{Symbol: "eye", HasSymbol: true}},
		{"sigil", ChoiceSet{Sigil: glyph, SigilText: "WARD", HasSigil: true}},
		{"color+symbol", ChoiceSet{Color: azure, HasColor: true, Symbol: "eye", HasSymbol: true}},
		{"all", ChoiceSet{Color: azure, HasColor: true, Symbol: "eye", HasSymbol: true, Sigil: glyph, SigilText: "WARD", HasSigil: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Project(tc.cs)
			// Every projection is fully specified: orbit and tint always set,
			// marker slice length matches the symbol flag.
			if p.Markers.Orbit != MarkerOrbit {
				t.Errorf("orbit = %f", p.Markers.Orbit)
			}
			if (p.Base.Tint == RGB{}) {
				t.Error("tint unspecified")
			}
			wantMarkers := 0
			if tc.cs.HasSymbol {
				wantMarkers = MarkerCount
			}
			if len(p.Markers.Markers) != wantMarkers {
				t.Errorf("marker count = %d, want %d", len(p.Markers.Markers), wantMarkers)
			}
			if p.Overlay.Visible != tc.cs.HasSigil {
				t.Errorf("overlay visible = %v, want %v", p.Overlay.Visible, tc.cs.HasSigil)
			}
		})
	}
}
