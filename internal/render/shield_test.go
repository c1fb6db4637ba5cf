package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"wardforge/internal/shield"
	"wardforge/internal/sigil"
)

// newSimScreen creates an initialized 80×24 simulation screen.
func newSimScreen() tcell.Screen {
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(80, 24)
	_ = ss.Init()
	return ss
}

// countMarked counts true cells in a raster grid.
func countMarked(grid [][]bool) int {
	n := 0
	for _, row := range grid {
		for _, set := range row {
			if set {
				n++
			}
		}
	}
	return n
}

// TestRasterizeGlyphEmpty verifies an empty glyph yields a blank grid of the
// requested size.
func TestRasterizeGlyphEmpty(t *testing.T) {
	grid := RasterizeGlyph(sigil.Generate("   "), 12, 6)
	if len(grid) != 6 || len(grid[0]) != 12 {
		t.Fatalf("grid size = %d×%d; want 6×12", len(grid), len(grid[0]))
	}
	if n := countMarked(grid); n != 0 {
		t.Errorf("blank glyph marked %d cells; want 0", n)
	}
}

// TestRasterizeGlyphSinglePoint verifies a one-letter sigil marks exactly
// one cell.
func TestRasterizeGlyphSinglePoint(t *testing.T) {
	grid := RasterizeGlyph(sigil.Generate("A"), 12, 6)
	if n := countMarked(grid); n != 1 {
		t.Errorf("one-point glyph marked %d cells; want 1", n)
	}
}

// TestRasterizeGlyphStrokesConnect verifies a two-letter sigil draws a
// contiguous stroke covering both endpoints.
func TestRasterizeGlyphStrokesConnect(t *testing.T) {
	g := sigil.Generate("AB")
	grid := RasterizeGlyph(g, 20, 10)

	if n := countMarked(grid); n < 2 {
		t.Fatalf("two-point glyph marked %d cells; want a stroke", n)
	}
	// Both endpoints must land on marked cells.
	for i, p := range g.Points {
		x := int(p.X / sigil.CanvasSize * 19)
		y := int(p.Y / sigil.CanvasSize * 9)
		found := false
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				yy, xx := y+dy, x+dx
				if yy >= 0 && yy < 10 && xx >= 0 && xx < 20 && grid[yy][xx] {
					found = true
				}
			}
		}
		if !found {
			t.Errorf("vertex %d (%v) has no marked cell nearby", i, p)
		}
	}
}

// TestRasterizeGlyphInBounds verifies no stroke escapes the grid for a long
// word with mixed runes.
func TestRasterizeGlyphInBounds(t *testing.T) {
	// Rune values below 'A' produce negative sigil values; the raster must
	// still stay inside the grid.
	grid := RasterizeGlyph(sigil.Generate("W4RD-8R34K3R"), 16, 8)
	if len(grid) != 8 {
		t.Fatalf("grid rows = %d; want 8", len(grid))
	}
	for _, row := range grid {
		if len(row) != 16 {
			t.Fatalf("grid cols = %d; want 16", len(row))
		}
	}
	if countMarked(grid) == 0 {
		t.Error("closed glyph marked no cells")
	}
}

// TestFillRuneThresholds verifies the opacity-to-shade mapping, in
// particular that the overlay floor (0.3) reads darker than the bare base
// (0.2).
func TestFillRuneThresholds(t *testing.T) {
	tests := []struct {
		opacity float64
		want    rune
	}{
		{0, 0},
		{shield.BaseOpacity, '░'},
		{shield.OverlayOpacityMin, '▒'},
		{0.5, '▓'},
		{0.9, '█'},
	}
	for _, tt := range tests {
		if got := fillRune(tt.opacity); got != tt.want {
			t.Errorf("fillRune(%v) = %q; want %q", tt.opacity, got, tt.want)
		}
	}
}

// TestShieldViewDrawsFill verifies the disc center carries the fill shade
// once a color is chosen, and stays un-filled on the neutral projection.
func TestShieldViewDrawsFill(t *testing.T) {
	v := ShieldView{CX: 40, CY: 12, R: 8}

	s := newSimScreen()
	v.Draw(s, shield.Project(shield.ChoiceSet{}))
	if ch, _, _, _ := s.GetContent(v.CX, v.CY); ch != ' ' {
		t.Errorf("neutral center = %q; want blank", ch)
	}

	s = newSimScreen()
	cs := shield.ChoiceSet{Color: shield.RGB{R: 70, G: 130, B: 230}, HasColor: true}
	v.Draw(s, shield.Project(cs))
	if ch, _, _, _ := s.GetContent(v.CX, v.CY); ch != '░' {
		t.Errorf("colored center = %q; want '░'", ch)
	}
}

// TestShieldViewOverlayRespectsDisc verifies sigil strokes never land
// outside the ellipse.
func TestShieldViewOverlayRespectsDisc(t *testing.T) {
	v := ShieldView{CX: 40, CY: 12, R: 8}
	s := newSimScreen()

	cs := shield.ChoiceSet{}
	cs.Sigil = sigil.Generate("WARDBREAKER")
	cs.HasSigil = true
	v.Draw(s, shield.Project(cs))

	w, h := s.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ch, _, _, _ := s.GetContent(x, y)
			if ch != '•' {
				continue
			}
			nx := float64(x-v.CX) / float64(2*v.R)
			ny := float64(y-v.CY) / float64(v.R)
			if nx*nx+ny*ny > 1.0001 {
				t.Errorf("stroke at (%d, %d) lies outside the disc", x, y)
			}
		}
	}
}

// TestSymbolGlyphFallback verifies unknown symbol ids still render.
func TestSymbolGlyphFallback(t *testing.T) {
	if got := symbolGlyph("flame"); got == "✦" || got == "" {
		t.Errorf("symbolGlyph(flame) = %q; want the catalog emoji", got)
	}
	if got := symbolGlyph("no-such-symbol"); got != "✦" {
		t.Errorf("symbolGlyph(unknown) = %q; want the fallback", got)
	}
}
