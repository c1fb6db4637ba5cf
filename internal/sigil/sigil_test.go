package sigil

import (
	"math"
	"testing"
)

// radiusOf returns a point's distance from the canvas center.
func radiusOf(p Point) float64 {
	const center = CanvasSize / 2
	return math.Hypot(p.X-center, p.Y-center)
}

func TestGenerateDeterministic(t *testing.T) {
	inputs := []string{"SHIELD", "ward", "A", "AB", "a long phrase, with punctuation!", "日本語"}
	for _, in := range inputs {
		first := Generate(in)
		second := Generate(in)
		if len(first.Points) != len(second.Points) {
			t.Fatalf("Generate(%q) point counts differ: %d vs %d", in, len(first.Points), len(second.Points))
		}
		for i := range first.Points {
			if first.Points[i] != second.Points[i] {
				t.Errorf("Generate(%q) point %d differs: %v vs %v", in, i, first.Points[i], second.Points[i])
			}
		}
		if first.Closed != second.Closed {
			t.Errorf("Generate(%q) closed flag differs", in)
		}
	}
}

func TestGenerateBlankInput(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"tabs and newlines", "\t \n "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := Generate(tc.input)
			if !g.Empty() {
				t.Errorf("Generate(%q) = %d points, want empty glyph", tc.input, len(g.Points))
			}
			if g.Closed {
				t.Errorf("Generate(%q) closed, want open", tc.input)
			}
			if segs := g.Segments(); segs != nil {
				t.Errorf("Generate(%q).Segments() = %d, want none", tc.input, len(segs))
			}
		})
	}
}

func TestGeneratePointCountAndClosure(t *testing.T) {
	cases := []struct {
		input  string
		points int
		closed bool
	}{
		{"A", 1, false},
		{"AB", 2, false},
		{"ABC", 3, true},
		{"WARD", 4, true},
		{"A B", 3, true}, // interior whitespace participates
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			g := Generate(tc.input)
			if len(g.Points) != tc.points {
				t.Errorf("point count = %d, want %d", len(g.Points), tc.points)
			}
			if g.Closed != tc.closed {
				t.Errorf("closed = %v, want %v", g.Closed, tc.closed)
			}
		})
	}
}

func TestGenerateUppercasesInput(t *testing.T) {
	lower := Generate("shield")
	upper := Generate("SHIELD")
	if len(lower.Points) != len(upper.Points) {
		t.Fatalf("case changed point count: %d vs %d", len(lower.Points), len(upper.Points))
	}
	for i := range lower.Points {
		if lower.Points[i] != upper.Points[i] {
			t.Errorf("point %d differs between cases: %v vs %v", i, lower.Points[i], upper.Points[i])
		}
	}
}

// Runes whose alphabet offsets differ by a multiple of ten land on the same
// radius ring. 'A' is offset 0 and 'K' offset 10.
func TestGenerateRadiusBanding(t *testing.T) {
	a := Generate("A")
	k := Generate("K")
	ra, rk := radiusOf(a.Points[0]), radiusOf(k.Points[0])
	if math.Abs(ra-rk) > 1e-9 {
		t.Errorf("A and K radii differ: %f vs %f", ra, rk)
	}

	b := Generate("B")
	rb := radiusOf(b.Points[0])
	if math.Abs(ra-rb) < 1e-9 {
		t.Errorf("A and B landed on the same ring: %f", ra)
	}
}

// Non-letters produce negative or large offsets; the glyph must still stay
// inside the canvas with a positive radius.
func TestGenerateNonLetterRunes(t *testing.T) {
	g := Generate("! ?9日")
	if len(g.Points) != 5 {
		t.Fatalf("point count = %d, want 5", len(g.Points))
	}
	const maxR = CanvasSize/2 - Margin
	for i, p := range g.Points {
		r := radiusOf(p)
		if r <= 0 {
			t.Errorf("point %d radius %f, want > 0", i, r)
		}
		if r > maxR+1e-9 {
			t.Errorf("point %d radius %f exceeds max %f", i, r, maxR)
		}
	}
}

func TestGenerateVertexAngles(t *testing.T) {
	g := Generate("ABC")
	const center = CanvasSize / 2

	// First vertex sits at angle 0: due east of center.
	if g.Points[0].X <= center {
		t.Errorf("first vertex x = %f, want > %f", g.Points[0].X, float64(center))
	}
	if math.Abs(g.Points[0].Y-center) > 1e-9 {
		t.Errorf("first vertex y = %f, want %f", g.Points[0].Y, float64(center))
	}

	// Vertices are evenly spaced: i/n of a full turn.
	for i, p := range g.Points {
		want := float64(i) / 3 * 2 * math.Pi
		got := math.Atan2(p.Y-center, p.X-center)
		if got < 0 {
			got += 2 * math.Pi
		}
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("vertex %d angle = %f, want %f", i, got, want)
		}
	}
}

func TestSegments(t *testing.T) {
	cases := []struct {
		input    string
		segments int
	}{
		{"", 0},
		{"A", 0},
		{"AB", 1},
		{"ABC", 3},  // closed triangle
		{"WARD", 4}, // closed quad
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			g := Generate(tc.input)
			if got := len(g.Segments()); got != tc.segments {
				t.Errorf("segments = %d, want %d", got, tc.segments)
			}
		})
	}

	// A closed path's last segment returns to the first vertex.
	g := Generate("ABC")
	segs := g.Segments()
	last := segs[len(segs)-1]
	if last[1] != g.Points[0] {
		t.Errorf("closing segment ends at %v, want first vertex %v", last[1], g.Points[0])
	}
}
