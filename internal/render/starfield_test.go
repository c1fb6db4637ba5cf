package render

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// TestStarfieldDeterministic verifies the same seed scatters the same stars.
func TestStarfieldDeterministic(t *testing.T) {
	a := NewStarfield(40, rand.New(rand.NewSource(42)))
	b := NewStarfield(40, rand.New(rand.NewSource(42)))

	sa := newSimScreen()
	sb := newSimScreen()
	a.Draw(sa, 0)
	b.Draw(sb, 0)

	w, h := sa.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ca, _, _, _ := sa.GetContent(x, y)
			cb, _, _, _ := sb.GetContent(x, y)
			if ca != cb {
				t.Fatalf("screens differ at (%d, %d): %q vs %q", x, y, ca, cb)
			}
		}
	}
}

// TestStarfieldTwinkles verifies at least one star changes between frames.
func TestStarfieldTwinkles(t *testing.T) {
	f := NewStarfield(60, rand.New(rand.NewSource(7)))

	s0 := newSimScreen()
	s8 := newSimScreen()
	f.Draw(s0, 0)
	f.Draw(s8, 8)

	w, h := s0.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c0, _, _, _ := s0.GetContent(x, y)
			c8, _, _, _ := s8.GetContent(x, y)
			if c0 != c8 {
				return
			}
		}
	}
	t.Error("no cell changed between frames 0 and 8")
}

// TestPutTextAdvancesByWidth verifies wide runes take two columns.
func TestPutTextAdvancesByWidth(t *testing.T) {
	s := newSimScreen()
	end := PutText(s, 0, 0, "a日b", tcell.StyleDefault)
	if end != 4 {
		t.Errorf("end column = %d; want 4", end)
	}
	if ch, _, _, _ := s.GetContent(0, 0); ch != 'a' {
		t.Errorf("cell 0 = %q; want 'a'", ch)
	}
	if ch, _, _, _ := s.GetContent(1, 0); ch != '日' {
		t.Errorf("cell 1 = %q; want '日'", ch)
	}
	if ch, _, _, _ := s.GetContent(3, 0); ch != 'b' {
		t.Errorf("cell 3 = %q; want 'b'", ch)
	}
}
