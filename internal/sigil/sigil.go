// Package sigil turns a typed word into a deterministic line glyph.
// The glyph is pure geometry on a fixed square canvas; renderers scale
// it onto whatever surface they draw.
package sigil

import (
	"math"
	"strings"
)

// Canvas geometry. Points land inside a CanvasSize×CanvasSize square,
// centered, with Margin kept clear on every side.
const (
	CanvasSize = 256.0
	Margin     = 24.0
)

// Point is one vertex of a glyph polyline on the sigil canvas.
type Point struct {
	X, Y float64
}

// Glyph is an ordered polyline, open or closed. The empty glyph (no
// points) is what blank input produces; renderers draw nothing for it.
type Glyph struct {
	Points []Point
	Closed bool
}

// Empty reports whether the glyph has no points.
func (g Glyph) Empty() bool { return len(g.Points) == 0 }

// Segments lists the stroke endpoints in draw order: each consecutive
// vertex pair, plus the closing pair when the path is closed. Glyphs with
// fewer than two points have no segments.
func (g Glyph) Segments() [][2]Point {
	if len(g.Points) < 2 {
		return nil
	}
	segs := make([][2]Point, 0, len(g.Points))
	for i := 1; i < len(g.Points); i++ {
		segs = append(segs, [2]Point{g.Points[i-1], g.Points[i]})
	}
	if g.Closed {
		segs = append(segs, [2]Point{g.Points[len(g.Points)-1], g.Points[0]})
	}
	return segs
}

// Generate maps text to a glyph. Deterministic: the same text always yields
// the identical point sequence.
//
// Every rune of the uppercased input becomes one vertex, whitespace and
// punctuation included. The vertex angle is the rune's position around a
// full circle; the radius folds the rune's offset from 'A' into ten bands,
// so runes whose offsets differ by a multiple of ten share a ring. That
// banding is deliberate. Non-letter offsets go negative or large; the
// truncated remainder keeps the band factor inside (0, 1] either way.
//
// Blank input (empty or whitespace-only) yields the empty glyph, a valid
// terminal case rather than an error. Paths with more than two vertices close
// back to the first; one- and two-point glyphs stay open.
func Generate(text string) Glyph {
	if strings.TrimSpace(text) == "" {
		return Glyph{}
	}

	const (
		center = CanvasSize / 2
		maxR   = CanvasSize/2 - Margin
	)

	runes := []rune(strings.ToUpper(text))
	n := len(runes)
	pts := make([]Point, n)
	for i, r := range runes {
		value := int(r) - 'A'
		angle := float64(i) / float64(n) * 2 * math.Pi
		radius := maxR * (0.5 + 0.5*float64(value%10)/10)
		pts[i] = Point{
			X: center + math.Cos(angle)*radius,
			Y: center + math.Sin(angle)*radius,
		}
	}
	return Glyph{Points: pts, Closed: n > 2}
}
