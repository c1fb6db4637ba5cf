package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"wardforge/assets"
	"wardforge/internal/shield"
	"wardforge/internal/sigil"
)

// ShieldView draws the layered ward composite. CX, CY is the disc center in
// screen cells and R the vertical radius; the horizontal radius is doubled
// because terminal cells are roughly twice as tall as they are wide.
type ShieldView struct {
	CX, CY int
	R      int
}

// glowBand is how far past the rim the glow halo reaches, as a fraction of
// the radius.
const glowBand = 0.22

// Draw renders the composite bottom-up: halo, disc fill, sigil overlay,
// orbit markers. An all-absent parameter set draws the faint rim only, so
// the stand never looks empty.
func (v ShieldView) Draw(s tcell.Screen, p shield.LayerParameters) {
	v.drawDisc(s, p.Base)
	if p.Overlay.Visible {
		v.drawOverlay(s, p.Overlay)
	}
	v.drawMarkers(s, p.Markers)
}

// drawDisc fills the shield ellipse by base opacity and rings it with the
// glow halo when the base is lit.
func (v ShieldView) drawDisc(s tcell.Screen, base shield.BaseLayer) {
	tint := tintColor(base.Tint)
	fillStyle := tcell.StyleDefault.Foreground(tint)
	glowStyle := tcell.StyleDefault.Foreground(dimColor(base.Tint, base.Glow))
	rimStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	fill := fillRune(base.Opacity)
	rx := float64(2 * v.R)
	ry := float64(v.R)

	for y := v.CY - v.R - 1; y <= v.CY+v.R+1; y++ {
		for x := v.CX - 2*v.R - 2; x <= v.CX+2*v.R+2; x++ {
			nx := float64(x-v.CX) / rx
			ny := float64(y-v.CY) / ry
			d := nx*nx + ny*ny
			switch {
			case d <= 1 && fill != 0:
				s.SetContent(x, y, fill, nil, fillStyle)
			case d <= 1:
				// Unlit ward: trace the rim so the disc still reads.
				if d >= 0.82 {
					s.SetContent(x, y, '·', nil, rimStyle)
				}
			case base.Glow > 0 && d <= (1+glowBand)*(1+glowBand):
				s.SetContent(x, y, '·', nil, glowStyle)
			}
		}
	}
}

// drawOverlay tiles the sigil strokes across the disc, clipped to it.
func (v ShieldView) drawOverlay(s tcell.Screen, ov shield.OverlayLayer) {
	discW := 4*v.R + 1
	discH := 2*v.R + 1
	tileW := discW / ov.TileX
	tileH := discH / ov.TileY
	if tileW < 2 || tileH < 2 {
		return
	}
	raster := RasterizeGlyph(ov.Glyph, tileW, tileH)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	originX := v.CX - 2*v.R
	originY := v.CY - v.R
	rx := float64(2 * v.R)
	ry := float64(v.R)

	for ty := 0; ty < ov.TileY; ty++ {
		for tx := 0; tx < ov.TileX; tx++ {
			for row := 0; row < tileH; row++ {
				for col := 0; col < tileW; col++ {
					if !raster[row][col] {
						continue
					}
					x := originX + tx*tileW + col
					y := originY + ty*tileH + row
					nx := float64(x-v.CX) / rx
					ny := float64(y-v.CY) / ry
					if nx*nx+ny*ny > 1 {
						continue
					}
					s.SetContent(x, y, '•', nil, style)
				}
			}
		}
	}
}

// drawMarkers places the symbol emojis on the orbit ring.
func (v ShieldView) drawMarkers(s tcell.Screen, ml shield.MarkerLayer) {
	for _, m := range ml.Markers {
		rad := m.AngleDeg * math.Pi / 180
		x := v.CX + int(math.Round(math.Cos(rad)*float64(2*v.R)*ml.Orbit))
		y := v.CY + int(math.Round(math.Sin(rad)*float64(v.R)*ml.Orbit))
		PutGlyph(s, x, y, symbolGlyph(m.Symbol), tcell.StyleDefault)
	}
}

// symbolGlyph resolves a symbol id to its catalog emoji.
func symbolGlyph(id string) string {
	if def, ok := assets.SymbolByID(id); ok {
		return def.Emoji
	}
	return "✦"
}

// fillRune maps opacity to a shade block, or 0 below the visible threshold.
func fillRune(opacity float64) rune {
	switch {
	case opacity <= 0:
		return 0
	case opacity < 0.25:
		return '░'
	case opacity < 0.45:
		return '▒'
	case opacity < 0.7:
		return '▓'
	default:
		return '█'
	}
}

// tintColor converts a ward color to a terminal color.
func tintColor(c shield.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// dimColor scales a ward color toward black by the given factor.
func dimColor(c shield.RGB, factor float64) tcell.Color {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	return tcell.NewRGBColor(
		int32(float64(c.R)*factor),
		int32(float64(c.G)*factor),
		int32(float64(c.B)*factor),
	)
}

// RasterizeGlyph maps a sigil's strokes onto a w×h cell grid. The glyph's
// square canvas is scaled to the grid, so callers pick the aspect ratio by
// picking the grid. A one-point glyph marks its single vertex.
func RasterizeGlyph(g sigil.Glyph, w, h int) [][]bool {
	grid := make([][]bool, h)
	for i := range grid {
		grid[i] = make([]bool, w)
	}
	if g.Empty() || w < 1 || h < 1 {
		return grid
	}

	toCell := func(p sigil.Point) (int, int) {
		x := int(math.Round(p.X / sigil.CanvasSize * float64(w-1)))
		y := int(math.Round(p.Y / sigil.CanvasSize * float64(h-1)))
		return clamp(x, 0, w-1), clamp(y, 0, h-1)
	}

	if len(g.Points) == 1 {
		x, y := toCell(g.Points[0])
		grid[y][x] = true
		return grid
	}
	for _, seg := range g.Segments() {
		x0, y0 := toCell(seg[0])
		x1, y1 := toCell(seg[1])
		plotLine(grid, x0, y0, x1, y1)
	}
	return grid
}

// plotLine marks the Bresenham line from (x0, y0) to (x1, y1).
func plotLine(grid [][]bool, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	dy := -abs(y1 - y0)
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		grid[y0][x0] = true
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
