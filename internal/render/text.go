// Package render draws the ward and the rite's screens onto a tcell screen.
// It consumes layer parameters and catalog data; it never touches session
// state.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// PutText draws text starting at (x, y), advancing by display width so wide
// runes don't overlap their neighbors. Returns the column after the last
// cell written.
func PutText(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		s.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
	return col
}

// PutGlyph draws a single glyph (ASCII or multi-rune emoji) at (x, y).
func PutGlyph(s tcell.Screen, x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	s.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		s.SetContent(x+1, y, ' ', nil, style)
	}
}

// CenterText draws text centered horizontally on the given row.
func CenterText(s tcell.Screen, y int, text string, style tcell.Style) {
	w, _ := s.Size()
	x := (w - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	PutText(s, x, y, text, style)
}

// HLine draws a horizontal separator across the full width of the row.
func HLine(s tcell.Screen, y int, color tcell.Color) {
	w, _ := s.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		s.SetContent(x, y, '─', nil, style)
	}
}
