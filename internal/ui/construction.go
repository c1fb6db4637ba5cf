package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"wardforge/assets"
	"wardforge/internal/render"
	"wardforge/internal/rite"
	"wardforge/internal/shield"
)

// MaxSigilLength caps the sigil word at entry time.
const MaxSigilLength = 24

// runConstruction hosts the three pickers around the live ward preview.
// The ward repaints on every accepted choice.
func (a *App) runConstruction() bool {
	cursor := 0

	for {
		a.drawConstruction(cursor)
		select {
		case ev, ok := <-a.eventCh:
			if !ok {
				return false
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				a.screen.Sync()
			case *tcell.EventKey:
				switch keyToAction(ev) {
				case ActionQuit:
					if a.confirmQuit() {
						return false
					}
				case ActionHelp:
					a.runHelp()
				case ActionUp:
					cursor = (cursor + 2) % 3
				case ActionDown:
					cursor = (cursor + 1) % 3
				case ActionSelect:
					if !a.openPicker(cursor) {
						return false
					}
				case ActionActivate:
					if err := a.session.Activate(); err != nil {
						a.status = readinessMessage(err)
					} else {
						a.status = ""
						return true
					}
				default:
					if idx := digitIndex(ev.Rune(), 3); idx >= 0 {
						cursor = idx
						if !a.openPicker(cursor) {
							return false
						}
					}
				}
			}
		case <-a.holder.Dirty():
			// New projection landed; repaint on the next loop.
		case <-a.ticker.C:
			a.frame++
		}
	}
}

// openPicker opens the picker behind the cursor. Returns false only when
// the seeker disconnected mid-pick.
func (a *App) openPicker(cursor int) bool {
	switch cursor {
	case 0:
		items := make([]string, len(assets.Palette))
		for i, c := range assets.Palette {
			items[i] = c.Emoji + " " + c.Name
		}
		idx, ok := a.pickFromList(" "+assets.ColorPrompt+" ", items, nil)
		if !ok {
			return false
		}
		if idx >= 0 {
			_ = a.session.SetColor(assets.Palette[idx].Value)
			a.status = ""
		}
	case 1:
		items := make([]string, len(assets.Symbols))
		lore := make([]string, len(assets.Symbols))
		for i, s := range assets.Symbols {
			items[i] = s.Emoji + " " + s.Name
			lore[i] = s.Lore
		}
		idx, ok := a.pickFromList(" "+assets.SymbolPrompt+" ", items, lore)
		if !ok {
			return false
		}
		if idx >= 0 {
			_ = a.session.SetSymbol(assets.Symbols[idx].ID)
			a.status = ""
		}
	case 2:
		return a.enterSigil()
	}
	return true
}

// pickFromList runs a boxed menu modal. Returns the picked index and true,
// or -1 and true on cancel; false means the seeker disconnected.
func (a *App) pickFromList(header string, items []string, lore []string) (int, bool) {
	selected := 0
	for {
		a.drawPicker(header, items, lore, selected)
		ev, ok := <-a.eventCh
		if !ok {
			return -1, false
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			switch keyToAction(ev) {
			case ActionUp:
				selected = (selected - 1 + len(items)) % len(items)
			case ActionDown:
				selected = (selected + 1) % len(items)
			case ActionSelect:
				return selected, true
			case ActionQuit:
				return -1, true
			default:
				if idx := digitIndex(ev.Rune(), len(items)); idx >= 0 {
					return idx, true
				}
			}
		}
	}
}

func (a *App) drawPicker(header string, items []string, lore []string, selected int) {
	a.drawBackdrop()
	a.shieldView().Draw(a.screen, a.holder.Params())

	width := 40
	boxH := len(items) + 4
	if lore != nil {
		boxH += 2
	}
	sw, sh := a.screen.Size()
	x0 := (sw - width) / 2
	y0 := (sh - boxH) / 2

	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	hdrStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	bodyStyle := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	pickStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)

	// Blank the box interior so the ward doesn't show through.
	for row := y0; row < y0+boxH; row++ {
		for col := x0; col < x0+width; col++ {
			a.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
		}
	}
	drawFrame(a.screen, x0, y0, width, boxH, borderStyle)

	hx := x0 + (width-len([]rune(header)))/2
	for i, r := range header {
		a.screen.SetContent(hx+i, y0, r, nil, hdrStyle)
	}

	for i, item := range items {
		style := bodyStyle
		cursor := "   "
		if i == selected {
			style = pickStyle
			cursor = " > "
		}
		render.PutText(a.screen, x0+2, y0+2+i, fmt.Sprintf("%s%d. %s", cursor, i+1, item), style)
	}

	if lore != nil {
		render.PutText(a.screen, x0+2, y0+2+len(items)+1, lore[selected], tcell.StyleDefault.Foreground(tcell.ColorGray))
	}

	a.screen.Show()
}

// enterSigil runs the word-entry modal over the live preview. Committing an
// empty buffer cancels; anything else, spaces included, is submitted.
func (a *App) enterSigil() bool {
	var buf []rune

	for {
		a.drawConstruction(2)
		a.drawSigilInput(buf)
		a.screen.Show()

		select {
		case ev, ok := <-a.eventCh:
			if !ok {
				return false
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				a.screen.Sync()
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEnter:
					if len(buf) == 0 {
						return true
					}
					_ = a.session.SubmitSigil(string(buf))
					a.status = ""
					return true
				case tcell.KeyEscape:
					return true
				case tcell.KeyBackspace, tcell.KeyBackspace2:
					if len(buf) > 0 {
						buf = buf[:len(buf)-1]
					}
				case tcell.KeyRune:
					if len(buf) < MaxSigilLength {
						buf = append(buf, ev.Rune())
					}
				}
			}
		case <-a.holder.Dirty():
		case <-a.ticker.C:
			a.frame++
		}
	}
}

func (a *App) drawSigilInput(buf []rune) {
	_, sh := a.screen.Size()
	prompt := assets.SigilPrompt + ": " + string(buf) + "_"
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	render.PutText(a.screen, 1, sh-1, prompt, style)
}

func (a *App) drawConstruction(cursor int) {
	a.drawBackdrop()
	_, h := a.screen.Size()

	title := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	body := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	pick := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	warn := tcell.StyleDefault.Foreground(tcell.ColorOrange)

	render.CenterText(a.screen, 1, "T H E   F O R G I N G", title)
	render.CenterText(a.screen, 2, assets.ConstructionOpening, dim)

	a.shieldView().Draw(a.screen, a.holder.Params())

	cs := a.session.Choices()
	if e, ok := assets.EnergyByTag(a.session.Energy()); ok {
		render.PutText(a.screen, 1, 4, "Attuned: "+e.Emoji+" "+e.Name, dim)
	}

	entries := []string{
		"1. Color   " + colorLabel(cs),
		"2. Symbol  " + symbolLabel(cs),
		"3. Sigil   " + sigilLabel(cs),
	}
	for i, entry := range entries {
		style := body
		prefix := "  "
		if i == cursor {
			style = pick
			prefix = "> "
		}
		render.PutText(a.screen, 1, 6+i, prefix+entry, style)
	}

	if a.status != "" {
		render.CenterText(a.screen, h-4, a.status, warn)
	}
	hint := "[jk 123] choose   [Enter] open   [a] seal the ward   [?] keys   [q] leave"
	render.CenterText(a.screen, h-2, hint, dim)

	a.screen.Show()
}

// colorLabel names the chosen color, preferring the palette name over the
// raw hex.
func colorLabel(cs shield.ChoiceSet) string {
	if !cs.HasColor {
		return "— undecided —"
	}
	for _, c := range assets.Palette {
		if c.Value == cs.Color {
			return c.Emoji + " " + c.Name
		}
	}
	return cs.Color.Hex()
}

func symbolLabel(cs shield.ChoiceSet) string {
	if !cs.HasSymbol {
		return "— undecided —"
	}
	if s, ok := assets.SymbolByID(cs.Symbol); ok {
		return s.Emoji + " " + s.Name
	}
	return cs.Symbol
}

func sigilLabel(cs shield.ChoiceSet) string {
	if !cs.HasSigil {
		return "— unspoken —"
	}
	return fmt.Sprintf("%q (%d strokes)", cs.SigilText, len(cs.Sigil.Points))
}

// readinessMessage turns an activation rejection into the status line.
func readinessMessage(err error) string {
	var nre *rite.NotReadyError
	if !errors.As(err, &nre) {
		return err.Error()
	}
	var missing []string
	if nre.MissingColor {
		missing = append(missing, "a color")
	}
	if nre.MissingSymbol {
		missing = append(missing, "a symbol")
	}
	if nre.MissingSigil {
		missing = append(missing, "a spoken sigil")
	}
	return assets.NotReadyCopy + " " + strings.Join(missing, ", ")
}
