package ui

import (
	"github.com/gdamore/tcell/v2"

	"wardforge/assets"
	"wardforge/internal/render"
)

// runDiagnostic asks the attunement question and records the answer. The
// seeker can re-pick until they confirm; Enter on the blurb advances.
func (a *App) runDiagnostic() bool {
	selected := 0
	answered := false

	for {
		a.drawDiagnostic(selected, answered)
		select {
		case ev, ok := <-a.eventCh:
			if !ok {
				return false
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				a.screen.Sync()
			case *tcell.EventKey:
				if answered {
					// Any key re-opens the question except Enter, which seals
					// the answer and moves on.
					switch keyToAction(ev) {
					case ActionQuit:
						if a.confirmQuit() {
							return false
						}
					case ActionSelect:
						if _, err := a.session.Advance(); err == nil {
							return true
						}
					default:
						answered = false
					}
					continue
				}
				switch keyToAction(ev) {
				case ActionQuit:
					if a.confirmQuit() {
						return false
					}
				case ActionHelp:
					a.runHelp()
				case ActionUp:
					selected = (selected - 1 + len(assets.Energies)) % len(assets.Energies)
				case ActionDown:
					selected = (selected + 1) % len(assets.Energies)
				case ActionSelect:
					if err := a.session.SelectEnergy(assets.Energies[selected].Tag); err == nil {
						answered = true
					}
				default:
					if idx := digitIndex(ev.Rune(), len(assets.Energies)); idx >= 0 {
						if err := a.session.SelectEnergy(assets.Energies[idx].Tag); err == nil {
							selected = idx
							answered = true
						}
					}
				}
			}
		case <-a.ticker.C:
			a.frame++
		}
	}
}

func (a *App) drawDiagnostic(selected int, answered bool) {
	a.drawBackdrop()
	w, h := a.screen.Size()

	title := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	body := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	pick := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	render.CenterText(a.screen, 2, assets.DiagnosticOpening, dim)
	render.CenterText(a.screen, 4, assets.DiagnosticPrompt, title)

	y := 7
	for i, e := range assets.Energies {
		style := body
		cursor := "  "
		if i == selected {
			style = pick
			cursor = "> "
		}
		line := cursor + e.Emoji + " " + e.Answer
		render.PutText(a.screen, w/2-24, y+i*2, line, style)
	}

	if answered {
		tag := a.session.Energy()
		if e, ok := assets.EnergyByTag(tag); ok {
			render.CenterText(a.screen, y+len(assets.Energies)*2+1, e.Blurb, body)
			render.CenterText(a.screen, h-2, "[Enter] carry "+e.Name+" to the forge   [any key] answer again", dim)
		}
	} else {
		render.CenterText(a.screen, h-2, "[↑↓ jk] move   [Enter] answer   [q] leave", dim)
	}

	a.screen.Show()
}

// digitIndex converts a digit rune to a list index, or -1 when out of range.
func digitIndex(r rune, n int) int {
	if r < '1' || r > '9' {
		return -1
	}
	idx := int(r - '1')
	if idx >= n {
		return -1
	}
	return idx
}
