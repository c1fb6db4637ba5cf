package ui

import (
	"context"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"wardforge/assets"
	"wardforge/internal/archive"
	"wardforge/internal/render"
)

// runActivation celebrates the sealed ward and offers a fresh forging. The
// ward is archived once per sealing, before the first frame.
func (a *App) runActivation() bool {
	if a.store != nil && !a.saved {
		a.saveWard()
	}
	a.saved = true

	for {
		a.drawActivation()
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
				case ActionRestart:
					if err := a.session.Reset(); err == nil {
						a.saved = false
						return true
					}
				}
			}
		case <-a.ticker.C:
			a.frame++
		}
	}
}

// saveWard archives the sealed ward. Errors are discarded so a disk problem
// never interrupts the rite.
func (a *App) saveWard() {
	_, energy, cs := a.session.Snapshot()
	_ = a.store.Save(context.Background(), archive.Ward{
		Player:      a.player,
		Energy:      energy,
		ColorHex:    cs.Color.Hex(),
		Symbol:      cs.Symbol,
		SigilText:   cs.SigilText,
		SigilPoints: len(cs.Sigil.Points),
	})
}

func (a *App) drawActivation() {
	a.drawBackdrop()
	_, h := a.screen.Size()

	title := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	body := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	render.CenterText(a.screen, 1, "✨  T H E   W A R D   H O L D S  ✨", title)

	view := a.shieldView()
	view.Draw(a.screen, a.holder.Params())
	a.drawPulse(view)

	cs := a.session.Choices()
	summary := colorLabel(cs) + "   " + symbolLabel(cs) + "   " + sigilLabel(cs)
	if e, ok := assets.EnergyByTag(a.session.Energy()); ok {
		summary = e.Emoji + " " + e.Name + "   " + summary
	}
	render.CenterText(a.screen, 3, summary, body)

	lines := strings.Split(assets.ActivationCopy, "\n")
	y := h - len(lines) - 4
	for i, line := range lines {
		render.CenterText(a.screen, y+i, line, body)
	}
	if a.store != nil {
		render.CenterText(a.screen, h-3, "Inscribed in the ward archive.", dim)
	}
	render.CenterText(a.screen, h-2, assets.ActivationHint, dim)

	a.screen.Show()
}

// drawPulse rings the sealed ward with sparks that slowly orbit.
func (a *App) drawPulse(view render.ShieldView) {
	const sparks = 8
	base := float64(a.frame) * 6 * math.Pi / 180
	orbit := 1.45 + 0.06*math.Sin(float64(a.frame)/4)

	for i := 0; i < sparks; i++ {
		rad := base + float64(i)*2*math.Pi/sparks
		x := view.CX + int(math.Round(math.Cos(rad)*float64(2*view.R)*orbit))
		y := view.CY + int(math.Round(math.Sin(rad)*float64(view.R)*orbit))
		render.PutGlyph(a.screen, x, y, "✨", tcell.StyleDefault)
	}
}
