package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"wardforge/assets"
	"wardforge/internal/render"
)

// runIntro shows the Wardhall and the blank shield until the seeker steps
// forward. Returns false when they leave instead.
func (a *App) runIntro() bool {
	a.refreshForged()
	for {
		a.drawIntro()
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
				case ActionSelect:
					if _, err := a.session.Advance(); err == nil {
						return true
					}
				}
			}
		case <-a.ticker.C:
			a.frame++
		}
	}
}

// refreshForged re-reads how many wards the archive holds. Best-effort;
// on failure the count line is simply not shown.
func (a *App) refreshForged() {
	a.forged = -1
	if a.store == nil {
		return
	}
	if n, err := a.store.Count(context.Background()); err == nil {
		a.forged = n
	}
}

func (a *App) drawIntro() {
	a.drawBackdrop()
	_, h := a.screen.Size()

	title := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	body := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	render.CenterText(a.screen, 1, "🛡  W A R D F O R G E  🛡", title)

	switch {
	case a.forged == 0:
		render.CenterText(a.screen, 3, "The hall stands empty. Yours would be the first.", dim)
	case a.forged == 1:
		render.CenterText(a.screen, 3, "One ward hangs in the hall before yours.", dim)
	case a.forged > 1:
		render.CenterText(a.screen, 3, fmt.Sprintf("%d wards hang in the hall before yours.", a.forged), dim)
	}

	a.shieldView().Draw(a.screen, a.holder.Params())

	lines := strings.Split(assets.RiteOpening, "\n")
	y := h - len(lines) - 1
	for i, line := range lines {
		render.CenterText(a.screen, y+i, line, body)
	}

	a.screen.Show()
}
