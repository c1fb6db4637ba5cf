// Package ui runs the rite's interactive screens on a tcell terminal. One
// App drives one seeker from the intro through activation, feeding their
// choices to the session and painting the ward as it grows.
package ui

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"wardforge/internal/archive"
	"wardforge/internal/render"
	"wardforge/internal/rite"
)

// frameInterval paces the ambient animation (starfield twinkle, rim pulse).
const frameInterval = 120 * time.Millisecond

// App is the top-level orchestrator for one seeker's rite.
type App struct {
	screen  tcell.Screen
	session *rite.Session
	holder  *layerHolder
	stars   *render.Starfield
	store   *archive.Store
	player  string

	eventCh chan tcell.Event
	ticker  *time.Ticker
	frame   int
	status  string
	saved   bool
	forged  int
}

// NewApp wires a fresh session to the given screen. store may be nil, in
// which case forged wards are not archived.
func NewApp(screen tcell.Screen, store *archive.Store, player string) *App {
	holder := newLayerHolder()
	return &App{
		screen:  screen,
		session: rite.New(holder, bellCues{screen: screen}),
		holder:  holder,
		stars:   render.NewStarfield(90, rand.New(rand.NewSource(time.Now().UnixNano()))),
		store:   store,
		player:  player,
		forged:  -1,
	}
}

// NewLocalApp creates and initializes a screen on the local terminal.
func NewLocalApp(store *archive.Store, player string) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewApp(screen, store, player), nil
}

// Session exposes the underlying rite session, mainly for tests.
func (a *App) Session() *rite.Session { return a.session }

// Run drives the rite until the seeker leaves or disconnects. It owns the
// screen and shuts it down on return.
func (a *App) Run() {
	defer a.screen.Fini()

	// Async input reader. A nil event means the screen is gone.
	a.eventCh = make(chan tcell.Event, 32)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(a.eventCh)
				return
			}
			a.eventCh <- ev
		}
	}()

	a.ticker = time.NewTicker(frameInterval)
	defer a.ticker.Stop()

	for {
		var stay bool
		switch a.session.Stage() {
		case rite.StageIntro:
			stay = a.runIntro()
		case rite.StageDiagnostic:
			stay = a.runDiagnostic()
		case rite.StageConstruction:
			stay = a.runConstruction()
		case rite.StageActivation:
			stay = a.runActivation()
		}
		if !stay {
			return
		}
	}
}

// shieldView sizes the ward to the current screen, leaving room for the
// text above and below it.
func (a *App) shieldView() render.ShieldView {
	w, h := a.screen.Size()
	r := (h - 10) / 2
	if r > (w-8)/4 {
		r = (w - 8) / 4
	}
	if r < 3 {
		r = 3
	}
	return render.ShieldView{CX: w / 2, CY: h/2 - 1, R: r}
}

// drawBackdrop clears the screen and lays down the starfield.
func (a *App) drawBackdrop() {
	a.screen.Clear()
	a.stars.Draw(a.screen, a.frame)
}

// confirmQuit shows a "Really leave? (y/n)" prompt. Returns true if
// confirmed or the seeker disconnected.
func (a *App) confirmQuit() bool {
	prompt := " Leave the Wardhall? (y/n) "
	width := len([]rune(prompt)) + 4

	for {
		a.drawBox(width, 3, prompt)
		ev, ok := <-a.eventCh
		if !ok {
			return true
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			switch ev.Rune() {
			case 'y', 'Y':
				return true
			default:
				return false
			}
		}
	}
}

// runHelp shows the key reference overlay. Any key dismisses it.
func (a *App) runHelp() {
	lines := []string{
		"── Moving about ──────────────────────",
		"  Arrow keys / jk     Move the cursor",
		"  1 2 3               Jump to an entry",
		"  Enter               Choose / confirm",
		"",
		"── The forging ───────────────────────",
		"  a                   Seal the ward",
		"  r                   Forge anew (after sealing)",
		"",
		"── The hall ──────────────────────────",
		"  q / Esc             Leave",
		"  ?                   This overlay",
		"",
		"  [any key to close]",
	}

	header := " The Rite's Keys "
	width := 42
	hdrStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	bodyStyle := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	draw := func() {
		a.screen.Clear()
		sw, sh := a.screen.Size()
		boxH := len(lines) + 3
		x0 := (sw - width) / 2
		y0 := (sh - boxH) / 2

		drawFrame(a.screen, x0, y0, width, boxH, borderStyle)
		hx := x0 + (width-len([]rune(header)))/2
		for i, r := range header {
			a.screen.SetContent(hx+i, y0, r, nil, hdrStyle)
		}
		for i, line := range lines {
			render.PutText(a.screen, x0+2, y0+1+i, line, bodyStyle)
		}
		a.screen.Show()
	}

	for {
		draw()
		ev, ok := <-a.eventCh
		if !ok {
			return
		}
		switch ev.(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			return
		}
	}
}

// drawBox clears the screen and draws a one-line framed prompt in the
// center.
func (a *App) drawBox(width, height int, text string) {
	a.screen.Clear()
	sw, sh := a.screen.Size()
	x0 := (sw - width) / 2
	y0 := (sh - height) / 2

	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	drawFrame(a.screen, x0, y0, width, height, style)
	render.PutText(a.screen, x0+2, y0+1, text, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	a.screen.Show()
}

// drawFrame draws a box border with line-drawing characters.
func drawFrame(s tcell.Screen, x0, y0, w, h int, style tcell.Style) {
	for col := x0; col < x0+w; col++ {
		s.SetContent(col, y0, '─', nil, style)
		s.SetContent(col, y0+h-1, '─', nil, style)
	}
	for row := y0; row < y0+h; row++ {
		s.SetContent(x0, row, '│', nil, style)
		s.SetContent(x0+w-1, row, '│', nil, style)
	}
	s.SetContent(x0, y0, '┌', nil, style)
	s.SetContent(x0+w-1, y0, '┐', nil, style)
	s.SetContent(x0, y0+h-1, '└', nil, style)
	s.SetContent(x0+w-1, y0+h-1, '┘', nil, style)
}
