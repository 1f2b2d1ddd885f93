// Package term is a terminal frontend for the game built on tcell.
package term

import (
	"fmt"
	"time"

	"apple-snake/game"
	"apple-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

type action int

const (
	actionNone action = iota
	actionRestart
	actionQuit
)

var keyDirections = map[tcell.Key]types.Direction{
	tcell.KeyUp:    types.Up,
	tcell.KeyDown:  types.Down,
	tcell.KeyLeft:  types.Left,
	tcell.KeyRight: types.Right,
}

var runeDirections = map[rune]types.Direction{
	'w': types.Up,
	's': types.Down,
	'a': types.Left,
	'd': types.Right,
}

// Terminal drives a game on a tcell screen.
type Terminal struct {
	Pilot game.Autopilot // optional

	// Screen is created on Run when nil.
	Screen tcell.Screen
}

// Run takes over the terminal until the player quits. The screen is
// restored before Run returns.
func (t *Terminal) Run(g *game.Game) error {
	s := t.Screen
	if s == nil {
		var err error
		if s, err = tcell.NewScreen(); err != nil {
			return fmt.Errorf("term: new screen: %w", err)
		}
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	defer s.Fini()
	s.EnableMouse()
	s.HideCursor()

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	m := newMenu(g.Grid)
	speed := g.Speed()
	tick := time.NewTicker(g.TickInterval())
	defer tick.Stop()

	draw(s, g.Snapshot(), m)
	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				s.Sync()
			}
			switch handleEvent(ev, g, m) {
			case actionQuit:
				return nil
			case actionRestart:
				g.Restart()
			}
		case <-tick.C:
			if t.Pilot != nil && g.State() == game.Running {
				g.SetDirection(t.Pilot.Steer(g.Snapshot()))
			}
			g.Update()
		}

		if g.Speed() != speed {
			speed = g.Speed()
			tick.Reset(g.TickInterval())
		}
		draw(s, g.Snapshot(), m)
	}
}

// handleEvent applies an input event to g and returns what the loop must do.
func handleEvent(ev tcell.Event, g *game.Game, m menu) action {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC {
			return actionQuit
		}
		if dir, ok := keyDirections[e.Key()]; ok {
			g.SetDirection(dir)
			return actionNone
		}
		if e.Key() != tcell.KeyRune {
			if e.Key() == tcell.KeyEnter && g.State() == game.GameOver {
				return actionRestart
			}
			return actionNone
		}
		switch r := e.Rune(); r {
		case 'q', 'Q':
			return actionQuit
		case 'r', 'R':
			if g.State() == game.GameOver {
				return actionRestart
			}
		default:
			if dir, ok := runeDirections[r]; ok {
				g.SetDirection(dir)
			}
		}
	case *tcell.EventMouse:
		if g.State() != game.GameOver || e.Buttons()&tcell.Button1 == 0 {
			return actionNone
		}
		x, y := e.Position()
		return m.hit(x, y)
	}
	return actionNone
}
