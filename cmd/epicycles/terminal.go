package main

import (
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/npillmayer/epicycle/fourier"
	"github.com/npillmayer/epicycle/render"
	"github.com/npillmayer/epicycle/session"
)

// runTerminal animates s in the terminal at hz frames per second until the
// user quits.
func runTerminal(s *session.Session, hz int) error {
	if hz < 1 {
		hz = 60
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	lo, hi := render.SessionExtent(s)
	term := render.NewTerminal(screen, lo, hi)

	period := time.Second / time.Duration(hz)
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(screen, events, done)

	last := time.Now()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				quit, err := handleAction(s, render.KeyAction(ev.Key(), ev.Rune()))
				if err != nil || quit {
					return err
				}
			case *tcell.EventResize:
				screen.Sync()
				term.Resize()
			}

		case now := <-ticker.C:
			frame, err := s.Advance(now.Sub(last).Seconds())
			last = now
			if err != nil {
				return err
			}
			if err := render.Draw(term, frame); err != nil {
				return err
			}
		}
	}
}

// pumpEvents forwards screen events to events until the screen is
// finalized or done is closed.
func pumpEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil { // screen finalized
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleAction applies a user action to the session. Decreasing below
// order 0 is ignored.
func handleAction(s *session.Session, a render.Action) (quit bool, err error) {
	switch a {
	case render.ActionQuit:
		return true, nil
	case render.ActionIncrease:
		return false, s.Increase()
	case render.ActionDecrease:
		if err := s.Decrease(); err != nil && !errors.Is(err, fourier.ErrNegativeOrder) {
			return false, err
		}
	}
	return false, nil
}
