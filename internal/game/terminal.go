package game

import (
	"context"

	"cavecrawler/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Play runs s on a terminal screen until the player presses Escape, the
// screen is finalized or ctx is cancelled. The caller owns the screen.
func Play(ctx context.Context, screen tcell.Screen, s *Session) error {
	r := render.NewRenderer(screen)
	r.Draw(s.Frame())

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
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

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				r.Draw(s.Frame())
			case *tcell.EventKey:
				in, ok := KeyInput(ev)
				if !ok {
					continue
				}
				if in.Action() == ActionQuit {
					return nil
				}
				f, err := s.HandleInput(in)
				r.Draw(f)
				if err != nil {
					return err
				}
			}
		}
	}
}
