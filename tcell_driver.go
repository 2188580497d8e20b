package main

import (
	"fmt"
	"time"

	"go-snake/internal/game"
	"go-snake/internal/input"
	"go-snake/internal/render"
	"go-snake/internal/snake"

	"github.com/gdamore/tcell/v2"
)

func runTcell(sess *game.Session, keys input.KeyMap) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("could not create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("could not init screen: %w", err)
	}
	defer screen.Fini()

	return tcellLoop(screen, sess, keys)
}

// tcellLoop polls key events into the session and advances one frame per
// tick until the game asks to quit.
func tcellLoop(screen tcell.Screen, sess *game.Session, keys input.KeyMap) error {
	r := render.NewScreen(screen, snake.Width, snake.Height)

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				sess.Queue(keys.FromTcell(ev.Key(), ev.Rune()))
			case *tcell.EventResize:
				screen.Sync()
			}
		case at := <-ticker.C:
			quitting := sess.Advance(at, r)
			r.Show()
			if quitting {
				return nil
			}
		}
	}
}
