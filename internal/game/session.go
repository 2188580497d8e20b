package game

import (
	"log"
	"time"

	"go-snake/internal/render"
	"go-snake/internal/state"
)

// Session drives a Game from a host loop. It latches at most one command
// between frames and measures the frame delta from the host's timestamps.
type Session struct {
	Game *Game

	pending   state.Command
	lastFrame time.Time
}

func NewSession(g *Game) *Session {
	s := &Session{Game: g}
	g.State.Subscribe(func(ev state.Event) {
		log.Printf("%s: score=%d length=%d reason=%q", ev.Kind, ev.Score, ev.Length, ev.Reason)
	})
	return s
}

// OnEvent registers a listener for game events.
func (s *Session) OnEvent(fn func(state.Event)) {
	s.Game.State.Subscribe(fn)
}

// Queue latches cmd for the next frame. The last command wins, except that a
// pending quit is never overwritten.
func (s *Session) Queue(cmd state.Command) {
	if cmd == state.NoCommand || s.pending == state.Quit {
		return
	}
	s.pending = cmd
}

// Advance runs one frame stamped at and reports whether the host should stop.
// The first frame has a zero delta.
func (s *Session) Advance(at time.Time, r render.Renderer) bool {
	var dt time.Duration
	if !s.lastFrame.IsZero() {
		dt = at.Sub(s.lastFrame)
	}
	s.lastFrame = at

	cmd := s.pending
	s.pending = state.NoCommand

	s.Game.Frame(cmd, dt, r)
	return s.Game.State.Quitting
}

func (s *Session) Mode() state.GameMode {
	return s.Game.State.Mode()
}
