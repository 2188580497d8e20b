package game

import (
	"fmt"
	"time"

	"go-snake/internal/render"
	"go-snake/internal/snake"
	"go-snake/internal/state"
)

// Game couples the simulation state with what is drawn for each mode.
type Game struct {
	State *state.State
}

// NewGame initializes a game sitting on the menu.
func NewGame(rng snake.RNG, clock state.Clock, policy state.ClockPolicy) *Game {
	return &Game{
		State: state.NewState(rng, clock, policy),
	}
}

// Frame processes one frame and draws the result.
func (g *Game) Frame(cmd state.Command, dt time.Duration, r render.Renderer) {
	g.State.ProcessFrame(cmd, dt)
	g.Draw(r)
}

// Draw reports the current mode to the renderer.
func (g *Game) Draw(r render.Renderer) {
	switch g.State.Mode() {
	case state.Menu:
		g.drawMenu(r)
	case state.Playing:
		g.drawPlaying(r)
	case state.End:
		g.drawEnd(r)
	}
}

func (g *Game) drawMenu(r render.Renderer) {
	r.Cls()
	r.PrintColorCentered(8, render.Cyan, render.Black, "Welcome to Snake")
	r.PrintColorCentered(12, render.Cyan, render.Black, "(P) Play Game")
	r.PrintColorCentered(16, render.Cyan, render.Black, "(Q) Quit Game")
}

func (g *Game) drawPlaying(r render.Renderer) {
	s := g.State
	r.ClsBg(render.Navy)
	r.PrintCentered(0, fmt.Sprintf("Time %ds Score %d", int(s.Elapsed().Seconds()), s.Score.CurrentScore))

	for _, p := range s.Body.Segments() {
		r.Set(p.X, p.Y, render.White, render.Black, '@')
	}
	r.Set(s.Target.X, s.Target.Y, render.Green, render.Black, '*')
}

func (g *Game) drawEnd(r render.Renderer) {
	s := g.State
	r.Cls()
	r.PrintColorCentered(8, render.Red, render.Black, "You are dead")
	r.PrintColorCentered(12, render.Cyan, render.Black, fmt.Sprintf("You earned %d points", s.Score.CurrentScore))
	r.PrintColorCentered(16, render.Cyan, render.Black, "(R) Restart")
	r.PrintColorCentered(20, render.Cyan, render.Black, "(Q) Quit Game")

	if best := s.Score.GetHighScore(); best != nil {
		line := fmt.Sprintf("Best this session: %d", best.Score)
		if s.Score.GetAttempts() > 1 && s.Score.GotHighScore() {
			line = fmt.Sprintf("New session best: %d", best.Score)
		}
		r.PrintColorCentered(24, render.Yellow, render.Black, line)
	}
}
