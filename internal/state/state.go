package state

import (
	"context"
	"log"
	"time"

	"go-snake/internal/scoring"
	"go-snake/internal/snake"

	"github.com/looplab/fsm"
)

// Clock supplies the monotonic "now" used for the elapsed-time display.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock; time.Time carries a monotonic reading.
var SystemClock Clock = systemClock{}

// State is the single mutable game aggregate. It is owned by one caller and
// advanced one frame at a time through ProcessFrame.
type State struct {
	Body     *snake.Body
	Target   snake.Target
	Score    *scoring.Scoring
	Movement MovementClock
	FSM      *fsm.FSM
	Started  time.Time // set on entering Playing; display only
	Reason   string    // why the last run ended
	Quitting bool

	rng       snake.RNG
	clock     Clock
	listeners []func(Event)
}

func NewState(rng snake.RNG, clock Clock, policy ClockPolicy) *State {
	s := &State{
		Body:     snake.NewBody(),
		Target:   snake.DefaultTarget(),
		Score:    scoring.NewScoring(),
		Movement: MovementClock{Policy: policy},
		rng:      rng,
		clock:    clock,
	}

	s.FSM = fsm.NewFSM(
		string(Menu),
		getStateTransitions(),
		getStateCallbacks(s),
	)

	return s
}

// Subscribe registers fn to receive every event the state publishes.
func (s *State) Subscribe(fn func(Event)) {
	s.listeners = append(s.listeners, fn)
}

func (s *State) Mode() GameMode {
	return GameMode(s.FSM.Current())
}

// Elapsed is the time since the current run started.
func (s *State) Elapsed() time.Duration {
	if s.Started.IsZero() {
		return 0
	}
	return s.clock.Now().Sub(s.Started)
}

// ProcessFrame applies one frame: the command first, then, while playing,
// the frame delta and at most one simulation step.
func (s *State) ProcessFrame(cmd Command, dt time.Duration) {
	switch s.Mode() {
	case Menu, End:
		s.HandleCommand(cmd)
	case Playing:
		s.HandleCommand(cmd)
		if s.Mode() == Playing && s.Movement.Advance(dt) {
			s.Step()
		}
	}
}

// HandleCommand applies a command to the current mode. Commands that mean
// nothing in the current mode are ignored.
func (s *State) HandleCommand(cmd Command) {
	if cmd == Quit {
		s.Quitting = true
		return
	}

	switch s.Mode() {
	case Menu:
		if cmd == Start {
			s.fire("start")
		}
	case Playing:
		if d, ok := cmd.Direction(); ok {
			s.Body.Turn(d)
		}
	case End:
		if cmd == Restart {
			s.fire("restart")
		}
	}
}

// Step moves the body one cell and applies the outcome.
func (s *State) Step() snake.Outcome {
	out := s.Body.Advance(s.Target.Point)

	switch out {
	case snake.HitWall, snake.HitSelf:
		s.Reason = out.String()
		s.fire("collide")
	case snake.Grew:
		s.Score.ScoreEvent(scoring.TargetConsumed)
		s.publish(Consumed)
		if !s.Target.Place(s.Body, s.rng) {
			log.Printf("no free cell for target at length %d", s.Body.Len())
			s.Reason = ReasonBoardFull
			s.fire("fill")
		}
	}

	return out
}

func (s *State) restart() {
	s.Body = snake.NewBody()
	s.Target = snake.DefaultTarget()
	s.Score.Reset()
	s.Movement.Reset()
	s.Started = s.clock.Now()
	s.Reason = ""
}

func (s *State) fire(event string) {
	if !s.FSM.Can(event) {
		return
	}
	if err := s.FSM.Event(context.Background(), event); err != nil {
		log.Printf("event %s from %s: %v", event, s.FSM.Current(), err)
	}
}

func (s *State) publish(kind EventKind) {
	ev := Event{
		Kind:   kind,
		Score:  s.Score.CurrentScore,
		Length: s.Body.Len(),
		Reason: s.Reason,
	}
	for _, fn := range s.listeners {
		fn(ev)
	}
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: "start", Src: []string{string(Menu)}, Dst: string(Playing)},
		{Name: "restart", Src: []string{string(End)}, Dst: string(Playing)},

		// Run ends
		{Name: "collide", Src: []string{string(Playing)}, Dst: string(End)},
		{Name: "fill", Src: []string{string(Playing)}, Dst: string(End)},
	}
}

func getStateCallbacks(s *State) map[string]fsm.Callback {
	return fsm.Callbacks{
		"enter_state": func(_ context.Context, e *fsm.Event) {
			log.Printf("mode %s -> %s (%s)", e.Src, e.Dst, e.Event)
		},
		"enter_" + string(Playing): func(_ context.Context, e *fsm.Event) {
			s.restart()
			s.publish(Started)
		},
		"enter_" + string(End): func(_ context.Context, e *fsm.Event) {
			s.Score.Finish(s.Body.Len(), s.Elapsed(), s.Reason)
			s.publish(Died)
		},
	}
}
