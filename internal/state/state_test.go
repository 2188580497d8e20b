package state

import (
	"slices"
	"testing"
	"time"

	"go-snake/internal/snake"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestState(t *testing.T) (*State, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	return NewState(snake.NewRandom(1), clock, ResetOnStep), clock
}

func startedState(t *testing.T) (*State, *fakeClock) {
	t.Helper()
	s, clock := newTestState(t)
	s.ProcessFrame(Start, 0)
	if s.Mode() != Playing {
		t.Fatalf("Expected playing after start, got %s", s.Mode())
	}
	return s, clock
}

// stepFrame is long enough to trigger exactly one step.
const stepFrame = StepThreshold + time.Millisecond

func TestState_InitialMode(t *testing.T) {
	s, _ := newTestState(t)
	if s.Mode() != Menu {
		t.Errorf("Expected menu, got %s", s.Mode())
	}
	if s.Elapsed() != 0 {
		t.Errorf("Expected zero elapsed before start, got %v", s.Elapsed())
	}
}

func TestState_StartResetsRun(t *testing.T) {
	s, clock := newTestState(t)
	var events []Event
	s.Subscribe(func(ev Event) { events = append(events, ev) })

	s.ProcessFrame(Start, 0)

	if s.Body.Len() != 1 || s.Body.Head() != snake.Center() {
		t.Errorf("Expected single segment at center, got %v", s.Body.Segments())
	}
	if s.Target != snake.DefaultTarget() {
		t.Errorf("Expected default target, got %v", s.Target.Point)
	}
	if s.Score.CurrentScore != 0 {
		t.Errorf("Expected score 0, got %d", s.Score.CurrentScore)
	}
	if !s.Started.Equal(clock.now) {
		t.Errorf("Expected start marker %v, got %v", clock.now, s.Started)
	}
	if len(events) != 1 || events[0].Kind != Started {
		t.Errorf("Expected a single started event, got %v", events)
	}
}

func TestState_IrrelevantCommandsIgnored(t *testing.T) {
	s, _ := newTestState(t)

	for _, cmd := range []Command{Restart, MoveUp, MoveLeft, NoCommand} {
		s.ProcessFrame(cmd, stepFrame)
		if s.Mode() != Menu {
			t.Errorf("%s in menu changed mode to %s", cmd, s.Mode())
		}
	}

	s.ProcessFrame(Start, 0)
	s.ProcessFrame(Start, 0)
	s.ProcessFrame(Restart, 0)
	if s.Mode() != Playing {
		t.Errorf("Start/Restart while playing changed mode to %s", s.Mode())
	}
	if s.Body.Head() != snake.Center() {
		t.Errorf("Start/Restart while playing moved the body to %v", s.Body.Head())
	}
}

func TestState_QuitFromAnyMode(t *testing.T) {
	for _, mode := range []GameMode{Menu, Playing, End} {
		s, _ := newTestState(t)
		switch mode {
		case Playing:
			s.ProcessFrame(Start, 0)
		case End:
			s.ProcessFrame(Start, 0)
			s.Body = snake.NewBodyAt(snake.Right, snake.Point{X: 79, Y: 25})
			s.Step()
		}
		if s.Mode() != mode {
			t.Fatalf("Setup: expected %s, got %s", mode, s.Mode())
		}

		s.ProcessFrame(Quit, 0)
		if !s.Quitting {
			t.Errorf("Quit in %s should set Quitting", mode)
		}
	}
}

// Head moving right onto the target grows the body and scores.
func TestState_EatTarget(t *testing.T) {
	s, _ := startedState(t)
	s.Body = snake.NewBodyAt(snake.Right, snake.Point{X: 40, Y: 25})
	s.Target = snake.Target{Point: snake.Point{X: 41, Y: 25}}
	var consumed int
	s.Subscribe(func(ev Event) {
		if ev.Kind == Consumed {
			consumed++
		}
	})

	s.ProcessFrame(NoCommand, stepFrame)

	if s.Body.Head() != (snake.Point{X: 41, Y: 25}) {
		t.Errorf("Expected head (41,25), got %v", s.Body.Head())
	}
	if s.Body.Len() != 2 {
		t.Errorf("Expected length 2, got %d", s.Body.Len())
	}
	if s.Score.CurrentScore != 1 {
		t.Errorf("Expected score 1, got %d", s.Score.CurrentScore)
	}
	if s.Body.Occupies(s.Target.Point) {
		t.Errorf("New target %v overlaps body", s.Target.Point)
	}
	if consumed != 1 {
		t.Errorf("Expected 1 consumed event, got %d", consumed)
	}
}

// Head at the right edge moving right ends the run without moving.
func TestState_WallEndsRun(t *testing.T) {
	s, clock := startedState(t)
	s.Body = snake.NewBodyAt(snake.Right, snake.Point{X: 79, Y: 25})
	clock.now = clock.now.Add(12 * time.Second)
	var died []Event
	s.Subscribe(func(ev Event) {
		if ev.Kind == Died {
			died = append(died, ev)
		}
	})

	s.ProcessFrame(NoCommand, stepFrame)

	if s.Mode() != End {
		t.Fatalf("Expected end, got %s", s.Mode())
	}
	if s.Body.Head() != (snake.Point{X: 79, Y: 25}) || s.Body.Len() != 1 {
		t.Errorf("Body changed on collision: %v", s.Body.Segments())
	}
	if s.Reason != "hit wall" {
		t.Errorf("Expected reason 'hit wall', got %q", s.Reason)
	}
	if len(died) != 1 || died[0].Reason != "hit wall" {
		t.Errorf("Expected one died event with reason, got %v", died)
	}

	hs := s.Score.GetHighScore()
	if hs == nil || hs.Elapsed != 12*time.Second {
		t.Errorf("Expected recorded run with 12s elapsed, got %v", hs)
	}

	// Simulation stops in End.
	s.ProcessFrame(MoveUp, stepFrame)
	if s.Body.Head() != (snake.Point{X: 79, Y: 25}) {
		t.Errorf("Body moved after end: %v", s.Body.Head())
	}
}

// A vertical body moving up shifts without growing.
func TestState_ShiftUp(t *testing.T) {
	s, _ := startedState(t)
	s.Body = snake.NewBodyAt(snake.Up,
		snake.Point{X: 10, Y: 10}, snake.Point{X: 10, Y: 11}, snake.Point{X: 10, Y: 12})

	s.ProcessFrame(NoCommand, stepFrame)

	want := []snake.Point{{X: 10, Y: 9}, {X: 10, Y: 10}, {X: 10, Y: 11}}
	if !slices.Equal(s.Body.Segments(), want) {
		t.Errorf("Expected %v, got %v", want, s.Body.Segments())
	}
	if s.Mode() != Playing {
		t.Errorf("Expected playing, got %s", s.Mode())
	}
}

func TestState_SelfCollisionEndsRun(t *testing.T) {
	s, _ := startedState(t)
	s.Body = snake.NewBodyAt(snake.Left,
		snake.Point{X: 10, Y: 10},
		snake.Point{X: 10, Y: 11},
		snake.Point{X: 9, Y: 11},
		snake.Point{X: 9, Y: 10},
		snake.Point{X: 9, Y: 9},
	)
	before := s.Body.Segments()

	if out := s.Step(); out != snake.HitSelf {
		t.Fatalf("Expected HitSelf, got %v", out)
	}
	if s.Mode() != End {
		t.Errorf("Expected end, got %s", s.Mode())
	}
	if !slices.Equal(s.Body.Segments(), before) {
		t.Errorf("Body changed on collision: %v", s.Body.Segments())
	}
}

func TestState_ReversalGuard(t *testing.T) {
	s, _ := startedState(t)
	if s.Body.Direction() != snake.Right {
		t.Fatalf("Expected initial direction right, got %v", s.Body.Direction())
	}

	s.ProcessFrame(MoveLeft, 0)
	if s.Body.Direction() != snake.Right {
		t.Errorf("Expected direction to stay right, got %v", s.Body.Direction())
	}

	s.ProcessFrame(MoveDown, stepFrame)
	if s.Body.Head() != (snake.Point{X: 40, Y: 26}) {
		t.Errorf("Expected head (40,26) after turning down, got %v", s.Body.Head())
	}
}

func TestState_OneStepPerFrame(t *testing.T) {
	s, _ := startedState(t)
	start := s.Body.Head()

	s.ProcessFrame(NoCommand, 10*StepThreshold)

	if s.Body.Head() != start.Add(snake.Right.Unit()) {
		t.Errorf("Expected exactly one step, head at %v", s.Body.Head())
	}
}

func TestState_NoStepAtThreshold(t *testing.T) {
	s, _ := startedState(t)
	start := s.Body.Head()

	s.ProcessFrame(NoCommand, StepThreshold)
	if s.Body.Head() != start {
		t.Errorf("Stepped at exactly the threshold, head at %v", s.Body.Head())
	}
	s.ProcessFrame(NoCommand, time.Millisecond)
	if s.Body.Head() == start {
		t.Error("Expected a step once the threshold was exceeded")
	}
}

func TestState_ScoreMonotonicity(t *testing.T) {
	s, _ := startedState(t)
	prev := s.Score.CurrentScore

	for i := 0; i < 30 && s.Mode() == Playing; i++ {
		grew := s.Body.NextHead() == s.Target.Point
		s.ProcessFrame(NoCommand, stepFrame)
		want := prev
		if grew {
			want++
		}
		if s.Score.CurrentScore != want {
			t.Fatalf("step %d: expected score %d, got %d", i, want, s.Score.CurrentScore)
		}
		prev = s.Score.CurrentScore
	}
}

func TestState_RestartAfterEnd(t *testing.T) {
	s, clock := startedState(t)
	s.Body = snake.NewBodyAt(snake.Right, snake.Point{X: 40, Y: 25})
	s.Target = snake.Target{Point: snake.Point{X: 41, Y: 25}}
	s.Step()
	s.Body = snake.NewBodyAt(snake.Right, snake.Point{X: 79, Y: 25})
	s.Step()
	if s.Mode() != End || s.Score.CurrentScore != 1 {
		t.Fatalf("Setup: expected end with score 1, got %s/%d", s.Mode(), s.Score.CurrentScore)
	}

	s.ProcessFrame(Start, 0)
	if s.Mode() != End {
		t.Errorf("Start in end should be ignored, got %s", s.Mode())
	}

	clock.now = clock.now.Add(time.Minute)
	s.ProcessFrame(Restart, 0)

	if s.Mode() != Playing {
		t.Fatalf("Expected playing after restart, got %s", s.Mode())
	}
	if s.Score.CurrentScore != 0 {
		t.Errorf("Expected score reset, got %d", s.Score.CurrentScore)
	}
	if s.Body.Len() != 1 || s.Body.Head() != snake.Center() {
		t.Errorf("Expected fresh body, got %v", s.Body.Segments())
	}
	if !s.Started.Equal(clock.now) {
		t.Errorf("Expected new start marker, got %v", s.Started)
	}
	if s.Score.GetAttempts() != 1 {
		t.Errorf("Expected 1 recorded run, got %d", s.Score.GetAttempts())
	}
}

func TestState_BoardFullEndsRun(t *testing.T) {
	s, _ := startedState(t)

	// Cover every placement cell except (1,1) and put the target there, with
	// the head at (1,2) moving up onto it.
	segments := []snake.Point{{X: 1, Y: 2}}
	for y := 1; y < snake.Height-1; y++ {
		for x := 1; x < snake.Width-1; x++ {
			p := snake.Point{X: x, Y: y}
			if p == (snake.Point{X: 1, Y: 1}) || p == (snake.Point{X: 1, Y: 2}) {
				continue
			}
			segments = append(segments, p)
		}
	}
	s.Body = snake.NewBodyAt(snake.Up, segments...)
	s.Target = snake.Target{Point: snake.Point{X: 1, Y: 1}}

	if out := s.Step(); out != snake.Grew {
		t.Fatalf("Expected Grew, got %v", out)
	}
	if s.Mode() != End {
		t.Errorf("Expected end on a full board, got %s", s.Mode())
	}
	if s.Reason != ReasonBoardFull {
		t.Errorf("Expected reason %q, got %q", ReasonBoardFull, s.Reason)
	}
}
