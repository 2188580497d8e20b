package state

import "go-snake/internal/snake"

// GameMode is the active screen. Exactly one is current at a time.
type GameMode string

const (
	Menu    GameMode = "menu"
	Playing GameMode = "playing"
	End     GameMode = "end"
)

// Command is an abstract input. At most one is processed per frame.
type Command int

const (
	NoCommand Command = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	Start
	Restart
	Quit
)

func (c Command) String() string {
	switch c {
	case NoCommand:
		return "none"
	case MoveUp:
		return "move up"
	case MoveDown:
		return "move down"
	case MoveLeft:
		return "move left"
	case MoveRight:
		return "move right"
	case Start:
		return "start"
	case Restart:
		return "restart"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// Direction maps a movement command to a heading.
func (c Command) Direction() (snake.Direction, bool) {
	switch c {
	case MoveUp:
		return snake.Up, true
	case MoveDown:
		return snake.Down, true
	case MoveLeft:
		return snake.Left, true
	case MoveRight:
		return snake.Right, true
	}
	return 0, false
}

// EventKind classifies what a frame did to the run.
type EventKind int

const (
	Started EventKind = iota
	Consumed
	Died
)

func (k EventKind) String() string {
	switch k {
	case Started:
		return "started"
	case Consumed:
		return "consumed"
	case Died:
		return "died"
	}
	return "unknown"
}

// Event is published to listeners as the run progresses.
type Event struct {
	Kind   EventKind
	Score  int
	Length int
	Reason string
}

// ReasonBoardFull ends a run when no free cell is left for the target.
const ReasonBoardFull = "board full"
