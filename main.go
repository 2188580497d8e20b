package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"go-snake/internal/audio"
	"go-snake/internal/game"
	"go-snake/internal/input"
	"go-snake/internal/render"
	"go-snake/internal/snake"
	"go-snake/internal/state"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// frameInterval paces the host loop at roughly 60 frames per second.
const frameInterval = 16 * time.Millisecond

const logFileName = "snake-debug.log"

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

type LocalState struct {
	Session *game.Session
	Canvas  *render.Canvas
	Keys    input.KeyMap
	Help    help.Model
}

type FrameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func initialModel(sess *game.Session) *LocalState {
	return &LocalState{
		Session: sess,
		Canvas:  render.NewCanvas(snake.Width, snake.Height),
		Keys:    input.DefaultKeyMap(),
		Help:    help.New(),
	}
}

func (s *LocalState) Init() tea.Cmd {
	return frameCmd()
}

func (s *LocalState) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		if s.Session.Advance(time.Time(msg), s.Canvas) {
			return s, tea.Quit
		}
		return s, frameCmd()
	case tea.WindowSizeMsg:
		s.Help.Width = msg.Width
	case tea.KeyMsg:
		// Commands are latched and applied on the next frame.
		s.Session.Queue(s.Keys.FromTea(msg))
	}

	return s, nil
}

func (s *LocalState) View() string {
	return s.Canvas.String() + "\n" + helpStyle.Render(s.Help.View(s.Keys))
}

type backendFlag string

func (b *backendFlag) String() string {
	return string(*b)
}

func (b *backendFlag) Set(s string) error {
	switch s {
	case "tea", "tcell":
		*b = backendFlag(s)
		return nil
	}
	return fmt.Errorf("invalid backend: %s (use 'tea' or 'tcell')", s)
}

type seedFlag struct {
	value uint64
	set   bool
}

func (f *seedFlag) String() string {
	if !f.set {
		return "time"
	}
	return strconv.FormatUint(f.value, 10)
}

func (f *seedFlag) Set(s string) error {
	if s == "true" {
		return fmt.Errorf("value required (format: -seed=N)")
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}
	f.value = v
	f.set = true
	return nil
}

func (f *seedFlag) IsBoolFlag() bool { return true }

func (f *seedFlag) RNG() *snake.Random {
	if !f.set {
		return snake.NewTimeSeededRandom()
	}
	return snake.NewRandom(f.value)
}

// setupLogging routes the log package into a debug file, or discards it.
// The terminal belongs to the game, so nothing is ever logged to stdout.
func setupLogging(debug bool) (*os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	f, err := tea.LogToFile(logFileName, "snake")
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}
	return f, nil
}

type options struct {
	backend backendFlag
	seed    seedFlag
	sound   bool
	debug   bool
	carry   bool
}

func newSession(opts *options) *game.Session {
	policy := state.ResetOnStep
	if opts.carry {
		policy = state.CarryRemainder
	}
	g := game.NewGame(opts.seed.RNG(), state.SystemClock, policy)
	return game.NewSession(g)
}

func run(opts *options) error {
	logFile, err := setupLogging(opts.debug)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	sess := newSession(opts)

	if opts.sound {
		player := audio.NewPlayer()
		if err := player.Init(); err != nil {
			// Non-fatal, the game runs silently.
			log.Printf("audio disabled: %v", err)
		} else {
			defer player.Close()
			sess.OnEvent(player.Handle)
		}
	}

	log.Printf("starting backend=%s seed=%s", opts.backend.String(), opts.seed.String())

	switch opts.backend {
	case "tcell":
		return runTcell(sess, input.DefaultKeyMap())
	default:
		p := tea.NewProgram(initialModel(sess), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
		return nil
	}
}

func main() {
	opts := &options{backend: "tea"}

	flag.Var(&opts.backend, "backend", "Terminal backend: tea or tcell")
	flag.Var(&opts.seed, "seed", "Seed for target placement (format: -seed=N)")
	flag.BoolVar(&opts.sound, "sound", false, "Play sound cues")
	flag.BoolVar(&opts.debug, "debug", false, "Write a debug log to "+logFileName)
	flag.BoolVar(&opts.carry, "carry", false, "Carry frame time past the step threshold into the next step")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		fmt.Fprintf(os.Stderr, "  -backend=tea|tcell    Terminal backend (default tea)\n")
		fmt.Fprintf(os.Stderr, "  -seed=N               Seed for target placement\n")
		fmt.Fprintf(os.Stderr, "  -sound                Play sound cues\n")
		fmt.Fprintf(os.Stderr, "  -debug                Write a debug log to %s\n", logFileName)
		fmt.Fprintf(os.Stderr, "  -carry                Carry leftover frame time into the next step\n")
		fmt.Fprintf(os.Stderr, "  -h, --help            Show this help message\n")
	}

	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
