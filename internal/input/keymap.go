// Package input turns terminal key events into game commands.
package input

import (
	"go-snake/internal/state"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"
)

// KeyMap binds keys to commands. It satisfies help.KeyMap.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Start   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Start: key.NewBinding(
			key.WithKeys("p", "enter"),
			key.WithHelp("p", "play"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Restart, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Start, k.Restart, k.Quit},
	}
}

// keyName lets plain key strings go through key.Matches.
type keyName string

func (k keyName) String() string { return string(k) }

// Command maps a key name in bubbletea notation ("up", "p", "ctrl+c") to a
// command. Unbound keys map to NoCommand.
func (k KeyMap) Command(name string) state.Command {
	n := keyName(name)
	switch {
	case key.Matches(n, k.Up):
		return state.MoveUp
	case key.Matches(n, k.Down):
		return state.MoveDown
	case key.Matches(n, k.Left):
		return state.MoveLeft
	case key.Matches(n, k.Right):
		return state.MoveRight
	case key.Matches(n, k.Start):
		return state.Start
	case key.Matches(n, k.Restart):
		return state.Restart
	case key.Matches(n, k.Quit):
		return state.Quit
	}
	return state.NoCommand
}

// FromTea maps a bubbletea key message.
func (k KeyMap) FromTea(msg tea.KeyMsg) state.Command {
	return k.Command(msg.String())
}

// FromTcell maps the key and rune of a tcell key event.
func (k KeyMap) FromTcell(tk tcell.Key, r rune) state.Command {
	return k.Command(tcellKeyName(tk, r))
}

// tcellKeyName converts a tcell key to bubbletea's naming.
func tcellKeyName(tk tcell.Key, r rune) string {
	switch tk {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyRune:
		return string(r)
	}
	return ""
}
