package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dino/internal/core"
)

// KeyMap defines the runner's key bindings.
type KeyMap struct {
	Jump       key.Binding
	JumpAlt    key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Quit       key.Binding
	QuitAlt    key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.JumpAlt, k.Pause, k.Restart},
		{k.Quit, k.QuitAlt, k.Screenshot},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "jump/play"),
		),
		JumpAlt: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "jump"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause/play"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		QuitAlt: key.NewBinding(
			key.WithKeys("esc", "ctrl+c", "c"),
			key.WithHelp("esc", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// Action translates a key message to a game action.
// Keys without a binding map to core.ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.JumpAlt):
		return core.ActionJumpAlt
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.QuitAlt):
		return core.ActionQuitAlt
	}
	return core.ActionNone
}
