package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap contains the keyboard bindings standing in for the hardware dial:
// arrow keys are the encoder, space is the button, s is the gear touch
// region. Long press arrives as its own key since a terminal cannot time a
// press-release cycle.
type KeyMap struct {
	DialUp    key.Binding
	DialDown  key.Binding
	Press     key.Binding
	LongPress key.Binding
	Settings  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// NewKeyMap creates a new KeyMap with all key bindings initialized
func NewKeyMap() KeyMap {
	return KeyMap{
		DialUp: key.NewBinding(
			key.WithKeys("up", "right", "k", "l"),
			key.WithHelp("↑/→", "dial up"),
		),
		DialDown: key.NewBinding(
			key.WithKeys("down", "left", "j", "h"),
			key.WithHelp("↓/←", "dial down"),
		),
		Press: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start/pause/select"),
		),
		LongPress: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings for the bottom help bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Press, k.DialUp, k.DialDown, k.LongPress, k.Settings, k.Quit}
}

// FullHelp returns all bindings grouped for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Press, k.DialUp, k.DialDown},
		{k.LongPress, k.Settings, k.Help, k.Quit},
	}
}
