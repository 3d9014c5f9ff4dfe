package teaui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap describes the default actions the app performs for keys that
// no binding prevented.
type KeyMap struct {
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Next, km.Prev, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Next, km.Prev}, {km.Quit}}
}

var _ help.KeyMap = KeyMap{}

// DefaultKeyMap mirrors App.HandleKey.
var DefaultKeyMap = KeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}
