package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Refraction key.Binding
	Horizon    key.Binding
	Reference  key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Refraction: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refraction"),
		),
		Horizon: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "horizon"),
		),
		Reference: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cross-check"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refraction, k.Horizon, k.Reference, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
