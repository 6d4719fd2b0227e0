package ui

import (
	"github.com/charmbracelet/bubbles/key"

	inputtypes "citysearch/internal/ui/input/types"
)

// keyMap describes the bindings shown in the footer and help screens.
// Dispatch itself happens in the input modes.
type keyMap struct {
	Focus   key.Binding
	Blur    key.Binding
	Up      key.Binding
	Down    key.Binding
	Page    key.Binding
	Choose  key.Binding
	Dismiss key.Binding
	Close   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Focus:   key.NewBinding(key.WithKeys("tab", "/", "i"), key.WithHelp("tab", "focus input")),
		Blur:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "leave input")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "previous")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "next")),
		Page:    key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "page")),
		Choose:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "hide list")),
		Close:   key.NewBinding(key.WithKeys("esc", "enter", "q"), key.WithHelp("esc", "close")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// shortHelp returns the footer bindings for mode
func (k keyMap) shortHelp(mode inputtypes.Mode) []key.Binding {
	switch mode {
	case inputtypes.ModeQuery:
		return []key.Binding{k.Up, k.Down, k.Choose, k.Dismiss, k.Blur}
	case inputtypes.ModeModal:
		return []key.Binding{k.Close}
	default:
		return []key.Binding{k.Focus, k.Up, k.Down, k.Choose, k.Help, k.Quit}
	}
}

// fullHelp groups every binding for the help screen
func (k keyMap) fullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Blur, k.Dismiss},
		{k.Up, k.Down, k.Page, k.Choose},
		{k.Close, k.Help, k.Quit},
	}
}
