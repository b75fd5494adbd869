package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Home key.Binding
	Blog key.Binding
	Up   key.Binding
	Down key.Binding
	Open key.Binding
	Back key.Binding
	Top  key.Binding
	Help key.Binding
	Quit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Home: key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home")),
		Blog: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "blog")),
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back: key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Top:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "back to top")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Home, k.Blog, k.Open, k.Back, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Blog, k.Back},
		{k.Up, k.Down, k.Open, k.Top},
		{k.Help, k.Quit},
	}
}
