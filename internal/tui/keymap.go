package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Life     key.Binding
	Info     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Life, k.Info, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PageUp, k.PageDown, k.Home, k.End},
		{k.Life, k.Info, k.Help, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("k", "K", "up"), key.WithHelp("↑/k", "row up")),
		Down:     key.NewBinding(key.WithKeys("j", "J", "down"), key.WithHelp("↓/j", "row down")),
		Left:     key.NewBinding(key.WithKeys("h", "H", "left"), key.WithHelp("←/h", "column left")),
		Right:    key.NewBinding(key.WithKeys("l", "L", "right"), key.WithHelp("→/l", "column right")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "window up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "window down")),
		Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "start of file")),
		End:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "end of file")),
		Life:     key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("r", "run life")),
		Info:     key.NewBinding(key.WithKeys("i", "I"), key.WithHelp("i", "toggle offsets")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "Q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
