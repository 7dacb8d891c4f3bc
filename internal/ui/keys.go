package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings of the home screen.
type keyMap struct {
	PrevDay    key.Binding
	NextDay    key.Binding
	PanLeft    key.Binding
	PanRight   key.Binding
	Today      key.Binding
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	Actions    key.Binding
	Add        key.Binding
	Edit       key.Binding
	Filter     key.Binding
	Export     key.Binding
	Import     key.Binding
	Help       key.Binding
	Quit       key.Binding
	Confirm    key.Binding
	Back       key.Binding
	ActionUp   key.Binding
	ActionDown key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevDay:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous day")),
		NextDay:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		PanLeft:    key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("H", "scroll strip left")),
		PanRight:   key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("L", "scroll strip right")),
		Today:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space", "check")),
		Actions:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "actions")),
		Add:        key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "add")),
		Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Filter:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Export:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "export")),
		Import:     key.NewBinding(key.WithKeys("I"), key.WithHelp("I", "import")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Confirm:    key.NewBinding(key.WithKeys("enter")),
		Back:       key.NewBinding(key.WithKeys("esc")),
		ActionUp:   key.NewBinding(key.WithKeys("up", "k")),
		ActionDown: key.NewBinding(key.WithKeys("down", "j")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevDay, k.NextDay, k.Today, k.Add, k.Toggle, k.Actions, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevDay, k.NextDay, k.PanLeft, k.PanRight, k.Today},
		{k.Up, k.Down, k.Toggle, k.Actions, k.Add, k.Edit},
		{k.Filter, k.Export, k.Import, k.Help, k.Quit},
	}
}
