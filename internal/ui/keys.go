package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings for both focus modes.
type keyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Advance key.Binding
	Delete  key.Binding
	NewTask key.Binding
	Help    key.Binding
	Quit    key.Binding

	NextField key.Binding
	Submit    key.Binding
	SubmitAny key.Binding
	Cancel    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "column"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "column"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "card"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "card"),
		),
		Advance: key.NewBinding(
			key.WithKeys("enter", "m"),
			key.WithHelp("enter/m", "next stage"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d/x", "delete"),
		),
		NewTask: key.NewBinding(
			key.WithKeys("a", "n", "tab"),
			key.WithHelp("a/n/tab", "new task"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add (title)"),
		),
		SubmitAny: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "add"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to board"),
		),
	}
}

// boardHelp adapts the board bindings to help.KeyMap.
type boardHelp struct{ k keyMap }

func (h boardHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Advance, h.k.Delete, h.k.NewTask, h.k.Help, h.k.Quit}
}

func (h boardHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.Left, h.k.Right, h.k.Up, h.k.Down},
		{h.k.Advance, h.k.Delete, h.k.NewTask},
		{h.k.Help, h.k.Quit},
	}
}

// formHelp adapts the form bindings to help.KeyMap.
type formHelp struct{ k keyMap }

func (h formHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.NextField, h.k.Submit, h.k.SubmitAny, h.k.Cancel}
}

func (h formHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
