package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Enter   key.Binding
	Back    key.Binding
	Refresh key.Binding
	Add     key.Binding
	Copy    key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "shift+tab"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "tab"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
	),
	Copy: key.NewBinding(
		key.WithKeys("t"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
}
