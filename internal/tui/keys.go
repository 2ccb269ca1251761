package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	esc      key.Binding
	enter    key.Binding
	quit     key.Binding
	sync     key.Binding
	pushOnly key.Binding
	register key.Binding
	copy     key.Binding
	info     key.Binding
}

var keys = keyMap{
	esc:      key.NewBinding(key.WithKeys("esc")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	sync:     key.NewBinding(key.WithKeys("s")),
	pushOnly: key.NewBinding(key.WithKeys("p")),
	register: key.NewBinding(key.WithKeys("r")),
	copy:     key.NewBinding(key.WithKeys("c")),
	info:     key.NewBinding(key.WithKeys("i")),
}
