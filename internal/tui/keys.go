package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	send        key.Binding
	cancel      key.Binding
	prevSearch  key.Binding
	nextSearch  key.Binding
	pageUp      key.Binding
	pageDown    key.Binding
	preferences key.Binding
	tab         key.Binding
	backtab     key.Binding
	yes         key.Binding
	no          key.Binding
}

var keys = keyMap{
	send:        key.NewBinding(key.WithKeys("enter")),
	cancel:      key.NewBinding(key.WithKeys("esc")),
	prevSearch:  key.NewBinding(key.WithKeys("up")),
	nextSearch:  key.NewBinding(key.WithKeys("down")),
	pageUp:      key.NewBinding(key.WithKeys("pgup")),
	pageDown:    key.NewBinding(key.WithKeys("pgdown")),
	preferences: key.NewBinding(key.WithKeys("ctrl+p")),
	tab:         key.NewBinding(key.WithKeys("tab", "down")),
	backtab:     key.NewBinding(key.WithKeys("shift+tab", "up")),
	yes:         key.NewBinding(key.WithKeys("y", "Y")),
	no:          key.NewBinding(key.WithKeys("n", "N", "esc")),
}
