package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	tab     key.Binding
	backtab key.Binding
	enter   key.Binding
	esc     key.Binding
	quit    key.Binding
	newNote key.Binding
	star    key.Binding
	archive key.Binding
	delete  key.Binding
	rename  key.Binding
	search  key.Binding
	refresh key.Binding
	save    key.Binding
	export  key.Binding
	copyID  key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newNote: key.NewBinding(key.WithKeys("n")),
	star:    key.NewBinding(key.WithKeys("s")),
	archive: key.NewBinding(key.WithKeys("a")),
	delete:  key.NewBinding(key.WithKeys("d")),
	rename:  key.NewBinding(key.WithKeys("r")),
	search:  key.NewBinding(key.WithKeys("/")),
	refresh: key.NewBinding(key.WithKeys("R")),
	save:    key.NewBinding(key.WithKeys("ctrl+s")),
	export:  key.NewBinding(key.WithKeys("e")),
	copyID:  key.NewBinding(key.WithKeys("c")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n", "esc")),
}
