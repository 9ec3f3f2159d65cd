package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	about    key.Binding
	signup   key.Binding
	forgot   key.Binding
	close    key.Binding
	edit     key.Binding
	theme    key.Binding
	language key.Binding
	copyUser key.Binding
	logout   key.Binding
	yes      key.Binding
	no       key.Binding
}

// Form screens receive printable keys as text, so their actions sit on
// control chords.
var keys = keyMap{
	left:     key.NewBinding(key.WithKeys("left")),
	right:    key.NewBinding(key.WithKeys("right")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab", "down")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	about:    key.NewBinding(key.WithKeys("ctrl+o")),
	signup:   key.NewBinding(key.WithKeys("ctrl+n")),
	forgot:   key.NewBinding(key.WithKeys("ctrl+r")),
	close:    key.NewBinding(key.WithKeys("q")),
	edit:     key.NewBinding(key.WithKeys("e")),
	theme:    key.NewBinding(key.WithKeys("t")),
	language: key.NewBinding(key.WithKeys("g")),
	copyUser: key.NewBinding(key.WithKeys("u")),
	logout:   key.NewBinding(key.WithKeys("l")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
