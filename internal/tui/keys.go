package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	login     key.Binding
	token     key.Binding
	logout    key.Binding
	sync      key.Binding
	private   key.Binding
	clearErr  key.Binding
	copyUser  key.Binding
	newItem   key.Binding
	list      key.Binding
	copy      key.Binding
	info      key.Binding
	suggest   key.Binding
	shared    key.Binding
	forceQuit key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	login:     key.NewBinding(key.WithKeys("a")),
	token:     key.NewBinding(key.WithKeys("t")),
	logout:    key.NewBinding(key.WithKeys("l")),
	sync:      key.NewBinding(key.WithKeys("s")),
	private:   key.NewBinding(key.WithKeys("p")),
	clearErr:  key.NewBinding(key.WithKeys("e")),
	copyUser:  key.NewBinding(key.WithKeys("u")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	list:      key.NewBinding(key.WithKeys("b")),
	copy:      key.NewBinding(key.WithKeys("c")),
	info:      key.NewBinding(key.WithKeys("i")),
	suggest:   key.NewBinding(key.WithKeys("ctrl+t")),
	shared:    key.NewBinding(key.WithKeys("ctrl+s")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
}
