package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings surfaced in the help line. Key dispatch happens
// on the raw key string in Update; these exist so [help.Model.ShortHelpView]
// can render step-appropriate hints.
type keyMap struct {
	enter   key.Binding
	prev    key.Binding
	next    key.Binding
	tab     key.Binding
	esc     key.Binding
	remove  key.Binding
	space   key.Binding
	seek    key.Binding
	rate    key.Binding
	open    key.Binding
	restart key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	bind := func(keys []string, label, desc string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, desc))
	}

	return keyMap{
		enter:   bind([]string{"enter"}, "enter", "confirm"),
		prev:    bind([]string{"left"}, "←", "back"),
		next:    bind([]string{"right"}, "→", "next"),
		tab:     bind([]string{"tab"}, "tab", "switch field"),
		esc:     bind([]string{"esc"}, "esc", "done editing"),
		remove:  bind([]string{"x"}, "x", "remove upload"),
		space:   bind([]string{" "}, "space", "play/pause"),
		seek:    bind([]string{"left", "right"}, "←/→", "seek ±10s"),
		rate:    bind([]string{"r"}, "r", "speed"),
		open:    bind([]string{"o"}, "o", "open in browser"),
		restart: bind([]string{"n"}, "n", "new episode"),
		quit:    bind([]string{"q", "ctrl+c"}, "q", "quit"),
	}
}
