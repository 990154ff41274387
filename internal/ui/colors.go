package ui

import "github.com/charmbracelet/lipgloss"

// styles carries the default studio stylesheet.
var styles = newPalette(palette{
	primary: "#9D66F5",
	success: "#2EC27E",
	danger:  "#E01B24",
	caution: "#E5A50A",
	muted:   "#77767B",
})

// palette names the raw colors a stylesheet is built from.
type palette struct {
	primary string
	success string
	danger  string
	caution string
	muted   string
}

// Palette is the studio stylesheet, one [lipgloss.Style] per role.
type Palette struct {
	title  lipgloss.Style
	accent lipgloss.Style
	ok     lipgloss.Style
	err    lipgloss.Style
	warn   lipgloss.Style
	help   lipgloss.Style
}

func newPalette(p palette) *Palette {
	fg := func(hex string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}

	return &Palette{
		title:  fg(p.primary).Bold(true).MarginBottom(1),
		accent: fg(p.primary).Bold(true),
		ok:     fg(p.success).Bold(true),
		err:    fg(p.danger).Bold(true),
		warn:   fg(p.caution),
		help:   fg(p.muted).Italic(true),
	}
}
