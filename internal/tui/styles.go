package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mkarppi/openshelf/internal/theme"
)

// palette holds the color roles one theme assigns.
type palette struct {
	title    lipgloss.Color
	accent   lipgloss.Color
	text     lipgloss.Color
	dim      lipgloss.Color
	errColor lipgloss.Color
}

var palettes = map[string]palette{
	theme.Light: {
		title:    lipgloss.Color("25"),
		accent:   lipgloss.Color("61"),
		text:     lipgloss.Color("235"),
		dim:      lipgloss.Color("245"),
		errColor: lipgloss.Color("124"),
	},
	theme.Dark: {
		title:    lipgloss.Color("111"),
		accent:   lipgloss.Color("214"),
		text:     lipgloss.Color("252"),
		dim:      lipgloss.Color("243"),
		errColor: lipgloss.Color("203"),
	},
}

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	text     lipgloss.Style
	dim      lipgloss.Style
	errText  lipgloss.Style
	selected lipgloss.Style
	help     lipgloss.Style
}

func newStyles(themeName string) styles {
	p, ok := palettes[themeName]
	if !ok {
		p = palettes[theme.Light]
	}

	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.title).
			Padding(0, 1),
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),
		text: lipgloss.NewStyle().
			Foreground(p.text),
		dim: lipgloss.NewStyle().
			Foreground(p.dim).
			Faint(true),
		errText: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.errColor),
		selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),
		help: lipgloss.NewStyle().
			Foreground(p.dim).
			Faint(true).
			Padding(1, 1, 0, 1),
	}
}
