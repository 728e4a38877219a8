package monitor

import "github.com/charmbracelet/lipgloss"

type styles struct {
	pushed   lipgloss.Style
	released lipgloss.Style
	state    lipgloss.Style
	crank    lipgloss.Style
	err      lipgloss.Style
	monitor  lipgloss.Style
}

// ANSI Color reference
// 0	Black
// 1	Red
// 2	Green
// 3	Yellow
// 4	Blue
// 5	Magenta
// 6	Cyan
// 7	White

func newStyles() styles {
	return styles{
		pushed:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(2)),
		released: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(1)),
		state:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(4)),
		crank:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		err:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
		monitor:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(2)),
	}
}
