package screens

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title       lipgloss.Style
	action      lipgloss.Style
	row         lipgloss.Style
	selectedRow lipgloss.Style
	desc        lipgloss.Style
	empty       lipgloss.Style
	band        lipgloss.Style
	checkout    lipgloss.Style
	flash       lipgloss.Style
	errLine     lipgloss.Style
	help        lipgloss.Style
}

func newStyles() styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
		action:      lipgloss.NewStyle().Faint(true),
		row:         lipgloss.NewStyle().PaddingLeft(1),
		selectedRow: lipgloss.NewStyle().PaddingLeft(1).Bold(true).Foreground(lipgloss.Color("#AD8CFF")),
		desc:        lipgloss.NewStyle().Faint(true),
		empty:       lipgloss.NewStyle().Italic(true).Faint(true).PaddingLeft(2),
		// band separates the checkout button from the list above it
		band: lipgloss.NewStyle().PaddingTop(1),
		// button colour is a stand-in until a real brand palette lands
		checkout: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 3).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Foreground(lipgloss.Color("#04B575")),
		flash:   lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")),
		errLine: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87")),
		help:    lipgloss.NewStyle().Faint(true),
	}
}
