package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles the calculator screen uses.
type Styles struct {
	Title     lipgloss.Style
	Label     lipgloss.Style
	Selected  lipgloss.Style
	Cursor    lipgloss.Style
	Value     lipgloss.Style
	SliderOn  lipgloss.Style
	SliderOff lipgloss.Style
	Monthly   lipgloss.Style
	Yearly    lipgloss.Style
}

// NewStyles returns the palette, or plain styles when noColor is set.
func NewStyles(noColor bool) Styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return Styles{
			Title:     plain.Bold(true),
			Label:     plain,
			Selected:  plain.Bold(true),
			Cursor:    plain,
			Value:     plain,
			SliderOn:  plain,
			SliderOff: plain,
			Monthly:   plain.Bold(true),
			Yearly:    plain.Bold(true),
		}
	}

	orange := lipgloss.Color("208")
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(orange).Padding(0, 1),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Cursor:    lipgloss.NewStyle().Foreground(orange),
		Value:     lipgloss.NewStyle().Bold(true).Foreground(orange),
		SliderOn:  lipgloss.NewStyle().Foreground(orange),
		SliderOff: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Monthly:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Yearly:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}
