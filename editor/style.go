package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the Model's rendering.
type Style struct {
	Text      lipgloss.Style
	Entity    lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:      lipgloss.NewStyle(),
		Entity:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),
		Selection: lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:    lipgloss.NewStyle().Reverse(true),
	}
}
