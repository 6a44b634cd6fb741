package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the search surface.
type Styles struct {
	App          lipgloss.Style
	Query        lipgloss.Style
	Count        lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	Section      lipgloss.Style
	URL          lipgloss.Style
	Tag          lipgloss.Style
	Placeholder  lipgloss.Style
	Help         lipgloss.Style
}

// DefaultStyles returns the default style configuration: grayscale with a
// single desaturated teal accent.
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"}
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		Query: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Count: lipgloss.NewStyle().
			Foreground(subtle),

		Item: lipgloss.NewStyle().
			Foreground(primary).
			PaddingLeft(1),

		ItemSelected: lipgloss.NewStyle().
			PaddingLeft(1).
			Background(accent).
			Foreground(lipgloss.Color("#1A1A1A")),

		Section: lipgloss.NewStyle().
			Foreground(subtle),

		URL: lipgloss.NewStyle().
			Foreground(subtle).
			Italic(true),

		Tag: lipgloss.NewStyle().
			Foreground(subtle),

		Placeholder: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(1, 0),

		Help: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(1, 0),
	}
}
