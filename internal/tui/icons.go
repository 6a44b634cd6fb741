package tui

import "github.com/charmbracelet/lipgloss"

// iconGlyph is the marker rendered in front of every result; the browser
// only changes its colour.
const iconGlyph = "●"

// browserColors is the fixed browser-to-icon table. Unknown browsers fall
// back to defaultIconColor.
var browserColors = map[string]lipgloss.Color{
	"Microsoft Edge": lipgloss.Color("#0078D4"),
	"Google Chrome":  lipgloss.Color("#F4B400"),
	"Brave":          lipgloss.Color("#FB542B"),
}

var defaultIconColor = lipgloss.Color("#808080")

// IconColor resolves a browser name to its icon colour.
func IconColor(browser string) lipgloss.Color {
	if c, ok := browserColors[browser]; ok {
		return c
	}
	return defaultIconColor
}
