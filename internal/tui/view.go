package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vanzue/bbmark/internal/session"
)

// renderView draws the query line, the result count, the visible window of
// the result list and the footer hints.
func (a App) renderView() string {
	var b strings.Builder

	b.WriteString(a.styles.Query.Render(a.input.View()))
	b.WriteString("\n")

	if placeholder := a.session.Placeholder(); placeholder != session.PlaceholderNone {
		b.WriteString(a.styles.Placeholder.Render(placeholder.Message()))
		b.WriteString("\n")
		b.WriteString(a.renderHelp())
		return a.styles.App.Render(b.String())
	}

	b.WriteString(a.styles.Count.Render(fmt.Sprintf("%d results", a.session.Count())))
	b.WriteString("\n\n")

	start, end := a.visibleRange()
	results := a.session.Results()
	for i := start; i < end; i++ {
		entry := results[i].Entry

		icon := lipgloss.NewStyle().Foreground(IconColor(entry.Browser)).Render(iconGlyph)
		titleStyle := a.styles.Item
		if i == a.cursor {
			titleStyle = a.styles.ItemSelected
		}

		line := fmt.Sprintf("%s %s  %s", icon, titleStyle.Render(entry.Title),
			a.styles.Section.Render(entry.SectionLabel()))
		b.WriteString(line)
		b.WriteString("\n")

		detail := "   " + a.styles.URL.Render(entry.URL)
		if tag := entry.TagLabel(); tag != "" {
			detail += "  " + a.styles.Tag.Render(tag)
		}
		b.WriteString(detail)
		b.WriteString("\n")
	}

	b.WriteString(a.renderHelp())
	return a.styles.App.Render(b.String())
}

func (a App) renderHelp() string {
	return a.styles.Help.Render("↑/↓: move  enter: open  ctrl+y: copy URL  esc: quit")
}

// visibleRange windows the result list around the cursor so it always
// stays on screen. Each result takes two lines.
func (a App) visibleRange() (int, int) {
	total := a.session.Count()

	// Query, count and help lines plus padding.
	chrome := 7
	maxVisible := (a.height - chrome) / 2
	if maxVisible < 3 {
		maxVisible = 3
	}
	if total <= maxVisible {
		return 0, total
	}

	start := a.cursor - maxVisible/2
	if start < 0 {
		start = 0
	}
	if start > total-maxVisible {
		start = total - maxVisible
	}
	return start, start + maxVisible
}
