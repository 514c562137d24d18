// Package sidebar provides the screen navigation column.
package sidebar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/textutil"
)

// Props defines the properties for the sidebar component.
type Props struct {
	View   string
	Width  int
	Height int
	Title  string
	// Note is pinned to the bottom line, e.g. where the data comes from.
	Note   string
	Accent lipgloss.Color
	Muted  lipgloss.Color
	Border lipgloss.Color
}

// Render renders the sidebar component.
func Render(p Props) string {
	style := lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		MaxHeight(p.Height).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(p.Border)

	title := lipgloss.NewStyle().
		PaddingLeft(2).
		PaddingBottom(1).
		Bold(true).
		Foreground(p.Accent).
		Render(p.Title)

	content := lipgloss.JoinVertical(lipgloss.Left, title, p.View)
	if p.Note != "" {
		note := lipgloss.NewStyle().PaddingLeft(2).Foreground(p.Muted).
			Render(textutil.Truncate(p.Note, p.Width-2))
		if gap := p.Height - lipgloss.Height(content) - 1; gap > 0 {
			content += strings.Repeat("\n", gap)
		}
		content += "\n" + note
	}
	return style.Render(content)
}
