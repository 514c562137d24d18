// Package statcard renders the dashboard's headline figures.
package statcard

import (
	"github.com/charmbracelet/lipgloss"
)

// Card is one figure with its caption.
type Card struct {
	Label string
	Value string
	Note  string
}

// Props defines the properties for a row of cards.
type Props struct {
	Cards  []Card
	Width  int
	Accent lipgloss.Color
	Muted  lipgloss.Color
	Border lipgloss.Color
}

// Render lays the cards out left to right, wrapping onto new rows when they
// do not fit in Width.
func Render(p Props) string {
	if len(p.Cards) == 0 {
		return ""
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)
	value := lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
	muted := lipgloss.NewStyle().Foreground(p.Muted)

	rendered := make([]string, len(p.Cards))
	cardWidth := 0
	for i, c := range p.Cards {
		body := muted.Render(c.Label) + "\n" + value.Render(c.Value)
		if c.Note != "" {
			body += "\n" + muted.Render(c.Note)
		}
		rendered[i] = body
		cardWidth = max(cardWidth, lipgloss.Width(body))
	}
	box = box.Width(cardWidth + box.GetHorizontalPadding())
	perRow := len(rendered)
	if p.Width > 0 {
		perRow = max(p.Width/(cardWidth+box.GetHorizontalFrameSize()), 1)
	}

	var rows []string
	for start := 0; start < len(rendered); start += perRow {
		end := min(start+perRow, len(rendered))
		cards := make([]string, 0, end-start)
		for _, body := range rendered[start:end] {
			cards = append(cards, box.Render(body))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
