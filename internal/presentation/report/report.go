// Package report renders static tables for non-interactive output.
package report

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Style holds the colors used by rendered tables.
type Style struct {
	Accent lipgloss.Color
	Muted  lipgloss.Color
	Border lipgloss.Color
}

// DefaultStyle matches the console's default theme.
var DefaultStyle = Style{Accent: "205", Muted: "240", Border: "63"}

// Table renders headers and rows as a bordered table. Width zero lets the
// table size itself.
func Table(style Style, headers []string, rows [][]string, width int) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(style.Accent).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	altStyle := cellStyle.Foreground(style.Muted)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(style.Border)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 1:
				return altStyle
			default:
				return cellStyle
			}
		}).
		Headers(headers...).
		Rows(rows...)
	if width > 0 {
		t = t.Width(width)
	}
	return t.String()
}

// Field is one labelled value of a details table.
type Field struct {
	Label string
	Value string
}

// Details renders label/value pairs as a two-column table without headers.
func Details(style Style, fields []Field, width int) string {
	labelW := 0
	for _, f := range fields {
		labelW = max(labelW, lipgloss.Width(f.Label))
	}
	labelStyle := lipgloss.NewStyle().Foreground(style.Accent).Padding(0, 1).Width(labelW + 2)
	valueStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col == 0 {
				return labelStyle
			}
			return valueStyle
		})
	for _, f := range fields {
		t.Row(f.Label, f.Value)
	}
	if width > 0 {
		t = t.Width(width)
	}
	return t.String()
}

// Summary describes how many rows a table shows.
func Summary(shown, visible, total int) string {
	switch {
	case total == 0:
		return "No records."
	case visible == total && shown == visible:
		return fmt.Sprintf("%d records.", total)
	case shown == visible:
		return fmt.Sprintf("%d of %d records match.", visible, total)
	default:
		return fmt.Sprintf("Showing %d of %d matching records (%d total).", shown, visible, total)
	}
}
