package presenter

import (
	btable "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/tesso57/shelfdesk/internal/domain/table"
)

const (
	minColumnWidth = 4
	// cellPadding is the horizontal padding bubbles/table puts around a cell.
	cellPadding = 2
)

// TableColumns builds the interactive table columns. The active column is
// marked and the sorted one carries its direction. Widths shrink to fit
// width when it is positive.
func TableColumns(headers []Header, active int, sort table.Sort, width int) []btable.Column {
	widths := FitWidths(headers, width)
	cols := make([]btable.Column, len(headers))
	for i, h := range headers {
		title := h.Label
		if sort.Key == h.Key {
			if sort.Desc {
				title += " ▼"
			} else {
				title += " ▲"
			}
		}
		if i == active {
			title = "›" + title
		}
		cols[i] = btable.Column{Title: title, Width: widths[i]}
	}
	return cols
}

// FitWidths returns the display width of each column.
func FitWidths(headers []Header, width int) []int {
	widths := make([]int, len(headers))
	total := 0
	for i, h := range headers {
		w := h.Width
		if w <= 0 {
			w = max(ansi.StringWidth(h.Label)+3, 10)
		}
		widths[i] = w
		total += w + cellPadding
	}
	if width <= 0 || total <= width || len(headers) == 0 {
		return widths
	}

	budget := width - cellPadding*len(headers)
	content := total - cellPadding*len(headers)
	for i, w := range widths {
		widths[i] = max(w*budget/content, minColumnWidth)
	}
	return widths
}

// TableRows converts rendered cells to bubbles/table rows.
func TableRows(rows [][]string) []btable.Row {
	out := make([]btable.Row, len(rows))
	for i, r := range rows {
		out[i] = btable.Row(r)
	}
	return out
}
