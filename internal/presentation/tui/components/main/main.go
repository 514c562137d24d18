// Package mainview provides the main content area component.
package mainview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/metrics"
)

// Props defines the properties for the main view component.
type Props struct {
	Width  int
	Height int
	Header string
	Body   string
	// Notice is centered below the header when there is no table to show,
	// e.g. an empty screen or a load error.
	Notice string
}

// Render stacks the header, the body and the notice.
func Render(p Props) string {
	style := lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		MaxHeight(p.Height).
		PaddingLeft(metrics.MainLeftPadding)

	var parts []string
	used := 0
	if p.Header != "" {
		parts = append(parts, p.Header)
		used += lipgloss.Height(p.Header)
	}
	if p.Body != "" {
		parts = append(parts, p.Body)
		used += lipgloss.Height(p.Body)
	}
	if p.Notice != "" {
		w := max(p.Width-metrics.MainLeftPadding, lipgloss.Width(p.Notice))
		h := max(p.Height-used, lipgloss.Height(p.Notice))
		parts = append(parts, lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, p.Notice))
	}
	return style.Render(strings.Join(parts, "\n"))
}
