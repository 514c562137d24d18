// Package header provides the module header component.
package header

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Chip is one filter shown in the header.
type Chip struct {
	Label   string
	Value   string
	Active  bool
	Focused bool
}

// Props defines the properties for the header component.
type Props struct {
	Visible bool
	Title   string
	Counts  string
	Search  string
	Filters []Chip
	// Banner is shown when the last refresh failed but older rows remain.
	Banner string
	Accent lipgloss.Color
	Muted  lipgloss.Color
	Danger lipgloss.Color
}

// Render renders the header component. It always produces three lines so
// the table below keeps its position.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
	muted := lipgloss.NewStyle().Foreground(p.Muted)

	title := titleStyle.Render(p.Title)
	if p.Counts != "" {
		title += "  " + muted.Render(p.Counts)
	}

	var controls []string
	if p.Search != "" {
		controls = append(controls, fmt.Sprintf("🔎 %q", p.Search))
	}
	for _, c := range p.Filters {
		chip := fmt.Sprintf("%s: %s", c.Label, c.Value)
		style := muted
		if c.Active {
			style = lipgloss.NewStyle().Foreground(p.Accent)
		}
		if c.Focused {
			chip = "[" + chip + "]"
		}
		controls = append(controls, style.Render(chip))
	}

	banner := ""
	if p.Banner != "" {
		banner = lipgloss.NewStyle().Foreground(p.Danger).Render("⚠ " + p.Banner)
	}
	return strings.Join([]string{title, strings.Join(controls, "  "), banner}, "\n")
}
