// Package layout joins the sidebar, main area and footer.
package layout

import "github.com/charmbracelet/lipgloss"

// Props defines the rendered parts of the screen.
type Props struct {
	Sidebar string
	Main    string
	Footer  string
}

// Render places the sidebar left of the main area with the footer below.
func Render(p Props) string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, p.Sidebar, p.Main)
	if p.Footer == "" {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, p.Footer)
}
