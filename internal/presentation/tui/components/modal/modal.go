// Package modal renders centered dialogs over the console.
package modal

import "github.com/charmbracelet/lipgloss"

// Kind identifies a dialog.
type Kind int

const (
	Help Kind = iota
	Quit
	Actions
	Details
	Create
)

// Props defines the properties for the modal component.
type Props struct {
	Visible bool
	Kind    Kind
	Title   string
	Body    string
	Width   int
	Height  int
	Border  lipgloss.Color
	Accent  lipgloss.Color
}

// Render renders the dialog centered in the terminal.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2)

	content := p.Body
	if p.Title != "" {
		title := lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render(p.Title)
		content = title + "\n\n" + p.Body
	}
	if p.Width <= 0 || p.Height <= 0 {
		return box.Render(content)
	}
	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, box.Render(content))
}
