// Package view orchestrates the composition of UI components.
package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/components/header"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/components/layout"
	mainview "github.com/tesso57/shelfdesk/internal/presentation/tui/components/main"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/components/modal"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/components/sidebar"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/metrics"
)

// Props aggregates properties for all UI components. Width and Height are
// the terminal size; zero means it is not known yet.
type Props struct {
	Width   int
	Height  int
	Sidebar sidebar.Props
	Header  header.Props
	Main    mainview.Props
	Modal   modal.Props
	Footer  string
}

// Render renders the complete UI view based on the provided props.
func Render(p Props) string {
	switch {
	case p.Width == 0 || p.Height == 0:
		return "Starting shelfdesk..."
	case p.Width < metrics.MinWidth || p.Height < metrics.MinHeight:
		msg := fmt.Sprintf("Terminal too small (%dx%d).\nResize to at least %dx%d.",
			p.Width, p.Height, metrics.MinWidth, metrics.MinHeight)
		return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, msg)
	case p.Modal.Visible:
		return modal.Render(p.Modal)
	}

	p.Main.Header = header.Render(p.Header)
	return layout.Render(layout.Props{
		Sidebar: sidebar.Render(p.Sidebar),
		Main:    mainview.Render(p.Main),
		Footer:  p.Footer,
	})
}
