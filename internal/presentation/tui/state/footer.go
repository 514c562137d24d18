package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// FooterText returns the footer content for the current session.
func FooterText(session Session, statusMessage, helpText string) string {
	switch session {
	case SearchView:
		helpText = "enter apply • esc clear search"
	case ActionsView:
		helpText = "↑/↓ choose • enter run • esc close"
	case CreateView:
		helpText = "tab next field • shift+tab previous • ctrl+s save • esc cancel"
	}
	status := strings.TrimSpace(statusMessage)
	if status == "" {
		return helpText
	}
	if helpText == "" {
		return status
	}
	return status + "\n" + helpText
}

// FooterHelpText renders the short help on two lines: navigation first,
// then the list controls.
func FooterHelpText(h help.Model, keys KeyMap) string {
	nav := []key.Binding{keys.Help, keys.Quit, keys.NextScreen, keys.Refresh, keys.Left, keys.Right}
	list := []key.Binding{keys.Search, keys.CycleFilter, keys.NextFilter, keys.ClearFilters, keys.Sort, keys.HideColumn, keys.Actions, keys.Create}
	return h.ShortHelpView(nav) + "\n" + h.ShortHelpView(list)
}
