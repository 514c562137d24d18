package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/shelfdesk/internal/application/usecase"
	"github.com/tesso57/shelfdesk/internal/presentation/report"
	"github.com/tesso57/shelfdesk/internal/presentation/screens"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/presenter"
)

// Theme holds the console colors.
type Theme struct {
	Accent lipgloss.Color
	Muted  lipgloss.Color
	Border lipgloss.Color
	Danger lipgloss.Color
}

// Report returns the colors used for static tables.
func (t Theme) Report() report.Style {
	return report.Style{Accent: t.Accent, Muted: t.Muted, Border: t.Border}
}

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Session  Session
	Previous Session
	Screen   screens.ID
	Screens  []screens.ID
	Panes    map[screens.ID]presenter.Pane

	ScreenList list.Model
	ActionList list.Model
	Table      table.Model
	Search     textinput.Model
	Form       []textinput.Model
	FormFields []screens.FormField
	FormFocus  int
	FormErr    string
	Submitting bool
	Details    []report.Field

	Help    help.Model
	Spinner spinner.Model
	Keys    KeyMap
	Theme   Theme
	Width   int
	Height  int

	ActiveColumn int
	FilterFocus  int

	Dashboard        *usecase.Dashboard
	DashboardErr     error
	DashboardLoading bool

	StatusMessage string
}

// ActivePane returns the pane of the current screen, if it has one.
func (s *ModelState) ActivePane() (presenter.Pane, bool) {
	p, ok := s.Panes[s.Screen]
	return p, ok && p != nil
}

// Busy reports whether the spinner should run.
func (s *ModelState) Busy() bool {
	if s.Submitting {
		return true
	}
	if s.Screen == screens.Dashboard {
		return s.DashboardLoading
	}
	p, ok := s.ActivePane()
	return ok && p.Loading()
}
