package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/shelfdesk/internal/application/usecase"
	"github.com/tesso57/shelfdesk/internal/domain/table"
	"github.com/tesso57/shelfdesk/internal/presentation/screens"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/presenter"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/state"
)

// handleSearchView applies the search text as it is typed.
func handleSearchView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	pane, ok := s.ActivePane()
	if !ok {
		s.Session = state.BrowseView
		return nil, true
	}

	switch msg.Type {
	case tea.KeyEnter:
		s.Search.Blur()
		s.Session = state.BrowseView
		return nil, true
	case tea.KeyEsc:
		s.Search.SetValue("")
		s.Search.Blur()
		pane.Search("")
		s.Session = state.BrowseView
		SyncTable(s)
		return nil, true
	}

	var cmd tea.Cmd
	s.Search, cmd = s.Search.Update(msg)
	pane.Search(s.Search.Value())
	s.Table.SetCursor(0)
	SyncTable(s)
	return cmd, true
}

func openActions(s *state.ModelState, pane presenter.Pane) {
	actions := pane.Actions(s.Table.Cursor())
	if len(actions) == 0 {
		s.StatusMessage = "Nothing selected"
		return
	}
	s.ActionList.SetItems(presenter.BuildActionItems(actions))
	s.ActionList.Select(0)
	s.ActionList.Title = "Actions"
	s.Session = state.ActionsView
}

// handleActionsView runs the chosen action. Movement keys fall through to
// the action list.
func handleActionsView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyEsc:
		s.Session = state.BrowseView
		return nil, true
	case tea.KeyEnter:
		item, ok := s.ActionList.SelectedItem().(*presenter.ActionItem)
		s.Session = state.BrowseView
		if !ok {
			return nil, true
		}
		runAction(s, item.Action)
		return nil, true
	}
	return nil, false
}

func runAction(s *state.ModelState, action table.Action) {
	pane, ok := s.ActivePane()
	if !ok {
		return
	}
	kind, arg, value := screens.ParseAction(action.Key)
	switch kind {
	case screens.ActionDetails:
		s.Details = pane.Details(s.Table.Cursor())
		if len(s.Details) > 0 {
			s.Session = state.DetailView
		}
	case screens.ActionFilter:
		if err := pane.SetFilter(arg, value); err != nil {
			s.StatusMessage = err.Error()
			return
		}
		s.Table.SetCursor(0)
		SyncTable(s)
	case screens.ActionSearch:
		pane.Search(arg)
		s.Search.SetValue(arg)
		s.Table.SetCursor(0)
		SyncTable(s)
	default:
		s.StatusMessage = fmt.Sprintf("Unknown action %q", action.Key)
	}
}

func openCreateForm(s *state.ModelState, pane presenter.Pane) tea.Cmd {
	if !pane.CanCreate() {
		s.StatusMessage = fmt.Sprintf("%s are read-only", pane.Title())
		return nil
	}
	if s.Submitting {
		s.StatusMessage = "A save is still in progress"
		return nil
	}

	fields := pane.FormFields()
	s.FormFields = fields
	s.Form = make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = f.Label
		ti.CharLimit = 120
		ti.Width = 32
		s.Form[i] = ti
	}
	s.FormErr = ""
	s.Session = state.CreateView
	return focusField(s, 0)
}

func closeForm(s *state.ModelState) {
	s.Form = nil
	s.FormFields = nil
	s.FormFocus = 0
	s.FormErr = ""
	s.Session = state.BrowseView
}

func focusField(s *state.ModelState, index int) tea.Cmd {
	if len(s.Form) == 0 {
		return nil
	}
	index = (index + len(s.Form)) % len(s.Form)
	for i := range s.Form {
		s.Form[i].Blur()
	}
	s.FormFocus = index
	return tea.Batch(s.Form[index].Focus(), textinput.Blink)
}

// FormValues returns the form contents keyed by field key.
func FormValues(s *state.ModelState) map[string]string {
	values := make(map[string]string, len(s.Form))
	for i, f := range s.FormFields {
		if i < len(s.Form) {
			values[f.Key] = s.Form[i].Value()
		}
	}
	return values
}

func handleCreateView(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyEsc:
		closeForm(s)
		return nil, true
	case tea.KeyTab, tea.KeyDown:
		return focusField(s, s.FormFocus+1), true
	case tea.KeyShiftTab, tea.KeyUp:
		return focusField(s, s.FormFocus-1), true
	case tea.KeyCtrlS:
		return submitForm(s, deps), true
	case tea.KeyEnter:
		if s.FormFocus < len(s.Form)-1 {
			return focusField(s, s.FormFocus+1), true
		}
		return submitForm(s, deps), true
	}
	if s.Submitting || len(s.Form) == 0 {
		return nil, true
	}

	var cmd tea.Cmd
	s.Form[s.FormFocus], cmd = s.Form[s.FormFocus].Update(msg)
	return cmd, true
}

// submitForm validates locally and only then sends the create request.
func submitForm(s *state.ModelState, deps Deps) tea.Cmd {
	if s.Submitting {
		return nil
	}
	pane, ok := s.ActivePane()
	if !ok {
		closeForm(s)
		return nil
	}
	values := FormValues(s)
	if err := pane.ValidateForm(values); err != nil {
		s.FormErr = usecase.UserMessage(err)
		return focusField(s, firstMissing(s, values))
	}
	s.FormErr = ""
	s.Submitting = true
	s.StatusMessage = "Saving..."
	return tea.Batch(s.Spinner.Tick, CreateCmd(deps.context(), pane, values))
}

// firstMissing returns the first required field left blank, or the focused
// field when every required field has a value.
func firstMissing(s *state.ModelState, values map[string]string) int {
	for i, f := range s.FormFields {
		if f.Required && strings.TrimSpace(values[f.Key]) == "" {
			return i
		}
	}
	return s.FormFocus
}
