package update

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/shelfdesk/internal/presentation/screens"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/intent"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/presenter"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/state"
)

func handleBrowseView(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	parsed := intent.FromKeyMsg(msg, s.Keys)

	if s.Help.ShowAll {
		switch parsed.Type {
		case intent.ToggleHelp, intent.Back:
			s.Help.ShowAll = false
		case intent.Quit:
			s.Help.ShowAll = false
			s.Previous = s.Session
			s.Session = state.QuitView
		}
		return nil, true
	}

	switch parsed.Type {
	case intent.Quit:
		s.Previous = s.Session
		s.Session = state.QuitView
		return nil, true
	case intent.ToggleHelp:
		s.Help.ShowAll = true
		return nil, true
	case intent.Back:
		s.StatusMessage = ""
		return nil, true
	case intent.NextScreen:
		return switchScreen(s, adjacentScreen(s, 1), deps), true
	case intent.PrevScreen:
		return switchScreen(s, adjacentScreen(s, -1), deps), true
	case intent.JumpScreen:
		if parsed.Index < 0 || parsed.Index >= len(s.Screens) {
			return nil, true
		}
		return switchScreen(s, s.Screens[parsed.Index], deps), true
	case intent.Refresh:
		return refreshActive(s, deps), true
	}

	pane, ok := s.ActivePane()
	if !ok {
		// The dashboard has no table; swallow list keys there.
		return nil, parsed.Type != intent.None
	}
	return handleListIntent(s, pane, parsed, deps)
}

func handleListIntent(s *state.ModelState, pane presenter.Pane, parsed intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch parsed.Type {
	case intent.PrevColumn:
		s.ActiveColumn = max(s.ActiveColumn-1, 0)
		SyncTable(s)
	case intent.NextColumn:
		s.ActiveColumn = min(s.ActiveColumn+1, max(len(pane.VisibleColumns())-1, 0))
		SyncTable(s)
	case intent.Search:
		s.Search.SetValue(pane.SearchText())
		s.Search.CursorEnd()
		s.Session = state.SearchView
		return tea.Batch(s.Search.Focus(), textinput.Blink), true
	case intent.CycleFilter:
		filters := pane.Filters()
		if len(filters) == 0 {
			s.StatusMessage = "No filters on this screen"
			return nil, true
		}
		s.FilterFocus %= len(filters)
		if err := pane.CycleFilter(filters[s.FilterFocus].Key); err != nil {
			s.StatusMessage = err.Error()
			return nil, true
		}
		s.Table.SetCursor(0)
		SyncTable(s)
	case intent.NextFilter:
		if n := len(pane.Filters()); n > 0 {
			s.FilterFocus = (s.FilterFocus + 1) % n
		}
	case intent.ClearFilters:
		pane.Clear()
		s.Search.SetValue("")
		s.Table.SetCursor(0)
		SyncTable(s)
	case intent.Sort:
		headers := pane.VisibleColumns()
		if len(headers) == 0 {
			return nil, true
		}
		pane.CycleSort(headers[min(s.ActiveColumn, len(headers)-1)].Key)
		SyncTable(s)
		return savePrefs(s, pane, deps), true
	case intent.HideColumn:
		headers := pane.VisibleColumns()
		if len(headers) == 0 {
			return nil, true
		}
		if !pane.Hide(headers[min(s.ActiveColumn, len(headers)-1)].Key) {
			s.StatusMessage = "At least one column must stay visible"
			return nil, true
		}
		SyncTable(s)
		return savePrefs(s, pane, deps), true
	case intent.ShowColumns:
		pane.ShowAll()
		SyncTable(s)
		return savePrefs(s, pane, deps), true
	case intent.Create:
		return openCreateForm(s, pane), true
	case intent.Actions:
		openActions(s, pane)
	default:
		return nil, false
	}
	return nil, true
}

func adjacentScreen(s *state.ModelState, step int) screens.ID {
	if len(s.Screens) == 0 {
		return s.Screen
	}
	current := 0
	for i, id := range s.Screens {
		if id == s.Screen {
			current = i
			break
		}
	}
	next := (current + step + len(s.Screens)) % len(s.Screens)
	return s.Screens[next]
}

func switchScreen(s *state.ModelState, id screens.ID, deps Deps) tea.Cmd {
	if id == s.Screen {
		return nil
	}
	return EnterScreen(s, id, deps)
}

func refreshActive(s *state.ModelState, deps Deps) tea.Cmd {
	if s.Screen == screens.Dashboard {
		s.DashboardLoading = true
		return tea.Batch(s.Spinner.Tick, LoadDashboardCmd(deps.context(), deps.Dashboard))
	}
	pane, ok := s.ActivePane()
	if !ok {
		return nil
	}
	cmd := RefreshCmd(deps.context(), pane)
	SyncTable(s)
	return tea.Batch(s.Spinner.Tick, cmd)
}

func savePrefs(s *state.ModelState, pane presenter.Pane, deps Deps) tea.Cmd {
	return SavePrefsCmd(deps.Prefs, pane.ID(), pane.Sort(), pane.Hidden())
}
