package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/shelfdesk/internal/presentation/screens"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/presenter"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/state"
	"go.uber.org/zap"
)

// EnterScreen navigates to id. The screen being left is torn down so a
// fetch still in flight for it can no longer land; the new screen restores
// its saved view preferences and loads fresh rows.
func EnterScreen(s *state.ModelState, id screens.ID, deps Deps) tea.Cmd {
	if prev, ok := s.ActivePane(); ok && id != s.Screen {
		prev.Unmount()
	}

	s.Screen = id
	s.Session = state.BrowseView
	s.ActiveColumn = 0
	s.FilterFocus = 0
	s.StatusMessage = ""
	s.Search.SetValue("")
	s.Table.SetCursor(0)

	if id == screens.Dashboard {
		s.DashboardLoading = true
		SyncTable(s)
		return tea.Batch(s.Spinner.Tick, LoadDashboardCmd(deps.context(), deps.Dashboard))
	}

	pane, ok := s.ActivePane()
	if !ok {
		SyncTable(s)
		return nil
	}
	if deps.Prefs != nil {
		sort, hidden, err := deps.Prefs.Load(string(id))
		if err != nil {
			deps.logger().Warn("loading table preferences failed", zap.String("screen", string(id)), zap.Error(err))
			s.StatusMessage = "Could not load saved view preferences"
		} else {
			pane.ApplyPrefs(sort, hidden)
		}
	}
	cmd := RefreshCmd(deps.context(), pane)
	SyncTable(s)
	return tea.Batch(s.Spinner.Tick, cmd)
}

// SyncTable copies the active pane into the table widget and refreshes the
// sidebar counts.
func SyncTable(s *state.ModelState) {
	presenter.ApplyScreenList(&s.ScreenList, s.Screens, s.Panes, s.Screen)

	pane, ok := s.ActivePane()
	if !ok {
		s.Table.SetRows(nil)
		s.Table.SetColumns(nil)
		return
	}

	headers := pane.VisibleColumns()
	s.ActiveColumn = max(min(s.ActiveColumn, len(headers)-1), 0)
	if n := len(pane.Filters()); n > 0 {
		s.FilterFocus %= n
	} else {
		s.FilterFocus = 0
	}

	rows := presenter.TableRows(pane.Rows())
	// Rows must never be wider than the columns while either is replaced.
	s.Table.SetRows(nil)
	s.Table.SetColumns(presenter.TableColumns(headers, s.ActiveColumn, pane.Sort(), s.Table.Width()))
	s.Table.SetRows(rows)
	if c := s.Table.Cursor(); c < 0 || c >= len(rows) {
		s.Table.SetCursor(max(min(c, len(rows)-1), 0))
	}
}
