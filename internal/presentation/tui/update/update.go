// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/shelfdesk/internal/application/usecase"
	"github.com/tesso57/shelfdesk/internal/domain/table"
	"github.com/tesso57/shelfdesk/internal/presentation/screens"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/presenter"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/state"
	"go.uber.org/zap"
)

// DashboardLoader loads the dashboard figures.
type DashboardLoader interface {
	Load(ctx context.Context) (usecase.Dashboard, error)
}

// PrefsStore persists per-screen table preferences.
type PrefsStore interface {
	Load(screen string) (table.Sort, []string, error)
	Save(screen string, sort table.Sort, hidden []string) error
}

// Deps groups external dependencies for updates.
type Deps struct {
	// Ctx bounds every fetch and create started by the console.
	Ctx       context.Context
	Dashboard DashboardLoader
	Prefs     PrefsStore
	Logger    *zap.Logger
}

func (d Deps) context() context.Context {
	if d.Ctx != nil {
		return d.Ctx
	}
	return context.Background()
}

func (d Deps) logger() *zap.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return zap.NewNop()
}

// RefreshedMsg is emitted when a list fetch finishes.
type RefreshedMsg struct {
	Screen screens.ID
	Result presenter.RefreshResult
}

// CreatedMsg is emitted when a create request finishes.
type CreatedMsg struct {
	Screen screens.ID
	Result presenter.CreateResult
}

// DashboardLoadedMsg is emitted after loading the dashboard.
type DashboardLoadedMsg struct {
	Dashboard usecase.Dashboard
	Err       error
}

// PrefsSavedMsg is emitted after persisting table preferences.
type PrefsSavedMsg struct {
	Screen screens.ID
	Err    error
}

var errNoDashboard = errors.New("dashboard is not configured")

// RefreshCmd marks pane as loading and returns the command that fetches its
// rows.
func RefreshCmd(ctx context.Context, pane presenter.Pane) tea.Cmd {
	run := pane.BeginRefresh(ctx)
	id := pane.ID()
	return func() tea.Msg {
		return RefreshedMsg{Screen: id, Result: run()}
	}
}

// CreateCmd creates a row from form values.
func CreateCmd(ctx context.Context, pane presenter.Pane, values map[string]string) tea.Cmd {
	run := pane.BeginCreate(ctx, maps.Clone(values))
	id := pane.ID()
	return func() tea.Msg {
		return CreatedMsg{Screen: id, Result: run()}
	}
}

// LoadDashboardCmd loads the dashboard figures.
func LoadDashboardCmd(ctx context.Context, loader DashboardLoader) tea.Cmd {
	return func() tea.Msg {
		if loader == nil {
			return DashboardLoadedMsg{Err: errNoDashboard}
		}
		d, err := loader.Load(ctx)
		return DashboardLoadedMsg{Dashboard: d, Err: err}
	}
}

// SavePrefsCmd persists the sort and hidden columns of a screen.
func SavePrefsCmd(store PrefsStore, screen screens.ID, sort table.Sort, hidden []string) tea.Cmd {
	if store == nil {
		return nil
	}
	hidden = append([]string(nil), hidden...)
	return func() tea.Msg {
		return PrefsSavedMsg{Screen: screen, Err: store.Save(string(screen), sort, hidden)}
	}
}

// HandleKeyMsg processes key input based on the current session.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit, true
	}
	switch s.Session {
	case state.QuitView:
		return handleQuitView(s, msg)
	case state.SearchView:
		return handleSearchView(s, msg)
	case state.CreateView:
		return handleCreateView(s, msg, deps)
	case state.ActionsView:
		return handleActionsView(s, msg)
	case state.DetailView:
		return handleDetailView(s, msg)
	default:
		return handleBrowseView(s, msg, deps)
	}
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		return tea.Quit, true
	case "n", "N", "esc", "q", "Q":
		s.Session = s.Previous
		return nil, true
	}
	return nil, true
}

func handleDetailView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "esc", "enter", "q", "backspace":
		s.Details = nil
		s.Session = state.BrowseView
	}
	return nil, true
}

// HandleWindowSize updates layout sizing based on terminal size.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height

	UpdateLayout(s)
}

// HandleRefreshedMsg applies a finished fetch. Results for a request that
// was superseded, or for a screen that was left, are dropped.
func HandleRefreshedMsg(s *state.ModelState, msg RefreshedMsg, deps Deps) {
	pane, ok := s.Panes[msg.Screen]
	if !ok {
		return
	}
	if !pane.ApplyRefresh(msg.Result) {
		deps.logger().Debug("stale refresh dropped", zap.String("screen", string(msg.Screen)))
		return
	}
	if err := msg.Result.Err(); err != nil {
		deps.logger().Warn("refresh failed", zap.String("screen", string(msg.Screen)), zap.Error(err))
	}
	SyncTable(s)
}

// HandleCreatedMsg applies a finished create. A failure keeps the form and
// its values so the user can correct them.
func HandleCreatedMsg(s *state.ModelState, msg CreatedMsg, deps Deps) {
	s.Submitting = false
	pane, ok := s.Panes[msg.Screen]
	if !ok {
		return
	}
	formOpen := s.Session == state.CreateView && s.Screen == msg.Screen

	if err := pane.ApplyCreate(msg.Result); err != nil {
		deps.logger().Warn("create failed", zap.String("screen", string(msg.Screen)), zap.Error(err))
		if formOpen {
			s.StatusMessage = ""
			s.FormErr = usecase.UserMessage(err)
			return
		}
		s.StatusMessage = fmt.Sprintf("Could not save %s: %s", strings.ToLower(msg.Screen.Title()), usecase.UserMessage(err))
		return
	}

	if formOpen {
		closeForm(s)
	}
	s.StatusMessage = fmt.Sprintf("Saved new entry in %s", msg.Screen.Title())
	SyncTable(s)
}

// HandleDashboardLoadedMsg stores the dashboard figures.
func HandleDashboardLoadedMsg(s *state.ModelState, msg DashboardLoadedMsg, deps Deps) {
	s.DashboardLoading = false
	if msg.Err != nil {
		deps.logger().Warn("dashboard failed", zap.Error(msg.Err))
		s.DashboardErr = msg.Err
		return
	}
	d := msg.Dashboard
	s.Dashboard = &d
	s.DashboardErr = nil
	if len(d.Partial) > 0 && s.Screen == screens.Dashboard {
		s.StatusMessage = "Some sections failed to load: " + strings.Join(d.Partial, ", ")
	}
}

// HandlePrefsSavedMsg reports a failed preference save.
func HandlePrefsSavedMsg(s *state.ModelState, msg PrefsSavedMsg, deps Deps) {
	if msg.Err == nil {
		return
	}
	deps.logger().Warn("saving table preferences failed", zap.String("screen", string(msg.Screen)), zap.Error(msg.Err))
	s.StatusMessage = "Could not save view preferences"
}
