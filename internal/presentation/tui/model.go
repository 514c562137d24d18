package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/shelfdesk/internal/application/settings"
	"github.com/tesso57/shelfdesk/internal/presentation/screens"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/presenter"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/state"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/update"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/view"
	listview "github.com/tesso57/shelfdesk/internal/presentation/tui/view/list"
)

// Model represents the main application state.
type Model struct {
	settings settings.Settings
	deps     update.Deps
	state    *state.ModelState
}

// NewModel creates the console. The dashboard comes first, followed by panes
// in the given order.
func NewModel(cfg settings.Settings, panes []presenter.Pane, deps update.Deps) *Model {
	return &Model{
		settings: cfg,
		deps:     deps,
		state:    newModelState(cfg, panes),
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, update.EnterScreen(m.state, m.state.Screen, m.deps))
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps)
		if handled {
			update.UpdateLayout(m.state)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
	case update.RefreshedMsg:
		update.HandleRefreshedMsg(m.state, msg, m.deps)
		update.UpdateLayout(m.state)
	case update.CreatedMsg:
		update.HandleCreatedMsg(m.state, msg, m.deps)
		update.UpdateLayout(m.state)
	case update.DashboardLoadedMsg:
		update.HandleDashboardLoadedMsg(m.state, msg, m.deps)
		update.UpdateLayout(m.state)
	case update.PrefsSavedMsg:
		update.HandlePrefsSavedMsg(m.state, msg, m.deps)
		update.UpdateLayout(m.state)
	}

	if m.state.Busy() {
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	switch m.state.Session {
	case state.BrowseView:
		m.state.Table, cmd = m.state.Table.Update(msg)
		cmds = append(cmds, cmd)
	case state.ActionsView:
		m.state.ActionList, cmd = m.state.ActionList.Update(msg)
		cmds = append(cmds, cmd)
	case state.SearchView:
		m.state.Search, cmd = m.state.Search.Update(msg)
		cmds = append(cmds, cmd)
	case state.CreateView:
		if f := m.state.FormFocus; f < len(m.state.Form) {
			m.state.Form[f], cmd = m.state.Form[f].Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func newModelState(cfg settings.Settings, panes []presenter.Pane) *state.ModelState {
	theme := state.Theme{
		Accent: lipgloss.Color(cfg.Theme.Accent),
		Muted:  lipgloss.Color(cfg.Theme.Muted),
		Border: lipgloss.Color(cfg.Theme.Border),
		Danger: lipgloss.Color(cfg.Theme.Danger),
	}
	keys := state.NewKeyMap(cfg.KeyMap)

	ids := []screens.ID{screens.Dashboard}
	byID := make(map[screens.ID]presenter.Pane, len(panes))
	for _, p := range panes {
		if p == nil {
			continue
		}
		ids = append(ids, p.ID())
		byID[p.ID()] = p
	}

	st := &state.ModelState{
		Session:    state.BrowseView,
		Screen:     screens.Dashboard,
		Screens:    ids,
		Panes:      byID,
		ScreenList: newMenuList(theme),
		ActionList: newMenuList(theme),
		Table:      newTable(theme, keys),
		Search:     newSearchInput(),
		Help:       help.New(),
		Spinner:    newSpinner(theme),
		Keys:       keys,
		Theme:      theme,
	}
	presenter.ApplyScreenList(&st.ScreenList, st.Screens, st.Panes, st.Screen)
	return st
}

func newMenuList(theme state.Theme) list.Model {
	l := list.New([]list.Item{}, listview.NewMenuDelegate(theme.Accent), 0, 0)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

func newTable(theme state.Theme, keys state.KeyMap) table.Model {
	t := table.New(table.WithFocused(true))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(theme.Accent).
		Bold(false)
	t.SetStyles(styles)
	t.KeyMap = tableKeyMap(keys)
	return t
}

// tableKeyMap keeps the table from claiming letters bound to list controls.
func tableKeyMap(keys state.KeyMap) table.KeyMap {
	disabled := key.NewBinding(key.WithDisabled())
	return table.KeyMap{
		LineUp:       keys.Up,
		LineDown:     keys.Down,
		PageUp:       keys.UpPage,
		PageDown:     keys.DownPage,
		HalfPageUp:   disabled,
		HalfPageDown: disabled,
		GotoTop:      keys.Top,
		GotoBottom:   keys.Bottom,
	}
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "Search: "
	ti.Placeholder = "name, code, city..."
	ti.CharLimit = 80
	ti.Width = 40
	return ti
}

func newSpinner(theme state.Theme) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	return s
}
