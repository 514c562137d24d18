package update

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	btable "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/shelfdesk/internal/application/settings"
	"github.com/tesso57/shelfdesk/internal/application/usecase"
	"github.com/tesso57/shelfdesk/internal/domain/inventory"
	"github.com/tesso57/shelfdesk/internal/domain/table"
	"github.com/tesso57/shelfdesk/internal/presentation/screens"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/presenter"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/state"
)

type memoryPrefs struct {
	sort   map[string]table.Sort
	hidden map[string][]string
	saves  int
}

func newMemoryPrefs() *memoryPrefs {
	return &memoryPrefs{sort: map[string]table.Sort{}, hidden: map[string][]string{}}
}

func (p *memoryPrefs) Load(screen string) (table.Sort, []string, error) {
	return p.sort[screen], p.hidden[screen], nil
}

func (p *memoryPrefs) Save(screen string, sort table.Sort, hidden []string) error {
	p.saves++
	p.sort[screen] = sort
	p.hidden[screen] = hidden
	return nil
}

type stubDashboard struct {
	d   usecase.Dashboard
	err error
}

func (s stubDashboard) Load(context.Context) (usecase.Dashboard, error) { return s.d, s.err }

type failingStores struct{ err error }

func (f failingStores) FetchAll(context.Context) ([]inventory.Store, error) { return nil, f.err }
func (f failingStores) CreateOne(context.Context, inventory.StoreInput) (inventory.Store, error) {
	return inventory.Store{}, f.err
}

func testStores() []inventory.Store {
	return []inventory.Store{
		{ID: "1", Name: "Downtown", Code: "DT", City: "Austin", IsActive: true, StatusLabel: "Active"},
		{ID: "2", Name: "Airport", Code: "AP", City: "Dallas", StatusLabel: "Inactive"},
	}
}

func newTestState(t *testing.T, src usecase.Source[inventory.Store, inventory.StoreInput]) *state.ModelState {
	t.Helper()
	if src == nil {
		src = usecase.NewStaticSource(testStores(), func(in inventory.StoreInput) (inventory.Store, error) {
			return inventory.Store{ID: "new", Name: in.Name, Code: in.Code, IsActive: in.IsActive}, nil
		})
	}
	ctrl := usecase.NewListController(src, screens.StoreList(nil))
	stores := presenter.NewListPane(screens.Stores, ctrl, screens.StoreActions).
		WithForm(screens.StoreFormFields, screens.StoreInputFrom)

	keys := state.NewKeyMap(settings.KeyMapConfig{
		Up: "k,up", Down: "j,down", Left: "h,left", Right: "l,right",
		NextScreen: "tab", PrevScreen: "shift+tab", Search: "/",
		CycleFilter: "f", NextFilter: "F", ClearFilters: "c", Sort: "s",
		HideColumn: "x", ShowColumns: "X", Refresh: "r", Create: "n",
		Actions: "enter", Back: "esc", Quit: "q",
	})
	return &state.ModelState{
		Session:    state.BrowseView,
		Screen:     screens.Dashboard,
		Screens:    []screens.ID{screens.Dashboard, screens.Stores},
		Panes:      map[screens.ID]presenter.Pane{screens.Stores: stores},
		ScreenList: list.New(nil, list.NewDefaultDelegate(), 0, 0),
		ActionList: list.New(nil, list.NewDefaultDelegate(), 0, 0),
		Table:      btable.New(btable.WithFocused(true)),
		Search:     textinput.New(),
		Help:       help.New(),
		Keys:       keys,
		Width:      120,
		Height:     40,
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drain runs cmd and feeds list messages back into the handlers. Commands
// that wait on a timer, like cursor blinks, are abandoned.
func drain(t *testing.T, s *state.ModelState, cmd tea.Cmd, deps Deps) {
	t.Helper()
	if cmd == nil {
		return
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(50 * time.Millisecond):
		return
	}
	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			drain(t, s, c, deps)
		}
	case RefreshedMsg:
		HandleRefreshedMsg(s, msg, deps)
	case CreatedMsg:
		HandleCreatedMsg(s, msg, deps)
	case DashboardLoadedMsg:
		HandleDashboardLoadedMsg(s, msg, deps)
	case PrefsSavedMsg:
		HandlePrefsSavedMsg(s, msg, deps)
	}
}

func press(t *testing.T, s *state.ModelState, deps Deps, keys ...string) {
	t.Helper()
	for _, k := range keys {
		cmd, _ := HandleKeyMsg(s, key(k), deps)
		drain(t, s, cmd, deps)
	}
}

func enterStores(t *testing.T, s *state.ModelState, deps Deps) presenter.Pane {
	t.Helper()
	drain(t, s, EnterScreen(s, screens.Stores, deps), deps)
	pane, ok := s.ActivePane()
	if !ok {
		t.Fatal("stores pane missing")
	}
	return pane
}

func TestEnterScreenLoadsRowsAndPrefs(t *testing.T) {
	s := newTestState(t, nil)
	prefs := newMemoryPrefs()
	prefs.sort["stores"] = table.Sort{Key: "name"}
	deps := Deps{Prefs: prefs}

	pane := enterStores(t, s, deps)

	if len(s.Table.Rows()) != 2 {
		t.Fatalf("expected 2 table rows, got %d", len(s.Table.Rows()))
	}
	if pane.Sort().Key != "name" {
		t.Errorf("saved sort should be restored, got %+v", pane.Sort())
	}
	if got := s.Table.Rows()[0][1]; got != "Airport" {
		t.Errorf("rows should be sorted by name, first is %q", got)
	}
}

func TestLeavingScreenDropsInflightRefresh(t *testing.T) {
	s := newTestState(t, nil)
	deps := Deps{}
	pane := enterStores(t, s, deps)

	// Start a refresh but do not deliver it yet.
	pending := RefreshCmd(context.Background(), pane)
	drain(t, s, EnterScreen(s, screens.Dashboard, Deps{Dashboard: stubDashboard{}}), deps)
	drain(t, s, pending, deps)

	if pane.Mounted() {
		t.Error("left screen should be unmounted")
	}
	if _, total := pane.Counts(); total != 0 {
		t.Errorf("stale refresh should not land, got %d rows", total)
	}
}

func TestSearchIsAppliedWhileTyping(t *testing.T) {
	s := newTestState(t, nil)
	deps := Deps{}
	pane := enterStores(t, s, deps)

	press(t, s, deps, "/")
	if s.Session != state.SearchView {
		t.Fatalf("expected search session, got %v", s.Session)
	}
	press(t, s, deps, "d", "a", "l")
	if visible, _ := pane.Counts(); visible != 1 {
		t.Errorf("expected 1 visible row, got %d", visible)
	}
	press(t, s, deps, "enter")
	if s.Session != state.BrowseView || pane.SearchText() != "dal" {
		t.Errorf("enter should keep the search, got %q", pane.SearchText())
	}

	press(t, s, deps, "/", "esc")
	if pane.SearchText() != "" {
		t.Errorf("esc should clear the search, got %q", pane.SearchText())
	}
}

func TestFilterSortHideIntents(t *testing.T) {
	s := newTestState(t, nil)
	prefs := newMemoryPrefs()
	deps := Deps{Prefs: prefs}
	pane := enterStores(t, s, deps)

	press(t, s, deps, "f")
	if visible, _ := pane.Counts(); visible != 1 {
		t.Errorf("status filter should show active stores only, got %d", visible)
	}
	press(t, s, deps, "c")
	if visible, _ := pane.Counts(); visible != 2 {
		t.Errorf("clear should show every store, got %d", visible)
	}

	press(t, s, deps, "l", "s")
	if pane.Sort().Key != "name" {
		t.Errorf("sort should use the active column, got %+v", pane.Sort())
	}
	press(t, s, deps, "x")
	if hidden := pane.Hidden(); len(hidden) != 1 || hidden[0] != "name" {
		t.Errorf("expected name hidden, got %v", hidden)
	}
	if prefs.saves != 2 || prefs.sort["stores"].Key != "name" {
		t.Errorf("prefs should be saved after sort and hide, saves=%d", prefs.saves)
	}
	press(t, s, deps, "X")
	if len(pane.Hidden()) != 0 {
		t.Error("show columns should unhide everything")
	}
}

func TestActionsMenuFiltersByRow(t *testing.T) {
	s := newTestState(t, nil)
	deps := Deps{}
	pane := enterStores(t, s, deps)

	press(t, s, deps, "enter")
	if s.Session != state.ActionsView {
		t.Fatalf("expected actions session, got %v", s.Session)
	}
	// Third action on a store narrows to its status.
	s.ActionList.Select(2)
	press(t, s, deps, "enter")
	if s.Session != state.BrowseView {
		t.Errorf("action should close the menu")
	}
	if f := pane.Filters()[0]; f.Value != "active" {
		t.Errorf("expected status filter active, got %+v", f)
	}

	press(t, s, deps, "enter")
	s.ActionList.Select(0)
	press(t, s, deps, "enter")
	if s.Session != state.DetailView || len(s.Details) == 0 {
		t.Fatalf("details action should open details, session %v", s.Session)
	}
	press(t, s, deps, "esc")
	if s.Session != state.BrowseView {
		t.Error("esc should close details")
	}
}

func TestCreateFormValidationKeepsValues(t *testing.T) {
	s := newTestState(t, nil)
	deps := Deps{}
	pane := enterStores(t, s, deps)

	press(t, s, deps, "n")
	if s.Session != state.CreateView || len(s.Form) != len(screens.StoreFormFields) {
		t.Fatalf("expected create form, session %v", s.Session)
	}
	press(t, s, deps, "tab", "H", "B")
	press(t, s, deps, "ctrl+s")

	if s.FormErr != "Store name is required" {
		t.Errorf("unexpected form error %q", s.FormErr)
	}
	if s.FormFocus != 0 {
		t.Errorf("focus should move to the missing name, got %d", s.FormFocus)
	}
	if FormValues(s)["code"] != "HB" {
		t.Error("form values should be kept after a failed validation")
	}
	if _, total := pane.Counts(); total != 2 {
		t.Error("invalid input must not create a row")
	}

	press(t, s, deps, "H", "a", "r", "b", "o", "r", "ctrl+s")
	if s.Session != state.BrowseView {
		t.Fatalf("successful create should close the form, session %v (err %q)", s.Session, s.FormErr)
	}
	if _, total := pane.Counts(); total != 3 {
		t.Errorf("created row should be appended, got %d", total)
	}
	if s.Submitting {
		t.Error("submitting should be cleared")
	}
}

func TestCreateFailureKeepsForm(t *testing.T) {
	s := newTestState(t, failingStores{err: errors.New("Store code already exists")})
	deps := Deps{}
	enterStores(t, s, deps)

	press(t, s, deps, "n", "M", "a", "l", "l", "tab", "D", "T", "ctrl+s")

	if s.Session != state.CreateView {
		t.Fatalf("failed create should keep the form open, session %v", s.Session)
	}
	if s.FormErr != "Store code already exists" {
		t.Errorf("unexpected form error %q", s.FormErr)
	}
	if FormValues(s)["name"] != "Mall" {
		t.Error("values should survive a failed create")
	}
}

func TestDashboardMessages(t *testing.T) {
	s := newTestState(t, nil)
	deps := Deps{Dashboard: stubDashboard{d: usecase.Dashboard{Partial: []string{"stores"}}}}

	drain(t, s, EnterScreen(s, screens.Dashboard, deps), deps)
	if s.DashboardLoading || s.Dashboard == nil {
		t.Fatal("dashboard should be loaded")
	}
	if s.StatusMessage != "Some sections failed to load: stores" {
		t.Errorf("unexpected status %q", s.StatusMessage)
	}

	failing := Deps{Dashboard: stubDashboard{err: errors.New("offline")}}
	press(t, s, failing, "r")
	if s.DashboardErr == nil {
		t.Error("dashboard error should be kept")
	}
}

func TestQuitDialog(t *testing.T) {
	s := newTestState(t, nil)
	press(t, s, Deps{}, "q")
	if s.Session != state.QuitView {
		t.Fatal("q should open the quit dialog")
	}
	press(t, s, Deps{}, "n")
	if s.Session != state.BrowseView {
		t.Error("n should cancel")
	}
	press(t, s, Deps{}, "q")
	cmd, _ := HandleKeyMsg(s, key("y"), Deps{})
	if cmd == nil {
		t.Fatal("y should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestReadOnlyScreenRejectsCreate(t *testing.T) {
	s := newTestState(t, nil)
	ctrl := usecase.NewListController(usecase.NewStaticSource[inventory.Product, struct{}](nil, nil), screens.ProductList(nil))
	s.Panes[screens.Products] = presenter.NewListPane(screens.Products, ctrl, screens.ProductActions)
	s.Screens = append(s.Screens, screens.Products)
	deps := Deps{}
	press(t, s, deps, "3", "n")

	if s.Session != state.BrowseView {
		t.Errorf("products are read-only, session %v", s.Session)
	}
	if s.StatusMessage != "Products are read-only" {
		t.Errorf("unexpected status %q", s.StatusMessage)
	}
}

func TestBuildLayoutMetrics(t *testing.T) {
	s := newTestState(t, nil)
	layout := buildLayoutMetrics(s)
	if layout.sidebarWidth != 24 {
		t.Errorf("sidebar width = %d, want 24", layout.sidebarWidth)
	}
	if layout.mainWidth != 120-24-1 {
		t.Errorf("main width = %d", layout.mainWidth)
	}

	base := footerHeight(s)
	s.StatusMessage = "Saved"
	if footerHeight(s) != base+1 {
		t.Error("status message should add a footer line")
	}
}
