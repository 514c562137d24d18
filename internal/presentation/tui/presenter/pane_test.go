package presenter

import (
	"context"
	"errors"
	"testing"

	"github.com/tesso57/shelfdesk/internal/application/usecase"
	"github.com/tesso57/shelfdesk/internal/domain/inventory"
	"github.com/tesso57/shelfdesk/internal/domain/table"
	"github.com/tesso57/shelfdesk/internal/presentation/screens"
)

func storeRows() []inventory.Store {
	return []inventory.Store{
		{ID: "1", Name: "Downtown", Code: "DT", City: "Austin", IsActive: true, StatusLabel: "Active"},
		{ID: "2", Name: "Airport", Code: "AP", City: "Dallas", StatusLabel: "Inactive"},
		{ID: "3", Name: "Mall", Code: "ML", City: "Austin", IsActive: true, StatusLabel: "Active"},
	}
}

func storePane(rows ...inventory.Store) *ListPane[inventory.Store, inventory.StoreInput] {
	src := usecase.NewStaticSource(rows, func(in inventory.StoreInput) (inventory.Store, error) {
		return inventory.Store{ID: "new", Name: in.Name, Code: in.Code, IsActive: in.IsActive}, nil
	})
	ctrl := usecase.NewListController(src, screens.StoreList(nil))
	return NewListPane(screens.Stores, ctrl, screens.StoreActions).
		WithForm(screens.StoreFormFields, screens.StoreInputFrom)
}

func refresh(p Pane) bool {
	return p.ApplyRefresh(p.BeginRefresh(context.Background())())
}

func TestListPaneRefreshAndRows(t *testing.T) {
	p := storePane(storeRows()...)
	if p.Mounted() {
		t.Fatal("pane should start unmounted")
	}
	if !refresh(p) {
		t.Fatal("refresh was not applied")
	}
	if !p.Mounted() {
		t.Error("refresh should mount the pane")
	}
	if got := len(p.Rows()); got != 3 {
		t.Fatalf("expected 3 rows, got %d", got)
	}
	if got := len(p.Rows()[0]); got != len(p.VisibleColumns()) {
		t.Errorf("row has %d cells for %d columns", got, len(p.VisibleColumns()))
	}
	if p.DisplayState() != table.StateReady {
		t.Errorf("unexpected state %v", p.DisplayState())
	}
}

func TestListPaneSupersededRefresh(t *testing.T) {
	p := storePane(storeRows()...)
	first := p.BeginRefresh(context.Background())
	second := p.BeginRefresh(context.Background())

	if !p.ApplyRefresh(second()) {
		t.Fatal("latest refresh should apply")
	}
	if p.ApplyRefresh(first()) {
		t.Error("superseded refresh should be dropped")
	}
}

func TestListPaneUnmountKeepsViewPrefs(t *testing.T) {
	p := storePane(storeRows()...)
	refresh(p)
	p.CycleSort("name")
	p.Hide("code")
	pending := p.BeginRefresh(context.Background())

	p.Unmount()

	if p.ApplyRefresh(pending()) {
		t.Error("refresh started before unmount should be dropped")
	}
	if p.Mounted() {
		t.Error("pane should be unmounted")
	}
	if total, _ := p.Counts(); total != 0 {
		t.Errorf("rows should be discarded, got %d", total)
	}
	if p.Sort().Key != "name" {
		t.Errorf("sort should survive unmount, got %+v", p.Sort())
	}
	if len(p.Hidden()) != 1 {
		t.Errorf("hidden columns should survive unmount, got %v", p.Hidden())
	}

	refresh(p)
	rows := p.Rows()
	if rows[0][0] != "Airport" {
		t.Errorf("sort should apply after remount, first row %v", rows[0])
	}
}

func TestListPaneSearchFilterClear(t *testing.T) {
	p := storePane(storeRows()...)
	refresh(p)

	p.Search("austin")
	if visible, total := p.Counts(); visible != 2 || total != 3 {
		t.Errorf("search: got %d/%d", visible, total)
	}
	if err := p.SetFilter("status", "inactive"); err != nil {
		t.Fatal(err)
	}
	if p.DisplayState() != table.StateNoMatch {
		t.Errorf("expected no-match, got %v", p.DisplayState())
	}
	if f := p.Filters()[0]; !f.Active || f.Value != "inactive" {
		t.Errorf("unexpected filter info %+v", f)
	}

	p.Clear()
	if visible, _ := p.Counts(); visible != 3 {
		t.Errorf("clear should show every row, got %d", visible)
	}
	if p.SearchText() != "" {
		t.Errorf("clear should reset search, got %q", p.SearchText())
	}
	if f := p.Filters()[0]; f.Active || f.Value != table.All {
		t.Errorf("filter should be reset, got %+v", f)
	}
}

func TestListPaneCycleFilter(t *testing.T) {
	p := storePane(storeRows()...)
	refresh(p)

	if err := p.CycleFilter("status"); err != nil {
		t.Fatal(err)
	}
	if got := p.Filters()[0].Value; got != "active" {
		t.Errorf("expected active, got %q", got)
	}
	if err := p.CycleFilter("region"); err == nil {
		t.Error("unknown filter should fail")
	}
}

func TestListPaneHideNeverHidesLastColumn(t *testing.T) {
	p := storePane(storeRows()...)
	cols := p.Columns()
	for _, c := range cols[:len(cols)-1] {
		if !p.Hide(c.Key) {
			t.Fatalf("could not hide %s", c.Key)
		}
	}
	if p.Hide(cols[len(cols)-1].Key) {
		t.Error("last visible column must stay")
	}
	if p.Hide("missing") {
		t.Error("unknown column cannot be hidden")
	}
	p.ShowAll()
	if len(p.VisibleColumns()) != len(cols) {
		t.Error("ShowAll should restore every column")
	}
}

func TestListPaneApplyPrefsIgnoresUnknownKeys(t *testing.T) {
	p := storePane(storeRows()...)
	p.ApplyPrefs(table.Sort{Key: "bogus"}, []string{"code", "bogus"})
	if !p.Sort().IsZero() {
		t.Errorf("unknown sort key should be ignored, got %+v", p.Sort())
	}
	if hidden := p.Hidden(); len(hidden) != 1 || hidden[0] != "code" {
		t.Errorf("unexpected hidden %v", hidden)
	}
}

func TestListPaneActionsAndDetails(t *testing.T) {
	p := storePane(storeRows()...)
	if p.Actions(0) != nil || p.Details(0) != nil {
		t.Error("no rows means no actions or details")
	}
	refresh(p)
	if len(p.Actions(0)) == 0 {
		t.Error("expected actions for first row")
	}
	details := p.Details(0)
	if details[0].Label != "ID" || details[0].Value != "1" {
		t.Errorf("unexpected first detail %+v", details[0])
	}
	if len(details) != len(p.Columns())+1 {
		t.Errorf("details should list every column, got %d", len(details))
	}
}

func TestListPaneCreate(t *testing.T) {
	p := storePane(storeRows()...)
	refresh(p)

	if !p.CanCreate() {
		t.Fatal("store pane should allow creating")
	}
	err := p.ValidateForm(map[string]string{"code": "X"})
	var validation *usecase.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	values := map[string]string{"name": "Harbor", "code": "HB"}
	if err := p.ApplyCreate(p.BeginCreate(context.Background(), values)()); err != nil {
		t.Fatal(err)
	}
	if _, total := p.Counts(); total != 4 {
		t.Errorf("created row should be appended, total %d", total)
	}
}

func TestListPaneCreateAfterUnmountIsNotAppended(t *testing.T) {
	p := storePane(storeRows()...)
	refresh(p)
	run := p.BeginCreate(context.Background(), map[string]string{"name": "Harbor", "code": "HB"})
	p.Unmount()

	if err := p.ApplyCreate(run()); err != nil {
		t.Fatal(err)
	}
	if _, total := p.Counts(); total != 0 {
		t.Errorf("unmounted pane should stay empty, got %d", total)
	}
}

func TestListPaneCreateFromEarlierMountIsNotAppended(t *testing.T) {
	p := storePane(storeRows()...)
	refresh(p)
	run := p.BeginCreate(context.Background(), map[string]string{"name": "Harbor", "code": "HB"})
	res := run()
	p.Unmount()

	// The remount refresh already sees the stored row.
	refresh(p)
	if _, total := p.Counts(); total != 4 {
		t.Fatalf("refresh should include the created row, total %d", total)
	}
	if err := p.ApplyCreate(res); err != nil {
		t.Fatal(err)
	}
	if _, total := p.Counts(); total != 4 {
		t.Errorf("late create result should not duplicate the row, total %d", total)
	}
}

func TestListPaneReadOnly(t *testing.T) {
	ctrl := usecase.NewListController(usecase.NewStaticSource[inventory.Product, struct{}](nil, nil), screens.ProductList(nil))
	p := NewListPane(screens.Products, ctrl, screens.ProductActions)
	if p.CanCreate() {
		t.Error("products are read-only")
	}
	if err := p.ApplyCreate(p.BeginCreate(context.Background(), nil)()); !errors.Is(err, usecase.ErrCreateUnsupported) {
		t.Errorf("expected ErrCreateUnsupported, got %v", err)
	}
}
