package presenter

import (
	"context"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	"github.com/tesso57/shelfdesk/internal/domain/table"
	"github.com/tesso57/shelfdesk/internal/presentation/screens"
)

func TestBuildScreenItems(t *testing.T) {
	pane := storePane(storeRows()...)
	panes := map[screens.ID]Pane{screens.Stores: pane}

	items := BuildScreenItems(screens.All, panes)
	if len(items) != len(screens.All) {
		t.Fatalf("expected %d items, got %d", len(screens.All), len(items))
	}
	stores := items[3].(*ScreenItem)
	if stores.Title() != "4. Stores" {
		t.Errorf("unexpected title %q", stores.Title())
	}
	if stores.Badge() != "" {
		t.Errorf("unmounted pane should have no badge, got %q", stores.Badge())
	}

	pane.ApplyRefresh(pane.BeginRefresh(context.Background())())
	items = BuildScreenItems(screens.All, panes)
	if got := items[3].(*ScreenItem).Badge(); got != "3" {
		t.Errorf("expected badge 3, got %q", got)
	}
}

func TestApplyScreenListSelectsActive(t *testing.T) {
	model := list.New(nil, list.NewDefaultDelegate(), 20, 10)
	ApplyScreenList(&model, screens.All, nil, screens.PurchaseOrders)
	if model.Index() != 2 {
		t.Errorf("expected index 2, got %d", model.Index())
	}
}

func TestBuildActionItems(t *testing.T) {
	items := BuildActionItems([]table.Action{{Key: "details", Label: "View details"}})
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	item := items[0].(*ActionItem)
	if item.Title() != "View details" || item.Action.Key != "details" {
		t.Errorf("unexpected item %+v", item.Action)
	}
}
