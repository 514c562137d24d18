package presenter

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/tesso57/shelfdesk/internal/domain/table"
	"github.com/tesso57/shelfdesk/internal/presentation/screens"
)

// ScreenItem is a sidebar entry.
type ScreenItem struct {
	Screen screens.ID
	Label  string
	Count  string
}

// FilterValue implements list.Item.
func (i *ScreenItem) FilterValue() string { return i.Label }

// Title returns the entry label.
func (i *ScreenItem) Title() string { return i.Label }

// Badge returns the row count shown next to the label.
func (i *ScreenItem) Badge() string { return i.Count }

// ActionItem is an entry of the row action menu.
type ActionItem struct {
	Action table.Action
}

// FilterValue implements list.Item.
func (i *ActionItem) FilterValue() string { return i.Action.Label }

// Title returns the action label.
func (i *ActionItem) Title() string { return i.Action.Label }

// Badge is empty for actions.
func (i *ActionItem) Badge() string { return "" }

// BuildScreenItems builds the sidebar entries. Panes that have loaded rows
// show their count.
func BuildScreenItems(ids []screens.ID, panes map[screens.ID]Pane) []list.Item {
	items := make([]list.Item, len(ids))
	for i, id := range ids {
		item := &ScreenItem{Screen: id, Label: fmt.Sprintf("%d. %s", i+1, id.Title())}
		if p, ok := panes[id]; ok && p.Mounted() && !p.Loading() {
			_, total := p.Counts()
			item.Count = fmt.Sprint(total)
		}
		items[i] = item
	}
	return items
}

// ApplyScreenList refreshes the sidebar and selects active.
func ApplyScreenList(model *list.Model, ids []screens.ID, panes map[screens.ID]Pane, active screens.ID) {
	model.SetItems(BuildScreenItems(ids, panes))
	for i, id := range ids {
		if id == active {
			model.Select(i)
			break
		}
	}
}

// BuildActionItems wraps row actions for the action menu.
func BuildActionItems(actions []table.Action) []list.Item {
	items := make([]list.Item, len(actions))
	for i, a := range actions {
		items[i] = &ActionItem{Action: a}
	}
	return items
}
