package app

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/tesso57/shelfdesk/internal/application/usecase"
	"github.com/tesso57/shelfdesk/internal/domain/inventory"
	"github.com/tesso57/shelfdesk/internal/domain/table"
	"github.com/tesso57/shelfdesk/internal/presentation/screens"
)

// ListQuery is a one-shot listing request.
type ListQuery struct {
	Search  string
	Filters map[string]string
	Sort    table.Sort
	Offset  int
	Limit   int
}

// ListResult is a listing rendered to text cells.
type ListResult struct {
	Headers []string
	Rows    [][]string
	// Visible counts rows after search and filters; Total counts all rows.
	Visible int
	Total   int
}

// List loads one screen and applies q to it.
func (a *App) List(ctx context.Context, screen string, q ListQuery) (ListResult, error) {
	id, err := ParseScreen(screen)
	if err != nil {
		return ListResult{}, err
	}
	switch id {
	case screens.Products:
		return runList(ctx, a.Products, q)
	case screens.PurchaseOrders:
		return runList(ctx, a.PurchaseOrders, q)
	case screens.Stores:
		return runList(ctx, a.Stores, q)
	case screens.Orders:
		return runList(ctx, a.Orders, q)
	default:
		return ListResult{}, fmt.Errorf("%s is not a list screen", id.Title())
	}
}

func runList[R table.Record, In any](ctx context.Context, c *usecase.ListController[R, In], q ListQuery) (ListResult, error) {
	if err := c.Refresh(ctx); err != nil {
		return ListResult{}, err
	}
	if q.Sort.Key != "" {
		keys := columnKeys(c.Columns())
		if !slices.Contains(keys, q.Sort.Key) {
			return ListResult{}, unknown("sort column", q.Sort.Key, keys)
		}
	}
	for key, value := range q.Filters {
		f, ok := findFilter(c.Filters(), key)
		if !ok {
			return ListResult{}, unknown("filter", key, filterKeys(c.Filters()))
		}
		if !hasOption(f, value) {
			return ListResult{}, unknown(f.Label+" value", value, optionValues(f))
		}
		if err := c.SetFilter(key, value); err != nil {
			return ListResult{}, err
		}
	}
	c.Search(q.Search)
	c.SetSort(q.Sort)

	view := c.View()
	cols := c.Columns()
	res := ListResult{Visible: len(view.Rows), Total: view.Total}
	for _, col := range cols {
		res.Headers = append(res.Headers, col.Label)
	}
	for _, row := range view.Window(q.Offset, q.Limit) {
		cells := make([]string, len(cols))
		for i, col := range cols {
			cells[i] = col.Cell(row)
		}
		res.Rows = append(res.Rows, cells)
	}
	return res, nil
}

// CreateStore validates in locally and sends it to the stores source.
func (a *App) CreateStore(ctx context.Context, in inventory.StoreInput) (inventory.Store, error) {
	return a.Stores.Create(ctx, in)
}

// ParseScreen resolves a screen name, suggesting the closest match when the
// name is unknown.
func ParseScreen(name string) (screens.ID, error) {
	id, err := screens.Parse(name)
	if err != nil {
		return "", unknown("screen", name, screens.Names(screens.All))
	}
	return id, nil
}

func unknown(what, got string, candidates []string) error {
	if s := suggest(got, candidates); s != "" {
		return fmt.Errorf("unknown %s %q, did you mean %q?", what, got, s)
	}
	return fmt.Errorf("unknown %s %q (choose from %s)", what, got, strings.Join(candidates, ", "))
}

// suggest returns the candidate closest to got, or "" when none is close.
func suggest(got string, candidates []string) string {
	got = strings.ToLower(strings.TrimSpace(got))
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(got, strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len(got)/3) {
		return ""
	}
	return best
}

func columnKeys[R table.Record](cols []table.Column[R]) []string {
	keys := make([]string, len(cols))
	for i, c := range cols {
		keys[i] = c.Key
	}
	return keys
}

func findFilter[R table.Record](filters []table.Filter[R], key string) (table.Filter[R], bool) {
	for _, f := range filters {
		if f.Key == key {
			return f, true
		}
	}
	return table.Filter[R]{}, false
}

func filterKeys[R table.Record](filters []table.Filter[R]) []string {
	keys := make([]string, len(filters))
	for i, f := range filters {
		keys[i] = f.Key
	}
	return keys
}

func hasOption[R table.Record](f table.Filter[R], value string) bool {
	return slices.ContainsFunc(f.Options, func(o table.Option) bool {
		return strings.EqualFold(o.Value, strings.TrimSpace(value))
	})
}

func optionValues[R table.Record](f table.Filter[R]) []string {
	out := make([]string, len(f.Options))
	for i, o := range f.Options {
		out[i] = o.Value
	}
	return out
}
