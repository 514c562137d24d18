// Package usecase contains application-level services.
package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/tesso57/shelfdesk/internal/domain/table"
	"go.uber.org/zap"
)

// ListConfig configures a ListController for one screen.
type ListConfig[R table.Record, In any] struct {
	Columns    []table.Column[R]
	SearchKeys []string
	Filters    []table.Filter[R]
	// Validate checks create input locally. Nil accepts everything.
	Validate func(In) error
	Logger   *zap.Logger
}

// ListState is the per-screen state owned by a ListController.
type ListState[R table.Record] struct {
	Rows       []R
	Loading    bool
	Err        error
	SearchText string
	Selections table.Selections
	Sort       table.Sort
}

// Ticket identifies one refresh request.
type Ticket uint64

// ListController owns the state of one list screen and derives its view.
type ListController[R table.Record, In any] struct {
	mu     sync.Mutex
	source Source[R, In]
	cfg    ListConfig[R, In]
	logger *zap.Logger

	state  ListState[R]
	view   table.View[R]
	gen    Ticket
	cancel context.CancelFunc
}

// NewListController creates a controller with empty state.
func NewListController[R table.Record, In any](source Source[R, In], cfg ListConfig[R, In]) *ListController[R, In] {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &ListController[R, In]{
		source: source,
		cfg:    cfg,
		logger: logger,
		state:  ListState[R]{Selections: table.Selections{}},
	}
	c.recompute()
	return c
}

// Columns returns the configured columns.
func (c *ListController[R, In]) Columns() []table.Column[R] { return c.cfg.Columns }

// Filters returns the configured filters.
func (c *ListController[R, In]) Filters() []table.Filter[R] { return c.cfg.Filters }

// Search sets the search text. It never contacts the source.
func (c *ListController[R, In]) Search(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.SearchText == text {
		return
	}
	c.state.SearchText = text
	c.recompute()
}

// SetFilter selects value for the filter named key.
func (c *ListController[R, In]) SetFilter(key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !slices.ContainsFunc(c.cfg.Filters, func(f table.Filter[R]) bool { return f.Key == key }) {
		return fmt.Errorf("unknown filter %q", key)
	}
	value = strings.TrimSpace(value)
	if table.IsSentinel(value) {
		delete(c.state.Selections, key)
	} else {
		c.state.Selections[key] = value
	}
	c.recompute()
	return nil
}

// ClearFilters resets every filter to its sentinel.
func (c *ListController[R, In]) ClearFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Selections = table.Selections{}
	c.recompute()
}

// SetSort changes the row order.
func (c *ListController[R, In]) SetSort(s table.Sort) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Sort = s
	c.recompute()
}

// StartRefresh marks the screen as loading and supersedes any refresh in
// flight. Fetch with the returned context and hand the result to
// FinishRefresh together with the ticket.
func (c *ListController[R, In]) StartRefresh(ctx context.Context) (context.Context, Ticket) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.gen++
	c.state.Loading = true
	c.state.Err = nil
	return fetchCtx, c.gen
}

// FinishRefresh applies a fetch result. It returns false and changes nothing
// when ticket was superseded. A failed fetch keeps the previous rows.
func (c *ListController[R, In]) FinishRefresh(ticket Ticket, rows []R, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ticket != c.gen {
		c.logger.Debug("dropping superseded refresh", zap.Uint64("ticket", uint64(ticket)), zap.Uint64("current", uint64(c.gen)))
		return false
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.state.Loading = false
	if err != nil {
		c.state.Err = &FetchError{Err: err}
		c.logger.Warn("refresh failed", zap.Error(err), zap.Int("kept_rows", len(c.state.Rows)))
	} else {
		c.state.Rows = slices.Clone(rows)
		c.logger.Debug("refresh applied", zap.Int("rows", len(rows)))
	}
	c.recompute()
	return true
}

// Refresh reloads every row from the source.
func (c *ListController[R, In]) Refresh(ctx context.Context) error {
	fetchCtx, ticket := c.StartRefresh(ctx)
	rows, err := c.source.FetchAll(fetchCtx)
	if !c.FinishRefresh(ticket, rows, err) {
		return ErrSuperseded
	}
	if err != nil {
		return &FetchError{Err: err}
	}
	return nil
}

// Reset discards the rows, search, filters, sort and any error, and makes
// every outstanding refresh ticket stale.
func (c *ListController[R, In]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.gen++
	c.state = ListState[R]{Selections: table.Selections{}}
	c.recompute()
}

// ValidateCreate runs local validation only.
func (c *ListController[R, In]) ValidateCreate(in In) error {
	if c.cfg.Validate == nil {
		return nil
	}
	if err := c.cfg.Validate(in); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

// Create validates in, sends it to the source and appends the row the
// source returns. On failure the rows are unchanged.
func (c *ListController[R, In]) Create(ctx context.Context, in In) (R, error) {
	var zero R
	if err := c.ValidateCreate(in); err != nil {
		return zero, err
	}
	row, err := c.source.CreateOne(ctx, in)
	if err != nil {
		c.logger.Warn("create failed", zap.Error(err))
		return zero, &CreateError{Err: err}
	}
	c.ApplyCreated(row)
	return row, nil
}

// ApplyCreated appends a row confirmed by the source.
func (c *ListController[R, In]) ApplyCreated(row R) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Rows = append(c.state.Rows, row)
	c.recompute()
}

// CreateRow sends in to the source without touching state. Callers on an
// event loop use it from a command and apply the row with ApplyCreated.
func (c *ListController[R, In]) CreateRow(ctx context.Context, in In) (R, error) {
	row, err := c.source.CreateOne(ctx, in)
	if err != nil {
		var zero R
		return zero, &CreateError{Err: err}
	}
	return row, nil
}

// Fetch reads every row from the source without touching state.
func (c *ListController[R, In]) Fetch(ctx context.Context) ([]R, error) {
	return c.source.FetchAll(ctx)
}

// View returns the derived rows. While loading it keeps returning the view
// computed before the refresh started.
func (c *ListController[R, In]) View() table.View[R] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Snapshot returns a copy of the current state.
func (c *ListController[R, In]) Snapshot() ListState[R] {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.state
	st.Rows = slices.Clone(c.state.Rows)
	st.Selections = c.state.Selections.Clone()
	return st
}

// DisplayState reports which state the screen should render.
func (c *ListController[R, In]) DisplayState() table.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return table.DisplayState(c.state.Loading, c.state.Err, len(c.state.Rows), len(c.view.Rows))
}

// recompute derives the view. Callers hold mu.
func (c *ListController[R, In]) recompute() {
	if c.state.Loading {
		return
	}
	c.view = table.Present(c.state.Rows, table.Query[R]{
		Columns:    c.cfg.Columns,
		SearchText: c.state.SearchText,
		SearchKeys: c.cfg.SearchKeys,
		Filters:    c.cfg.Filters,
		Selections: c.state.Selections,
		Sort:       c.state.Sort,
	})
}
