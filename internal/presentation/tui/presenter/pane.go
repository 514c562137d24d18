// Package presenter builds view models for the TUI.
package presenter

import (
	"context"
	"slices"

	"github.com/tesso57/shelfdesk/internal/application/usecase"
	"github.com/tesso57/shelfdesk/internal/domain/table"
	"github.com/tesso57/shelfdesk/internal/presentation/report"
	"github.com/tesso57/shelfdesk/internal/presentation/screens"
)

// Header describes one table column.
type Header struct {
	Key   string
	Label string
	Width int
}

// FilterInfo is a filter with its current selection.
type FilterInfo struct {
	Key        string
	Label      string
	Value      string
	ValueLabel string
	Active     bool
}

// RefreshResult carries a finished fetch back to the pane that started it.
type RefreshResult struct {
	ticket usecase.Ticket
	rows   any
	err    error
}

// Err returns the fetch error, if any.
func (r RefreshResult) Err() error { return r.err }

// CreateResult carries a finished create back to the pane that started it.
type CreateResult struct {
	row   any
	err   error
	mount uint64
}

// Err returns the create error, if any.
func (r CreateResult) Err() error { return r.err }

// Pane is one list screen, independent of its row type.
type Pane interface {
	ID() screens.ID
	Title() string

	Columns() []Header
	VisibleColumns() []Header
	Rows() [][]string
	Actions(index int) []table.Action
	Details(index int) []report.Field
	Counts() (visible, total int)

	DisplayState() table.State
	Loading() bool
	ErrMessage() string
	SearchText() string
	Filters() []FilterInfo
	Sort() table.Sort
	Hidden() []string

	Search(text string)
	CycleFilter(key string) error
	SetFilter(key, value string) error
	Clear()
	CycleSort(key string)
	Hide(key string) bool
	ShowAll()
	ApplyPrefs(sort table.Sort, hidden []string)

	Mounted() bool
	BeginRefresh(ctx context.Context) func() RefreshResult
	ApplyRefresh(res RefreshResult) bool
	Unmount()

	CanCreate() bool
	FormFields() []screens.FormField
	ValidateForm(values map[string]string) error
	BeginCreate(ctx context.Context, values map[string]string) func() CreateResult
	ApplyCreate(res CreateResult) error
}

// ListPane binds a ListController to the console.
type ListPane[R table.Record, In any] struct {
	id       screens.ID
	ctrl     *usecase.ListController[R, In]
	actions  table.ActionFunc[R]
	hidden   map[string]bool
	sort     table.Sort
	mounted  bool
	mount    uint64
	fields   []screens.FormField
	fromForm func(map[string]string) In
}

// NewListPane creates a pane for ctrl. actions may be nil.
func NewListPane[R table.Record, In any](id screens.ID, ctrl *usecase.ListController[R, In], actions table.ActionFunc[R]) *ListPane[R, In] {
	return &ListPane[R, In]{id: id, ctrl: ctrl, actions: actions, hidden: map[string]bool{}}
}

// WithForm enables creating rows from the given form fields.
func (p *ListPane[R, In]) WithForm(fields []screens.FormField, fromForm func(map[string]string) In) *ListPane[R, In] {
	p.fields = fields
	p.fromForm = fromForm
	return p
}

func (p *ListPane[R, In]) ID() screens.ID { return p.id }
func (p *ListPane[R, In]) Title() string  { return p.id.Title() }

func (p *ListPane[R, In]) Columns() []Header {
	return headers(p.ctrl.Columns())
}

func (p *ListPane[R, In]) VisibleColumns() []Header {
	return headers(p.visible())
}

func (p *ListPane[R, In]) visible() []table.Column[R] {
	cols := p.ctrl.Columns()
	out := make([]table.Column[R], 0, len(cols))
	for _, c := range cols {
		if !p.hidden[c.Key] {
			out = append(out, c)
		}
	}
	return out
}

func headers[R table.Record](cols []table.Column[R]) []Header {
	out := make([]Header, len(cols))
	for i, c := range cols {
		out[i] = Header{Key: c.Key, Label: c.Label, Width: c.Width}
	}
	return out
}

// Rows returns the rendered cells of the visible columns.
func (p *ListPane[R, In]) Rows() [][]string {
	rendered := table.Render(p.ctrl.View(), p.visible(), nil)
	out := make([][]string, len(rendered))
	for i, r := range rendered {
		out[i] = r.Cells
	}
	return out
}

func (p *ListPane[R, In]) row(index int) (R, bool) {
	rows := p.ctrl.View().Rows
	if index < 0 || index >= len(rows) {
		var zero R
		return zero, false
	}
	return rows[index], true
}

func (p *ListPane[R, In]) Actions(index int) []table.Action {
	row, ok := p.row(index)
	if !ok || p.actions == nil {
		return nil
	}
	return p.actions(row)
}

// Details lists every column of the row, hidden ones included.
func (p *ListPane[R, In]) Details(index int) []report.Field {
	row, ok := p.row(index)
	if !ok {
		return nil
	}
	fields := []report.Field{{Label: "ID", Value: table.Text(row.Field("id"))}}
	for _, c := range p.ctrl.Columns() {
		fields = append(fields, report.Field{Label: c.Label, Value: c.Cell(row)})
	}
	return fields
}

func (p *ListPane[R, In]) Counts() (visible, total int) {
	v := p.ctrl.View()
	return len(v.Rows), v.Total
}

func (p *ListPane[R, In]) DisplayState() table.State { return p.ctrl.DisplayState() }
func (p *ListPane[R, In]) Loading() bool             { return p.ctrl.Snapshot().Loading }

func (p *ListPane[R, In]) ErrMessage() string {
	return usecase.UserMessage(p.ctrl.Snapshot().Err)
}

func (p *ListPane[R, In]) SearchText() string { return p.ctrl.Snapshot().SearchText }

func (p *ListPane[R, In]) Filters() []FilterInfo {
	sel := p.ctrl.Snapshot().Selections
	filters := p.ctrl.Filters()
	out := make([]FilterInfo, len(filters))
	for i, f := range filters {
		value := sel[f.Key]
		if table.IsSentinel(value) {
			value = table.All
		}
		out[i] = FilterInfo{
			Key:        f.Key,
			Label:      f.Label,
			Value:      value,
			ValueLabel: f.OptionLabel(value),
			Active:     f.Active(sel),
		}
	}
	return out
}

func (p *ListPane[R, In]) Sort() table.Sort { return p.sort }

// Hidden returns the hidden column keys in column order.
func (p *ListPane[R, In]) Hidden() []string {
	var out []string
	for _, c := range p.ctrl.Columns() {
		if p.hidden[c.Key] {
			out = append(out, c.Key)
		}
	}
	return out
}

func (p *ListPane[R, In]) Search(text string) { p.ctrl.Search(text) }

func (p *ListPane[R, In]) CycleFilter(key string) error {
	for _, f := range p.ctrl.Filters() {
		if f.Key == key {
			return p.ctrl.SetFilter(key, f.Next(p.ctrl.Snapshot().Selections[key]))
		}
	}
	return p.ctrl.SetFilter(key, table.All)
}

func (p *ListPane[R, In]) SetFilter(key, value string) error { return p.ctrl.SetFilter(key, value) }

// Clear resets the search text and every filter.
func (p *ListPane[R, In]) Clear() {
	p.ctrl.ClearFilters()
	p.ctrl.Search("")
}

func (p *ListPane[R, In]) CycleSort(key string) {
	p.sort = p.sort.Cycle(key)
	p.ctrl.SetSort(p.sort)
}

// Hide hides the column with key. The last visible column cannot be hidden.
func (p *ListPane[R, In]) Hide(key string) bool {
	if p.hidden[key] || table.ColumnIndex(p.ctrl.Columns(), key) < 0 || len(p.visible()) <= 1 {
		return false
	}
	p.hidden[key] = true
	return true
}

func (p *ListPane[R, In]) ShowAll() { clear(p.hidden) }

// ApplyPrefs restores a saved sort and hidden columns. Unknown keys are
// ignored.
func (p *ListPane[R, In]) ApplyPrefs(sort table.Sort, hidden []string) {
	cols := p.ctrl.Columns()
	if sort.IsZero() || table.ColumnIndex(cols, sort.Key) >= 0 {
		p.sort = sort
		p.ctrl.SetSort(sort)
	}
	clear(p.hidden)
	for _, key := range hidden {
		if slices.ContainsFunc(cols, func(c table.Column[R]) bool { return c.Key == key }) {
			p.hidden[key] = true
		}
	}
	if len(p.visible()) == 0 {
		clear(p.hidden)
	}
}

func (p *ListPane[R, In]) Mounted() bool { return p.mounted }

// BeginRefresh marks the pane as loading and returns the fetch to run off
// the event loop.
func (p *ListPane[R, In]) BeginRefresh(ctx context.Context) func() RefreshResult {
	if !p.mounted {
		p.mounted = true
		p.mount++
	}
	fetchCtx, ticket := p.ctrl.StartRefresh(ctx)
	return func() RefreshResult {
		rows, err := p.ctrl.Fetch(fetchCtx)
		return RefreshResult{ticket: ticket, rows: rows, err: err}
	}
}

// ApplyRefresh applies a fetch result. Superseded results are dropped.
func (p *ListPane[R, In]) ApplyRefresh(res RefreshResult) bool {
	rows, _ := res.rows.([]R)
	return p.ctrl.FinishRefresh(res.ticket, rows, res.err)
}

// Unmount tears the list state down. View preferences survive.
func (p *ListPane[R, In]) Unmount() {
	p.mounted = false
	p.ctrl.Reset()
	p.ctrl.SetSort(p.sort)
}

func (p *ListPane[R, In]) CanCreate() bool { return p.fromForm != nil }

func (p *ListPane[R, In]) FormFields() []screens.FormField { return p.fields }

func (p *ListPane[R, In]) ValidateForm(values map[string]string) error {
	if p.fromForm == nil {
		return usecase.ErrCreateUnsupported
	}
	return p.ctrl.ValidateCreate(p.fromForm(values))
}

// BeginCreate returns the create call to run off the event loop.
func (p *ListPane[R, In]) BeginCreate(ctx context.Context, values map[string]string) func() CreateResult {
	if p.fromForm == nil {
		return func() CreateResult { return CreateResult{err: usecase.ErrCreateUnsupported} }
	}
	in := p.fromForm(values)
	mount := p.mount
	return func() CreateResult {
		row, err := p.ctrl.CreateRow(ctx, in)
		return CreateResult{row: row, err: err, mount: mount}
	}
}

// ApplyCreate appends a created row. A pane that was unmounted meanwhile,
// even if mounted again since, picks the row up from a refresh instead.
func (p *ListPane[R, In]) ApplyCreate(res CreateResult) error {
	if res.err != nil {
		return res.err
	}
	row, ok := res.row.(R)
	if ok && p.mounted && res.mount == p.mount {
		p.ctrl.ApplyCreated(row)
	}
	return nil
}

