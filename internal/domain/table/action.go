package table

// Action is one control offered for a row. Its semantics belong to the caller.
type Action struct {
	Key   string
	Label string
}

// ActionFunc produces the actions available for a row.
type ActionFunc[R Record] func(row R) []Action

// RenderedRow is a visible row with its cells and actions.
type RenderedRow[R Record] struct {
	Row     R
	Cells   []string
	Actions []Action
}

// Render formats every visible row and asks actions for its controls.
func Render[R Record](view View[R], columns []Column[R], actions ActionFunc[R]) []RenderedRow[R] {
	out := make([]RenderedRow[R], len(view.Rows))
	for i, row := range view.Rows {
		out[i] = RenderedRow[R]{Row: row, Cells: Cells(row, columns)}
		if actions != nil {
			out[i].Actions = actions(row)
		}
	}
	return out
}
