package table

// Query holds everything needed to derive the visible rows.
type Query[R Record] struct {
	Columns    []Column[R]
	SearchText string
	SearchKeys []string
	Filters    []Filter[R]
	Selections Selections
	Sort       Sort
}

// View is the derived, read-only result of Present.
type View[R Record] struct {
	Rows    []R
	IsEmpty bool
	// Total is the number of rows before search and filters.
	Total int
}

// Present applies search, then every active filter, then the sort.
// The input slice is never modified.
func Present[R Record](rows []R, q Query[R]) View[R] {
	visible := make([]R, 0, len(rows))
	for _, row := range rows {
		if !MatchesSearch(row, q.SearchText, q.SearchKeys) {
			continue
		}
		if !matchesFilters(row, q.Filters, q.Selections) {
			continue
		}
		visible = append(visible, row)
	}
	SortRows(visible, q.Sort)
	return View[R]{
		Rows:    visible,
		IsEmpty: len(visible) == 0,
		Total:   len(rows),
	}
}

// Window returns at most limit rows starting at offset.
// A non-positive limit means no upper bound.
func (v View[R]) Window(offset, limit int) []R {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(v.Rows) {
		return nil
	}
	end := len(v.Rows)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return v.Rows[offset:end]
}

// Filtered reports whether search or filters hid some rows.
func (v View[R]) Filtered() bool {
	return len(v.Rows) != v.Total
}
