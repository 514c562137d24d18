package table

// RenderFunc transforms a raw field value into its presentation.
// It must be free of side effects.
type RenderFunc func(v any) string

// Column describes one displayed column.
type Column[R Record] struct {
	Key    string
	Label  string
	Width  int
	Render RenderFunc
}

// Cell returns the presentation of the column's field for row.
func (c Column[R]) Cell(row R) string {
	v := row.Field(c.Key)
	if c.Render == nil {
		return Text(v)
	}
	return safeRender(c.Render, v)
}

// safeRender keeps a misbehaving render func from breaking the whole table.
func safeRender(render RenderFunc, v any) (out string) {
	defer func() {
		if recover() != nil {
			out = Text(v)
		}
	}()
	return render(v)
}

// Cells returns the rendered cells of row in column order.
func Cells[R Record](row R, columns []Column[R]) []string {
	cells := make([]string, len(columns))
	for i, col := range columns {
		cells[i] = col.Cell(row)
	}
	return cells
}

// Labels returns the column labels in order.
func Labels[R Record](columns []Column[R]) []string {
	labels := make([]string, len(columns))
	for i, col := range columns {
		labels[i] = col.Label
	}
	return labels
}

// ColumnIndex returns the index of the column with key, or -1.
func ColumnIndex[R Record](columns []Column[R], key string) int {
	for i, col := range columns {
		if col.Key == key {
			return i
		}
	}
	return -1
}
