package table

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type label string

func (l label) String() string { return "<" + string(l) + ">" }

func TestText(t *testing.T) {
	var nilInt *int
	var nilLabel *label
	n := 7
	ts := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil", in: nil, want: ""},
		{name: "string", in: "x", want: "x"},
		{name: "bool", in: true, want: "true"},
		{name: "int", in: 42, want: "42"},
		{name: "float", in: 12.5, want: "12.5"},
		{name: "time", in: ts, want: "2024-03-01T09:30:00Z"},
		{name: "zero time", in: time.Time{}, want: ""},
		{name: "stringer", in: label("a"), want: "<a>"},
		{name: "typed nil pointer", in: nilInt, want: ""},
		{name: "typed nil stringer", in: nilLabel, want: ""},
		{name: "pointer", in: &n, want: "7"},
		{name: "uint", in: uint8(3), want: "3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.in))
		})
	}
}

func TestColumnCellUnknownKeyIsBlank(t *testing.T) {
	r := row{"name": "Blue Shirt"}

	assert.Equal(t, "", Column[row]{Key: "missing"}.Cell(r))

	asString := Column[row]{Key: "missing", Render: func(v any) string { return v.(string) }}
	assert.Equal(t, "", asString.Cell(r))
}

func TestColumnCellRecoversFromPanickingRender(t *testing.T) {
	col := Column[row]{Key: "stock", Render: func(v any) string {
		return v.(string)
	}}
	assert.Equal(t, "12", col.Cell(row{"stock": 12}))
}

func TestNewFilterPutsSentinelFirst(t *testing.T) {
	f := NewFilter("status", "Status", FieldEquals[row]("status"),
		Option{Value: "ACTIVE"}, Option{Value: "all"}, Option{Value: "INACTIVE", Label: "Off"})

	assert.Equal(t, []Option{
		{Value: All, Label: "All"},
		{Value: "ACTIVE", Label: "ACTIVE"},
		{Value: "INACTIVE", Label: "Off"},
	}, f.Options)
}

func TestFilterNextCycles(t *testing.T) {
	f := NewFilter("status", "Status", FieldEquals[row]("status"),
		Option{Value: "ACTIVE"}, Option{Value: "INACTIVE"})

	assert.Equal(t, "ACTIVE", f.Next(""))
	assert.Equal(t, "INACTIVE", f.Next("active"))
	assert.Equal(t, All, f.Next("INACTIVE"))
	assert.Equal(t, All, f.Next("unknown"))
	assert.Equal(t, "Off", NewFilter("s", "S", FieldEquals[row]("s"), Option{Value: "x", Label: "Off"}).OptionLabel("X"))
}

func TestSortCycle(t *testing.T) {
	s := Sort{}.Cycle("name")
	assert.Equal(t, Sort{Key: "name"}, s)
	s = s.Cycle("name")
	assert.Equal(t, Sort{Key: "name", Desc: true}, s)
	assert.True(t, s.Cycle("name").IsZero())
	assert.Equal(t, Sort{Key: "sku"}, s.Cycle("sku"))
}

func TestSortRowsDescendingKeepsTieOrder(t *testing.T) {
	rows := []row{
		{"id": 1, "stock": 5},
		{"id": 2, "stock": 9},
		{"id": 3, "stock": 5},
		{"id": 4, "stock": 1},
	}
	SortRows(rows, Sort{Key: "stock", Desc: true})

	var ids []int
	for _, r := range rows {
		ids = append(ids, r["id"].(int))
	}
	assert.Equal(t, []int{2, 1, 3, 4}, ids)
}

func TestSortRowsMixedKinds(t *testing.T) {
	early := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []row{
		{"id": 1, "v": early.Add(time.Hour), "name": "beta", "active": true},
		{"id": 2, "v": early, "name": "Alpha", "active": false},
	}
	SortRows(rows, Sort{Key: "v"})
	assert.Equal(t, 2, rows[0]["id"])

	SortRows(rows, Sort{Key: "name", Desc: true})
	assert.Equal(t, 1, rows[0]["id"])

	SortRows(rows, Sort{Key: "active"})
	assert.Equal(t, 2, rows[0]["id"])
}

func TestDisplayState(t *testing.T) {
	boom := errors.New("boom")
	assert.Equal(t, StateLoading, DisplayState(true, boom, 3, 3))
	assert.Equal(t, StateError, DisplayState(false, boom, 0, 0))
	assert.Equal(t, StateReady, DisplayState(false, boom, 2, 2))
	assert.Equal(t, StateNoData, DisplayState(false, nil, 0, 0))
	assert.Equal(t, StateNoMatch, DisplayState(false, nil, 2, 0))
	assert.Equal(t, "no match", StateNoMatch.String())
}
