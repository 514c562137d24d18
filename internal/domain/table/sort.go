package table

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// Sort selects the column key and direction rows are ordered by.
// A zero Sort keeps insertion order.
type Sort struct {
	Key  string
	Desc bool
}

// IsZero reports whether no sort is set.
func (s Sort) IsZero() bool { return s.Key == "" }

// Cycle advances the sort on key: ascending, descending, then none.
func (s Sort) Cycle(key string) Sort {
	switch {
	case s.Key != key:
		return Sort{Key: key}
	case !s.Desc:
		return Sort{Key: key, Desc: true}
	default:
		return Sort{}
	}
}

// SortRows orders rows in place. The sort is stable so ties keep their
// original order in both directions.
func SortRows[R Record](rows []R, s Sort) {
	if s.IsZero() {
		return
	}
	slices.SortStableFunc(rows, func(a, b R) int {
		c := compareValues(a.Field(s.Key), b.Field(s.Key))
		if s.Desc {
			return -c
		}
		return c
	})
}

func compareValues(a, b any) int {
	if af, ok := number(a); ok {
		if bf, ok := number(b); ok {
			return cmp.Compare(af, bf)
		}
	}
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Compare(bt)
		}
	}
	if ab, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			return cmp.Compare(boolRank(ab), boolRank(bb))
		}
	}
	return strings.Compare(strings.ToLower(Text(a)), strings.ToLower(Text(b)))
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
