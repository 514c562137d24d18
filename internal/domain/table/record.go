// Package table implements the generic tabular presentation engine shared by
// every list screen: column rendering, search, filters, sorting and the
// empty/loading display policy.
package table

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// Record is a row whose fields can be resolved by key.
// Unknown keys return nil.
type Record interface {
	Field(key string) any
}

// Text coerces a raw field value into display text.
// Nil values, including typed nil pointers, render as an empty string.
func Text(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Time:
		if val.IsZero() {
			return ""
		}
		return val.Format(time.RFC3339)
	case fmt.Stringer:
		if isNil(val) {
			return ""
		}
		return val.String()
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		return Text(rv.Elem().Interface())
	}
	return fmt.Sprint(v)
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
