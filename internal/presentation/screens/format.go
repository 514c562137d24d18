package screens

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/tesso57/shelfdesk/internal/domain/table"
)

// Currency renders a money amount, e.g. "$1,234.50".
func Currency(v any) string {
	f, ok := number(v)
	if !ok {
		return table.Text(v)
	}
	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}
	return sign + "$" + humanize.FormatFloat("#,###.##", f)
}

// Count renders an integer with thousands separators.
func Count(v any) string {
	f, ok := number(v)
	if !ok {
		return table.Text(v)
	}
	return humanize.Comma(int64(f))
}

// Percent renders a ratio as a percentage with one decimal.
func Percent(v any) string {
	f, ok := number(v)
	if !ok {
		return table.Text(v)
	}
	return humanize.FormatFloat("#,###.#", f*100) + "%"
}

// Date renders an ISO date or a time as "Jan 2, 2006".
func Date(v any) string {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return ""
		}
		return t.Format("Jan 2, 2006")
	case string:
		if parsed, err := time.Parse(time.DateOnly, strings.TrimSpace(t)); err == nil {
			return parsed.Format("Jan 2, 2006")
		}
		return t
	default:
		return table.Text(v)
	}
}

// DateTime renders a time as "Jan 2 15:04".
func DateTime(v any) string {
	if t, ok := v.(time.Time); ok {
		if t.IsZero() {
			return ""
		}
		return t.Format("Jan 2 15:04")
	}
	return table.Text(v)
}

// Enum turns an upper snake case code such as PENDING_APPROVAL into
// "Pending Approval".
func Enum(v any) string {
	raw := strings.TrimSpace(table.Text(v))
	if raw == "" {
		return ""
	}
	words := strings.FieldsFunc(strings.ToLower(raw), func(r rune) bool { return r == '_' || r == ' ' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ActiveLabel renders a boolean as "Active" or "Inactive".
func ActiveLabel(v any) string {
	if b, ok := v.(bool); ok {
		if b {
			return "Active"
		}
		return "Inactive"
	}
	return table.Text(v)
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func options(values ...string) []table.Option {
	out := make([]table.Option, len(values))
	for i, v := range values {
		out[i] = table.Option{Value: v, Label: Enum(v)}
	}
	return out
}
