package table

import "strings"

// All is the sentinel filter value meaning "no constraint".
const All = "all"

// Option is one selectable filter value.
type Option struct {
	Value string
	Label string
}

// Filter narrows the visible rows by a named, option-enumerated constraint.
type Filter[R Record] struct {
	Key     string
	Label   string
	Options []Option
	Match   func(row R, selected string) bool
}

// Selections maps filter keys to their selected values.
type Selections map[string]string

// Clone returns an independent copy.
func (s Selections) Clone() Selections {
	out := make(Selections, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// IsSentinel reports whether value imposes no constraint.
func IsSentinel(value string) bool {
	value = strings.TrimSpace(value)
	return value == "" || strings.EqualFold(value, All)
}

// NewFilter builds a filter whose options always start with the sentinel.
func NewFilter[R Record](key, label string, match func(R, string) bool, options ...Option) Filter[R] {
	opts := make([]Option, 0, len(options)+1)
	opts = append(opts, Option{Value: All, Label: "All"})
	for _, opt := range options {
		if IsSentinel(opt.Value) {
			continue
		}
		if opt.Label == "" {
			opt.Label = opt.Value
		}
		opts = append(opts, opt)
	}
	return Filter[R]{Key: key, Label: label, Options: opts, Match: match}
}

// FieldEquals matches rows whose field text equals the selection, ignoring case.
func FieldEquals[R Record](key string) func(R, string) bool {
	return func(row R, selected string) bool {
		return strings.EqualFold(strings.TrimSpace(Text(row.Field(key))), strings.TrimSpace(selected))
	}
}

// Active reports whether the filter constrains rows under selections.
func (f Filter[R]) Active(selections Selections) bool {
	return !IsSentinel(selections[f.Key])
}

// Next returns the option value following current, wrapping to the sentinel.
func (f Filter[R]) Next(current string) string {
	if len(f.Options) == 0 {
		return All
	}
	for i, opt := range f.Options {
		if strings.EqualFold(opt.Value, current) || (IsSentinel(current) && IsSentinel(opt.Value)) {
			return f.Options[(i+1)%len(f.Options)].Value
		}
	}
	return f.Options[0].Value
}

// OptionLabel returns the display label of value.
func (f Filter[R]) OptionLabel(value string) string {
	for _, opt := range f.Options {
		if strings.EqualFold(opt.Value, value) || (IsSentinel(value) && IsSentinel(opt.Value)) {
			return opt.Label
		}
	}
	return value
}

func matchesFilters[R Record](row R, filters []Filter[R], selections Selections) bool {
	for _, f := range filters {
		if !f.Active(selections) || f.Match == nil {
			continue
		}
		if !f.Match(row, strings.TrimSpace(selections[f.Key])) {
			return false
		}
	}
	return true
}
