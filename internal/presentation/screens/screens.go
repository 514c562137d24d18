// Package screens holds the per-entity table configuration shared by the
// console and the command line.
package screens

import (
	"fmt"
	"slices"
	"strings"
)

// ID names a screen.
type ID string

// Screens.
const (
	Dashboard      ID = "dashboard"
	Products       ID = "products"
	PurchaseOrders ID = "purchase-orders"
	Stores         ID = "stores"
	Orders         ID = "orders"
)

// Lists are the screens backed by a list controller, in navigation order.
var Lists = []ID{Products, PurchaseOrders, Stores, Orders}

// All is every screen in navigation order.
var All = append([]ID{Dashboard}, Lists...)

// Title returns the human-readable screen name.
func (id ID) Title() string {
	switch id {
	case Dashboard:
		return "Dashboard"
	case Products:
		return "Products"
	case PurchaseOrders:
		return "Purchase Orders"
	case Stores:
		return "Stores"
	case Orders:
		return "Orders"
	default:
		return string(id)
	}
}

// Names returns the screen identifiers as strings.
func Names(ids []ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

// Parse resolves a screen name. Underscores and case are ignored.
func Parse(name string) (ID, error) {
	id := ID(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-"))
	if slices.Contains(All, id) {
		return id, nil
	}
	return "", fmt.Errorf("unknown screen %q", name)
}

// Action keys understood by the console. Filter actions carry a filter key
// and value, search actions carry the text to search for.
const (
	ActionDetails = "details"
	ActionFilter  = "filter"
	ActionSearch  = "search"
)

// FilterAction returns the key of an action that selects value on filter key.
func FilterAction(key, value string) string { return ActionFilter + ":" + key + "=" + value }

// SearchAction returns the key of an action that searches for text.
func SearchAction(text string) string { return ActionSearch + ":" + text }

// ParseAction splits an action key into its kind and arguments. For filter
// actions arg is the filter key and value the selection; for search actions
// arg is the text.
func ParseAction(key string) (kind, arg, value string) {
	kind, rest, found := strings.Cut(key, ":")
	if !found {
		return key, "", ""
	}
	if kind == ActionFilter {
		arg, value, _ = strings.Cut(rest, "=")
		return kind, arg, value
	}
	return kind, rest, ""
}
