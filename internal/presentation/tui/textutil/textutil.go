// Package textutil provides width-aware text helpers for the console.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Ellipsis marks truncated text. It is one cell wide.
const Ellipsis = "…"

// SingleLine collapses whitespace, newlines included, into single spaces.
func SingleLine(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Truncate cuts text to width cells, ending with an ellipsis when cut.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(text, width, Ellipsis)
}

// Line flattens text and fits it into width cells.
func Line(text string, width int) string {
	return Truncate(SingleLine(text), width)
}

// WithBadge right-aligns badge after title within width cells. The title is
// truncated first so the badge always stays visible.
func WithBadge(title, badge string, width int) string {
	if badge == "" {
		return Truncate(title, width)
	}
	bw := ansi.StringWidth(badge)
	title = Truncate(title, width-bw-1)
	gap := max(width-ansi.StringWidth(title)-bw, 1)
	return title + strings.Repeat(" ", gap) + badge
}
