// Package listview holds the list delegates used by the console.
package listview

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/metrics"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/textutil"
)

// MenuItem is an entry that MenuDelegate can render.
type MenuItem interface {
	list.Item
	Title() string
	Badge() string
}

// MenuDelegate renders one-line entries with an optional right-aligned badge.
// The sidebar and the row action menu both use it.
type MenuDelegate struct {
	Normal   lipgloss.Style
	Selected lipgloss.Style
}

// NewMenuDelegate creates a delegate that highlights the selection in color.
func NewMenuDelegate(color lipgloss.Color) *MenuDelegate {
	styles := list.NewDefaultItemStyles()
	return &MenuDelegate{
		Normal: styles.NormalTitle.PaddingRight(metrics.ItemRightPadding),
		Selected: styles.SelectedTitle.PaddingRight(metrics.ItemRightPadding).
			Foreground(color).
			BorderForeground(color),
	}
}

func (d MenuDelegate) Height() int                           { return 1 }
func (d MenuDelegate) Spacing() int                          { return 0 }
func (d MenuDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render writes one entry, truncated to the list width.
func (d MenuDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(MenuItem)
	if !ok {
		return
	}
	style := d.Normal
	if index == m.Index() {
		style = d.Selected
	}
	width := m.Width() - style.GetHorizontalFrameSize() - metrics.ItemSafetyPadding
	_, _ = io.WriteString(w, style.Render(textutil.WithBadge(i.Title(), i.Badge(), width)))
}
