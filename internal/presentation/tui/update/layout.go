package update

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/metrics"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/state"
)

type layoutMetrics struct {
	sidebarWidth      int
	mainWidth         int
	sidebarListHeight int
	tableHeight       int
}

// UpdateLayout sizes every widget to the terminal.
func UpdateLayout(s *state.ModelState) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}

	layout := buildLayoutMetrics(s)
	s.ScreenList.SetSize(layout.sidebarWidth, layout.sidebarListHeight)
	s.Table.SetWidth(layout.mainWidth - metrics.MainLeftPadding)
	tableHeight := layout.tableHeight
	if s.Session == state.SearchView {
		tableHeight = clampMin(tableHeight-1, 3)
	}
	s.Table.SetHeight(tableHeight)
	s.Search.Width = clampMin(layout.mainWidth-metrics.SearchPromptWidth, 10)
	s.ActionList.SetSize(clampMin(s.Width/3, metrics.ModalMinWidth), clampMin(s.Height/2, 4))
	SyncTable(s)
}

func buildLayoutMetrics(s *state.ModelState) layoutMetrics {
	footerHeight := footerHeight(s)
	availableHeight := clampMin(s.Height-footerHeight, 1)

	sidebarWidth := min(max(s.Width/5, metrics.SidebarMinWidth), metrics.SidebarMaxWidth)
	mainWidth := clampMin(s.Width-sidebarWidth-metrics.SidebarRightBorderWidth, 1)

	return layoutMetrics{
		sidebarWidth:      sidebarWidth,
		mainWidth:         mainWidth,
		sidebarListHeight: clampMin(availableHeight-metrics.SidebarTitleLines-metrics.SidebarNoteLines, 1),
		tableHeight:       clampMin(availableHeight-metrics.HeaderLines, 3),
	}
}

// MainSize returns the width and height of the main area.
func MainSize(s *state.ModelState) (int, int) {
	layout := buildLayoutMetrics(s)
	return layout.mainWidth, layout.tableHeight + metrics.HeaderLines
}

// SidebarSize returns the width and height of the sidebar.
func SidebarSize(s *state.ModelState) (int, int) {
	layout := buildLayoutMetrics(s)
	return layout.sidebarWidth, layout.sidebarListHeight + metrics.SidebarTitleLines + metrics.SidebarNoteLines
}

// FooterContent returns the status line and key help.
func FooterContent(s *state.ModelState) string {
	s.Help.Width = s.Width
	return state.FooterText(s.Session, s.StatusMessage, state.FooterHelpText(s.Help, s.Keys))
}

func footerHeight(s *state.ModelState) int {
	return lipgloss.Height(FooterContent(s))
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}
