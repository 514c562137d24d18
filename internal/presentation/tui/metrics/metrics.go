// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	HeaderLines             = 3
	SidebarTitleLines       = 2
	SidebarNoteLines        = 1
	SidebarMinWidth         = 18
	SidebarMaxWidth         = 28
	SidebarRightBorderWidth = 1
	MainLeftPadding         = 1
	SearchPromptWidth       = 12
	ModalMinWidth           = 30
	StatCardWidth           = 22

	ItemRightPadding  = 1
	ItemSafetyPadding = 1

	// The console asks for a bigger terminal below this size.
	MinWidth  = 60
	MinHeight = 12
)
