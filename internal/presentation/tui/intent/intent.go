// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/shelfdesk/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	ToggleHelp
	NextScreen
	PrevScreen
	JumpScreen
	PrevColumn
	NextColumn
	Search
	CycleFilter
	NextFilter
	ClearFilters
	Sort
	HideColumn
	ShowColumns
	Refresh
	Create
	Actions
	Back
)

// Intent represents a parsed user intent.
type Intent struct {
	Type Type
	// Index is the zero-based screen for JumpScreen.
	Index int
}

// FromKeyMsg maps a key message to an intent.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.NextScreen):
		return Intent{Type: NextScreen}
	case key.Matches(msg, keys.PrevScreen):
		return Intent{Type: PrevScreen}
	case key.Matches(msg, keys.Left):
		return Intent{Type: PrevColumn}
	case key.Matches(msg, keys.Right):
		return Intent{Type: NextColumn}
	case key.Matches(msg, keys.Search):
		return Intent{Type: Search}
	case key.Matches(msg, keys.CycleFilter):
		return Intent{Type: CycleFilter}
	case key.Matches(msg, keys.NextFilter):
		return Intent{Type: NextFilter}
	case key.Matches(msg, keys.ClearFilters):
		return Intent{Type: ClearFilters}
	case key.Matches(msg, keys.Sort):
		return Intent{Type: Sort}
	case key.Matches(msg, keys.HideColumn):
		return Intent{Type: HideColumn}
	case key.Matches(msg, keys.ShowColumns):
		return Intent{Type: ShowColumns}
	case key.Matches(msg, keys.Refresh):
		return Intent{Type: Refresh}
	case key.Matches(msg, keys.Create):
		return Intent{Type: Create}
	case key.Matches(msg, keys.Actions):
		return Intent{Type: Actions}
	case key.Matches(msg, keys.Back):
		return Intent{Type: Back}
	}

	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return Intent{Type: JumpScreen, Index: int(s[0] - '1')}
	}
	return Intent{Type: None}
}
