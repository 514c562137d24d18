// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/shelfdesk/internal/application/settings"
)

// Session represents the current interaction mode.
type Session int

const (
	BrowseView Session = iota
	SearchView
	ActionsView
	DetailView
	CreateView
	QuitView
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	UpPage       key.Binding
	DownPage     key.Binding
	Top          key.Binding
	Bottom       key.Binding
	NextScreen   key.Binding
	PrevScreen   key.Binding
	Search       key.Binding
	CycleFilter  key.Binding
	NextFilter   key.Binding
	ClearFilters key.Binding
	Sort         key.Binding
	HideColumn   key.Binding
	ShowColumns  key.Binding
	Refresh      key.Binding
	Create       key.Binding
	Actions      key.Binding
	Back         key.Binding
	Quit         key.Binding
	Help         key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit, k.NextScreen, k.Search, k.Actions}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Top, k.Bottom, k.UpPage, k.DownPage},
		{k.NextScreen, k.PrevScreen, k.Refresh, k.Create},
		{k.Search, k.CycleFilter, k.NextFilter, k.ClearFilters},
		{k.Sort, k.HideColumn, k.ShowColumns},
		{k.Actions, k.Back, k.Quit, k.Help},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Up:           binding(cfg.Up, "up"),
		Down:         binding(cfg.Down, "down"),
		Left:         binding(cfg.Left, "prev column"),
		Right:        binding(cfg.Right, "next column"),
		UpPage:       binding("pgup,ctrl+u", "pgup"),
		DownPage:     binding("pgdown,ctrl+d", "pgdn"),
		Top:          binding(cfg.Top, "top"),
		Bottom:       binding(cfg.Bottom, "bottom"),
		NextScreen:   binding(cfg.NextScreen, "next screen"),
		PrevScreen:   binding(cfg.PrevScreen, "prev screen"),
		Search:       binding(cfg.Search, "search"),
		CycleFilter:  binding(cfg.CycleFilter, "cycle filter"),
		NextFilter:   binding(cfg.NextFilter, "next filter"),
		ClearFilters: binding(cfg.ClearFilters, "clear"),
		Sort:         binding(cfg.Sort, "sort"),
		HideColumn:   binding(cfg.HideColumn, "hide column"),
		ShowColumns:  binding(cfg.ShowColumns, "show columns"),
		Refresh:      binding(cfg.Refresh, "refresh"),
		Create:       binding(cfg.Create, "new"),
		Actions:      binding(cfg.Actions, "actions"),
		Back:         binding(cfg.Back, "back"),
		Quit:         binding(cfg.Quit, "quit"),
		Help:         binding("?", "toggle help"),
	}
}

func binding(keys, help string) key.Binding {
	return key.NewBinding(
		key.WithKeys(splitKeys(keys)...),
		key.WithHelp(helpKeys(keys), help),
	)
}

func helpKeys(keys string) string {
	parts := splitKeys(keys)
	if len(parts) == 0 {
		return keys
	}
	return parts[0]
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		out = append(out, keyName)
		switch keyName {
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		}
	}
	return out
}
