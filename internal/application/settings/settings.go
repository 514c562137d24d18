// Package settings defines application-level configuration data.
package settings

// Source kinds for SourcesConfig.
const (
	SourceMock = "mock"
	SourceAPI  = "api"
)

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up           string `yaml:"up" kong:"help='Up key',default='k,up'"`
	Down         string `yaml:"down" kong:"help='Down key',default='j,down'"`
	Left         string `yaml:"left" kong:"help='Previous column key',default='h,left'"`
	Right        string `yaml:"right" kong:"help='Next column key',default='l,right'"`
	Top          string `yaml:"top" kong:"help='Top key',default='g,home'"`
	Bottom       string `yaml:"bottom" kong:"help='Bottom key',default='G,end'"`
	NextScreen   string `yaml:"next_screen" kong:"help='Next screen key',default='tab'"`
	PrevScreen   string `yaml:"prev_screen" kong:"help='Previous screen key',default='shift+tab'"`
	Search       string `yaml:"search" kong:"help='Search key',default='/'"`
	CycleFilter  string `yaml:"cycle_filter" kong:"help='Cycle focused filter value key',default='f'"`
	NextFilter   string `yaml:"next_filter" kong:"help='Focus next filter key',default='F'"`
	ClearFilters string `yaml:"clear_filters" kong:"help='Clear search and filters key',default='c'"`
	Sort         string `yaml:"sort" kong:"help='Cycle sort on active column key',default='s'"`
	HideColumn   string `yaml:"hide_column" kong:"help='Hide active column key',default='x'"`
	ShowColumns  string `yaml:"show_columns" kong:"help='Show all columns key',default='X'"`
	Refresh      string `yaml:"refresh" kong:"help='Refresh key',default='r'"`
	Create       string `yaml:"create" kong:"help='New row key',default='n'"`
	Actions      string `yaml:"actions" kong:"help='Row actions key',default='enter'"`
	Back         string `yaml:"back" kong:"help='Back key',default='esc'"`
	Quit         string `yaml:"quit" kong:"help='Quit key',default='q'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Accent string `yaml:"accent" kong:"help='Accent color',default='205'"`
	Muted  string `yaml:"muted" kong:"help='Muted text color',default='240'"`
	Border string `yaml:"border" kong:"help='Border color',default='63'"`
	Danger string `yaml:"danger" kong:"help='Error color',default='196'"`
}

// APIConfig defines how to reach the backend.
type APIConfig struct {
	BaseURL        string `yaml:"base_url" kong:"help='Backend API base URL',default='http://localhost:8080/api'"`
	Token          string `yaml:"token" kong:"help='Bearer token for the backend API'"`
	TimeoutSeconds int    `yaml:"timeout_seconds" kong:"help='Request timeout in seconds',default='10'"`
}

// SourcesConfig selects where each screen reads its rows from.
type SourcesConfig struct {
	Products       string `yaml:"products" kong:"help='Products source (mock/api)',default='mock',enum='mock,api'"`
	PurchaseOrders string `yaml:"purchase_orders" kong:"help='Purchase orders source (mock/api)',default='mock',enum='mock,api'"`
	Stores         string `yaml:"stores" kong:"help='Stores source (mock/api)',default='api',enum='mock,api'"`
}

// LogConfig defines the rotating log file.
type LogConfig struct {
	File       string `yaml:"file" kong:"help='Log file path'"`
	Level      string `yaml:"level" kong:"help='Log level (debug/info/warn/error)',default='info'"`
	MaxSizeMB  int    `yaml:"max_size_mb" kong:"help='Rotate after this many megabytes',default='10'"`
	MaxBackups int    `yaml:"max_backups" kong:"help='Rotated files to keep',default='3'"`
}

// Settings represents the application configuration.
type Settings struct {
	API       APIConfig     `yaml:"api" kong:"embed,prefix='api.'"`
	Sources   SourcesConfig `yaml:"sources" kong:"embed,prefix='sources.'"`
	KeyMap    KeyMapConfig  `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme     ThemeConfig   `yaml:"theme" kong:"embed,prefix='theme.'"`
	Log       LogConfig     `yaml:"log" kong:"embed,prefix='log.'"`
	PrefsFile string        `yaml:"prefs_file" kong:"help='Table preferences database path'"`
}

// UsesAPI reports whether any screen reads from the backend.
func (s Settings) UsesAPI() bool {
	return s.Sources.Products == SourceAPI || s.Sources.PurchaseOrders == SourceAPI || s.Sources.Stores == SourceAPI
}
