// Package config handles configuration loading and saving.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/tesso57/shelfdesk/internal/application/settings"
	"gopkg.in/yaml.v3"
)

const appName = "shelfdesk"

// Store manages persisted application settings.
type Store struct {
	Settings   settings.Settings
	configPath string
}

// Load loads the configuration from the specified path or default location.
func Load(customPath ...string) (*Store, error) {
	var configPath string
	if len(customPath) > 0 && customPath[0] != "" {
		configPath = customPath[0]
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configPath = filepath.Join(home, ".config", appName, "config.yaml")
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg := settings.Settings{}
	store := &Store{configPath: configPath}

	var options []kong.Option
	if _, err := os.Stat(configPath); err == nil {
		options = append(options, kong.Configuration(yamlKongLoader, configPath))
	}

	parser, err := kong.New(&cfg, options...)
	if err != nil {
		return nil, err
	}
	if _, err := parser.Parse([]string{}); err != nil {
		return nil, err
	}

	store.Settings = cfg
	store.Settings.API.BaseURL = normalizeBaseURL(store.Settings.API.BaseURL)
	if store.Settings.PrefsFile == "" {
		store.Settings.PrefsFile = filepath.Join(defaultDataHome(), appName, "prefs.db")
	}
	if store.Settings.Log.File == "" {
		store.Settings.Log.File = filepath.Join(defaultDataHome(), appName, appName+".log")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := store.Save(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	return store, nil
}

// Path returns the file the settings are persisted to.
func (s *Store) Path() string { return s.configPath }

// SetSource switches one screen between the mock dataset and the backend.
func (s *Store) SetSource(screen, kind string) error {
	if kind != settings.SourceMock && kind != settings.SourceAPI {
		return fmt.Errorf("invalid source %q (want %s or %s)", kind, settings.SourceMock, settings.SourceAPI)
	}
	switch screen {
	case "products":
		s.Settings.Sources.Products = kind
	case "purchase-orders", "purchase_orders":
		s.Settings.Sources.PurchaseOrders = kind
	case "stores":
		s.Settings.Sources.Stores = kind
	default:
		return fmt.Errorf("unknown screen %q", screen)
	}
	return s.Save()
}

// Save writes the current settings to the config file.
func (s *Store) Save() error {
	f, err := os.Create(s.configPath)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return yaml.NewEncoder(f).Encode(s.Settings)
}

func normalizeBaseURL(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), "/")
}

func defaultDataHome() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome != "" {
		return dataHome
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

func yamlKongLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		names := []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")}
		for _, name := range names {
			if v, ok := values[name]; ok {
				return v, nil
			}
			if v, ok := lookupNested(values, strings.Split(name, ".")); ok {
				return v, nil
			}
		}
		return nil, nil
	}
	return f, nil
}

func lookupNested(values map[string]any, parts []string) (any, bool) {
	if len(parts) < 2 {
		return nil, false
	}
	curr := values
	for _, part := range parts[:len(parts)-1] {
		next, ok := curr[part].(map[string]any)
		if !ok {
			return nil, false
		}
		curr = next
	}
	v, ok := curr[parts[len(parts)-1]]
	return v, ok
}
