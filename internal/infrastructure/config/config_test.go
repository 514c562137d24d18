package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/shelfdesk/internal/application/settings"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	store, err := Load(configPath)
	require.NoError(t, err)

	s := store.Settings
	assert.Equal(t, "http://localhost:8080/api", s.API.BaseURL)
	assert.Equal(t, 10, s.API.TimeoutSeconds)
	assert.Equal(t, settings.SourceMock, s.Sources.Products)
	assert.Equal(t, settings.SourceMock, s.Sources.PurchaseOrders)
	assert.Equal(t, settings.SourceAPI, s.Sources.Stores)
	assert.Equal(t, "/", s.KeyMap.Search)
	assert.Equal(t, "s", s.KeyMap.Sort)
	assert.Equal(t, "tab", s.KeyMap.NextScreen)
	assert.Equal(t, "205", s.Theme.Accent)
	assert.Equal(t, "info", s.Log.Level)
	assert.Equal(t, "prefs.db", filepath.Base(s.PrefsFile))
	assert.Equal(t, "shelfdesk.log", filepath.Base(s.Log.File))
	assert.True(t, s.UsesAPI())

	_, err = os.Stat(configPath)
	assert.NoError(t, err, "default config should be written")
}

func TestLoad_NestedYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `api:
  base_url: " https://inventory.example.com/api/ "
  token: secret
  timeout_seconds: 3
sources:
  products: api
  stores: mock
keymap:
  search: "ctrl+f"
prefs_file: /tmp/shelfdesk-prefs.db
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0600))

	store, err := Load(configPath)
	require.NoError(t, err)

	s := store.Settings
	assert.Equal(t, "https://inventory.example.com/api", s.API.BaseURL)
	assert.Equal(t, "secret", s.API.Token)
	assert.Equal(t, 3, s.API.TimeoutSeconds)
	assert.Equal(t, settings.SourceAPI, s.Sources.Products)
	assert.Equal(t, settings.SourceMock, s.Sources.Stores)
	assert.Equal(t, "ctrl+f", s.KeyMap.Search)
	assert.Equal(t, "j,down", s.KeyMap.Down)
	assert.Equal(t, "/tmp/shelfdesk-prefs.db", s.PrefsFile)
}

func TestLoad_Corrupt(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("invalid_yaml: ["), 0600))

	_, err := Load(configPath)
	assert.Error(t, err)
}

func TestLoad_InvalidSourceKind(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("sources:\n  stores: ftp\n"), 0600))

	_, err := Load(configPath)
	assert.Error(t, err)
}

func TestStore_SetSourcePersists(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	store, err := Load(configPath)
	require.NoError(t, err)

	require.NoError(t, store.SetSource("purchase-orders", settings.SourceAPI))
	assert.Error(t, store.SetSource("orders", settings.SourceAPI))
	assert.Error(t, store.SetSource("stores", "ftp"))

	reloaded, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, settings.SourceAPI, reloaded.Settings.Sources.PurchaseOrders)
	assert.Equal(t, configPath, reloaded.Path())
}
