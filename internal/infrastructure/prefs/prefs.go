// Package prefs persists per-screen table view preferences.
package prefs

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/tesso57/shelfdesk/internal/domain/table"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// TablePrefs is how one screen's table was last arranged. Rows, search text
// and filter selections are never stored.
type TablePrefs struct {
	Sort   table.Sort
	Hidden []string
}

// Manager reads and writes preferences in a SQLite file. The database is
// opened on first use.
type Manager struct {
	mu   sync.Mutex
	path string
	db   *sql.DB
	now  func() time.Time
}

// NewManager creates a manager for the database at path.
func NewManager(path string) *Manager {
	return &Manager{path: path, now: time.Now}
}

// Path returns the database file path.
func (m *Manager) Path() string { return m.path }

// Load returns the preferences for screen, or zero prefs when none exist.
func (m *Manager) Load(screen string) (TablePrefs, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	db, err := m.open()
	if err != nil {
		return TablePrefs{}, err
	}

	var (
		p      TablePrefs
		desc   int
		hidden string
	)
	err = db.QueryRow(
		`SELECT sort_key, sort_desc, hidden_columns FROM table_prefs WHERE screen = ?`, screen,
	).Scan(&p.Sort.Key, &desc, &hidden)
	if errors.Is(err, sql.ErrNoRows) {
		return TablePrefs{}, nil
	}
	if err != nil {
		return TablePrefs{}, fmt.Errorf("load prefs for %s: %w", screen, err)
	}
	p.Sort.Desc = desc != 0 && p.Sort.Key != ""
	p.Hidden = splitColumns(hidden)
	return p, nil
}

// Save replaces the preferences for screen.
func (m *Manager) Save(screen string, p TablePrefs) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	db, err := m.open()
	if err != nil {
		return err
	}

	desc := 0
	if p.Sort.Desc && p.Sort.Key != "" {
		desc = 1
	}
	_, err = db.Exec(`
		INSERT INTO table_prefs (screen, sort_key, sort_desc, hidden_columns, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(screen) DO UPDATE SET
			sort_key = excluded.sort_key,
			sort_desc = excluded.sort_desc,
			hidden_columns = excluded.hidden_columns,
			updated_at = excluded.updated_at`,
		screen, p.Sort.Key, desc, joinColumns(p.Hidden), m.now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save prefs for %s: %w", screen, err)
	}
	return nil
}

// Close releases the database.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.db == nil {
		return nil
	}
	err := m.db.Close()
	m.db = nil
	return err
}

// open returns the database, creating and migrating it if needed. Callers
// hold mu.
func (m *Manager) open() (*sql.DB, error) {
	if m.db != nil {
		return m.db, nil
	}
	if strings.TrimSpace(m.path) == "" {
		return nil, errors.New("prefs database path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0750); err != nil {
		return nil, fmt.Errorf("create prefs directory: %w", err)
	}
	db, err := sql.Open("sqlite", "file:"+m.path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open prefs database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate prefs database: %w", err)
	}
	m.db = db
	return db, nil
}

func runMigrations(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return err
	}
	// m.Close would also close db, so only the source is released.
	mg, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return err
	}
	if err := mg.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func splitColumns(raw string) []string {
	var out []string
	for key := range strings.SplitSeq(raw, ",") {
		if key = strings.TrimSpace(key); key != "" {
			out = append(out, key)
		}
	}
	return out
}

func joinColumns(keys []string) string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" && !strings.Contains(k, ",") {
			out = append(out, k)
		}
	}
	return strings.Join(out, ",")
}
