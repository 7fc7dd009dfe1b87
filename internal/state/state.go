package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/mawaqit-display/internal/db"
	"github.com/llehouerou/mawaqit-display/internal/errmsg"
	"github.com/llehouerou/mawaqit-display/internal/settings"
)

const (
	appName      = "mawaqit"
	dbFileName   = "mawaqit.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *settings.Model
	closed    bool
	saves     sync.WaitGroup // armed or running debounce callbacks
	debounce  time.Duration
	write     func(settings.Model)
}

func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	return OpenPath(dbPath)
}

// OpenPath opens the database at path (":memory:" for tests).
func OpenPath(path string) (*Manager, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// SQLite allows one writer; the debounced saver and the UI share it.
	conn.SetMaxOpenConns(1)

	if err := initSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	m := &Manager{db: conn, debounce: saveDebounce}
	m.write = m.writeSettings
	return m, nil
}

// Close flushes pending settings, waits for a save already in progress and
// closes the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	m.closed = true
	m.stopTimer()
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending != nil {
		m.write(*pending)
	}
	m.saves.Wait()

	return m.db.Close()
}

// stopTimer cancels an armed debounce callback. Must hold saveMu.
func (m *Manager) stopTimer() {
	if m.saveTimer != nil && m.saveTimer.Stop() {
		m.saves.Done()
	}
	m.saveTimer = nil
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

// LoadSettings returns the stored settings, defaults for missing keys.
func (m *Manager) LoadSettings() (settings.Model, error) {
	entries, err := getSettings(m.db)
	if err != nil {
		return settings.Defaults(), err
	}
	return settings.FromEntries(entries), nil
}

// SaveSettings schedules a write of the whole model. Bursts of changes are
// coalesced; the call never blocks on the database.
func (m *Manager) SaveSettings(model settings.Model, changed settings.Field) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()
	if m.closed {
		return
	}

	m.pending = &model
	log.Debug().Str("field", changed.Key()).Msg("settings save scheduled")

	m.stopTimer()
	m.saves.Add(1)
	m.saveTimer = time.AfterFunc(m.debounce, func() {
		defer m.saves.Done()
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			m.write(*pending)
		}
	})
}

// writeSettings persists model. Failures are logged and not retried; the
// in-memory model stays authoritative.
func (m *Manager) writeSettings(model settings.Model) {
	if err := saveSettings(m.db, model); err != nil {
		log.Error().Err(err).Msg(errmsg.Format(errmsg.OpSettingsSave, err))
	}
}

func getSettings(conn *sql.DB) (map[string]int, error) {
	rows, err := conn.Query(`SELECT key, value FROM settings`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make(map[string]int)
	for rows.Next() {
		var key string
		var value int
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		entries[key] = value
	}
	return entries, rows.Err()
}

func saveSettings(conn *sql.DB, model settings.Model) error {
	return db.WithTx(conn, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO settings (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for key, value := range model.Entries() {
			if _, err := stmt.Exec(key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
