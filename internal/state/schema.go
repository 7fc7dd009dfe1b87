package state

import (
	"database/sql"
)

const currentSchemaVersion = 2

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS schedule_cache (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			fajr TEXT NOT NULL,
			shuruk TEXT NOT NULL,
			dhuhr TEXT NOT NULL,
			asr TEXT NOT NULL,
			maghrib TEXT NOT NULL,
			isha TEXT NOT NULL,
			label TEXT,
			date TEXT,
			hijri TEXT,
			fetched_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS mosque (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			uuid TEXT NOT NULL,
			name TEXT NOT NULL
		);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	if err != nil {
		return err
	}

	// Migration: settings imported from the device firmware used adhan_* keys
	_, _ = db.Exec(`
		UPDATE OR IGNORE settings SET key = 'alert_' || substr(key, 7)
		WHERE key LIKE 'adhan\_%' ESCAPE '\'
	`)

	return nil
}
