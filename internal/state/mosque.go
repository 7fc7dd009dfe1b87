package state

import (
	"database/sql"
	"errors"
)

// Mosque is the mosque picked from the web API. It overrides the
// configured one.
type Mosque struct {
	UUID string
	Name string
}

// GetMosque returns the selected mosque, or nil if none was picked.
func (m *Manager) GetMosque() (*Mosque, error) {
	var mosque Mosque
	err := m.db.QueryRow(`SELECT uuid, name FROM mosque WHERE id = 1`).Scan(&mosque.UUID, &mosque.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mosque, nil
}

// SaveMosque stores the selected mosque.
func (m *Manager) SaveMosque(mosque Mosque) error {
	_, err := m.db.Exec(`
		INSERT INTO mosque (id, uuid, name) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET uuid = excluded.uuid, name = excluded.name
	`, mosque.UUID, mosque.Name)
	return err
}
