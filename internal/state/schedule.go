package state

import (
	"database/sql"
	"errors"
	"time"

	"github.com/llehouerou/mawaqit-display/internal/db"
	"github.com/llehouerou/mawaqit-display/internal/prayer"
)

// CachedSchedule is the last schedule fetched successfully.
type CachedSchedule struct {
	Schedule  prayer.Schedule
	FetchedAt time.Time
}

// GetSchedule returns the cached schedule, or nil if none was stored.
func (m *Manager) GetSchedule() (*CachedSchedule, error) {
	return getSchedule(m.db)
}

// SaveSchedule replaces the cached schedule.
func (m *Manager) SaveSchedule(s prayer.Schedule, fetchedAt time.Time) error {
	return saveSchedule(m.db, s, fetchedAt)
}

func getSchedule(conn *sql.DB) (*CachedSchedule, error) {
	var times [prayer.Count]string
	var label, date, hijri sql.NullString
	var fetchedAt sql.NullInt64

	row := conn.QueryRow(`
		SELECT fajr, shuruk, dhuhr, asr, maghrib, isha, label, date, hijri, fetched_at
		FROM schedule_cache WHERE id = 1
	`)
	err := row.Scan(&times[0], &times[1], &times[2], &times[3], &times[4], &times[5],
		&label, &date, &hijri, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	s := prayer.NewSchedule(times, db.NullStringValue(label))
	s.Date = db.NullStringValue(date)
	s.Hijri = db.NullStringValue(hijri)

	return &CachedSchedule{
		Schedule:  s,
		FetchedAt: time.Unix(db.NullInt64Value(fetchedAt), 0),
	}, nil
}

func saveSchedule(conn *sql.DB, s prayer.Schedule, fetchedAt time.Time) error {
	t := s.Times
	_, err := conn.Exec(`
		INSERT INTO schedule_cache (id, fajr, shuruk, dhuhr, asr, maghrib, isha, label, date, hijri, fetched_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			fajr = excluded.fajr,
			shuruk = excluded.shuruk,
			dhuhr = excluded.dhuhr,
			asr = excluded.asr,
			maghrib = excluded.maghrib,
			isha = excluded.isha,
			label = excluded.label,
			date = excluded.date,
			hijri = excluded.hijri,
			fetched_at = excluded.fetched_at
	`, t[0], t[1], t[2], t[3], t[4], t[5], s.Label, s.Date, s.Hijri, fetchedAt.Unix())
	return err
}
