// internal/state/mock.go
package state

import (
	"sync"
	"time"

	"github.com/llehouerou/mawaqit-display/internal/prayer"
	"github.com/llehouerou/mawaqit-display/internal/settings"
)

// Mock is a test double for Manager.
type Mock struct {
	mu       sync.Mutex
	settings settings.Model
	saved    []settings.Field
	schedule *CachedSchedule
	mosque   *Mosque
	closed   bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{settings: settings.Defaults()}
}

func (m *Mock) LoadSettings() (settings.Model, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings, nil
}

func (m *Mock) SaveSettings(model settings.Model, changed settings.Field) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = model
	m.saved = append(m.saved, changed)
}

func (m *Mock) GetSchedule() (*CachedSchedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.schedule, nil
}

func (m *Mock) SaveSchedule(s prayer.Schedule, fetchedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.schedule = &CachedSchedule{Schedule: s, FetchedAt: fetchedAt}
	return nil
}

func (m *Mock) GetMosque() (*Mosque, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mosque, nil
}

func (m *Mock) SaveMosque(mosque Mosque) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mosque = &mosque
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SavedFields() []settings.Field {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]settings.Field(nil), m.saved...)
}

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
