// internal/state/interface.go
package state

import (
	"time"

	"github.com/llehouerou/mawaqit-display/internal/prayer"
	"github.com/llehouerou/mawaqit-display/internal/settings"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	LoadSettings() (settings.Model, error)
	SaveSettings(m settings.Model, changed settings.Field)
	GetSchedule() (*CachedSchedule, error)
	SaveSchedule(s prayer.Schedule, fetchedAt time.Time) error
	GetMosque() (*Mosque, error)
	SaveMosque(m Mosque) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
