package controller

import (
	"time"

	"github.com/llehouerou/mawaqit-display/internal/layout"
	"github.com/llehouerou/mawaqit-display/internal/prayer"
	"github.com/llehouerou/mawaqit-display/internal/settings"
)

// Frame is everything a renderer needs for one screen.
type Frame struct {
	Mode    Mode
	Loading bool
	At      time.Time

	Schedule prayer.Schedule
	State    prayer.State
	Now      prayer.TimeOfDay
	ClockOK  bool

	Settings settings.Model
	// Theme is the effective theme, Dark while auto night is active.
	Theme settings.Theme
	Night bool

	AlertPrayer prayer.Index
	Layout      layout.Layout
}

// Snapshot is a read-only copy of the controller state.
type Snapshot struct {
	Mode        Mode
	Loaded      bool
	Schedule    prayer.Schedule
	State       prayer.State
	Now         prayer.TimeOfDay
	ClockOK     bool
	Settings    settings.Model
	AlertPrayer prayer.Index
}

// nightActive reports whether auto night applies: from Isha until Fajr.
func nightActive(m settings.Model, st prayer.State) bool {
	return m.AutoNight && st.Available && st.Current.Index == prayer.Isha
}
