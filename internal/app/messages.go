// Package app runs the terminal simulator of the display: it feeds ticks,
// pointer input and background results to the controller and shows the
// frames it renders.
package app

import (
	"time"

	"github.com/llehouerou/mawaqit-display/internal/controller"
	"github.com/llehouerou/mawaqit-display/internal/prayer"
)

// TickMsg drives one controller iteration.
type TickMsg time.Time

// ScheduleMsg delivers a freshly fetched schedule.
type ScheduleMsg struct {
	Schedule  prayer.Schedule
	FetchedAt time.Time
}

// FetchFailedMsg reports a failed schedule fetch. The previous schedule
// stays in place.
type FetchFailedMsg struct {
	Err error
}

// CallMsg runs Fn on the controller's goroutine and sends its result on
// Reply, which must be buffered.
type CallMsg struct {
	Fn    func(*controller.Controller) any
	Reply chan<- any
}

// StderrMsg is sent when stderr output is captured from C libraries (ALSA).
type StderrMsg struct {
	Line string
}
