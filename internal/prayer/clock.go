package prayer

import "time"

// Clock supplies the current wall-clock time of day. ok is false when the
// clock is not set.
type Clock interface {
	Now() (TimeOfDay, bool)
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() (TimeOfDay, bool)

// Now implements Clock.
func (f ClockFunc) Now() (TimeOfDay, bool) { return f() }

// minValidYear is the earliest year treated as a synchronized clock. Boards
// without an RTC boot at the epoch until NTP catches up.
const minValidYear = 2020

// SystemClock reads the host clock in Location (local time when nil).
type SystemClock struct {
	Location *time.Location
	now      func() time.Time
}

// NewSystemClock returns a clock for the named IANA zone; an empty name
// selects the host's local zone.
func NewSystemClock(zone string) (*SystemClock, error) {
	c := &SystemClock{now: time.Now}
	if zone == "" {
		return c, nil
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, err
	}
	c.Location = loc
	return c, nil
}

// Time returns the current instant in the clock's zone.
func (c *SystemClock) Time() time.Time {
	now := time.Now
	if c.now != nil {
		now = c.now
	}
	t := now()
	if c.Location != nil {
		t = t.In(c.Location)
	}
	return t
}

// Now implements Clock.
func (c *SystemClock) Now() (TimeOfDay, bool) {
	t := c.Time()
	if t.Year() < minValidYear {
		return TimeOfDay{}, false
	}
	return Of(t), true
}

// Engine pairs the last received schedule with a clock. It holds no other
// state.
type Engine struct {
	clock    Clock
	schedule Schedule
}

// Reading is one clock read together with the schedule state derived from it.
type Reading struct {
	Now     TimeOfDay
	ClockOK bool
	State   State
}

// NewEngine creates an engine with an invalid schedule.
func NewEngine(clock Clock) *Engine {
	return &Engine{clock: clock}
}

// Update replaces the schedule wholesale.
func (e *Engine) Update(s Schedule) { e.schedule = s }

// Schedule returns the last received schedule.
func (e *Engine) Schedule() Schedule { return e.schedule }

// Read samples the clock once and evaluates the schedule. An unavailable
// clock yields the unavailable state rather than a stale or zero time.
func (e *Engine) Read() Reading {
	now, ok := e.clock.Now()
	if !ok {
		return Reading{State: Unavailable()}
	}
	return Reading{Now: now, ClockOK: true, State: StateAt(e.schedule, now)}
}

// Crossed reports a prayer boundary between two clock readings.
func (e *Engine) Crossed(prev, now TimeOfDay) (Index, bool) {
	return Crossed(e.schedule, prev, now)
}
