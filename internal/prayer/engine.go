package prayer

import (
	"fmt"
	"time"
)

// Placeholder is shown wherever a time cannot be computed.
const Placeholder = "--:--"

// maxCrossingGap bounds how far the clock may advance between two readings
// for a boundary crossing to count. Larger jumps are clock corrections.
const maxCrossingGap = 2 * time.Minute

// TimeOfDay is a wall-clock reading with second resolution.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// Of extracts the time of day from t.
func Of(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// Minutes returns minutes since midnight.
func (t TimeOfDay) Minutes() int { return t.Hour*60 + t.Minute }

// Seconds returns seconds since midnight.
func (t TimeOfDay) Seconds() int { return t.Minutes()*60 + t.Second }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Mark is the result of a schedule query. DayOffset is -1 when the mark
// belongs to the previous day (Isha before Fajr), +1 for the following day
// (Fajr after Isha) and 0 otherwise.
type Mark struct {
	Index     Index
	DayOffset int
}

// Unavailable reports whether the query had no answer.
func (m Mark) Unavailable() bool { return m.Index == None }

var noMark = Mark{Index: None}

// Current returns the prayer in effect at nowMinutes. Sunrise is skipped.
// Before the first prayer of the day it returns the previous day's Isha.
func Current(s Schedule, nowMinutes int) Mark {
	return current(s, nowMinutes, false)
}

// CurrentRow is the list-display variant of Current: Sunrise takes its
// chronological place, so the row between Sunrise and Dhuhr is Sunrise.
func CurrentRow(s Schedule, nowMinutes int) Mark {
	return current(s, nowMinutes, true)
}

func current(s Schedule, now int, withSunrise bool) Mark {
	if !s.Valid {
		return noMark
	}
	last := None
	for i := Count - 1; i >= 0; i-- {
		idx := Index(i)
		if idx == Sunrise && !withSunrise {
			continue
		}
		t, ok := s.Minutes(idx)
		if !ok {
			continue
		}
		if last == None {
			last = idx
		}
		if t <= now {
			return Mark{Index: idx}
		}
	}
	if last == None {
		return noMark
	}
	return Mark{Index: last, DayOffset: -1}
}

// Next returns the first prayer strictly after nowMinutes. After the last
// prayer it returns the following day's Fajr.
func Next(s Schedule, nowMinutes int) Mark {
	if !s.Valid {
		return noMark
	}
	first := None
	for i := range Count {
		idx := Index(i)
		if !idx.IsPrayer() {
			continue
		}
		t, ok := s.Minutes(idx)
		if !ok {
			continue
		}
		if first == None {
			first = idx
		}
		if t > nowMinutes {
			return Mark{Index: idx}
		}
	}
	if first == None {
		return noMark
	}
	return Mark{Index: first, DayOffset: 1}
}

// Remaining returns the time until the next prayer. The live seconds field
// of now is subtracted so a countdown ticks every second.
func Remaining(s Schedule, now TimeOfDay) time.Duration {
	next := Next(s, now.Minutes())
	if next.Unavailable() {
		return 0
	}
	t, _ := s.Minutes(next.Index)
	diff := ((t-now.Minutes())%minutesPerDay + minutesPerDay) % minutesPerDay
	if diff == 0 {
		diff = minutesPerDay
	}
	secs := diff*60 - now.Second
	if secs < 0 {
		secs = 0
	}
	return time.Duration(secs) * time.Second
}

// Crossed reports the prayer whose start lies in (prev, now]. Midnight
// wraparound is handled; when several prayers qualify the latest wins.
// Sunrise is never reported, and clock jumps beyond maxCrossingGap are
// ignored so a resync cannot fire a stale alert.
func Crossed(s Schedule, prev, now TimeOfDay) (Index, bool) {
	if !s.Valid {
		return None, false
	}
	const day = minutesPerDay * 60
	span := ((now.Seconds()-prev.Seconds())%day + day) % day
	if span == 0 || time.Duration(span)*time.Second > maxCrossingGap {
		return None, false
	}
	best, bestDist := None, 0
	for i := range Count {
		idx := Index(i)
		if !idx.IsPrayer() {
			continue
		}
		t, ok := s.Minutes(idx)
		if !ok {
			continue
		}
		d := ((t*60-prev.Seconds())%day + day) % day
		if d > 0 && d <= span && d > bestDist {
			best, bestDist = idx, d
		}
	}
	return best, best != None
}

// State is the derived schedule state for one instant. It is recomputed
// for every query and never stored.
type State struct {
	Available bool
	Current   Mark
	Row       Mark
	Next      Mark
	Remaining time.Duration
}

// Unavailable is the sentinel state used when no answer can be computed.
func Unavailable() State {
	return State{Current: noMark, Row: noMark, Next: noMark}
}

// StateAt evaluates every query against s at now.
func StateAt(s Schedule, now TimeOfDay) State {
	if !s.Usable() {
		return Unavailable()
	}
	m := now.Minutes()
	return State{
		Available: true,
		Current:   Current(s, m),
		Row:       CurrentRow(s, m),
		Next:      Next(s, m),
		Remaining: Remaining(s, now),
	}
}

// Countdown formats the remaining time, or Placeholder when unavailable.
func (st State) Countdown() string {
	if !st.Available {
		return Placeholder
	}
	return FormatCountdown(st.Remaining)
}

// FormatCountdown renders d as H:MM:SS with unpadded hours.
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", secs/3600, secs/60%60, secs%60)
}
