// Package prayer holds the daily prayer schedule and the pure queries that
// turn it into "current prayer, next prayer, time remaining".
package prayer

// Index identifies one of the six daily time points.
type Index int

const (
	Fajr Index = iota
	Sunrise
	Dhuhr
	Asr
	Maghrib
	Isha
)

// None is the sentinel returned when no index can be determined.
const None Index = -1

// Count is the number of time points in a Schedule.
const Count = 6

const minutesPerDay = 24 * 60

var indexNames = [Count]string{"Fajr", "Sunrise", "Dhuhr", "Asr", "Maghrib", "Isha"}

// String returns the canonical (untranslated) name.
func (i Index) String() string {
	if i < 0 || int(i) >= Count {
		return "None"
	}
	return indexNames[i]
}

// Valid reports whether i addresses a slot of a Schedule.
func (i Index) Valid() bool {
	return i >= 0 && int(i) < Count
}

// IsPrayer reports whether i is one of the five prayers. Sunrise is a
// display marker only.
func (i Index) IsPrayer() bool {
	return i.Valid() && i != Sunrise
}

// Schedule is one day of prayer times. The zero value is an invalid schedule.
type Schedule struct {
	Times [Count]string
	Label string
	Date  string
	Hijri string
	Valid bool

	minutes [Count]int
}

// NewSchedule parses six HH:MM strings into a valid schedule. Slots that
// cannot be parsed stay unavailable without affecting the others.
func NewSchedule(times [Count]string, label string) Schedule {
	s := Schedule{Times: times, Label: label, Valid: true}
	for i, t := range times {
		if m, ok := ParseClock(t); ok {
			s.minutes[i] = m
		} else {
			s.minutes[i] = -1
		}
	}
	return s
}

// Minutes returns the slot's minute of day, or false when the slot is
// unavailable or the schedule is invalid.
func (s Schedule) Minutes(i Index) (int, bool) {
	if !s.Valid || !i.Valid() {
		return 0, false
	}
	m := s.minutes[i]
	return m, m >= 0
}

// Time returns the raw string for slot i, or Placeholder if it is unusable.
func (s Schedule) Time(i Index) string {
	if _, ok := s.Minutes(i); !ok {
		return Placeholder
	}
	return s.Times[i][:5]
}

// Usable reports whether at least one prayer slot can be evaluated.
func (s Schedule) Usable() bool {
	for i := range Count {
		if idx := Index(i); idx.IsPrayer() {
			if _, ok := s.Minutes(idx); ok {
				return true
			}
		}
	}
	return false
}

// ParseClock parses the leading HH:MM of s into minutes since midnight.
// Anything after the first five characters (seconds, suffixes) is ignored.
func ParseClock(s string) (int, bool) {
	if len(s) < 5 || s[2] != ':' {
		return 0, false
	}
	h, ok := twoDigits(s[0], s[1])
	if !ok || h > 23 {
		return 0, false
	}
	m, ok := twoDigits(s[3], s[4])
	if !ok || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}
