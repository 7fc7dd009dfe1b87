package prayer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSchedule() Schedule {
	return NewSchedule([Count]string{"05:00", "06:30", "12:30", "15:45", "18:20", "19:50"}, "Test Mosque")
}

func at(h, m, s int) TimeOfDay { return TimeOfDay{Hour: h, Minute: m, Second: s} }

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"05:00", 300, true},
		{"00:00", 0, true},
		{"23:59", 1439, true},
		{"12:30:15", 750, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"5:00", 0, false},
		{"", 0, false},
		{"ab:cd", 0, false},
		{"12-30", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseClock(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestStateAt_AfterIsha(t *testing.T) {
	st := StateAt(sampleSchedule(), at(20, 0, 0))

	require.True(t, st.Available)
	assert.Equal(t, Mark{Index: Isha}, st.Current)
	assert.Equal(t, Mark{Index: Fajr, DayOffset: 1}, st.Next)
	assert.Equal(t, 9*time.Hour, st.Remaining)
	assert.Equal(t, "9:00:00", st.Countdown())
}

func TestStateAt_BeforeFajr(t *testing.T) {
	st := StateAt(sampleSchedule(), at(4, 59, 59))

	require.True(t, st.Available)
	assert.Equal(t, Mark{Index: Isha, DayOffset: -1}, st.Current)
	assert.Equal(t, Mark{Index: Fajr}, st.Next)
	assert.Equal(t, time.Second, st.Remaining)
	assert.Equal(t, "0:00:01", st.Countdown())
}

func TestCurrent_BoundaryInclusive(t *testing.T) {
	s := sampleSchedule()
	assert.Equal(t, Mark{Index: Dhuhr}, Current(s, at(12, 30, 0).Minutes()))
	assert.Equal(t, Mark{Index: Fajr}, Current(s, at(12, 29, 0).Minutes()))
}

func TestCurrent_SkipsSunrise(t *testing.T) {
	s := sampleSchedule()
	now := at(7, 0, 0).Minutes()

	assert.Equal(t, Mark{Index: Fajr}, Current(s, now))
	assert.Equal(t, Mark{Index: Sunrise}, CurrentRow(s, now))
	assert.Equal(t, Mark{Index: Dhuhr}, Next(s, now))
}

func TestNext_NeverSunrise(t *testing.T) {
	s := sampleSchedule()
	for m := range minutesPerDay {
		assert.NotEqual(t, Sunrise, Next(s, m).Index, "minute %d", m)
		assert.NotEqual(t, Sunrise, Current(s, m).Index, "minute %d", m)
	}
}

func TestRemaining_DecrementsEverySecond(t *testing.T) {
	s := sampleSchedule()
	a := Remaining(s, at(12, 0, 10))
	b := Remaining(s, at(12, 0, 11))
	assert.Equal(t, time.Second, a-b)
	assert.Equal(t, 29*time.Minute+50*time.Second, a)
}

func TestInvalidSchedule_ReturnsSentinel(t *testing.T) {
	var s Schedule
	st := StateAt(s, at(12, 0, 0))

	assert.False(t, st.Available)
	assert.True(t, st.Current.Unavailable())
	assert.True(t, st.Next.Unavailable())
	assert.Zero(t, st.Remaining)
	assert.Equal(t, Placeholder, st.Countdown())
	assert.Zero(t, Remaining(s, at(12, 0, 0)))
}

func TestUnparseableSlot_IsIsolated(t *testing.T) {
	s := NewSchedule([Count]string{"05:00", "06:30", "bad", "15:45", "18:20", "19:50"}, "")

	assert.Equal(t, Placeholder, s.Time(Dhuhr))
	assert.Equal(t, "15:45", s.Time(Asr))

	st := StateAt(s, at(13, 0, 0))
	require.True(t, st.Available)
	assert.Equal(t, Mark{Index: Fajr}, st.Current)
	assert.Equal(t, Mark{Index: Asr}, st.Next)
}

func TestAllSlotsUnparseable_Unavailable(t *testing.T) {
	s := NewSchedule([Count]string{"", "", "", "", "", ""}, "")
	assert.False(t, StateAt(s, at(13, 0, 0)).Available)
}

func TestCrossed(t *testing.T) {
	s := sampleSchedule()
	tests := []struct {
		name      string
		prev, now TimeOfDay
		want      Index
		ok        bool
	}{
		{"exact boundary", at(12, 29, 59), at(12, 30, 0), Dhuhr, true},
		{"already past", at(12, 30, 0), at(12, 30, 1), None, false},
		{"before", at(12, 29, 58), at(12, 29, 59), None, false},
		{"sunrise ignored", at(6, 29, 59), at(6, 30, 0), None, false},
		{"same reading", at(12, 30, 0), at(12, 30, 0), None, false},
		{"clock jump", at(10, 0, 0), at(13, 0, 0), None, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Crossed(s, tt.prev, tt.now)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCrossed_Midnight(t *testing.T) {
	s := NewSchedule([Count]string{"00:00", "06:30", "12:30", "15:45", "18:20", "23:59"}, "")

	got, ok := Crossed(s, at(23, 59, 59), at(0, 0, 0))
	assert.True(t, ok)
	assert.Equal(t, Fajr, got)

	got, ok = Crossed(s, at(23, 58, 59), at(23, 59, 0))
	assert.True(t, ok)
	assert.Equal(t, Isha, got)
}

func TestFormatCountdown(t *testing.T) {
	assert.Equal(t, "0:00:00", FormatCountdown(-time.Second))
	assert.Equal(t, "1:05:09", FormatCountdown(time.Hour+5*time.Minute+9*time.Second))
	assert.Equal(t, "23:59:59", FormatCountdown(24*time.Hour-time.Second))
}

func TestEngine_ClockUnavailable(t *testing.T) {
	e := NewEngine(ClockFunc(func() (TimeOfDay, bool) { return TimeOfDay{}, false }))
	e.Update(sampleSchedule())

	r := e.Read()
	assert.False(t, r.ClockOK)
	assert.False(t, r.State.Available)
}

func TestSystemClock_UnsetYear(t *testing.T) {
	c := &SystemClock{now: func() time.Time { return time.Date(1970, 1, 1, 0, 0, 5, 0, time.UTC) }}
	_, ok := c.Now()
	assert.False(t, ok)

	c.now = func() time.Time { return time.Date(2026, 3, 1, 12, 30, 5, 0, time.UTC) }
	now, ok := c.Now()
	assert.True(t, ok)
	assert.Equal(t, at(12, 30, 5), now)
}

func TestIndex_IsPrayer(t *testing.T) {
	assert.True(t, Fajr.IsPrayer())
	assert.False(t, Sunrise.IsPrayer())
	assert.False(t, None.IsPrayer())
	assert.Equal(t, "None", None.String())
	assert.Equal(t, "Maghrib", Maghrib.String())
}
