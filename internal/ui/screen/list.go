package screen

import (
	"fmt"
	"image"

	"github.com/llehouerou/mawaqit-display/internal/controller"
	"github.com/llehouerou/mawaqit-display/internal/i18n"
	"github.com/llehouerou/mawaqit-display/internal/prayer"
	"github.com/llehouerou/mawaqit-display/internal/ui/styles"
)

// Prayer list geometry: two columns of three boxes, each two rows high.
const (
	listTop    = 4
	listBoxH   = 2
	listGap    = 1
	listColW   = 28
	listMargin = 1
)

func drawList(c *Canvas, t *styles.Theme, f controller.Frame) {
	s := t.S()
	lang := f.Settings.Language

	header(c, t)
	c.Text(1, 0, clockText(f), s.Clock)
	if f.ClockOK && f.At.Year() > 1 {
		c.Text(1, 1, i18n.Weekday(lang, int(f.At.Weekday())), s.Header)
	}
	name := mosqueName(f, Cols-10)
	clusters, gradient := t.Headline(name, t.Header)
	c.Styled(Cols-1-len(clusters), 0, clusters, gradient)
	if f.Schedule.Hijri != "" {
		c.Text(Cols-1-len(styles.Graphemes(f.Schedule.Hijri)), 1, f.Schedule.Hijri, s.Header)
	}

	now := -1
	if f.ClockOK {
		now = f.Now.Minutes()
	}
	for i := range prayer.Count {
		idx := prayer.Index(i)
		col := listMargin + (i/3)*(listColW+2)
		row := listTop + (i%3)*(listBoxH+listGap)
		drawListBox(c, t, f, idx, col, row, now)
	}

	if f.Schedule.Date != "" {
		c.Center(0, Cols, listTop+3*(listBoxH+listGap), f.Schedule.Date, s.Muted)
	}

	footer(c, t, nextCountdown(f), i18n.Text(lang, i18n.KeyTapModes))
}

func drawListBox(c *Canvas, t *styles.Theme, f controller.Frame, idx prayer.Index, col, row, now int) {
	s := t.S()
	st := s.Row
	isNext := f.State.Available && f.State.Next.Index == idx && f.State.Next.DayOffset == 0
	switch {
	case isNext:
		st = s.Next
	case idx == prayer.Sunrise:
		st = s.Sunrise
	case passed(f.Schedule, idx, now):
		st = s.Passed
	}

	box := image.Rect(col, row, col+listColW, row+listBoxH)
	c.Fill(box, st)
	if isNext {
		c.Fill(image.Rect(col, row, col+1, row+listBoxH), st.Background(t.Text))
	}
	marker := " "
	if f.State.Available && f.State.Row.Index == idx {
		marker = "▸"
	}
	c.Text(col+1, row, marker+i18n.PrayerName(f.Settings.Language, idx), st)
	tm := f.Schedule.Time(idx)
	c.Text(col+listColW-1-len(tm), row, tm, st)
	if f.Settings.AlertEnabled(idx) {
		c.Text(col+listColW-2, row+1, "♪", st)
	}
}

// passed reports whether a prayer of today is already behind now.
func passed(s prayer.Schedule, idx prayer.Index, now int) bool {
	if now < 0 || idx == prayer.Sunrise {
		return false
	}
	m, ok := s.Minutes(idx)
	return ok && m < now
}

// nextCountdown is "Next: Asr in 2:45", the footer of the list.
func nextCountdown(f controller.Frame) string {
	lang := f.Settings.Language
	if !f.State.Available || f.State.Next.Unavailable() {
		return i18n.Text(lang, i18n.KeyNext) + ": " + prayer.Placeholder
	}
	mins := int(f.State.Remaining.Minutes())
	return fmt.Sprintf("%s: %s in %d:%02d", i18n.Text(lang, i18n.KeyNext),
		i18n.PrayerName(lang, f.State.Next.Index), mins/60, mins%60)
}
