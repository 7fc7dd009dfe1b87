package screen

import (
	"fmt"
	"image"
	"strings"

	"github.com/llehouerou/mawaqit-display/internal/controller"
	"github.com/llehouerou/mawaqit-display/internal/i18n"
	"github.com/llehouerou/mawaqit-display/internal/prayer"
	"github.com/llehouerou/mawaqit-display/internal/ui/styles"
)

// bigGlyphs is a 3x5 block font for the clock and countdown.
var bigGlyphs = map[rune][5]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {" ██", "  █", "  █", "  █", "  █"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {" ", "█", " ", "█", " "},
	'-': {"   ", "   ", "███", "   ", "   "},
}

// bigText renders s in the block font, one space between glyphs.
// Characters without a glyph are skipped.
func bigText(s string) [5]string {
	var rows [5]strings.Builder
	first := true
	for _, r := range s {
		g, ok := bigGlyphs[r]
		if !ok {
			continue
		}
		for i := range rows {
			if !first {
				rows[i].WriteByte(' ')
			}
			rows[i].WriteString(g[i])
		}
		first = false
	}
	var out [5]string
	for i := range rows {
		out[i] = rows[i].String()
	}
	return out
}

func drawBig(c *Canvas, row int, s string, t *styles.Theme) {
	for i, line := range bigText(s) {
		c.Center(0, Cols, row+i, line, t.S().Accent)
	}
}

func drawClock(c *Canvas, t *styles.Theme, f controller.Frame) {
	s := t.S()
	lang := f.Settings.Language

	header(c, t)
	clusters, gradient := t.Headline(mosqueName(f, Cols-2), t.Header)
	c.Styled((Cols-len(clusters))/2, 0, clusters, gradient)

	if !f.ClockOK {
		drawBig(c, 4, "--:--", t)
		c.Center(0, Cols, 10, i18n.Text(lang, i18n.KeyNoClock), s.Muted)
	} else {
		drawBig(c, 4, clockText(f), t)
		c.Center(0, Cols, 10, fmt.Sprintf(":%02d", f.Now.Second), s.Muted)
		if f.At.Year() > 1 {
			date := i18n.Weekday(lang, int(f.At.Weekday())) + " " + f.At.Format("02.01.2006")
			c.Center(0, Cols, 11, date, s.Title)
		}
	}
	if f.Schedule.Hijri != "" {
		c.Center(0, Cols, 12, f.Schedule.Hijri, s.Muted)
	}

	footer(c, t, nextLine(f), f.State.Countdown())
}

func drawCountdown(c *Canvas, t *styles.Theme, f controller.Frame) {
	s := t.S()
	lang := f.Settings.Language

	header(c, t)
	c.Center(0, Cols, 0, i18n.Text(lang, i18n.KeyNext), s.Clock)
	c.Center(0, Cols, 1, clockText(f), s.Header)

	name, tm := prayer.Placeholder, prayer.Placeholder
	if f.State.Available && !f.State.Next.Unavailable() {
		name = i18n.PrayerName(lang, f.State.Next.Index)
		tm = f.Schedule.Time(f.State.Next.Index)
		if f.State.Next.DayOffset > 0 {
			tm += " (" + i18n.Text(lang, i18n.KeyTomorrow) + ")"
		}
	}
	clusters, gradient := t.Headline(name, t.Bg)
	c.Styled((Cols-len(clusters))/2, 4, clusters, gradient)
	c.Center(0, Cols, 5, tm, s.Title)

	box := image.Rect(4, 7, Cols-4, 15)
	c.Fill(box, s.Row)
	c.Center(box.Min.X, box.Max.X, box.Min.Y, i18n.Text(lang, i18n.KeyRemaining), s.Row)
	for i, line := range bigText(f.State.Countdown()) {
		c.Center(box.Min.X, box.Max.X, box.Min.Y+2+i, line, s.Row.Foreground(t.Text).Bold(true))
	}

	footer(c, t, "", i18n.Text(lang, i18n.KeyTapModes))
}
