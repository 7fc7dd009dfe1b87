// Package screen draws controller frames onto a character canvas that
// mirrors the 480x272 panel.
package screen

import (
	"image"
	"strings"

	"github.com/llehouerou/mawaqit-display/internal/controller"
	"github.com/llehouerou/mawaqit-display/internal/i18n"
	"github.com/llehouerou/mawaqit-display/internal/prayer"
	"github.com/llehouerou/mawaqit-display/internal/ui/render"
	"github.com/llehouerou/mawaqit-display/internal/ui/styles"
)

// Options carries presentation state that is not part of a frame.
type Options struct {
	// Spinner is the current loading animation frame.
	Spinner string
}

// Render draws f.
func Render(f controller.Frame, opts Options) *Canvas {
	t := styles.For(f.Theme)
	c := NewCanvas(t.S().Screen)
	lang := f.Settings.Language

	if f.Loading {
		drawLoading(c, t, lang, opts)
		return c
	}

	switch f.Mode {
	case controller.ModeList:
		drawList(c, t, f)
	case controller.ModeClock:
		drawClock(c, t, f)
	case controller.ModeCountdown:
		drawCountdown(c, t, f)
	case controller.ModeSettings:
		drawSettings(c, t, f)
	case controller.ModeAlert:
		drawAlert(c, t, f)
	}
	return c
}

func drawLoading(c *Canvas, t *styles.Theme, lang i18n.Language, opts Options) {
	s := t.S()
	c.Center(0, Cols, Rows/2-2, "Mawaqit", s.Accent)
	c.Center(0, Cols, Rows/2, opts.Spinner+" "+i18n.Text(lang, i18n.KeyLoading), s.Title)
}

// header draws the two-row bar with the accent rule beneath it.
func header(c *Canvas, t *styles.Theme) {
	c.Fill(image.Rect(0, 0, Cols, 2), t.S().Header)
	c.Text(0, 2, strings.Repeat("─", Cols), t.S().Rule)
}

// footer draws the bottom bar on the last row.
func footer(c *Canvas, t *styles.Theme, left, right string) {
	s := t.S()
	c.Fill(image.Rect(0, Rows-1, Cols, Rows), s.Header)
	c.Text(1, Rows-1, left, s.Header)
	c.Text(Cols-1-len(styles.Graphemes(right)), Rows-1, right, s.Header.Foreground(t.Accent))
}

// clockText is HH:MM, or the placeholder while the clock is unset.
func clockText(f controller.Frame) string {
	if !f.ClockOK {
		return prayer.Placeholder
	}
	return f.Now.String()[:5]
}

func mosqueName(f controller.Frame, width int) string {
	name := render.Sanitize(f.Schedule.Label)
	if name == "" {
		name = "Mawaqit"
	}
	return render.Truncate(name, width)
}

// nextLine is "Next: Asr 15:45", with tomorrow's Fajr marked.
func nextLine(f controller.Frame) string {
	lang := f.Settings.Language
	next := f.State.Next
	if !f.State.Available || next.Unavailable() {
		return i18n.Text(lang, i18n.KeyNext) + ": " + prayer.Placeholder
	}
	s := i18n.Text(lang, i18n.KeyNext) + ": " + i18n.PrayerName(lang, next.Index) + " " + f.Schedule.Time(next.Index)
	if next.DayOffset > 0 {
		s += " (" + i18n.Text(lang, i18n.KeyTomorrow) + ")"
	}
	return s
}
