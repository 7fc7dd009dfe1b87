package screen

import (
	"image"

	"github.com/llehouerou/mawaqit-display/internal/controller"
	"github.com/llehouerou/mawaqit-display/internal/i18n"
	"github.com/llehouerou/mawaqit-display/internal/prayer"
	"github.com/llehouerou/mawaqit-display/internal/ui/styles"
)

var crescent = []string{
	"  ▄███▀ ",
	" ████   ",
	" ████   ",
	"  ▀███▄ ",
}

func drawAlert(c *Canvas, t *styles.Theme, f controller.Frame) {
	s := t.S()
	lang := f.Settings.Language

	c.Fill(image.Rect(0, 0, Cols, 2), s.Header)
	c.Center(0, Cols, 0, "ADHAN", s.Clock)
	c.Center(0, Cols, 1, clockText(f), s.Header)

	name := "Test"
	if f.AlertPrayer != prayer.None {
		name = i18n.PrayerName(lang, f.AlertPrayer)
	}
	clusters, gradient := t.Headline(name, t.Bg)
	c.Styled((Cols-len(clusters))/2, 4, clusters, gradient)
	if f.AlertPrayer != prayer.None {
		c.Center(0, Cols, 5, f.Schedule.Time(f.AlertPrayer), s.Title)
	}

	moon := s.Screen.Foreground(t.Clock)
	for i, line := range crescent {
		c.Center(0, Cols, 7+i, line, moon)
	}
	c.Center(0, Cols, 12, "Allahu Akbar, Allahu Akbar", s.Title)

	c.Fill(image.Rect(0, Rows-2, Cols, Rows), s.Passed)
	c.Center(0, Cols, Rows-1, i18n.Text(lang, i18n.KeyTapToStop), s.Passed.Foreground(t.Clock))
}
