package screen

import (
	"image"

	"github.com/llehouerou/mawaqit-display/internal/controller"
	"github.com/llehouerou/mawaqit-display/internal/i18n"
	"github.com/llehouerou/mawaqit-display/internal/layout"
	"github.com/llehouerou/mawaqit-display/internal/prayer"
	"github.com/llehouerou/mawaqit-display/internal/settings"
	"github.com/llehouerou/mawaqit-display/internal/ui/styles"
)

const toggleWidth = 7

// drawSettings draws every zone of the frame's layout where the zone is, so
// what is tapped is what is shown.
func drawSettings(c *Canvas, t *styles.Theme, f controller.Frame) {
	s := t.S()
	lang := f.Settings.Language

	header(c, t)
	c.Text(1, 0, i18n.Text(lang, i18n.KeySettings), s.Header)
	if f.Settings.Rotation {
		c.Text(Cols-6, 0, "180°", s.Header)
	}
	c.Text(1, 1, i18n.Text(lang, i18n.KeyAdhan), s.Clock)

	c.Fill(image.Rect(0, Rows-1, Cols, Rows), s.Header)
	c.Text(1, Rows-1, i18n.Text(lang, i18n.KeyHoldToExit), s.Header.Foreground(t.Muted))

	for _, z := range f.Layout.Zones {
		r := CellRect(scale(f.Layout, z.Bounds))
		if r.Empty() {
			continue
		}
		drawZone(c, t, f.Settings, z.Target, r)
	}
}

func drawZone(c *Canvas, t *styles.Theme, m settings.Model, target layout.Target, r image.Rectangle) {
	s := t.S()
	lang := m.Language

	switch target.Kind {
	case layout.KindAlert:
		idx := prayer.Index(target.Index)
		box := image.Rect(r.Min.X+1, r.Min.Y, r.Max.X-1, r.Min.Y+1)
		c.Fill(box, s.Row)
		label := s.Row
		if idx == prayer.Sunrise {
			label = label.Foreground(t.Sunrise)
		}
		c.Text(box.Min.X+1, box.Min.Y, i18n.PrayerName(lang, idx), label)
		toggle(c, t, box.Max.X-toggleWidth-1, box.Min.Y, m.Alerts[idx], lang)

	case layout.KindLanguage:
		c.Text(r.Min.X-12, r.Min.Y, i18n.Text(lang, i18n.KeyLanguage), s.Label)
		c.Fill(image.Rect(r.Min.X, r.Min.Y, r.Max.X-1, r.Min.Y+1), s.Row)
		c.Text(r.Min.X+1, r.Min.Y, lang.Name()+" ▸", s.Row)

	case layout.KindTheme:
		theme := settings.Theme(target.Index)
		c.Fill(image.Rect(r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y), styles.SwatchStyle(theme))
		if theme == m.Theme {
			c.Center(r.Min.X, r.Max.X-1, r.Min.Y, "✓", styles.SwatchStyle(theme))
		}
		if target.Index == 0 {
			c.Text(r.Min.X, r.Min.Y-1, i18n.Text(lang, i18n.KeyTheme), s.Label)
		}

	case layout.KindAutoNight:
		c.Text(r.Min.X+1, r.Min.Y, i18n.Text(lang, i18n.KeyAutoNight), s.Label)
		toggle(c, t, r.Max.X-toggleWidth-1, r.Min.Y, m.AutoNight, lang)

	case layout.KindBack:
		c.Text(r.Max.X-2-len(styles.Graphemes(i18n.Text(lang, i18n.KeyBack))), r.Min.Y, "◂ "+i18n.Text(lang, i18n.KeyBack), s.Header.Foreground(t.Accent))
	}
}

func toggle(c *Canvas, t *styles.Theme, col, row int, on bool, lang i18n.Language) {
	st, label := t.S().Off, " "+i18n.Text(lang, i18n.KeyOff)
	if on {
		st, label = t.S().On, " "+i18n.Text(lang, i18n.KeyOn)
	}
	c.Fill(image.Rect(col, row, col+toggleWidth, row+1), st)
	c.Text(col, row, label, st)
}

// scale maps zone bounds of l onto the reference panel.
func scale(l layout.Layout, r image.Rectangle) image.Rectangle {
	if l.Width == layout.Width && l.Height == layout.Height || l.Width <= 0 || l.Height <= 0 {
		return r
	}
	return image.Rect(
		r.Min.X*layout.Width/l.Width, r.Min.Y*layout.Height/l.Height,
		r.Max.X*layout.Width/l.Width, r.Max.Y*layout.Height/l.Height,
	)
}
