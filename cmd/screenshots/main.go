// Screenshots renders every display mode in every theme to PNG files, for
// documentation.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/mawaqit-display/internal/controller"
	"github.com/llehouerou/mawaqit-display/internal/i18n"
	"github.com/llehouerou/mawaqit-display/internal/layout"
	"github.com/llehouerou/mawaqit-display/internal/prayer"
	"github.com/llehouerou/mawaqit-display/internal/settings"
	"github.com/llehouerou/mawaqit-display/internal/ui/raster"
	"github.com/llehouerou/mawaqit-display/internal/ui/screen"
)

var sampleTimes = [prayer.Count]string{"05:47", "07:32", "12:36", "14:58", "17:23", "18:53"}

var modes = []controller.Mode{
	controller.ModeList,
	controller.ModeClock,
	controller.ModeCountdown,
	controller.ModeSettings,
	controller.ModeAlert,
}

const showcaseGap = 5

func main() {
	out := flag.String("out", "screenshots", "output directory")
	at := flag.String("time", "14:30", "time of day shown, HH:MM")
	lang := flag.Int("lang", int(i18n.English), "language index (0 = German)")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	minutes, ok := prayer.ParseClock(*at)
	if !ok {
		log.Fatal().Str("time", *at).Msg("invalid time")
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatal().Err(err).Msg("create output directory")
	}

	now := prayer.TimeOfDay{Hour: minutes / 60, Minute: minutes % 60}
	var showcase []*image.RGBA
	for _, mode := range modes {
		for t := range settings.ThemeCount {
			theme := settings.Theme(t)
			img := raster.Draw(screen.Render(sampleFrame(mode, theme, i18n.Language(*lang), now), screen.Options{}))
			name := fmt.Sprintf("display_%s_%s.png", mode, strings.ToLower(theme.String()))
			if err := save(filepath.Join(*out, name), img); err != nil {
				log.Fatal().Err(err).Str("file", name).Msg("write screenshot")
			}
			log.Info().Str("file", name).Msg("created")
			if theme == settings.ThemeGreen && mode.Cycling() {
				showcase = append(showcase, img)
			}
		}
	}

	if err := save(filepath.Join(*out, "display_showcase.png"), combine(showcase)); err != nil {
		log.Fatal().Err(err).Msg("write showcase")
	}
	log.Info().Str("file", "display_showcase.png").Msg("created")
}

func sampleFrame(mode controller.Mode, theme settings.Theme, lang i18n.Language, now prayer.TimeOfDay) controller.Frame {
	s := prayer.NewSchedule(sampleTimes, "Mosquée de Paris")
	s.Date = "2026-03-01"
	s.Hijri = "11 Ramadan 1447"
	m := settings.Defaults()
	m.Language = lang
	m.SetTheme(int(theme))

	f := controller.Frame{
		Mode:        mode,
		At:          time.Date(2026, 3, 1, now.Hour, now.Minute, now.Second, 0, time.Local),
		Schedule:    s,
		State:       prayer.StateAt(s, now),
		Now:         now,
		ClockOK:     true,
		Settings:    m,
		Theme:       theme,
		AlertPrayer: prayer.None,
		Layout:      layout.Default(),
	}
	if mode == controller.ModeAlert {
		f.AlertPrayer = prayer.Asr
	}
	return f
}

// combine places images side by side on a neutral background.
func combine(imgs []*image.RGBA) *image.RGBA {
	w := showcaseGap
	for _, img := range imgs {
		w += img.Bounds().Dx() + showcaseGap
	}
	out := image.NewRGBA(image.Rect(0, 0, w, layout.Height+2*showcaseGap))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.RGBA{R: 30, G: 30, B: 30, A: 255}), image.Point{}, draw.Src)

	x := showcaseGap
	for _, img := range imgs {
		r := image.Rect(x, showcaseGap, x+img.Bounds().Dx(), showcaseGap+img.Bounds().Dy())
		draw.Draw(out, r, img, image.Point{}, draw.Src)
		x += img.Bounds().Dx() + showcaseGap
	}
	return out
}

func save(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
