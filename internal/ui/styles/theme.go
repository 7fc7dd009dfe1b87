// Package styles defines the color palettes of the display themes and the
// lipgloss styles built from them.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/mawaqit-display/internal/settings"
)

// Theme defines the color palette and pre-built styles of one display theme.
type Theme struct {
	// Panel colors
	Bg     lipgloss.Color // screen background
	Header lipgloss.Color // header and footer bars
	Accent lipgloss.Color // next prayer, toggles, separators
	Text   lipgloss.Color // primary text

	// Swatch is the color shown in the theme selector.
	Swatch lipgloss.Color

	// Shared
	Clock   lipgloss.Color // header clock
	Label   lipgloss.Color // settings captions
	Sunrise lipgloss.Color // sunrise row
	Passed  lipgloss.Color // prayers already passed today
	Muted   lipgloss.Color
	Off     lipgloss.Color // disabled toggle

	styles *Styles
}

// Styles contains pre-built lipgloss styles for the screen elements. They
// carry colors and weight only, since they style single canvas cells.
type Styles struct {
	Screen  lipgloss.Style // panel background
	Header  lipgloss.Style // header and footer bars
	Title   lipgloss.Style
	Clock   lipgloss.Style // clock in the header
	Label   lipgloss.Style // captions
	Muted   lipgloss.Style
	Accent  lipgloss.Style // accent text on the background
	Rule    lipgloss.Style // accent line under the header
	Row     lipgloss.Style // prayer row
	Next    lipgloss.Style // highlighted next prayer
	Sunrise lipgloss.Style
	Passed  lipgloss.Style
	On      lipgloss.Style // enabled toggle
	Off     lipgloss.Style // disabled toggle
}

// Colors shared by every theme.
const (
	yellow   = lipgloss.Color("#FFFF00")
	orange   = lipgloss.Color("#FFA500")
	darkGrey = lipgloss.Color("#7B7D7B")
	offGrey  = lipgloss.Color("#323232")
)

var themes = [settings.ThemeCount]Theme{
	settings.ThemeGreen: {
		Bg:     lipgloss.Color("#004100"),
		Header: lipgloss.Color("#008600"),
		Accent: lipgloss.Color("#00FF00"),
		Text:   lipgloss.Color("#FFFFFF"),
		Swatch: lipgloss.Color("#009650"),
	},
	settings.ThemeBlue: {
		Bg:     lipgloss.Color("#000084"),
		Header: lipgloss.Color("#182484"),
		Accent: lipgloss.Color("#5AAEFF"),
		Text:   lipgloss.Color("#FFFFFF"),
		Swatch: lipgloss.Color("#5096FF"),
	},
	settings.ThemePurple: {
		Bg:     lipgloss.Color("#210021"),
		Header: lipgloss.Color("#420084"),
		Accent: lipgloss.Color("#B59AFF"),
		Text:   lipgloss.Color("#FFFFFF"),
		Swatch: lipgloss.Color("#B464FF"),
	},
	settings.ThemeDark: {
		Bg:     lipgloss.Color("#000000"),
		Header: lipgloss.Color("#181818"),
		Accent: lipgloss.Color("#4A4D4A"),
		Text:   lipgloss.Color("#C5C2C5"),
		Swatch: lipgloss.Color("#3C3C3C"),
	},
}

func init() {
	for i := range themes {
		t := &themes[i]
		t.Clock = yellow
		t.Label = yellow
		t.Sunrise = orange
		t.Passed = darkGrey
		t.Muted = darkGrey
		t.Off = offGrey
	}
}

// For returns the palette of theme; out-of-range values use the green theme.
func For(theme settings.Theme) *Theme {
	if theme < 0 || int(theme) >= settings.ThemeCount {
		theme = settings.ThemeGreen
	}
	return &themes[theme]
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.Text).Background(t.Bg)
	bar := lipgloss.NewStyle().Foreground(t.Text).Background(t.Header)
	black := lipgloss.Color("#000000")

	return &Styles{
		Screen:  base,
		Header:  bar.Bold(true),
		Title:   base.Bold(true),
		Clock:   bar.Foreground(t.Clock).Bold(true),
		Label:   base.Foreground(t.Label),
		Muted:   base.Foreground(t.Muted),
		Accent:  base.Foreground(t.Accent).Bold(true),
		Rule:    base.Foreground(t.Accent),
		Row:     bar,
		Next:    lipgloss.NewStyle().Foreground(black).Background(t.Accent).Bold(true),
		Sunrise: lipgloss.NewStyle().Foreground(t.Sunrise).Background(lipgloss.Color("#3C280A")),
		Passed:  lipgloss.NewStyle().Foreground(t.Passed).Background(lipgloss.Color("#1E1E1E")),
		On:      lipgloss.NewStyle().Foreground(black).Background(t.Accent).Bold(true),
		Off:     lipgloss.NewStyle().Foreground(t.Muted).Background(t.Off),
	}
}

// SwatchStyle returns the selector box of theme.
func SwatchStyle(theme settings.Theme) lipgloss.Style {
	return lipgloss.NewStyle().Background(For(theme).Swatch).Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
}
