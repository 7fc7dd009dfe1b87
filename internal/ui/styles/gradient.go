package styles

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Graphemes splits text into user-perceived characters, one per cell.
func Graphemes(text string) []string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	return clusters
}

// Headline returns the graphemes of text and a bold style for each, blending
// from the theme's text color into its accent on bg.
func (t *Theme) Headline(text string, bg lipgloss.Color) ([]string, []lipgloss.Style) {
	return Gradient(text, bg, t.Text, t.Accent)
}

// Gradient returns the graphemes of text with a horizontal color gradient.
func Gradient(text string, bg, from, to lipgloss.Color) ([]string, []lipgloss.Style) {
	clusters := Graphemes(text)
	if len(clusters) == 0 {
		return nil, nil
	}

	colors := blendColors(len(clusters), from, to)
	out := make([]lipgloss.Style, len(clusters))
	for i := range clusters {
		out[i] = lipgloss.NewStyle().
			Background(bg).
			Foreground(lipgloss.Color(colorToHex(colors[i]))).
			Bold(true)
	}
	return clusters, out
}

// blendColors returns a slice of colors blended between from and to.
// Blending is done in HCL color space for perceptually uniform transitions.
func blendColors(size int, from, to lipgloss.Color) []color.Color {
	if size < 2 {
		return []color.Color{ToColor(from)}
	}

	c1, _ := colorful.MakeColor(ToColor(from))
	c2, _ := colorful.MakeColor(ToColor(to))

	colors := make([]color.Color, size)
	for i := range size {
		t := float64(i) / float64(size-1)
		colors[i] = c1.BlendHcl(c2, t)
	}

	return colors
}

// ToColor converts a "#rrggbb" lipgloss color. ANSI palette colors have no
// RGB value and come back as neutral grey.
func ToColor(c lipgloss.Color) color.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		col, err := colorful.Hex(hex)
		if err == nil {
			return col
		}
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}

// colorToHex converts a color.Color to a hex string.
func colorToHex(c color.Color) string {
	cf, ok := c.(colorful.Color)
	if ok {
		return cf.Hex()
	}
	r, g, b, _ := c.RGBA()
	return colorful.Color{
		R: float64(r) / 65535.0,
		G: float64(g) / 65535.0,
		B: float64(b) / 65535.0,
	}.Hex()
}
