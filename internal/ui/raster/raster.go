// Package raster paints a screen canvas into a 480x272 image, the way the
// panel shows it.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/llehouerou/mawaqit-display/internal/layout"
	"github.com/llehouerou/mawaqit-display/internal/ui/screen"
	"github.com/llehouerou/mawaqit-display/internal/ui/styles"
)

// baseline is the glyph baseline inside a cell.
const baseline = 12

// Glyphs missing from the bitmap font.
var substitutes = map[string]string{
	"▸": ">",
	"◂": "<",
	"♪": "*",
	"✓": "x",
}

// Draw paints c.
func Draw(c *screen.Canvas) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, layout.Width, layout.Height))
	for row := range screen.Rows {
		for col := range screen.Cols {
			ch, st := c.At(col, row)
			drawCell(img, col, row, ch, st)
		}
	}
	return img
}

func drawCell(img *image.RGBA, col, row int, ch string, st lipgloss.Style) {
	x, y := col*screen.CellW, row*screen.CellH
	cell := image.Rect(x, y, x+screen.CellW, y+screen.CellH)
	bg := colorOf(st.GetBackground(), color.Black)
	fg := colorOf(st.GetForeground(), color.White)
	draw.Draw(img, cell, image.NewUniform(bg), image.Point{}, draw.Src)

	switch ch {
	case " ", "":
		return
	case "█":
		draw.Draw(img, cell, image.NewUniform(fg), image.Point{}, draw.Src)
		return
	case "▀":
		draw.Draw(img, image.Rect(x, y, cell.Max.X, y+screen.CellH/2), image.NewUniform(fg), image.Point{}, draw.Src)
		return
	case "▄":
		draw.Draw(img, image.Rect(x, y+screen.CellH/2, cell.Max.X, cell.Max.Y), image.NewUniform(fg), image.Point{}, draw.Src)
		return
	case "─":
		mid := y + screen.CellH/2
		draw.Draw(img, image.Rect(x, mid, cell.Max.X, mid+1), image.NewUniform(fg), image.Point{}, draw.Src)
		return
	}
	if s, ok := substitutes[ch]; ok {
		ch = s
	}

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y+baseline),
	}
	d.DrawString(ch)
	if st.GetBold() {
		d.Dot = fixed.P(x+1, y+baseline)
		d.DrawString(ch)
	}
}

func colorOf(c lipgloss.TerminalColor, fallback color.Color) color.Color {
	if hex, ok := c.(lipgloss.Color); ok && hex != "" {
		return styles.ToColor(hex)
	}
	return fallback
}
