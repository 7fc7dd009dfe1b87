package screen

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/mawaqit-display/internal/layout"
	"github.com/llehouerou/mawaqit-display/internal/ui/styles"
)

// Grid of the simulated panel. One cell covers CellW x CellH pixels.
const (
	Cols  = 60
	Rows  = 17
	CellW = layout.Width / Cols
	CellH = layout.Height / Rows
)

// Cell is one grapheme of the canvas.
type Cell struct {
	Ch    string
	Style int // index into the canvas styles
}

// Canvas is a fixed Cols x Rows character grid. It is drawn by String for
// the terminal and by the raster package for PNG output.
type Canvas struct {
	cells  [Rows][Cols]Cell
	styles []lipgloss.Style
}

// NewCanvas returns a canvas filled with spaces in bg.
func NewCanvas(bg lipgloss.Style) *Canvas {
	c := &Canvas{}
	c.Fill(image.Rect(0, 0, Cols, Rows), bg)
	return c
}

func (c *Canvas) style(s lipgloss.Style) int {
	c.styles = append(c.styles, s)
	return len(c.styles) - 1
}

// Fill paints the cell rectangle r with spaces in s.
func (c *Canvas) Fill(r image.Rectangle, s lipgloss.Style) {
	r = r.Intersect(image.Rect(0, 0, Cols, Rows))
	idx := c.style(s)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.cells[y][x] = Cell{Ch: " ", Style: idx}
		}
	}
}

// Text writes s at (col, row), one grapheme per cell, clipped to the edges.
func (c *Canvas) Text(col, row int, s string, st lipgloss.Style) {
	clusters := styles.Graphemes(s)
	idx := c.style(st)
	for i, g := range clusters {
		c.put(col+i, row, g, idx)
	}
}

// Styled writes graphemes with one style each, as returned by a gradient.
func (c *Canvas) Styled(col, row int, clusters []string, st []lipgloss.Style) {
	for i, g := range clusters {
		c.put(col+i, row, g, c.style(st[i]))
	}
}

func (c *Canvas) put(col, row int, g string, idx int) {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return
	}
	if runewidth.StringWidth(g) == 0 {
		return
	}
	c.cells[row][col] = Cell{Ch: g, Style: idx}
}

// Center writes s centered on row within [left, right).
func (c *Canvas) Center(left, right, row int, s string, st lipgloss.Style) {
	w := len(styles.Graphemes(s))
	c.Text(left+(right-left-w)/2, row, s, st)
}

// At returns the grapheme at (col, row) and its style.
func (c *Canvas) At(col, row int) (string, lipgloss.Style) {
	cell := c.cells[row][col]
	return cell.Ch, c.styles[cell.Style]
}

// String renders the canvas with one styled run per change of style.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := range Rows {
		start := 0
		for x := 1; x <= Cols; x++ {
			if x < Cols && c.cells[y][x].Style == c.cells[y][start].Style {
				continue
			}
			var run strings.Builder
			for i := start; i < x; i++ {
				run.WriteString(c.cells[y][i].Ch)
			}
			b.WriteString(c.styles[c.cells[y][start].Style].Render(run.String()))
			start = x
		}
		if y < Rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Plain returns the canvas text without styling.
func (c *Canvas) Plain() string {
	var b strings.Builder
	for y := range Rows {
		for x := range Cols {
			b.WriteString(c.cells[y][x].Ch)
		}
		if y < Rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// CellRect converts panel pixels to the cells whose centers lie inside r.
func CellRect(r image.Rectangle) image.Rectangle {
	return image.Rect(
		(r.Min.X+CellW/2-1)/CellW,
		(r.Min.Y+CellH/2-1)/CellH,
		(r.Max.X+CellW/2-1)/CellW,
		(r.Max.Y+CellH/2-1)/CellH,
	)
}

// CellCenter returns the panel pixel at the middle of a cell.
func CellCenter(col, row int) (x, y int) {
	return col*CellW + CellW/2, row*CellH + CellH/2
}
