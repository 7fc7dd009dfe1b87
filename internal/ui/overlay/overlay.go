// Package overlay places popups over the rendered panel.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Place centers box over base in a width x height area. The box is opaque:
// every cell of its bounding rectangle replaces the panel cell below, and
// panel styling left and right of it survives. base is padded to the area;
// rows of box beyond the area are dropped.
func Place(base, box string, width, height int) string {
	rows := strings.Split(base, "\n")
	for len(rows) < height {
		rows = append(rows, "")
	}
	boxRows := strings.Split(box, "\n")
	boxWidth := 0
	for _, r := range boxRows {
		boxWidth = max(boxWidth, ansi.StringWidth(r))
	}
	top := max((len(rows)-len(boxRows))/2, 0)
	left := max((width-boxWidth)/2, 0)

	for i, r := range boxRows {
		y := top + i
		if y >= len(rows) {
			break
		}
		rows[y] = splice(rows[y], r, left, boxWidth, width)
	}
	return strings.Join(rows, "\n")
}

// splice replaces columns [left, left+span) of line with cell.
func splice(line, cell string, left, span, width int) string {
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	if w := ansi.StringWidth(cell); w < span {
		cell += strings.Repeat(" ", span-w)
	}
	out := ansi.Cut(line, 0, left) + cell
	if end := left + span; end < ansi.StringWidth(line) {
		out += ansi.Cut(line, end, ansi.StringWidth(line))
	}
	return out
}
