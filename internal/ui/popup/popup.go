// Package popup renders bordered dialogs for the panel.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/mawaqit-display/internal/ui/styles"
)

// Style configures the popup appearance.
type Style struct {
	Border      lipgloss.Border
	BorderColor lipgloss.Color
	Background  lipgloss.Color
	TitleStyle  lipgloss.Style
	FooterStyle lipgloss.Style
}

// ThemeStyle returns the popup style for a display theme.
func ThemeStyle(t *styles.Theme) Style {
	return Style{
		Border:      lipgloss.RoundedBorder(),
		BorderColor: t.Accent,
		Background:  t.Header,
		TitleStyle:  lipgloss.NewStyle().Foreground(t.Clock).Background(t.Header).Bold(true),
		FooterStyle: lipgloss.NewStyle().Foreground(t.Muted).Background(t.Header),
	}
}

// Dialog represents a simple centered popup with title, content, and footer.
type Dialog struct {
	Title   string
	Content string
	Footer  string
	Width   int // 0 = auto-fit content
	Style   Style
}

// Box renders the bordered dialog no wider than width, ready to be placed
// over the panel.
func (p *Dialog) Box(width int) string {
	style := p.Style

	contentWidth := p.Width
	if contentWidth == 0 {
		contentWidth = max(maxLineWidth(p.Content), lipgloss.Width(p.Title), lipgloss.Width(p.Footer)) + 2
	}
	contentWidth = min(contentWidth, width-4)
	// lipgloss counts the horizontal padding in Width.
	inner := max(contentWidth-2, 1)

	lines := make([]string, 0, strings.Count(p.Content, "\n")+5)
	if p.Title != "" {
		lines = append(lines, centerLine(style.TitleStyle.Render(fit(p.Title, inner)), inner), "")
	}
	for line := range strings.SplitSeq(p.Content, "\n") {
		lines = append(lines, padLine(fit(line, inner), inner))
	}
	if p.Footer != "" {
		lines = append(lines, "", centerLine(style.FooterStyle.Render(fit(p.Footer, inner)), inner))
	}

	return lipgloss.NewStyle().
		Border(style.Border).
		BorderForeground(style.BorderColor).
		BorderBackground(style.Background).
		Background(style.Background).
		Padding(0, 1).
		Width(contentWidth).
		Render(strings.Join(lines, "\n"))
}

// fit truncates an over-long line so the box never wraps it.
func fit(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "...")
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, lipgloss.Width(line))
	}
	return maxW
}

func centerLine(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	pad := (width - w) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-w-pad)
}

func padLine(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
