package mosquesearch

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/mawaqit-display/internal/mawaqit"
	"github.com/llehouerou/mawaqit-display/internal/ui/popup"
	"github.com/llehouerou/mawaqit-display/internal/ui/render"
	"github.com/llehouerou/mawaqit-display/internal/ui/styles"
)

const lineWidth = 44

// Dialog wraps the popup content for theme t.
func (m *Model) Dialog(t *styles.Theme) *popup.Dialog {
	footer := "Enter: search  Esc: close"
	if m.state == StateResults {
		footer = "Enter: select  Backspace: back"
	}
	return &popup.Dialog{
		Title:   "Mosque",
		Content: m.View(t),
		Footer:  footer,
		Width:   lineWidth + 2,
		Style:   popup.ThemeStyle(t),
	}
}

// View renders the popup content.
func (m *Model) View(t *styles.Theme) string {
	bg := lipgloss.NewStyle().Background(t.Header)
	dim := bg.Foreground(t.Muted)
	errStyle := bg.Foreground(t.Accent).Bold(true)

	var b strings.Builder
	switch m.state {
	case StateInput:
		b.WriteString(dim.Render("Search by name:"))
		b.WriteString("\n")
		b.WriteString(m.input.View())
	case StateSearching:
		b.WriteString(dim.Render("Searching for " + m.query + "..."))
	case StateResults:
		b.WriteString(m.renderResults(t))
	}
	if m.statusMsg != "" && m.state != StateSearching {
		b.WriteString("\n")
		b.WriteString(dim.Render(m.statusMsg))
	}
	if m.errorMsg != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.errorMsg))
	}
	return b.String()
}

func (m *Model) renderResults(t *styles.Theme) string {
	if len(m.results) == 0 {
		return ""
	}
	bg := lipgloss.NewStyle().Background(t.Header)
	cursorStyle := bg.Foreground(t.Accent).Bold(true)
	selectedStyle := bg.Foreground(t.Clock).Bold(true)
	rowStyle := bg.Foreground(t.Text)

	start := max(0, min(m.pos-maxVisible/2, len(m.results)-maxVisible))
	end := min(start+maxVisible, len(m.results))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		line := render.Truncate(formatMosque(m.results[i]), lineWidth-2)
		if i == m.pos {
			lines = append(lines, cursorStyle.Render("> ")+selectedStyle.Render(line))
		} else {
			lines = append(lines, bg.Render("  ")+rowStyle.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}

// formatMosque is "Name, City (CC)".
func formatMosque(mq mawaqit.Mosque) string {
	s := render.Sanitize(mq.Name)
	if mq.City != "" {
		s += ", " + mq.City
	}
	if mq.CountryCode != "" {
		s += " (" + mq.CountryCode + ")"
	}
	return s
}
