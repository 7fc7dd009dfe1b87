package screen

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/mawaqit-display/internal/ui/render"
)

// Status is the simulator line shown under the panel.
type Status struct {
	FetchedAt time.Time // last successful fetch, zero if none
	Now       time.Time
	Web       string // listen address of the web API, empty if disabled
	Message   string // last warning
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))

// StatusLine renders st in width cells.
func StatusLine(st Status, width int) string {
	left := "times: never fetched"
	if !st.FetchedAt.IsZero() {
		left = "times: " + humanize.RelTime(st.FetchedAt, st.Now, "ago", "from now")
	}
	if st.Web != "" {
		left += " · web " + st.Web
	}
	right := "? keys"
	if st.Message != "" {
		right = render.Truncate(st.Message, max(width-len(left)-4, 10))
	}
	return statusStyle.Render(render.Row(left, right, width))
}
