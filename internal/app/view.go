// internal/app/view.go
package app

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/mawaqit-display/internal/ui/helpbindings"
	"github.com/llehouerou/mawaqit-display/internal/ui/overlay"
	"github.com/llehouerou/mawaqit-display/internal/ui/popup"
	"github.com/llehouerou/mawaqit-display/internal/ui/screen"
	"github.com/llehouerou/mawaqit-display/internal/ui/styles"
)

// View renders the panel with the status line beneath it.
func (m Model) View() string {
	f, ok := m.Frames.Last()
	if !ok {
		// Nothing rendered before the first tick.
		return ""
	}

	canvas := screen.Render(f, screen.Options{Spinner: ansi.Strip(m.Spinner.View())})
	width := max(m.Width, screen.Cols)
	status := screen.StatusLine(screen.Status{
		FetchedAt: m.FetchedAt,
		Now:       m.now(),
		Web:       m.web,
		Message:   m.ErrorMsg,
	}, width)
	view := canvas.String() + "\n" + status

	var dialog *popup.Dialog
	switch {
	case m.Search != nil:
		dialog = m.Search.Dialog(styles.For(f.Theme))
	case m.ShowHelp:
		dialog = helpbindings.Dialog(styles.For(f.Theme))
	}
	if dialog != nil {
		height := max(m.Height, screen.Rows+1)
		view = overlay.Place(view, dialog.Box(width), width, height)
	}
	return view
}
