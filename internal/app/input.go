package app

import (
	"image"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/mawaqit-display/internal/controller"
	"github.com/llehouerou/mawaqit-display/internal/keymap"
	"github.com/llehouerou/mawaqit-display/internal/layout"
	"github.com/llehouerou/mawaqit-display/internal/touch"
	"github.com/llehouerou/mawaqit-display/internal/ui/mosquesearch"
	"github.com/llehouerou/mawaqit-display/internal/ui/screen"
)

// Key presses emulate touches of these lengths.
const (
	tapDuration  = 100 * time.Millisecond
	holdDuration = touch.LongPress + 200*time.Millisecond
)

// tapPoint is a spot outside every settings zone, so a key tap never
// toggles a setting by accident.
var tapPoint = image.Pt(layout.Width*3/4, layout.Height*3/4)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Search != nil {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, m.Search.Update(msg)
	}

	binding, ok := m.Keys.Lookup(msg.String())
	if !ok {
		return m, nil
	}
	action := binding.Action
	log.Debug().Str("key", msg.String()).Str("action", binding.Description).Msg("key binding")

	if m.ShowHelp {
		switch action {
		case keymap.ActionQuit:
			return m, tea.Quit
		case keymap.ActionHelp, keymap.ActionBack:
			m.ShowHelp = false
		}
		return m, nil
	}

	switch action {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionHelp:
		m.ShowHelp = true
	case keymap.ActionTap:
		m.press(tapPoint, tapDuration)
	case keymap.ActionHold:
		m.press(tapPoint, holdDuration)
	case keymap.ActionBack:
		if m.Controller.Mode() != controller.ModeSettings {
			return m, nil
		}
		if z, ok := m.panelLayout().Find(layout.Target{Kind: layout.KindBack}); ok {
			m.press(center(z.Bounds), tapDuration)
		}
	case keymap.ActionTestAlert:
		m.Controller.TestAlert()
	case keymap.ActionStopAlert:
		m.Controller.StopAlert()
	case keymap.ActionRotate:
		m.Controller.SetRotation(!m.Controller.Settings().Rotation)
	case keymap.ActionRefresh:
		if m.refresh != nil {
			m.refresh()
		}
	case keymap.ActionMosque:
		if m.searcher != nil {
			m.Search = mosquesearch.New(m.searcher)
			return m, m.Search.Init()
		}
	}
	return m, nil
}

// handleMouseMsg turns left button activity on the panel into pointer
// contact. The panel occupies the top-left Cols x Rows cells.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.Pointer == nil || m.ShowHelp || m.Search != nil {
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if p, ok := m.panelPoint(msg.X, msg.Y); ok {
			m.Pointer.Press(p.X, p.Y)
		}
	case tea.MouseActionMotion:
		if p, ok := m.panelPoint(msg.X, msg.Y); ok {
			m.Pointer.Move(p.X, p.Y)
		}
	case tea.MouseActionRelease:
		m.Pointer.Release()
	}
	return m, nil
}

// panelPoint maps a terminal cell to the panel pixel at its center. The
// simulated panel is never mounted upside down, so the flip the controller
// applies under the rotation setting is undone here.
func (m Model) panelPoint(col, row int) (image.Point, bool) {
	if col < 0 || row < 0 || col >= screen.Cols || row >= screen.Rows {
		return image.Point{}, false
	}
	x, y := screen.CellCenter(col, row)
	return m.unrotate(image.Pt(x, y)), true
}

func (m Model) press(p image.Point, d time.Duration) {
	if m.Pointer == nil {
		return
	}
	p = m.unrotate(p)
	m.Pointer.PressFor(p.X, p.Y, d)
}

func (m Model) unrotate(p image.Point) image.Point {
	if !m.Controller.Settings().Rotation {
		return p
	}
	s := touch.Rotate180(touch.Sample{X: p.X, Y: p.Y}, layout.Width, layout.Height)
	return image.Pt(s.X, s.Y)
}

// panelLayout is the zone layout of the last frame.
func (m Model) panelLayout() layout.Layout {
	if f, ok := m.Frames.Last(); ok && f.Layout.Zones != nil {
		return f.Layout
	}
	return layout.Default()
}

func center(r image.Rectangle) image.Point {
	return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}
