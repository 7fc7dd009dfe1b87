// internal/app/update.go
package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/mawaqit-display/internal/errmsg"
	"github.com/llehouerou/mawaqit-display/internal/notify"
	"github.com/llehouerou/mawaqit-display/internal/ui/mosquesearch"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case TickMsg:
		m.Controller.Tick(m.now())
		return m, TickCmd(m.tick)

	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case ScheduleMsg:
		return m.handleSchedule(msg)

	case FetchFailedMsg:
		m.ErrorMsg = errmsg.Format(errmsg.OpScheduleFetch, msg.Err)
		return m, nil

	case CallMsg:
		msg.Reply <- msg.Fn(m.Controller)
		return m, nil

	case StderrMsg:
		m.ErrorMsg = msg.Line
		return m, WatchStderr()

	case mosquesearch.SelectedMsg:
		return m.handleMosqueSelected(msg)

	case mosquesearch.CloseMsg:
		m.Search = nil
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	// Search results and cursor blinks.
	if m.Search != nil {
		return m, m.Search.Update(msg)
	}
	return m, nil
}

func (m Model) handleMosqueSelected(msg mosquesearch.SelectedMsg) (tea.Model, tea.Cmd) {
	m.Search = nil
	if m.selector == nil {
		return m, nil
	}
	if err := m.selector.Select(msg.Selection); err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpMosqueSelect, err)
		log.Error().Err(err).Str("mosque", msg.Selection.Name).Msg(m.ErrorMsg)
		return m, nil
	}
	log.Info().Str("mosque", msg.Selection.Name).Msg("mosque selected")
	return m, nil
}

func (m Model) handleSchedule(msg ScheduleMsg) (tea.Model, tea.Cmd) {
	m.Controller.SetSchedule(msg.Schedule)
	m.FetchedAt = msg.FetchedAt
	m.ErrorMsg = ""
	if m.Events != nil {
		err := m.Events.Publish(notify.Event{
			Kind:     notify.ScheduleUpdated,
			Label:    msg.Schedule.Label,
			At:       msg.FetchedAt,
			Schedule: msg.Schedule,
		})
		if err != nil {
			log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpPublish, err))
		}
	}
	return m, nil
}

// loading reports whether the last frame is the loading screen.
func (m Model) loading() bool {
	f, ok := m.Frames.Last()
	return !ok || f.Loading
}
