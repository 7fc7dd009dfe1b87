package mosquesearch

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/mawaqit-display/internal/mawaqit"
)

// Init starts the cursor blink.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles keys and search results.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return func() tea.Msg { return CloseMsg{} }
		}
		if m.state != StateInput {
			return m.handleResultKey(msg)
		}
		if msg.String() == "enter" {
			return m.submit()
		}

	case ResultMsg:
		m.handleResult(msg)
		return nil
	}

	if m.state != StateInput {
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) submit() tea.Cmd {
	query := m.input.Value()
	if len([]rune(query)) < minQueryLength {
		m.errorMsg = fmt.Sprintf("Type at least %d characters", minQueryLength)
		return nil
	}
	m.query = query
	m.state = StateSearching
	m.statusMsg = "Searching..."
	m.errorMsg = ""
	m.input.Blur()
	return search(m.searcher, query)
}

func (m *Model) handleResultKey(msg tea.KeyMsg) tea.Cmd {
	if m.state == StateSearching {
		return nil
	}
	switch msg.String() {
	case "up", "k":
		m.pos = max(m.pos-1, 0)
	case "down", "j":
		m.pos = min(m.pos+1, max(len(m.results)-1, 0))
	case "backspace":
		m.state = StateInput
		m.input.Focus()
		m.results = nil
		m.pos = 0
		m.statusMsg = ""
	case "enter":
		if m.pos >= len(m.results) {
			return nil
		}
		picked := m.results[m.pos]
		sel := mawaqit.Selection{ID: picked.UUID, Name: picked.Name}
		return func() tea.Msg { return SelectedMsg{Selection: sel} }
	}
	return nil
}

func (m *Model) handleResult(msg ResultMsg) {
	if m.state != StateSearching || msg.Query != m.query {
		return
	}
	if msg.Err != nil {
		m.state = StateInput
		m.errorMsg = fmt.Sprintf("Search error: %v", msg.Err)
		m.statusMsg = ""
		m.input.Focus()
		return
	}

	m.results = msg.Mosques
	m.pos = 0
	m.state = StateResults
	m.statusMsg = ""
	if len(m.results) == 0 {
		m.statusMsg = "No mosque found"
	}
}

// search runs the lookup in the background.
func search(s Searcher, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
		defer cancel()
		mosques, err := s.Search(ctx, query)
		return ResultMsg{Query: query, Mosques: mosques, Err: err}
	}
}
