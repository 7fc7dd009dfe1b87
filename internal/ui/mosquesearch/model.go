// Package mosquesearch provides the popup that looks up a mosque by name and
// selects it as the source of the prayer times.
package mosquesearch

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/llehouerou/mawaqit-display/internal/mawaqit"
)

// State represents the current state of the popup.
type State int

const (
	StateInput     State = iota // Waiting for search input
	StateSearching              // Request in flight
	StateResults                // Showing results
)

const (
	minQueryLength = 2
	maxVisible     = 8
	searchTimeout  = 10 * time.Second
)

// Searcher looks up mosques by name.
type Searcher interface {
	Search(ctx context.Context, word string) ([]mawaqit.Mosque, error)
}

// Model is the Bubble Tea model of the popup.
type Model struct {
	state    State
	input    textinput.Model
	query    string
	results  []mawaqit.Mosque
	pos      int
	searcher Searcher

	statusMsg string
	errorMsg  string
}

// New creates the popup in input state.
func New(searcher Searcher) *Model {
	ti := textinput.New()
	ti.Placeholder = "Mosque name..."
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 36

	return &Model{
		state:    StateInput,
		input:    ti,
		searcher: searcher,
	}
}

// State returns the current state.
func (m *Model) State() State {
	return m.state
}

// Results returns the last search results.
func (m *Model) Results() []mawaqit.Mosque {
	return m.results
}

// Reset clears all state and returns to input.
func (m *Model) Reset() {
	m.state = StateInput
	m.input.SetValue("")
	m.input.Focus()
	m.query = ""
	m.results = nil
	m.pos = 0
	m.statusMsg = ""
	m.errorMsg = ""
}
