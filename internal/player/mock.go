// internal/player/mock.go
package player

import "github.com/llehouerou/mawaqit-display/internal/prayer"

// Mock is a test double for Player.
type Mock struct {
	state      State
	startCalls []prayer.Index
	stopCalls  int
	done       chan struct{}
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{state: Stopped, done: make(chan struct{})}
}

func (m *Mock) Start(idx prayer.Index) {
	m.startCalls = append(m.startCalls, idx)
	m.state = Playing
}

func (m *Mock) Stop() {
	m.stopCalls++
	m.state = Stopped
}

func (m *Mock) State() State { return m.state }

func (m *Mock) Done() <-chan struct{} { return m.done }

// Test helpers

func (m *Mock) StartCalls() []prayer.Index { return m.startCalls }

func (m *Mock) StopCalls() int { return m.stopCalls }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
