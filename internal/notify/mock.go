package notify

import "sync"

// MockSink records published events for testing.
type MockSink struct {
	mu     sync.Mutex
	events []Event
	Err    error
	closed bool
}

var _ Sink = (*MockSink)(nil)

// Publish implements Sink.
func (m *MockSink) Publish(e Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, e)
	return m.Err
}

// Close implements Sink.
func (m *MockSink) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Events returns a copy of the published events.
func (m *MockSink) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

// IsClosed reports whether Close was called.
func (m *MockSink) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
