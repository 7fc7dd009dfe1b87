package notify

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/mawaqit-display/internal/prayer"
)

type playerSpy struct {
	started []prayer.Index
	stops   int
}

func (p *playerSpy) Start(idx prayer.Index) { p.started = append(p.started, idx) }
func (p *playerSpy) Stop()                  { p.stops++ }

func TestAlertPublisher(t *testing.T) {
	at := time.Date(2026, 3, 1, 5, 10, 0, 0, time.UTC)
	player := &playerSpy{}
	sink := &MockSink{}
	a := &AlertPublisher{
		Player: player,
		Sink:   sink,
		Label:  func() string { return "Grande Mosquée" },
		Now:    func() time.Time { return at },
	}

	a.Start(prayer.Fajr)
	a.Stop()

	assert.Equal(t, []prayer.Index{prayer.Fajr}, player.started)
	assert.Equal(t, 1, player.stops)
	events := sink.Events()
	require.Len(t, events, 2)
	assert.Equal(t, Event{Kind: AlertStarted, Prayer: prayer.Fajr, Label: "Grande Mosquée", At: at}, events[0])
	assert.Equal(t, AlertStopped, events[1].Kind)
	assert.Equal(t, prayer.None, events[1].Prayer)
}

func TestMultiPublishesToAll(t *testing.T) {
	failing := &MockSink{Err: errors.New("down")}
	ok := &MockSink{}
	m := Multi{failing, ok}

	err := m.Publish(Event{Kind: AlertStopped})
	require.Error(t, err)
	assert.Len(t, ok.Events(), 1)

	require.NoError(t, m.Close())
	assert.True(t, failing.IsClosed())
	assert.True(t, ok.IsClosed())
}

func TestQueueDrainsOnClose(t *testing.T) {
	sink := &MockSink{}
	q := NewQueue(sink)
	for range 5 {
		require.NoError(t, q.Publish(Event{Kind: AlertStarted}))
	}
	require.NoError(t, q.Close())
	require.NoError(t, q.Close())

	assert.Len(t, sink.Events(), 5)
	assert.True(t, sink.IsClosed())
}

type fakeNotifier struct {
	sent   []Notification
	closed []uint32
	nextID uint32
}

func (f *fakeNotifier) Notify(n Notification) (uint32, error) {
	f.sent = append(f.sent, n)
	f.nextID++
	return f.nextID, nil
}

func (f *fakeNotifier) Close(id uint32) error {
	f.closed = append(f.closed, id)
	return nil
}

func TestDesktopAlertLifecycle(t *testing.T) {
	n := &fakeNotifier{}
	d := NewDesktop(n)

	require.NoError(t, d.Publish(Event{Kind: AlertStarted, Prayer: prayer.Maghrib, Label: "Mosque"}))
	require.NoError(t, d.Publish(Event{Kind: ScheduleUpdated}))
	require.NoError(t, d.Publish(Event{Kind: AlertStopped}))
	require.NoError(t, d.Publish(Event{Kind: AlertStopped}))

	require.Len(t, n.sent, 1)
	assert.Equal(t, "Adhan: Maghrib", n.sent[0].Title)
	assert.Equal(t, UrgencyCritical, n.sent[0].Urgency)
	assert.Equal(t, int32(0), n.sent[0].Timeout)
	assert.Equal(t, []uint32{1}, n.closed)
}

func TestDesktopTestAlertTitle(t *testing.T) {
	n := &fakeNotifier{}
	require.NoError(t, NewDesktop(n).Publish(Event{Kind: AlertStarted, Prayer: prayer.None}))
	assert.Equal(t, "Adhan (test)", n.sent[0].Title)
}

type fakeToken struct {
	err     error
	timeout bool
}

func (t *fakeToken) Wait() bool                       { return !t.timeout }
func (t *fakeToken) WaitTimeout(_ time.Duration) bool { return !t.timeout }
func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t *fakeToken) Error() error { return t.err }

type published struct {
	topic    string
	retained bool
	payload  []byte
}

type fakeClient struct {
	published    []published
	token        *fakeToken
	disconnected bool
}

func (c *fakeClient) Publish(topic string, _ byte, retained bool, payload interface{}) mqtt.Token {
	c.published = append(c.published, published{topic, retained, payload.([]byte)})
	if c.token != nil {
		return c.token
	}
	return &fakeToken{}
}

func (c *fakeClient) Disconnect(uint) { c.disconnected = true }

func TestMQTTTopics(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := prayer.NewSchedule([prayer.Count]string{"05:10", "06:40", "12:30", "15:45", "18:20", "19:50"}, "Mosque")
	s.Date = "2026-03-01"

	tests := []struct {
		name     string
		event    Event
		topic    string
		retained bool
		check    func(t *testing.T, body map[string]any)
	}{
		{
			name:  "alert started",
			event: Event{Kind: AlertStarted, Prayer: prayer.Asr, At: at},
			topic: "mawaqit/alert/started",
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "Asr", body["prayer"])
				assert.InDelta(t, 3, body["index"], 0)
				assert.Equal(t, false, body["test"])
			},
		},
		{
			name:  "test alert",
			event: Event{Kind: AlertStarted, Prayer: prayer.None, At: at},
			topic: "mawaqit/alert/started",
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, true, body["test"])
			},
		},
		{
			name:  "alert stopped",
			event: Event{Kind: AlertStopped, Prayer: prayer.None, At: at},
			topic: "mawaqit/alert/stopped",
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, false, body["test"])
			},
		},
		{
			name:     "schedule",
			event:    Event{Kind: ScheduleUpdated, Schedule: s, At: at},
			topic:    "mawaqit/schedule",
			retained: true,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "Mosque", body["mosque"])
				assert.Equal(t, "2026-03-01", body["date"])
				times := body["times"].(map[string]any)
				assert.Equal(t, "05:10", times["Fajr"])
				assert.Equal(t, "19:50", times["Isha"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &fakeClient{}
			m := newMQTT(c, "mawaqit")
			require.NoError(t, m.Publish(tt.event))
			require.Len(t, c.published, 1)
			p := c.published[0]
			assert.Equal(t, tt.topic, p.topic)
			assert.Equal(t, tt.retained, p.retained)
			var body map[string]any
			require.NoError(t, json.Unmarshal(p.payload, &body))
			tt.check(t, body)
		})
	}
}

func TestMQTTPublishErrors(t *testing.T) {
	c := &fakeClient{token: &fakeToken{timeout: true}}
	m := newMQTT(c, "x")
	assert.ErrorIs(t, m.Publish(Event{Kind: AlertStopped}), ErrPublishTimeout)

	c.token = &fakeToken{err: errors.New("refused")}
	assert.EqualError(t, m.Publish(Event{Kind: AlertStopped}), "refused")

	assert.Error(t, m.Publish(Event{Kind: Kind(42)}))

	require.NoError(t, m.Close())
	assert.True(t, c.disconnected)
}
