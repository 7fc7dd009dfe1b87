// Package notify publishes alert and schedule events to desktop
// notifications and MQTT.
package notify

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/llehouerou/mawaqit-display/internal/errmsg"
	"github.com/llehouerou/mawaqit-display/internal/prayer"
)

// Kind is the type of an event.
type Kind int

const (
	AlertStarted Kind = iota
	AlertStopped
	ScheduleUpdated
)

func (k Kind) String() string {
	switch k {
	case AlertStarted:
		return "alert/started"
	case AlertStopped:
		return "alert/stopped"
	case ScheduleUpdated:
		return "schedule"
	default:
		return "unknown"
	}
}

// Event is one published occurrence. Prayer is prayer.None for a test alert;
// Schedule is set for ScheduleUpdated only.
type Event struct {
	Kind     Kind
	Prayer   prayer.Index
	Label    string
	At       time.Time
	Schedule prayer.Schedule
}

// Sink receives events.
type Sink interface {
	Publish(e Event) error
	Close() error
}

// Multi fans events out to several sinks.
type Multi []Sink

// Publish implements Sink. Every sink is tried.
func (m Multi) Publish(e Event) error {
	var errs []error
	for _, s := range m {
		if err := s.Publish(e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close implements Sink.
func (m Multi) Close() error {
	var errs []error
	for _, s := range m {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

const queueSize = 32

// Queue publishes on a background goroutine so callers never wait on the
// network. Events are dropped when the queue is full.
type Queue struct {
	sink   Sink
	events chan Event
	done   chan struct{}
	once   sync.Once
}

// NewQueue starts a worker publishing to sink.
func NewQueue(sink Sink) *Queue {
	q := &Queue{
		sink:   sink,
		events: make(chan Event, queueSize),
		done:   make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *Queue) run() {
	defer close(q.done)
	for e := range q.events {
		if err := q.sink.Publish(e); err != nil {
			log.Warn().Err(err).Stringer("event", e.Kind).Msg(errmsg.Format(errmsg.OpPublish, err))
		}
	}
}

// Publish enqueues e. It never blocks.
func (q *Queue) Publish(e Event) error {
	select {
	case q.events <- e:
	default:
		log.Warn().Stringer("event", e.Kind).Msg("notify queue full, event dropped")
	}
	return nil
}

// Close drains the queue and closes the sink.
func (q *Queue) Close() error {
	var err error
	q.once.Do(func() {
		close(q.events)
		<-q.done
		err = q.sink.Close()
	})
	return err
}

// Player is the alert player contract decorated by AlertPublisher.
type Player interface {
	Start(idx prayer.Index)
	Stop()
}

// AlertPublisher wraps a player and publishes alert start and stop events.
type AlertPublisher struct {
	Player Player
	Sink   Sink
	// Label returns the current mosque name. Optional.
	Label func() string
	Now   func() time.Time
}

// Start implements the alert player contract.
func (a *AlertPublisher) Start(idx prayer.Index) {
	a.Player.Start(idx)
	a.publish(AlertStarted, idx)
}

// Stop implements the alert player contract.
func (a *AlertPublisher) Stop() {
	a.Player.Stop()
	a.publish(AlertStopped, prayer.None)
}

func (a *AlertPublisher) publish(k Kind, idx prayer.Index) {
	e := Event{Kind: k, Prayer: idx, At: time.Now()}
	if a.Now != nil {
		e.At = a.Now()
	}
	if a.Label != nil {
		e.Label = a.Label()
	}
	_ = a.Sink.Publish(e)
}
