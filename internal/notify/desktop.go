package notify

import (
	"fmt"
	"sync"

	"github.com/llehouerou/mawaqit-display/internal/prayer"
)

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// Desktop turns alert events into a desktop notification that stays until
// the alert ends.
type Desktop struct {
	notifier Notifier
	mu       sync.Mutex
	id       uint32
}

// NewDesktop creates a sink over notifier.
func NewDesktop(notifier Notifier) *Desktop {
	return &Desktop{notifier: notifier}
}

// Publish implements Sink.
func (d *Desktop) Publish(e Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch e.Kind {
	case AlertStarted:
		id, err := d.notifier.Notify(Notification{
			Title:      alertTitle(e.Prayer),
			Body:       e.Label,
			Icon:       "appointment-soon",
			Timeout:    0,
			ReplacesID: d.id,
			Urgency:    UrgencyCritical,
		})
		if err != nil {
			return err
		}
		d.id = id
	case AlertStopped:
		if d.id == 0 {
			return nil
		}
		id := d.id
		d.id = 0
		return d.notifier.Close(id)
	case ScheduleUpdated:
	}
	return nil
}

// Close implements Sink.
func (d *Desktop) Close() error { return nil }

func alertTitle(idx prayer.Index) string {
	if idx == prayer.None {
		return "Adhan (test)"
	}
	return fmt.Sprintf("Adhan: %s", idx)
}
