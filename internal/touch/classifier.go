// Package touch turns polled single-point contact samples into press,
// release and long-press events.
package touch

import "time"

// LongPress is the fixed hold duration that separates a tap from a long press.
const LongPress = 1500 * time.Millisecond

// Sample is one raw poll of the touch controller.
type Sample struct {
	X       int
	Y       int
	Contact bool
	At      time.Time
}

// Sampler yields one sample per poll. ok is false when the hardware is not
// ready; the caller then skips classification for that tick.
type Sampler interface {
	Sample() (s Sample, ok bool)
}

// Kind tags an Event.
type Kind int

const (
	Pressed Kind = iota
	Released
	HeldPastThreshold
)

func (k Kind) String() string {
	switch k {
	case Pressed:
		return "Pressed"
	case Released:
		return "Released"
	case HeldPastThreshold:
		return "HeldPastThreshold"
	default:
		return "Unknown"
	}
}

// Event is an edge derived from two consecutive samples. X and Y are the
// last contact coordinates; Duration is set on Released only.
type Event struct {
	Kind     Kind
	X        int
	Y        int
	Duration time.Duration
	At       time.Time
}

// Short reports whether a Released event completed before the long-press
// threshold.
func (e Event) Short() bool {
	return e.Kind == Released && e.Duration < LongPress
}

// Classifier debounces samples into events. Each touch-and-lift cycle
// produces exactly one Pressed, at most one HeldPastThreshold and exactly
// one Released.
type Classifier struct {
	lastContact    bool
	pressStart     time.Time
	longPressFired bool
	x, y           int
}

// NewClassifier returns an idle classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Update consumes the latest sample and returns the event it produces, if any.
func (c *Classifier) Update(s Sample) (Event, bool) {
	if s.Contact {
		c.x, c.y = s.X, s.Y
	}
	defer func() { c.lastContact = s.Contact }()

	switch {
	case s.Contact && !c.lastContact:
		c.pressStart = s.At
		c.longPressFired = false
		return Event{Kind: Pressed, X: c.x, Y: c.y, At: s.At}, true

	case s.Contact && c.lastContact:
		if c.longPressFired || s.At.Sub(c.pressStart) < LongPress {
			return Event{}, false
		}
		c.longPressFired = true
		return Event{Kind: HeldPastThreshold, X: c.x, Y: c.y, At: s.At}, true

	case !s.Contact && c.lastContact:
		return Event{
			Kind:     Released,
			X:        c.x,
			Y:        c.y,
			Duration: s.At.Sub(c.pressStart),
			At:       s.At,
		}, true
	}
	return Event{}, false
}

// Held reports whether a contact is currently in progress.
func (c *Classifier) Held() bool { return c.lastContact }
