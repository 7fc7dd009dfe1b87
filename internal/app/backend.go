package app

import (
	"errors"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/mawaqit-display/internal/controller"
	"github.com/llehouerou/mawaqit-display/internal/mawaqit"
	"github.com/llehouerou/mawaqit-display/internal/prayer"
	"github.com/llehouerou/mawaqit-display/internal/state"
	"github.com/llehouerou/mawaqit-display/internal/web"
)

// ErrBusy is returned when the display loop did not answer in time.
var ErrBusy = errors.New("display not responding")

const defaultCallTimeout = 2 * time.Second

// MosqueRef holds the mosque the refresher fetches. It is shared between
// the web API and the refresher goroutines.
type MosqueRef struct {
	mu  sync.RWMutex
	sel mawaqit.Selection
}

// NewMosqueRef returns a reference holding sel.
func NewMosqueRef(sel mawaqit.Selection) *MosqueRef {
	return &MosqueRef{sel: sel}
}

// Get returns the current selection.
func (r *MosqueRef) Get() mawaqit.Selection {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sel
}

// Set replaces the selection.
func (r *MosqueRef) Set(sel mawaqit.Selection) {
	r.mu.Lock()
	r.sel = sel
	r.mu.Unlock()
}

// Selector switches the displayed mosque: the choice is persisted, handed
// to the refresher and fetched right away.
type Selector struct {
	Store   state.Interface
	Mosque  *MosqueRef
	Refresh func()
}

// Select applies sel. It is safe for concurrent use.
func (s *Selector) Select(sel mawaqit.Selection) error {
	if s.Store != nil {
		if err := s.Store.SaveMosque(state.Mosque{UUID: sel.ID, Name: sel.Name}); err != nil {
			return err
		}
	}
	s.Mosque.Set(sel)
	if s.Refresh != nil {
		s.Refresh()
	}
	return nil
}

// Backend implements web.Backend by running each request on the program's
// goroutine, the only one allowed to touch the controller.
type Backend struct {
	send     func(tea.Msg)
	timeout  time.Duration
	selector *Selector
}

var _ web.Backend = (*Backend)(nil)

// NewBackend creates a backend. send is usually (*tea.Program).Send.
func NewBackend(send func(tea.Msg), selector *Selector) *Backend {
	return &Backend{
		send:     send,
		timeout:  defaultCallTimeout,
		selector: selector,
	}
}

// call runs fn on the program loop. The timeout covers delivery too, since
// Send blocks until the loop is running. A call that timed out is skipped if
// it is delivered later.
func (b *Backend) call(fn func(*controller.Controller) any) (any, error) {
	reply := make(chan any, 1)
	abandoned := make(chan struct{})
	msg := CallMsg{
		Fn: func(c *controller.Controller) any {
			select {
			case <-abandoned:
				return nil
			default:
				return fn(c)
			}
		},
		Reply: reply,
	}
	go b.send(msg)

	timer := time.NewTimer(b.timeout)
	defer timer.Stop()
	select {
	case v := <-reply:
		return v, nil
	case <-timer.C:
		close(abandoned)
		return nil, ErrBusy
	}
}

func (b *Backend) callBool(fn func(*controller.Controller) bool) (bool, error) {
	v, err := b.call(func(c *controller.Controller) any { return fn(c) })
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

// Snapshot implements web.Backend. A loop that does not answer yields the
// zero snapshot, which reads as not loaded.
func (b *Backend) Snapshot() controller.Snapshot {
	v, err := b.call(func(c *controller.Controller) any { return c.Snapshot() })
	if err != nil {
		return controller.Snapshot{AlertPrayer: prayer.None}
	}
	return v.(controller.Snapshot)
}

// SetAlert implements web.Backend.
func (b *Backend) SetAlert(idx prayer.Index, on bool) error {
	_, err := b.call(func(c *controller.Controller) any {
		c.SetAlert(idx, on)
		return nil
	})
	return err
}

// ToggleRotation implements web.Backend.
func (b *Backend) ToggleRotation() (bool, error) {
	return b.callBool(func(c *controller.Controller) bool {
		on := !c.Settings().Rotation
		c.SetRotation(on)
		return on
	})
}

// TestAlert implements web.Backend.
func (b *Backend) TestAlert() (bool, error) {
	return b.callBool((*controller.Controller).TestAlert)
}

// StopAlert implements web.Backend.
func (b *Backend) StopAlert() (bool, error) {
	return b.callBool((*controller.Controller).StopAlert)
}

// SelectMosque implements web.Backend.
func (b *Backend) SelectMosque(sel mawaqit.Selection) error {
	return b.selector.Select(sel)
}
