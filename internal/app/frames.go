package app

import (
	"sync"

	"github.com/llehouerou/mawaqit-display/internal/controller"
)

// Frames is the controller's renderer in the simulator: it keeps the last
// frame for View.
type Frames struct {
	mu   sync.Mutex
	last controller.Frame
	ok   bool
	n    int
}

var _ controller.Renderer = (*Frames)(nil)

// Render implements controller.Renderer.
func (f *Frames) Render(fr controller.Frame) {
	f.mu.Lock()
	f.last, f.ok = fr, true
	f.n++
	f.mu.Unlock()
}

// Last returns the most recent frame.
func (f *Frames) Last() (controller.Frame, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last, f.ok
}

// Count returns the number of frames rendered so far.
func (f *Frames) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.n
}
