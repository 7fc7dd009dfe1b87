package touch

import "time"

// Pointer is a Sampler driven by pointer callbacks (terminal mouse events,
// keyboard shortcuts). A press that is released before the next poll is
// still reported for one sample so quick clicks are never lost.
type Pointer struct {
	x, y          int
	down          bool
	seen          bool
	releaseQueued bool
	until         time.Time
	now           func() time.Time
}

// NewPointer returns an idle pointer sampler.
func NewPointer() *Pointer {
	return &Pointer{now: time.Now}
}

// Press starts a contact at (x, y).
func (p *Pointer) Press(x, y int) {
	p.x, p.y = x, y
	p.down = true
	p.seen = false
	p.releaseQueued = false
	p.until = time.Time{}
}

// Move updates the coordinates of an ongoing contact.
func (p *Pointer) Move(x, y int) {
	if p.down {
		p.x, p.y = x, y
	}
}

// Release ends the contact.
func (p *Pointer) Release() {
	if !p.down {
		return
	}
	if !p.seen {
		p.releaseQueued = true
		return
	}
	p.down = false
}

// PressFor holds a contact at (x, y) for d, then releases it on its own.
func (p *Pointer) PressFor(x, y int, d time.Duration) {
	p.Press(x, y)
	p.until = p.now().Add(d)
}

// Sample implements Sampler. It is always ready.
func (p *Pointer) Sample() (Sample, bool) {
	at := p.now()
	if p.down && p.seen && !p.until.IsZero() && !at.Before(p.until) {
		p.down = false
		p.until = time.Time{}
	}
	s := Sample{X: p.x, Y: p.y, Contact: p.down, At: at}
	if p.down {
		p.seen = true
		if p.releaseQueued {
			p.down = false
			p.releaseQueued = false
		}
	}
	return s, true
}

// Rotate180 maps a sample taken on a panel mounted upside down.
func Rotate180(s Sample, width, height int) Sample {
	s.X = width - 1 - s.X
	s.Y = height - 1 - s.Y
	return s
}
