package touch

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// Goodix GT911 registers.
const (
	gt911Status = 0x814E
	gt911Point  = 0x814F

	// DefaultGT911Addr is the controller address with INT held low at reset.
	DefaultGT911Addr = 0x5D
)

// GT911 samples a Goodix GT911 capacitive controller over I²C. Only the
// first reported point is used.
type GT911 struct {
	bus    i2c.BusCloser
	dev    *i2c.Dev
	width  int
	height int
	last   Sample
	now    func() time.Time
}

// OpenGT911 initializes the host drivers and opens the controller on the
// named bus ("" selects the first bus). width and height bound the
// reported coordinates.
func OpenGT911(busName string, addr uint16, width, height int) (*GT911, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init host: %w", err)
	}
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", busName, err)
	}
	if addr == 0 {
		addr = DefaultGT911Addr
	}
	return &GT911{
		bus:    bus,
		dev:    &i2c.Dev{Bus: bus, Addr: addr},
		width:  width,
		height: height,
		now:    time.Now,
	}, nil
}

// Close releases the bus.
func (g *GT911) Close() error {
	if g.bus != nil {
		return g.bus.Close()
	}
	return nil
}

// Sample implements Sampler. A bus error reports the controller as not
// ready; a controller without fresh data repeats the previous contact state.
func (g *GT911) Sample() (Sample, bool) {
	at := g.now()
	status, err := g.read(gt911Status, 1)
	if err != nil {
		return Sample{}, false
	}
	if status[0]&0x80 == 0 {
		s := g.last
		s.At = at
		return s, true
	}
	defer func() { _ = g.write(gt911Status, 0x00) }()

	count := int(status[0] & 0x0F)
	if count < 1 || count > 5 {
		g.last = Sample{X: g.last.X, Y: g.last.Y, At: at}
		return g.last, true
	}
	data, err := g.read(gt911Point, 8)
	if err != nil {
		return Sample{}, false
	}
	x := int(data[1]) | int(data[2])<<8
	y := int(data[3]) | int(data[4])<<8
	g.last = Sample{X: clamp(x, g.width), Y: clamp(y, g.height), Contact: true, At: at}
	return g.last, true
}

func (g *GT911) read(reg uint16, n int) ([]byte, error) {
	w := []byte{byte(reg >> 8), byte(reg & 0xFF)}
	r := make([]byte, n)
	if err := g.dev.Tx(w, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (g *GT911) write(reg uint16, b byte) error {
	return g.dev.Tx([]byte{byte(reg >> 8), byte(reg & 0xFF), b}, nil)
}

func clamp(v, size int) int {
	if v < 0 {
		return 0
	}
	if size > 0 && v >= size {
		return size - 1
	}
	return v
}
