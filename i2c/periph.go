package i2c

import (
	"io"

	periphi2c "periph.io/x/conn/v3/i2c"
)

// Periph is a Bus on top of a periph.io I²C bus. Transactions map directly
// onto Tx, so WriteRead uses a repeated start when the host supports it.
type Periph struct {
	bus periphi2c.Bus
}

func NewPeriph(bus periphi2c.Bus) *Periph {
	return &Periph{bus: bus}
}

func (p *Periph) Write(addr uint16, w []byte) error {
	return p.bus.Tx(addr, w, nil)
}

func (p *Periph) Read(addr uint16, r []byte) error {
	return p.bus.Tx(addr, nil, r)
}

func (p *Periph) WriteRead(addr uint16, w, r []byte) error {
	return p.bus.Tx(addr, w, r)
}

// Close closes the underlying bus if it can be closed.
func (p *Periph) Close() error {
	if c, ok := p.bus.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (p *Periph) String() string {
	return p.bus.String()
}
