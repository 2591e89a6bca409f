// Package bmp180 reads the Bosch BMP180 barometric pressure and temperature
// sensor over I²C.
//
// Datasheet: https://cdn-shop.adafruit.com/datasheets/BST-BMP180-DS000-09.pdf
package bmp180

import (
	"fmt"
	"sync"
	"time"

	"github.com/calmh/bmp180/i2c"
	"periph.io/x/conn/v3/physic"
)

// Opts holds the settings for New. A zero Address or nil Sleeper takes the
// value from DefaultOpts; Mode is used as given.
type Opts struct {
	Address uint16
	Mode    Mode
	Sleeper Sleeper
}

var DefaultOpts = Opts{
	Address: Address,
	Mode:    Standard,
	Sleeper: BlockingSleeper,
}

// Dev is a handle to one BMP180. It is safe for concurrent use; bus access
// is serialized and a second acquisition waits for the first to finish.
type Dev struct {
	seq     sequencer
	mode    Mode
	cal     Calibration
	mut     sync.Mutex
	cached  time.Time
	raw     RawReading
	rawMode Mode // mode raw was taken in
	valid   bool
}

// New reads the calibration block and returns a handle. It fails if the
// block can't be read or is obviously garbage.
func New(bus i2c.Bus, opts *Opts) (*Dev, error) {
	o := DefaultOpts
	if opts != nil {
		o.Mode = opts.Mode
		if opts.Address != 0 {
			o.Address = opts.Address
		}
		if opts.Sleeper != nil {
			o.Sleeper = opts.Sleeper
		}
	}
	if !o.Mode.valid() {
		return nil, fmt.Errorf("%w: %v", errInvalidMode, o.Mode)
	}

	cal, err := LoadCalibration(bus, o.Address)
	if err != nil {
		return nil, err
	}
	if err := cal.Validate(); err != nil {
		return nil, fmt.Errorf("read calibration data: %w", err)
	}

	return &Dev{
		seq:  sequencer{bus: bus, addr: o.Address, sleep: o.Sleeper},
		mode: o.Mode,
		cal:  cal,
	}, nil
}

// Update acquires a new reading in the configured mode.
func (d *Dev) Update() error {
	d.mut.Lock()
	defer d.mut.Unlock()
	return d.update(d.mode)
}

// UpdateMode acquires a new reading in the given mode. The configured mode
// is unchanged.
func (d *Dev) UpdateMode(mode Mode) error {
	if !mode.valid() {
		return fmt.Errorf("%w: %v", errInvalidMode, mode)
	}
	d.mut.Lock()
	defer d.mut.Unlock()
	return d.update(mode)
}

// TryUpdate is like Update but returns ErrBusy instead of waiting when an
// acquisition is already in progress.
func (d *Dev) TryUpdate() error {
	if !d.mut.TryLock() {
		return ErrBusy
	}
	defer d.mut.Unlock()
	return d.update(d.mode)
}

// Refresh acquires a new reading unless the current one is younger than age.
func (d *Dev) Refresh(age time.Duration) error {
	d.mut.Lock()
	defer d.mut.Unlock()

	if d.valid && time.Since(d.cached) < age {
		return nil
	}
	return d.update(d.mode)
}

// update must be called with d.mut held.
func (d *Dev) update(mode Mode) error {
	raw, err := d.seq.acquire(mode)
	if err != nil {
		return err
	}
	d.raw = raw
	d.rawMode = mode
	d.valid = true
	d.cached = time.Now()
	return nil
}

// Sample returns the compensated last reading.
func (d *Dev) Sample() (Sample, error) {
	d.mut.Lock()
	defer d.mut.Unlock()
	return d.sample()
}

func (d *Dev) sample() (Sample, error) {
	if !d.valid {
		return Sample{}, ErrNoReading
	}
	return Compensate(d.raw, &d.cal, d.rawMode)
}

// Temperature returns the last reading's temperature in °C.
func (d *Dev) Temperature() (float64, error) {
	s, err := d.Sample()
	if err != nil {
		return 0, err
	}
	return s.Temperature, nil
}

// Pressure returns the last reading's pressure.
func (d *Dev) Pressure() (Pressure, error) {
	s, err := d.Sample()
	if err != nil {
		return Pressure{}, err
	}
	return s.Pressure, nil
}

// Raw returns the last uncompensated reading and the mode it was taken in.
func (d *Dev) Raw() (RawReading, Mode, error) {
	d.mut.Lock()
	defer d.mut.Unlock()
	if !d.valid {
		return RawReading{}, 0, ErrNoReading
	}
	return d.raw, d.rawMode, nil
}

func (d *Dev) Calibration() Calibration {
	return d.cal
}

func (d *Dev) Mode() Mode {
	return d.mode
}

// State reports where the sequencer is. It does not wait for an acquisition
// in progress.
func (d *Dev) State() State {
	return d.seq.current()
}

// ChipID reads the chip id register. A BMP180 answers ExpectedChipID.
func (d *Dev) ChipID() (byte, error) {
	d.mut.Lock()
	defer d.mut.Unlock()

	var id [1]byte
	if err := d.seq.bus.WriteRead(d.seq.addr, []byte{regChipID}, id[:]); err != nil {
		return 0, &TransportError{Op: "read chip id", Err: err}
	}
	return id[0], nil
}

// Reset performs a soft reset and waits for the device to start up again.
// The calibration and last reading are kept.
func (d *Dev) Reset() error {
	d.mut.Lock()
	defer d.mut.Unlock()

	if err := d.seq.bus.Write(d.seq.addr, []byte{regSoftReset, cmdSoftReset}); err != nil {
		return &TransportError{Op: "soft reset", Err: err}
	}
	d.seq.sleep.Sleep(startupDelay)
	return nil
}

// Sense acquires a reading and stores it in e. Humidity is left alone.
func (d *Dev) Sense(e *physic.Env) error {
	d.mut.Lock()
	defer d.mut.Unlock()

	if err := d.update(d.mode); err != nil {
		return err
	}
	s, err := d.sample()
	if err != nil {
		return err
	}
	// Tenths of a degree to Kelvin.
	e.Temperature = physic.Temperature(temperatureTenths(s.B5))*100*physic.MilliCelsius + physic.ZeroCelsius
	e.Pressure = s.Pressure.Physic()
	return nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("BMP180{0x%02x}", d.seq.addr)
}

// Halt is a no-op; the device sleeps by itself between conversions.
func (d *Dev) Halt() error {
	return nil
}
