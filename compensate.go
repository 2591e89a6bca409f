package bmp180

import "fmt"

// RawReading is one uncompensated temperature/pressure pair.
type RawReading struct {
	Temperature int16 // UT
	Pressure    int32 // UP, already shifted down to the mode's resolution
}

// Sample is a compensated reading.
type Sample struct {
	Temperature float64 // °C
	Pressure    Pressure
	B5          int32
}

// Compensate applies the datasheet algorithm to a raw reading taken in the
// given mode.
func Compensate(raw RawReading, cal *Calibration, mode Mode) (Sample, error) {
	if !mode.valid() {
		return Sample{}, errInvalidMode
	}
	b5, err := cal.B5(raw.Temperature)
	if err != nil {
		return Sample{}, err
	}
	pa, err := cal.pressure(raw.Pressure, b5, mode.Shift())
	if err != nil {
		return Sample{}, err
	}
	return Sample{
		Temperature: float64(temperatureTenths(b5)) / 10,
		Pressure:    Pressure{pa: float64(pa)},
		B5:          b5,
	}, nil
}

// temperatureTenths returns the temperature in units of 0.1 °C.
func temperatureTenths(b5 int32) int32 {
	return (b5 + 8) >> 4
}

// pressure returns the compensated pressure in Pa. Signed intermediates use
// arithmetic shifts, except B3 which truncates; B4, B7 and the division are
// unsigned 32 bit and wrap.
func (c *Calibration) pressure(up, b5 int32, oss uint8) (int32, error) {
	b6 := b5 - 4000
	t2 := (b6 * b6) >> 12

	x1 := (int32(c.B2) * t2) >> 11
	x2 := (int32(c.AC2) * b6) >> 11
	x3 := x1 + x2
	b3 := (((int32(c.AC1)*4 + x3) << oss) + 2) / 4

	x1 = (int32(c.AC3) * b6) >> 13
	x2 = (int32(c.B1) * t2) >> 16
	x3 = (x1 + x2 + 2) >> 2
	b4 := (uint32(c.AC4) * uint32(x3+32768)) >> 15
	if b4 == 0 {
		return 0, fmt.Errorf("%w: B4 is zero", ErrDomain)
	}

	b7 := uint32(up-b3) * (uint32(50000) >> oss)
	var p int32
	if b7 < 0x80000000 {
		p = int32((b7 << 1) / b4)
	} else {
		p = int32((b7 / b4) << 1)
	}

	x1 = (p >> 8) * (p >> 8)
	x1 = (x1 * 3038) >> 16
	x2 = (-7357 * p) >> 16
	return p + ((x1 + x2 + 3791) >> 4), nil
}
