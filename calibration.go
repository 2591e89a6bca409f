package bmp180

import (
	"encoding/binary"
	"fmt"

	"github.com/calmh/bmp180/i2c"
)

// Calibration holds the factory coefficients from the device EEPROM. MB is
// read and kept for completeness but the compensation formula never uses it.
type Calibration struct {
	AC1 int16  `json:"ac1"`
	AC2 int16  `json:"ac2"`
	AC3 int16  `json:"ac3"`
	AC4 uint16 `json:"ac4"`
	AC5 uint16 `json:"ac5"`
	AC6 uint16 `json:"ac6"`
	B1  int16  `json:"b1"`
	B2  int16  `json:"b2"`
	MB  int16  `json:"mb"`
	MC  int16  `json:"mc"`
	MD  int16  `json:"md"`
}

var calibNames = [...]string{"AC1", "AC2", "AC3", "AC4", "AC5", "AC6", "B1", "B2", "MB", "MC", "MD"}

// LoadCalibration reads the 22 byte calibration block in one transaction.
func LoadCalibration(bus i2c.Bus, addr uint16) (Calibration, error) {
	var buf [calibLen]byte
	if err := bus.WriteRead(addr, []byte{regCalib}, buf[:]); err != nil {
		return Calibration{}, &TransportError{Op: "read calibration data", Err: err}
	}
	return parseCalibration(buf[:]), nil
}

func parseCalibration(b []byte) Calibration {
	var w [len(calibNames)]uint16
	for i := range w {
		w[i] = binary.BigEndian.Uint16(b[2*i:])
	}
	return Calibration{
		AC1: int16(w[0]),
		AC2: int16(w[1]),
		AC3: int16(w[2]),
		AC4: w[3],
		AC5: w[4],
		AC6: w[5],
		B1:  int16(w[6]),
		B2:  int16(w[7]),
		MB:  int16(w[8]),
		MC:  int16(w[9]),
		MD:  int16(w[10]),
	}
}

func (c *Calibration) words() [len(calibNames)]uint16 {
	return [...]uint16{
		uint16(c.AC1), uint16(c.AC2), uint16(c.AC3),
		c.AC4, c.AC5, c.AC6,
		uint16(c.B1), uint16(c.B2),
		uint16(c.MB), uint16(c.MC), uint16(c.MD),
	}
}

// Validate checks for the 0x0000 and 0xffff words that a missing or broken
// device reads back as. No coefficient of a working part has either value.
func (c *Calibration) Validate() error {
	for i, w := range c.words() {
		if w == 0 || w == 0xffff {
			return fmt.Errorf("%w: %s is 0x%04x", ErrDomain, calibNames[i], w)
		}
	}
	return nil
}

// B5 returns the temperature term shared by the temperature and pressure
// formulas.
func (c *Calibration) B5(ut int16) (int32, error) {
	// The product needs up to 33 bits; the shifted result fits in 18.
	x1 := int32(((int64(ut) - int64(c.AC6)) * int64(c.AC5)) >> 15)
	d := x1 + int32(c.MD)
	if d == 0 {
		return 0, fmt.Errorf("%w: x1+MD is zero", ErrDomain)
	}
	x2 := floorDiv(int32(c.MC)<<11, d)
	return x1 + x2, nil
}

// floorDiv divides rounding towards negative infinity. The datasheet worked
// example gets x2 = -2344 from -17840128/7611, not the truncated -2343.
func floorDiv(a, b int32) int32 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
