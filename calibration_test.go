package bmp180

import (
	"encoding/json"
	"errors"
	"testing"
)

// Example coefficients from the datasheet, section 3.5.
var datasheetCalibration = Calibration{
	AC1: 408, AC2: -72, AC3: -14383,
	AC4: 32741, AC5: 32757, AC6: 23153,
	B1: 6190, B2: 4,
	MB: -32768, MC: -8711, MD: 2868,
}

var datasheetCalibrationBlock = []byte{
	0x01, 0x98, // AC1
	0xff, 0xb8, // AC2
	0xc7, 0xd1, // AC3
	0x7f, 0xe5, // AC4
	0x7f, 0xf5, // AC5
	0x5a, 0x71, // AC6
	0x18, 0x2e, // B1
	0x00, 0x04, // B2
	0x80, 0x00, // MB
	0xdd, 0xf9, // MC
	0x0b, 0x34, // MD
}

func TestParseCalibration(t *testing.T) {
	cal := parseCalibration(datasheetCalibrationBlock)
	if cal != datasheetCalibration {
		t.Errorf("%+v != expected %+v", cal, datasheetCalibration)
	}
}

func TestLoadCalibration(t *testing.T) {
	bus := &fakeBus{ops: []op{
		{kind: "writeRead", w: []byte{0xaa}, r: datasheetCalibrationBlock},
	}}

	cal, err := LoadCalibration(bus, Address)
	if err != nil {
		t.Fatal(err)
	}
	if cal != datasheetCalibration {
		t.Errorf("%+v != expected %+v", cal, datasheetCalibration)
	}
	bus.done(t)
}

func TestLoadCalibrationTransportError(t *testing.T) {
	busErr := errors.New("nack")
	bus := &fakeBus{ops: []op{
		{kind: "writeRead", w: []byte{0xaa}, err: busErr},
	}}

	_, err := LoadCalibration(bus, Address)
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("%v is not a TransportError", err)
	}
	if !errors.Is(err, busErr) {
		t.Errorf("%v does not wrap %v", err, busErr)
	}
}

func TestB5(t *testing.T) {
	cal := datasheetCalibration
	b5, err := cal.B5(27898)
	if err != nil {
		t.Fatal(err)
	}
	if b5 != 2399 {
		t.Errorf("%d != expected 2399", b5)
	}
}

func TestB5LargeProduct(t *testing.T) {
	// (UT - AC6) * AC5 is about -6.4e9 here, well outside int32.
	cal := Calibration{AC5: 0xffff, AC6: 0xffff, MC: 0, MD: 1}
	b5, err := cal.B5(-32768)
	if err != nil {
		t.Fatal(err)
	}
	if b5 != -196604 {
		t.Errorf("%d != expected -196604", b5)
	}
}

func TestCalibrationJSON(t *testing.T) {
	bs, err := json.Marshal(datasheetCalibration)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]int
	if err := json.Unmarshal(bs, &m); err != nil {
		t.Fatal(err)
	}
	if m["ac1"] != 408 || m["ac4"] != 32741 || m["mb"] != -32768 || m["md"] != 2868 {
		t.Errorf("unexpected JSON %s", bs)
	}
}

func TestB5ZeroDivisor(t *testing.T) {
	cal := datasheetCalibration
	// x1 for UT=27898 is 4743
	cal.MD = -4743

	if _, err := cal.B5(27898); !errors.Is(err, ErrDomain) {
		t.Errorf("%v is not ErrDomain", err)
	}
}

func TestFloorDiv(t *testing.T) {
	cases := []struct {
		a, b, q int32
	}{
		{7, 2, 3},
		{-7, 2, -4},
		{7, -2, -4},
		{-7, -2, 3},
		{-8, 2, -4},
		{-17840128, 7611, -2344},
	}

	for _, tc := range cases {
		if q := floorDiv(tc.a, tc.b); q != tc.q {
			t.Errorf("%d/%d = %d != expected %d", tc.a, tc.b, q, tc.q)
		}
	}
}

func TestValidate(t *testing.T) {
	cal := datasheetCalibration
	if err := cal.Validate(); err != nil {
		t.Errorf("datasheet calibration: %v", err)
	}

	var zero Calibration
	if err := zero.Validate(); !errors.Is(err, ErrDomain) {
		t.Errorf("zero calibration: %v is not ErrDomain", err)
	}

	cal.AC5 = 0xffff
	if err := cal.Validate(); !errors.Is(err, ErrDomain) {
		t.Errorf("AC5=0xffff: %v is not ErrDomain", err)
	}
}
