package bmp180

import "errors"

var (
	// ErrNoReading is returned by the getters until an acquisition has
	// succeeded.
	ErrNoReading = errors.New("bmp180: no reading available")

	// ErrDomain means the compensation formula hit a zero divisor. The
	// calibration block is corrupt, or the raw reading is outside anything
	// the sensor can produce.
	ErrDomain = errors.New("bmp180: compensation out of domain")

	// ErrBusy is returned by TryUpdate while another acquisition holds the
	// device.
	ErrBusy = errors.New("bmp180: acquisition in progress")

	errInvalidMode = errors.New("bmp180: invalid oversampling mode")
)

// TransportError wraps a failure of the underlying bus.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
