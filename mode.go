package bmp180

import (
	"fmt"
	"strings"
	"time"
)

// Mode is the pressure oversampling setting. Higher modes take more internal
// samples, trading conversion time and current for lower noise.
type Mode uint8

const (
	UltraLowPower       Mode = iota // 1 sample, 4.5ms, 0.06 hPa RMS noise
	Standard                        // 2 samples, 7.5ms, 0.05 hPa
	HighResolution                  // 4 samples, 13.5ms, 0.04 hPa
	UltraHighResolution             // 8 samples, 25.5ms, 0.03 hPa
)

var modes = [...]struct {
	name    string
	shift   uint8
	delayMs uint8
}{
	UltraLowPower:       {"ultra-low-power", 0, 5},
	Standard:            {"standard", 1, 8},
	HighResolution:      {"high-resolution", 2, 14},
	UltraHighResolution: {"ultra-high-resolution", 3, 26},
}

// Shift returns the oversampling setting, oss in the datasheet. It is zero
// for an unknown mode.
func (m Mode) Shift() uint8 {
	if !m.valid() {
		return 0
	}
	return modes[m].shift
}

// ConversionDelayMs returns the whole number of milliseconds to wait for a
// pressure conversion in this mode, or zero for an unknown mode.
func (m Mode) ConversionDelayMs() uint8 {
	if !m.valid() {
		return 0
	}
	return modes[m].delayMs
}

func (m Mode) ConversionDelay() time.Duration {
	return time.Duration(m.ConversionDelayMs()) * time.Millisecond
}

func (m Mode) String() string {
	if !m.valid() {
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
	return modes[m].name
}

func (m Mode) valid() bool {
	return int(m) < len(modes)
}

// ParseMode accepts a mode name as returned by String, or the oversampling
// setting as a single digit.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, m := range modes {
		if s == m.name || s == fmt.Sprint(m.shift) {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}
