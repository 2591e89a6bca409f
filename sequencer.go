package bmp180

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/calmh/bmp180/i2c"
)

// State is the position of the acquisition sequencer within one cycle.
type State uint32

const (
	Idle State = iota
	TempTriggered
	TempReady
	PressureTriggered
	PressureReady
)

var stateNames = [...]string{"idle", "temperature-triggered", "temperature-ready", "pressure-triggered", "pressure-ready"}

func (s State) String() string {
	if int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", uint32(s))
	}
	return stateNames[s]
}

// A Sleeper waits out a conversion. Whether it blocks the OS thread or
// parks the goroutine on a timer is up to the implementation; the sequencer
// only requires that it does not return early.
type Sleeper interface {
	Sleep(d time.Duration)
}

// SleeperFunc adapts a function to the Sleeper interface.
type SleeperFunc func(time.Duration)

func (f SleeperFunc) Sleep(d time.Duration) {
	f(d)
}

// BlockingSleeper waits using time.Sleep.
var BlockingSleeper Sleeper = SleeperFunc(time.Sleep)

// TimerSleeper waits on a runtime timer channel.
var TimerSleeper Sleeper = SleeperFunc(func(d time.Duration) {
	<-time.After(d)
})

type sequencer struct {
	bus   i2c.Bus
	addr  uint16
	sleep Sleeper
	state uint32 // State, atomic so it can be observed mid-cycle
}

func (s *sequencer) set(st State) {
	atomic.StoreUint32(&s.state, uint32(st))
}

func (s *sequencer) current() State {
	return State(atomic.LoadUint32(&s.state))
}

// acquire runs one temperature-then-pressure cycle. Any failure aborts the
// whole cycle; the sequencer is always back in Idle on return.
func (s *sequencer) acquire(mode Mode) (RawReading, error) {
	defer s.set(Idle)
	oss := mode.Shift()

	if err := s.bus.Write(s.addr, []byte{regCtrlMeas, cmdTemperature}); err != nil {
		return RawReading{}, &TransportError{Op: "start temperature conversion", Err: err}
	}
	s.set(TempTriggered)
	s.sleep.Sleep(temperatureDelay)

	var tbuf [2]byte
	if err := s.bus.WriteRead(s.addr, []byte{regOutMSB}, tbuf[:]); err != nil {
		return RawReading{}, &TransportError{Op: "read temperature", Err: err}
	}
	ut := int16(i2c.Signed(tbuf[:]))
	s.set(TempReady)

	if err := s.bus.Write(s.addr, []byte{regCtrlMeas, cmdPressure + oss<<6}); err != nil {
		return RawReading{}, &TransportError{Op: "start pressure conversion", Err: err}
	}
	s.set(PressureTriggered)
	s.sleep.Sleep(mode.ConversionDelay())

	var pbuf [3]byte
	if err := s.bus.WriteRead(s.addr, []byte{regOutMSB}, pbuf[:]); err != nil {
		return RawReading{}, &TransportError{Op: "read pressure", Err: err}
	}
	up := int32(i2c.Unsigned(pbuf[:]) >> (8 - oss))
	s.set(PressureReady)

	return RawReading{Temperature: ut, Pressure: up}, nil
}
