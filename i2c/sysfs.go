package i2c

import (
	"fmt"
	"sync"
)

// A Device is typically what sysfs.NewI2cDevice (gobot.io/x/gobot/sysfs)
// returns.
type Device interface {
	SetAddress(address int) error
	Read(b []byte) (n int, err error)
	Write(b []byte) (n int, err error)
	Close() error
}

// Sysfs is a Bus on top of a Linux /dev/i2c-N character device. The kernel
// keeps one target address per open file, so every transaction sets it
// first and holds the lock until done.
type Sysfs struct {
	dev Device
	mut sync.Mutex
}

func NewSysfs(dev Device) *Sysfs {
	return &Sysfs{dev: dev}
}

func (s *Sysfs) Write(addr uint16, w []byte) error {
	s.mut.Lock()
	defer s.mut.Unlock()

	if err := s.dev.SetAddress(int(addr)); err != nil {
		return fmt.Errorf("set device address: %w", err)
	}
	return s.write(w)
}

func (s *Sysfs) Read(addr uint16, r []byte) error {
	s.mut.Lock()
	defer s.mut.Unlock()

	if err := s.dev.SetAddress(int(addr)); err != nil {
		return fmt.Errorf("set device address: %w", err)
	}
	return s.read(r)
}

// WriteRead writes w and then reads into r. There is no repeated start on
// this path; the device sees a stop between the two halves.
func (s *Sysfs) WriteRead(addr uint16, w, r []byte) error {
	s.mut.Lock()
	defer s.mut.Unlock()

	if err := s.dev.SetAddress(int(addr)); err != nil {
		return fmt.Errorf("set device address: %w", err)
	}
	if err := s.write(w); err != nil {
		return err
	}
	return s.read(r)
}

func (s *Sysfs) Close() error {
	s.mut.Lock()
	defer s.mut.Unlock()
	return s.dev.Close()
}

func (s *Sysfs) write(w []byte) error {
	n, err := s.dev.Write(w)
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if n != len(w) {
		return fmt.Errorf("short write: %d of %d bytes", n, len(w))
	}
	return nil
}

func (s *Sysfs) read(r []byte) error {
	n, err := s.dev.Read(r)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	if n != len(r) {
		return fmt.Errorf("short read: %d of %d bytes", n, len(r))
	}
	return nil
}
