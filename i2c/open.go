package i2c

import (
	"fmt"

	"gobot.io/x/gobot/sysfs"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// Transports lists the names accepted by Open.
var Transports = []string{"sysfs", "periph"}

// Open opens the named I²C device using the given transport. For "sysfs"
// device is a character device path such as /dev/i2c-1; for "periph" it is
// anything i2creg.Open understands, the empty string meaning the first bus.
func Open(transport, device string) (BusCloser, error) {
	switch transport {
	case "sysfs":
		dev, err := sysfs.NewI2cDevice(device)
		if err != nil {
			return nil, fmt.Errorf("open I2C device: %w", err)
		}
		return NewSysfs(dev), nil

	case "periph":
		if _, err := host.Init(); err != nil {
			return nil, fmt.Errorf("init periph host: %w", err)
		}
		bus, err := i2creg.Open(device)
		if err != nil {
			return nil, fmt.Errorf("open I2C bus: %w", err)
		}
		return NewPeriph(bus), nil

	default:
		return nil, fmt.Errorf("unknown transport %q (want one of %v)", transport, Transports)
	}
}
