package i2c

import "io"

// A Bus is a byte oriented register bus. Each call names the device address;
// implementations must not assume it stays the same between calls.
type Bus interface {
	Write(addr uint16, w []byte) error
	Read(addr uint16, r []byte) error
	WriteRead(addr uint16, w, r []byte) error
}

// A BusCloser is a Bus that owns an underlying file or host resource.
type BusCloser interface {
	Bus
	io.Closer
}

// Signed returns the big endian two's complement value of data.
func Signed(data []byte) int {
	res := int(int8(data[0]))
	for _, val := range data[1:] {
		res <<= 8
		res |= int(val)
	}
	return res
}

// Unsigned returns the big endian unsigned value of data.
func Unsigned(data []byte) int {
	res := 0
	for _, val := range data {
		res <<= 8
		res |= int(val)
	}
	return res
}
