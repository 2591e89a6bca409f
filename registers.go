package bmp180

import "time"

// Bosch BMP180 Digital Pressure Sensor

const (
	// Address is the fixed I²C address of the BMP180.
	Address = 0x77

	// ExpectedChipID is what the chip id register reads on a BMP180.
	ExpectedChipID = 0x55

	regCalib     = 0xaa // AC1 MSB, 22 bytes through MD LSB
	regChipID    = 0xd0
	regSoftReset = 0xe0
	regCtrlMeas  = 0xf4
	regOutMSB    = 0xf6 // shared by temperature and pressure results

	cmdTemperature = 0x2e
	cmdPressure    = 0x34 // oversampling setting goes in bits 6-7
	cmdSoftReset   = 0xb6

	calibLen = 22

	// Max temperature conversion time is 4.5ms.
	temperatureDelay = 5 * time.Millisecond
	startupDelay     = 10 * time.Millisecond
)
