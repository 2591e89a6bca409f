package main

import (
	"encoding/json"
	"flag"
	"log"
	"math"
	"os"
	"time"

	"github.com/calmh/bmp180"
	"github.com/calmh/bmp180/i2c"
)

func main() {
	device := flag.String("device", "/dev/i2c-1", "I2C device")
	transport := flag.String("transport", "sysfs", "I2C transport (sysfs, periph)")
	modeName := flag.String("mode", "standard", "Oversampling mode (ultra-low-power, standard, high-resolution, ultra-high-resolution)")
	interval := flag.Duration("interval", time.Second, "Interval between measurements")
	decimals := flag.Int("decimals", 2, "Rounding precision")
	seaLevel := flag.Float64("sea-level", 1013.25, "Sea level pressure for altitude (hPa)")
	calibration := flag.Bool("calibration", false, "Print the calibration coefficients and exit")
	flag.Parse()

	mode, err := bmp180.ParseMode(*modeName)
	if err != nil {
		log.Fatalln("parse mode:", err)
	}
	ref, err := bmp180.PressureFromHPa(*seaLevel)
	if err != nil {
		log.Fatalln("sea level:", err)
	}

	bus, err := i2c.Open(*transport, *device)
	if err != nil {
		log.Fatalln("open I2C bus:", err)
	}
	defer bus.Close()

	dev, err := bmp180.New(bus, &bmp180.Opts{Mode: mode})
	if err != nil {
		log.Fatalln("init BMP180:", err)
	}

	enc := json.NewEncoder(os.Stdout)

	if *calibration {
		enc.SetIndent("", "  ")
		if err := enc.Encode(dev.Calibration()); err != nil {
			log.Fatalln("write calibration:", err)
		}
		return
	}

	fields := make(map[string]interface{})
	for now := range time.NewTicker(*interval).C {
		if err := dev.Update(); err != nil {
			log.Println("update BMP180:", err)
			continue
		}
		s, err := dev.Sample()
		if err != nil {
			log.Println("compensate BMP180:", err)
			continue
		}

		fields["when"] = now
		fields["bmp180_temperature_c"] = round(s.Temperature, *decimals)
		fields["bmp180_pressure_hpa"] = round(s.Pressure.HPa(), *decimals)
		fields["bmp180_altitude_m"] = round(s.Pressure.Altitude(ref), *decimals)

		if err := enc.Encode(fields); err != nil {
			log.Fatalln("write sample:", err)
		}
	}
}

func round(x float64, prec int) float64 {
	pow := math.Pow10(prec)
	return math.Round(x*pow) / pow
}
