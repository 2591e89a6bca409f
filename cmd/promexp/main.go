package main

import (
	"flag"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/calmh/bmp180"
	"github.com/calmh/bmp180/i2c"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	device := flag.String("device", "/dev/i2c-1", "I2C device")
	transport := flag.String("transport", "sysfs", "I2C transport (sysfs, periph)")
	promaddr := flag.String("prometheus", ":9120", "Prometheus exporter address")
	modeName := flag.String("mode", "ultra-high-resolution", "Oversampling mode")
	maxAge := flag.Duration("max-age", time.Second, "Reuse readings younger than this")
	seaLevel := flag.Float64("sea-level", 1013.25, "Sea level pressure for altitude (hPa)")
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
	if id, err := dev.ChipID(); err != nil {
		log.Println("read chip id:", err)
	} else if id != bmp180.ExpectedChipID {
		log.Printf("unexpected chip id 0x%02x, continuing anyway", id)
	}

	servePrometheus(*promaddr, newSampler(dev, *maxAge), ref)
}

type sampler struct {
	dev    *bmp180.Dev
	maxAge time.Duration
	errors prometheus.Counter
}

func newSampler(dev *bmp180.Dev, maxAge time.Duration) *sampler {
	return &sampler{
		dev:    dev,
		maxAge: maxAge,
		errors: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "sensors",
			Subsystem: "bmp180",
			Name:      "refresh_errors_total",
		}),
	}
}

// sample refreshes if needed and returns the latest reading. A failed
// refresh still returns the previous reading, if any.
func (s *sampler) sample() (bmp180.Sample, bool) {
	if err := s.dev.Refresh(s.maxAge); err != nil {
		log.Println("refresh BMP180:", err)
		s.errors.Inc()
	}
	smp, err := s.dev.Sample()
	if err != nil {
		return bmp180.Sample{}, false
	}
	return smp, true
}

func servePrometheus(addr string, s *sampler, ref bmp180.Pressure) {
	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "sensors",
		Subsystem: "bmp180",
		Name:      "temperature_celsius",
	}, func() float64 {
		smp, ok := s.sample()
		if !ok {
			return math.NaN()
		}
		return round(smp.Temperature, 1)
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "sensors",
		Subsystem: "bmp180",
		Name:      "pressure_mb",
	}, func() float64 {
		smp, ok := s.sample()
		if !ok {
			return math.NaN()
		}
		return round(smp.Pressure.HPa(), 2)
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace:   "sensors",
		Subsystem:   "bmp180",
		Name:        "altitude_meters",
		ConstLabels: prometheus.Labels{"sea_level_mb": formatHPa(ref)},
	}, func() float64 {
		smp, ok := s.sample()
		if !ok {
			return math.NaN()
		}
		return round(smp.Pressure.Altitude(ref), 1)
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "sensors",
		Subsystem: "bmp180",
		Name:      "raw_pressure",
	}, func() float64 {
		raw, _, err := s.dev.Raw()
		if err != nil {
			return math.NaN()
		}
		return float64(raw.Pressure)
	})

	http.Handle("/metrics", promhttp.Handler())
	log.Fatalln(http.ListenAndServe(addr, nil))
}

func formatHPa(p bmp180.Pressure) string {
	return strconv.FormatFloat(p.HPa(), 'f', 2, 64)
}

func round(x float64, prec int) float64 {
	pow := math.Pow10(prec)
	return math.Round(x*pow) / pow
}
