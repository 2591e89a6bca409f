package bmp180

import (
	"errors"
	"fmt"
	"math"

	"periph.io/x/conn/v3/physic"
)

// Pressure is a finite pressure value. The zero value is 0 Pa.
//
// Since NaN is never stored, == and Compare give a total order.
type Pressure struct {
	pa float64
}

// StandardSeaLevel is the ISA mean sea level pressure, 1013.25 hPa.
var StandardSeaLevel = Pressure{pa: 101325}

var errNotFinite = errors.New("bmp180: pressure must be a finite number")

func PressureFromPascal(pa float64) (Pressure, error) {
	if math.IsNaN(pa) || math.IsInf(pa, 0) {
		return Pressure{}, errNotFinite
	}
	return Pressure{pa: pa}, nil
}

func PressureFromHPa(hpa float64) (Pressure, error) {
	return PressureFromPascal(hpa * 100)
}

func (p Pressure) Pascal() float64 {
	return p.pa
}

func (p Pressure) HPa() float64 {
	return p.pa / 100
}

func (p Pressure) KPa() float64 {
	return p.pa / 1000
}

// Physic returns p in periph units, rounded to the nearest nPa.
func (p Pressure) Physic() physic.Pressure {
	return physic.Pressure(math.Round(p.pa * float64(physic.Pascal)))
}

// The arithmetic methods panic if the result is not finite, as dividing a
// time.Duration by zero would.

func (p Pressure) Add(o Pressure) Pressure {
	return mustFinite(p.pa + o.pa)
}

func (p Pressure) Sub(o Pressure) Pressure {
	return mustFinite(p.pa - o.pa)
}

func (p Pressure) Mul(f float64) Pressure {
	return mustFinite(p.pa * f)
}

func (p Pressure) Div(f float64) Pressure {
	return mustFinite(p.pa / f)
}

func mustFinite(pa float64) Pressure {
	v, err := PressureFromPascal(pa)
	if err != nil {
		panic(err)
	}
	return v
}

// Compare returns -1, 0 or +1 depending on whether p is less than, equal to
// or greater than o.
func (p Pressure) Compare(o Pressure) int {
	switch {
	case p.pa < o.pa:
		return -1
	case p.pa > o.pa:
		return 1
	default:
		return 0
	}
}

func (p Pressure) Less(o Pressure) bool {
	return p.pa < o.pa
}

// Altitude returns the height in meters above the level where the pressure
// is seaLevel, using the barometric formula from the datasheet.
func (p Pressure) Altitude(seaLevel Pressure) float64 {
	return 44330 * (1 - math.Pow(p.pa/seaLevel.pa, 1/5.255))
}

// SeaLevel returns the pressure at sea level given that p was measured at
// altitude meters.
func (p Pressure) SeaLevel(altitude float64) (Pressure, error) {
	return PressureFromPascal(p.pa / math.Pow(1-altitude/44330, 5.255))
}

func (p Pressure) String() string {
	return fmt.Sprintf("%.2fhPa", p.HPa())
}
