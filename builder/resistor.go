package builder

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Resistor is a decoded part. It is an immutable value produced by Build;
// the zero value is not a valid result.
type Resistor struct {
	resistance decimal.Decimal // ohms, >= 0
	tolerance  decimal.Decimal // percent, > 0
	tempco     int             // ppm/K, meaningful only when hasTempco
	hasTempco  bool
}

// Resistance returns the resistance in ohms.
func (r Resistor) Resistance() decimal.Decimal { return r.resistance }

// Tolerance returns the tolerance in percent.
func (r Resistor) Tolerance() decimal.Decimal { return r.tolerance }

// TemperatureCoefficient returns the coefficient in ppm/K and whether the
// part carries one. Only six-band parts do.
func (r Resistor) TemperatureCoefficient() (int, bool) {
	return r.tempco, r.hasTempco
}

// Ohms returns the resistance as a float64, for display and plotting.
func (r Resistor) Ohms() float64 {
	f, _ := r.resistance.Float64()
	return f
}

// Percent returns the tolerance as a float64.
func (r Resistor) Percent() float64 {
	f, _ := r.tolerance.Float64()
	return f
}

// Bounds returns the minimum and maximum resistance allowed by the tolerance.
func (r Resistor) Bounds() (lo, hi decimal.Decimal) {
	delta := r.resistance.Mul(r.tolerance).Div(hundred)
	return r.resistance.Sub(delta), r.resistance.Add(delta)
}

// String renders "Resistor(<ohms>Ω ± <percent>%)".
func (r Resistor) String() string {
	return fmt.Sprintf("Resistor(%sΩ ± %s%%)", r.resistance, r.tolerance)
}

// GoString renders every field, including the coefficient when present.
func (r Resistor) GoString() string {
	tc := "nil"
	if r.hasTempco {
		tc = fmt.Sprintf("%dppm/K", r.tempco)
	}

	return fmt.Sprintf("Resistor{resistance: %sΩ, tolerance: %s%%, temperature_coefficient: %s}",
		r.resistance, r.tolerance, tc)
}

var hundred = decimal.NewFromInt(100)
