// Package builder provides the shared band-combination engine used by every
// layout's Build method.
//
// Design principles:
//   - One pass, left to right; the first invalid band ends the scan.
//   - Layouts differ only in the []band they hand to combine.
package builder

import (
	"github.com/shopspring/decimal"

	"github.com/oovm/resistor/color"
)

// band is one colored stripe and the role its position gives it.
type band struct {
	role  color.Role
	color color.Color
}

// pow10 holds 10^place for every digit place a Role can report.
var pow10 = [...]int64{1, 10, 100, 1000}

// combine decodes bands, which must be in physical order, into a Resistor.
// The temperature coefficient is set only if a RoleTemperatureCoefficient
// band is present.
//
// Complexity: O(len(bands)) time, O(1) space.
func combine(method string, bands []band) (Resistor, error) {
	var (
		magnitude  int64
		multiplier decimal.Decimal
		r          Resistor
	)
	for i, b := range bands {
		switch b.role {
		case color.RoleTensDigit, color.RoleOnesDigit, color.RoleHundredsDigit, color.RoleThousandsDigit:
			d, err := color.Digit(b.color)
			if err != nil {
				return Resistor{}, newBandError(method, i, b, err)
			}
			place, _ := b.role.Place()
			magnitude += int64(d) * pow10[place]
		case color.RoleMultiplier:
			m, err := color.Multiplier(b.color)
			if err != nil {
				return Resistor{}, newBandError(method, i, b, err)
			}
			multiplier = m
		case color.RoleTolerance:
			t, err := color.Tolerance(b.color)
			if err != nil {
				return Resistor{}, newBandError(method, i, b, err)
			}
			r.tolerance = t
		case color.RoleTemperatureCoefficient:
			tc, err := color.TemperatureCoefficient(b.color)
			if err != nil {
				return Resistor{}, newBandError(method, i, b, err)
			}
			r.tempco, r.hasTempco = tc, true
		default:
			return Resistor{}, newBandError(method, i, b, color.ErrUnknownRole)
		}
	}
	r.resistance = decimal.NewFromInt(magnitude).Mul(multiplier)

	return r, nil
}

// colorsOf and rolesOf project a layout onto its colors and roles.
func colorsOf(bands []band) []color.Color {
	out := make([]color.Color, len(bands))
	for i, b := range bands {
		out[i] = b.color
	}

	return out
}

func rolesOf(bands []band) []color.Role {
	out := make([]color.Role, len(bands))
	for i, b := range bands {
		out[i] = b.role
	}

	return out
}
