// SPDX-License-Identifier: MIT
// Package: resistor/builder
//
// impl_six.go — the six-band layout.
//
// Contract:
//   • Bands, left to right: hundreds, tens, ones, multiplier, tolerance,
//     temperature coefficient.
//   • Same magnitude as FiveBand; the sixth band is validated last and is
//     always present in the result.

package builder

import "github.com/oovm/resistor/color"

// SixBand is a five-band resistor plus a temperature coefficient band.
type SixBand struct {
	Hundreds               color.Color // band 1
	Tens                   color.Color // band 2
	Ones                   color.Color // band 3
	Multiplier             color.Color // band 4
	Tolerance              color.Color // band 5
	TemperatureCoefficient color.Color // band 6
}

// Build decodes the six bands.
func (b SixBand) Build() (Resistor, error) {
	method, bands := b.layout()
	return combine(method, bands)
}

// Colors returns the six colors left to right.
func (b SixBand) Colors() []color.Color {
	_, bands := b.layout()
	return colorsOf(bands)
}

// Roles returns the six roles left to right.
func (b SixBand) Roles() []color.Role {
	_, bands := b.layout()
	return rolesOf(bands)
}

func (b SixBand) layout() (string, []band) {
	return MethodSixBand, []band{
		{color.RoleHundredsDigit, b.Hundreds},
		{color.RoleTensDigit, b.Tens},
		{color.RoleOnesDigit, b.Ones},
		{color.RoleMultiplier, b.Multiplier},
		{color.RoleTolerance, b.Tolerance},
		{color.RoleTemperatureCoefficient, b.TemperatureCoefficient},
	}
}
