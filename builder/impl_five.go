// SPDX-License-Identifier: MIT
// Package: resistor/builder
//
// impl_five.go — the five-band (precision) layout.
//
// Contract:
//   • Bands, left to right: hundreds, tens, ones, multiplier, tolerance.
//   • magnitude = hundreds·100 + tens·10 + ones.
//   • No temperature coefficient.

package builder

import "github.com/oovm/resistor/color"

// FiveBand is a resistor with three significant digits.
type FiveBand struct {
	Hundreds   color.Color // band 1
	Tens       color.Color // band 2
	Ones       color.Color // band 3
	Multiplier color.Color // band 4
	Tolerance  color.Color // band 5
}

// Build decodes the five bands.
func (b FiveBand) Build() (Resistor, error) {
	method, bands := b.layout()
	return combine(method, bands)
}

// Colors returns the five colors left to right.
func (b FiveBand) Colors() []color.Color {
	_, bands := b.layout()
	return colorsOf(bands)
}

// Roles returns the five roles left to right.
func (b FiveBand) Roles() []color.Role {
	_, bands := b.layout()
	return rolesOf(bands)
}

func (b FiveBand) layout() (string, []band) {
	return MethodFiveBand, []band{
		{color.RoleHundredsDigit, b.Hundreds},
		{color.RoleTensDigit, b.Tens},
		{color.RoleOnesDigit, b.Ones},
		{color.RoleMultiplier, b.Multiplier},
		{color.RoleTolerance, b.Tolerance},
	}
}
