// SPDX-License-Identifier: MIT
// Package: resistor/builder
//
// impl_four.go — the four-band layout.
//
// Contract:
//   • Bands, left to right: tens digit, ones digit, multiplier, tolerance.
//   • magnitude = tens·10 + ones; resistance = magnitude × multiplier.
//   • No temperature coefficient.

package builder

import "github.com/oovm/resistor/color"

// FourBand is a resistor with two significant digits.
type FourBand struct {
	Tens       color.Color // band 1
	Ones       color.Color // band 2
	Multiplier color.Color // band 3
	Tolerance  color.Color // band 4
}

// Build decodes the four bands.
func (b FourBand) Build() (Resistor, error) {
	method, bands := b.layout()
	return combine(method, bands)
}

// Colors returns the four colors left to right.
func (b FourBand) Colors() []color.Color {
	_, bands := b.layout()
	return colorsOf(bands)
}

// Roles returns the four roles left to right.
func (b FourBand) Roles() []color.Role {
	_, bands := b.layout()
	return rolesOf(bands)
}

func (b FourBand) layout() (string, []band) {
	return MethodFourBand, []band{
		{color.RoleTensDigit, b.Tens},
		{color.RoleOnesDigit, b.Ones},
		{color.RoleMultiplier, b.Multiplier},
		{color.RoleTolerance, b.Tolerance},
	}
}
