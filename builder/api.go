// SPDX-License-Identifier: MIT
// Package: resistor/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - Bands is a sealed union: FourBand, FiveBand and SixBand are the only
//     implementations. Each layout fixes role arity and position at the type level.
//   - One orchestrator: Build(b). It delegates to the layout's Build method.
//   - FromColors(cs...) is the only variadic entry; it maps 4/5/6 colors onto
//     the matching layout and rejects every other count with ErrBandCount.
//   - Determinism: same colors ⇒ identical Resistor or identical error.

package builder

import (
	"fmt"

	"github.com/oovm/resistor/color"
)

// Bands is one complete band layout. Implemented by FourBand, FiveBand and
// SixBand only.
type Bands interface {
	// Build decodes the bands into a Resistor or returns the first *BandError.
	Build() (Resistor, error)
	// Colors returns the band colors in physical order.
	Colors() []color.Color
	// Roles returns the role of each band in physical order.
	Roles() []color.Role

	// layout seals the interface and yields (method, bands in physical order).
	layout() (string, []band)
}

// Build decodes b. A nil b yields ErrNilBands.
//
// Complexity: O(1); at most six table lookups.
func Build(b Bands) (Resistor, error) {
	if b == nil {
		return Resistor{}, fmt.Errorf("Build: %w", ErrNilBands)
	}

	return b.Build()
}

// FromColors maps colors, given left to right, onto the layout with the same
// number of bands. It does not validate the colors; call Build for that.
func FromColors(cs ...color.Color) (Bands, error) {
	if err := validateBandCount(MethodFromColors, len(cs)); err != nil {
		return nil, err
	}

	switch len(cs) {
	case FourBandCount:
		return FourBand{Tens: cs[0], Ones: cs[1], Multiplier: cs[2], Tolerance: cs[3]}, nil
	case FiveBandCount:
		return FiveBand{Hundreds: cs[0], Tens: cs[1], Ones: cs[2], Multiplier: cs[3], Tolerance: cs[4]}, nil
	default:
		return SixBand{
			Hundreds:               cs[0],
			Tens:                   cs[1],
			Ones:                   cs[2],
			Multiplier:             cs[3],
			Tolerance:              cs[4],
			TemperatureCoefficient: cs[5],
		}, nil
	}
}
