// SPDX-License-Identifier: MIT
// Package: resistor/color
//
// errors.go — sentinel errors for the color table.
//
// Error policy:
//   • Only package-level sentinels are exposed.
//   • Lookups wrap them with the offending color via %w; callers branch with
//     errors.Is(err, ErrX) and never compare strings.

package color

import (
	"errors"
	"fmt"
)

var (
	// ErrNotDigit indicates the color has no digit value (pink, silver, gold, empty).
	ErrNotDigit = errors.New("color: not a valid digit")

	// ErrNotMultiplier indicates the color has no multiplier value (empty).
	ErrNotMultiplier = errors.New("color: not a valid multiplier")

	// ErrNotTolerance indicates the color has no tolerance value (pink, black, white).
	ErrNotTolerance = errors.New("color: not a valid tolerance")

	// ErrNotTemperatureCoefficient indicates the color has no temperature
	// coefficient (pink, silver, gold, white, empty).
	ErrNotTemperatureCoefficient = errors.New("color: not a valid temperature coefficient")

	// ErrUnknownColor is returned by Parse for names outside the closed set.
	ErrUnknownColor = errors.New("color: unknown color")

	// ErrUnknownRole is returned by Role.Lookup for values outside the Role set.
	ErrUnknownRole = errors.New("color: unknown role")
)

// invalid wraps sentinel with the color that triggered it.
func invalid(c Color, sentinel error) error {
	return fmt.Errorf("%s: %w", c, sentinel)
}
