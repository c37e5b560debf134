// SPDX-License-Identifier: MIT
// Package: resistor/builder
//
// errors.go — sentinel errors and the band validation error.
//
// Error policy (explicit and strict):
//   • Every role failure is a *BandError naming layout, position, role and color.
//   • *BandError matches ErrInvalidBand and the color-table sentinel it wraps,
//     so both errors.Is(err, ErrInvalidBand) and
//     errors.Is(err, color.ErrNotDigit) hold for a bad digit band.
//   • Only the first failing band (leftmost) is reported; no accumulation.
//   • Build never panics.

package builder

import (
	"errors"
	"fmt"

	"github.com/oovm/resistor/color"
)

// ErrInvalidBand indicates that a band holds a color that has no meaning in
// the role of its position. Returned errors are always *BandError.
// Usage: if errors.Is(err, ErrInvalidBand) { /* reject the whole sequence */ }.
var ErrInvalidBand = errors.New("builder: invalid band color")

// ErrBandCount indicates FromColors received a band count other than 4, 5 or 6.
// Usage: if errors.Is(err, ErrBandCount) { /* ask for a complete band list */ }.
var ErrBandCount = errors.New("builder: unsupported band count")

// ErrNilBands indicates Build was called with a nil Bands value.
var ErrNilBands = errors.New("builder: nil bands")

// BandError reports the first band whose color is invalid for its role.
type BandError struct {
	// Method is the layout name, e.g. MethodFourBand.
	Method string
	// Position is the 1-based physical band position, counted from the left.
	Position int
	// Role is the role the band occupies in its layout.
	Role color.Role
	// Color is the rejected color.
	Color color.Color
	// Err is the color-table error (ErrNotDigit, ErrNotMultiplier, ...).
	Err error
}

// Error renders e.g. "FourBand: band 1: pink is not a valid tens digit".
func (e *BandError) Error() string {
	return fmt.Sprintf("%s: band %d: %s is not a valid %s", e.Method, e.Position, e.Color, e.Role)
}

// Unwrap exposes ErrInvalidBand and the underlying color-table error.
func (e *BandError) Unwrap() []error {
	return []error{ErrInvalidBand, e.Err}
}

// newBandError builds the failure for band b at zero-based index i.
func newBandError(method string, i int, b band, err error) *BandError {
	return &BandError{
		Method:   method,
		Position: i + 1,
		Role:     b.role,
		Color:    b.color,
		Err:      err,
	}
}
