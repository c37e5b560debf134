// Package builder combines band colors into a decoded Resistor.
//
// A resistor is described by one of three fixed band layouts, each a value
// type carrying exactly the roles it needs, in physical left-to-right order:
//
//	FourBand: tens, ones, multiplier, tolerance
//	FiveBand: hundreds, tens, ones, multiplier, tolerance
//	SixBand:  hundreds, tens, ones, multiplier, tolerance, temperature coefficient
//
// Build scans the bands from the left, looks each color up in the color
// table under the band's role and stops at the first color that is invalid
// for its role. On success the digit bands are folded into a magnitude
// (Σ digit·10^place), scaled by the decade multiplier and packaged with the
// tolerance and, for six bands, the temperature coefficient.
//
// Guarantees:
//
//   - All-or-nothing: an error never comes with a partial Resistor.
//   - Exact arithmetic: resistance and tolerance are decimals, so
//     (D1·100 + D2·10 + D3) × 10^k is represented without rounding.
//   - Deterministic and side-effect free; every Build is a constant number
//     of table lookups (at most six).
//   - Failures are *BandError values; branch with errors.Is(err, ErrInvalidBand)
//     or errors.As(err, &bandErr) to read the role and color.
//
// FromColors is the variadic entry point used at the edges (CLI input); it
// picks the layout from the band count and rejects every other count.
package builder
