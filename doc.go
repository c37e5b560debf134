// Package resistor decodes the color bands of axial resistors into a
// resistance, a tolerance and, for six-band parts, a temperature coefficient.
//
// 🚀 What is resistor?
//
//	A small, pure, dependency-light calculator built from two pieces:
//		• color/   — the closed band-color set and one total lookup per role
//		             (digit, multiplier, tolerance, temperature coefficient)
//		• builder/ — the four-, five- and six-band layouts and the engine that
//		             folds digits into a magnitude and applies the multiplier
//
// ✨ Why?
//
//   - Exact – resistance and tolerance are decimals, never rounded floats
//   - Strict – a color is checked against the role of its band; the first
//     invalid band (from the left) is reported with its role and color
//   - Typed – each layout is its own struct, so band count and order are
//     fixed at compile time
//   - Pure – no I/O, no state, no goroutines; the same bands always decode
//     to the same result
//
// Quick example:
//
//	brown  black  red   gold
//	  1      0    ×100   ±5%   ⇒ 1000 Ω ± 5 %
//
//	r, err := builder.FourBand{
//		Tens: color.Brown, Ones: color.Black,
//		Multiplier: color.Red, Tolerance: color.Gold,
//	}.Build()
//
// The resistor command (cmd/resistor) wraps the library for the terminal:
//
//	go install github.com/oovm/resistor/cmd/resistor@latest
//	resistor decode red violet yellow blue green blue
package resistor
