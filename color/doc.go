// Package color is the lookup table behind resistor band decoding.
//
// 🚀 What is in here?
//
//	A closed, ordered set of band colors and one total lookup per role:
//	  • Digit                        — black..white ⇒ 0..9
//	  • Multiplier                   — pink 10⁻³ … white 10⁹ (decimal, exact)
//	  • Tolerance / ToleranceLetter  — percent and IEC letter code
//	  • TemperatureCoefficient(+Letter) — ppm/K and IEC letter code
//
// Every lookup is defined for every Color. A color that has no meaning in a
// role yields a sentinel error (ErrNotDigit, ErrNotMultiplier, ...) rather
// than a zero value, so callers always branch with errors.Is.
//
// Letter codes are presentation metadata only; the arithmetic in the builder
// package never reads them.
//
// ⚙️ Usage:
//
//	import "github.com/oovm/resistor/color"
//
//	d, err := color.Digit(color.Red)          // 2, nil
//	m, err := color.Multiplier(color.Gold)    // 0.1, nil
//	_, err = color.Digit(color.Silver)        // errors.Is(err, color.ErrNotDigit)
//
// Roles are named by the Role type. RoleThousandsDigit is part of the table
// but no band layout in the builder package currently places a band there.
package color
