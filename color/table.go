// SPDX-License-Identifier: MIT
// Package: resistor/color
//
// table.go — one total lookup per role.
//
// Contract:
//   • Each function covers every Color with an explicit case; a color
//     without meaning in the role returns the role's sentinel, wrapped.
//   • Numeric results are exact: multipliers and tolerances are decimals
//     built from integer coefficients and base-10 exponents.
//   • No state, no allocation beyond the returned error.

package color

import (
	"github.com/shopspring/decimal"
)

// Digit returns the significant-digit value of c: black=0 … white=9.
func Digit(c Color) (int, error) {
	switch c {
	case Black, Brown, Red, Orange, Yellow, Green, Blue, Violet, Grey, White:
		return int(c - Black), nil
	case Pink, Silver, Gold, Empty:
		return 0, invalid(c, ErrNotDigit)
	default:
		return 0, invalid(c, ErrNotDigit)
	}
}

// MultiplierExponent returns the base-10 exponent of the multiplier band:
// pink=-3, silver=-2, gold=-1, black=0 … white=9.
func MultiplierExponent(c Color) (int32, error) {
	switch c {
	case Pink, Silver, Gold, Black, Brown, Red, Orange, Yellow, Green, Blue, Violet, Grey, White:
		return int32(c) - int32(Black), nil
	case Empty:
		return 0, invalid(c, ErrNotMultiplier)
	default:
		return 0, invalid(c, ErrNotMultiplier)
	}
}

// Multiplier returns the decade factor of c, 10^MultiplierExponent(c).
func Multiplier(c Color) (decimal.Decimal, error) {
	exp, err := MultiplierExponent(c)
	if err != nil {
		return decimal.Zero, err
	}

	return decimal.New(1, exp), nil
}

// tolerance pairs a percentage with its IEC 60062 letter code.
type tolerance struct {
	percent decimal.Decimal
	letter  byte
}

func toleranceOf(c Color) (tolerance, error) {
	switch c {
	case Silver:
		return tolerance{decimal.New(10, 0), 'K'}, nil
	case Gold:
		return tolerance{decimal.New(5, 0), 'J'}, nil
	case Brown:
		return tolerance{decimal.New(1, 0), 'F'}, nil
	case Red:
		return tolerance{decimal.New(2, 0), 'G'}, nil
	case Orange:
		return tolerance{decimal.New(5, -2), 'W'}, nil
	case Yellow:
		return tolerance{decimal.New(2, -2), 'P'}, nil
	case Green:
		return tolerance{decimal.New(5, -1), 'D'}, nil
	case Blue:
		return tolerance{decimal.New(25, -2), 'C'}, nil
	case Violet:
		return tolerance{decimal.New(1, -1), 'B'}, nil
	case Grey:
		return tolerance{decimal.New(1, -2), 'L'}, nil
	case Empty:
		// unmarked band convention
		return tolerance{decimal.New(20, 0), 'M'}, nil
	case Pink, Black, White:
		return tolerance{}, invalid(c, ErrNotTolerance)
	default:
		return tolerance{}, invalid(c, ErrNotTolerance)
	}
}

// Tolerance returns the tolerance of c in percent. Empty yields 20%.
func Tolerance(c Color) (decimal.Decimal, error) {
	t, err := toleranceOf(c)
	if err != nil {
		return decimal.Zero, err
	}

	return t.percent, nil
}

// ToleranceLetter returns the IEC letter code for the tolerance of c.
func ToleranceLetter(c Color) (byte, error) {
	t, err := toleranceOf(c)
	if err != nil {
		return 0, err
	}

	return t.letter, nil
}

// tempco pairs a temperature coefficient in ppm/K with its letter code.
type tempco struct {
	ppm    int
	letter byte
}

func tempcoOf(c Color) (tempco, error) {
	switch c {
	case Black:
		return tempco{250, 'U'}, nil
	case Brown:
		return tempco{100, 'S'}, nil
	case Red:
		return tempco{50, 'R'}, nil
	case Orange:
		return tempco{15, 'P'}, nil
	case Yellow:
		return tempco{25, 'Q'}, nil
	case Green:
		return tempco{20, 'Z'}, nil
	case Blue:
		return tempco{10, 'Z'}, nil
	case Violet:
		return tempco{5, 'M'}, nil
	case Grey:
		return tempco{1, 'K'}, nil
	case Pink, Silver, Gold, White, Empty:
		return tempco{}, invalid(c, ErrNotTemperatureCoefficient)
	default:
		return tempco{}, invalid(c, ErrNotTemperatureCoefficient)
	}
}

// TemperatureCoefficient returns the temperature coefficient of c in ppm/K.
func TemperatureCoefficient(c Color) (int, error) {
	t, err := tempcoOf(c)
	if err != nil {
		return 0, err
	}

	return t.ppm, nil
}

// TemperatureCoefficientLetter returns the letter code for the temperature
// coefficient of c. Green and blue share 'Z'.
func TemperatureCoefficientLetter(c Color) (byte, error) {
	t, err := tempcoOf(c)
	if err != nil {
		return 0, err
	}

	return t.letter, nil
}
