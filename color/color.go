// SPDX-License-Identifier: MIT
// Package: resistor/color
//
// color.go — the closed Color enumeration, names and parsing.
//
// Contract:
//   • The set is closed: Pink..White plus the Empty sentinel, in this order.
//   • String() is total; an out-of-range value renders as "color(<n>)".
//   • Parse is case-insensitive and never panics.

package color

import (
	"fmt"
	"strings"
)

// Color is one band color. The zero value is Pink; use Empty for a missing band.
type Color uint8

const (
	// Pink is only meaningful as a multiplier (10⁻³).
	Pink Color = iota
	// Silver is a multiplier (10⁻²) or a 10% tolerance.
	Silver
	// Gold is a multiplier (10⁻¹) or a 5% tolerance.
	Gold
	// Black is digit 0.
	Black
	// Brown is digit 1.
	Brown
	// Red is digit 2.
	Red
	// Orange is digit 3.
	Orange
	// Yellow is digit 4.
	Yellow
	// Green is digit 5.
	Green
	// Blue is digit 6.
	Blue
	// Violet is digit 7.
	Violet
	// Grey is digit 8.
	Grey
	// White is digit 9.
	White
	// Empty stands for an absent (unpainted) band.
	Empty

	numColors = int(Empty) + 1
)

// names is indexed by Color; keep in declaration order.
var names = [numColors]string{
	Pink:   "pink",
	Silver: "silver",
	Gold:   "gold",
	Black:  "black",
	Brown:  "brown",
	Red:    "red",
	Orange: "orange",
	Yellow: "yellow",
	Green:  "green",
	Blue:   "blue",
	Violet: "violet",
	Grey:   "grey",
	White:  "white",
	Empty:  "empty",
}

// aliases accepted by Parse in addition to the canonical names.
var aliases = map[string]Color{
	"gray": Grey,
	"none": Empty,
	"":     Empty,
}

// All returns every color in declaration order. The slice is freshly
// allocated; callers may modify it.
func All() []Color {
	out := make([]Color, numColors)
	for i := range out {
		out[i] = Color(i)
	}

	return out
}

// Valid reports whether c belongs to the closed set.
func (c Color) Valid() bool {
	return int(c) < numColors
}

// String returns the lowercase color name.
func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("color(%d)", uint8(c))
	}

	return names[c]
}

// Parse maps a color name to its Color. Matching ignores case and
// surrounding whitespace; "gray" and "none" are accepted as aliases.
func Parse(name string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range names {
		if n == key {
			return Color(i), nil
		}
	}
	if c, ok := aliases[key]; ok {
		return c, nil
	}

	return Empty, fmt.Errorf("Parse(%q): %w", name, ErrUnknownColor)
}

// MustParse is Parse for literals known to be valid. It panics on error.
func MustParse(name string) Color {
	c, err := Parse(name)
	if err != nil {
		panic(fmt.Sprintf("color: %v", err))
	}

	return c
}
