// Package output renders decoded resistors for the CLI.
// This package produces human and machine-readable outputs.
package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/oovm/resistor/builder"
	"github.com/oovm/resistor/color"
)

// Format represents output format type
type Format string

const (
	// FormatText is a human-readable summary
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned by Get for an unregistered format.
var ErrUnknownFormat = errors.New("output: unknown format")

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes result to w
	Render(w io.Writer, result *Result) error
}

// Band describes one band of a decoded resistor
type Band struct {
	// Position is the 1-based band position from the left
	Position int `json:"position"`

	// Color is the band color name
	Color string `json:"color"`

	// Role is the role name, e.g. "tens digit"
	Role string `json:"role"`
}

// Result is a decoded resistor ready for rendering
type Result struct {
	// Bands lists the input bands left to right
	Bands []Band `json:"bands"`

	// Resistance is the resistance in ohms
	Resistance decimal.Decimal `json:"resistance"`

	// Tolerance is the tolerance in percent
	Tolerance decimal.Decimal `json:"tolerance"`

	// TemperatureCoefficient is the coefficient in ppm/K, six-band parts only
	TemperatureCoefficient *int `json:"temperature_coefficient,omitempty"`

	// ToleranceLetter is the tolerance marking code, when requested
	ToleranceLetter string `json:"tolerance_letter,omitempty"`

	// TemperatureCoefficientLetter is the coefficient marking code, when requested
	TemperatureCoefficientLetter string `json:"temperature_coefficient_letter,omitempty"`
}

// NewResult assembles a Result from the bands and their decoded Resistor.
// With letters set, the marking codes are looked up from the color table.
func NewResult(b builder.Bands, r builder.Resistor, letters bool) (*Result, error) {
	colors, roles := b.Colors(), b.Roles()
	res := &Result{
		Bands:      make([]Band, len(colors)),
		Resistance: r.Resistance(),
		Tolerance:  r.Tolerance(),
	}
	for i, c := range colors {
		res.Bands[i] = Band{Position: i + 1, Color: c.String(), Role: roles[i].String()}
	}
	if tc, ok := r.TemperatureCoefficient(); ok {
		res.TemperatureCoefficient = &tc
	}
	if !letters {
		return res, nil
	}

	for i, role := range roles {
		switch role {
		case color.RoleTolerance:
			l, err := color.ToleranceLetter(colors[i])
			if err != nil {
				return nil, fmt.Errorf("output: %w", err)
			}
			res.ToleranceLetter = string(l)
		case color.RoleTemperatureCoefficient:
			l, err := color.TemperatureCoefficientLetter(colors[i])
			if err != nil {
				return nil, fmt.Errorf("output: %w", err)
			}
			res.TemperatureCoefficientLetter = string(l)
		}
	}

	return res, nil
}

var formatters = map[Format]Formatter{
	FormatText: textFormatter{},
	FormatJSON: jsonFormatter{},
}

// Get returns the Formatter registered for f.
func Get(f Format) (Formatter, error) {
	fm, ok := formatters[f]
	if !ok {
		return nil, fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}

	return fm, nil
}
