package color_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oovm/resistor/color"
)

// TestDigit_Valid checks black..white map to 0..9 in order.
func TestDigit_Valid(t *testing.T) {
	digits := []color.Color{
		color.Black, color.Brown, color.Red, color.Orange, color.Yellow,
		color.Green, color.Blue, color.Violet, color.Grey, color.White,
	}
	for want, c := range digits {
		got, err := color.Digit(c)
		require.NoError(t, err, c.String())
		assert.Equal(t, want, got, c.String())
	}
}

// TestDigit_Invalid checks the four non-digit colors are rejected.
func TestDigit_Invalid(t *testing.T) {
	for _, c := range []color.Color{color.Pink, color.Silver, color.Gold, color.Empty} {
		_, err := color.Digit(c)
		assert.ErrorIs(t, err, color.ErrNotDigit, c.String())
		assert.Contains(t, err.Error(), c.String())
	}
}

// TestMultiplier covers the full decade range and the Empty rejection.
func TestMultiplier(t *testing.T) {
	tests := []struct {
		c    color.Color
		want string
	}{
		{color.Pink, "0.001"},
		{color.Silver, "0.01"},
		{color.Gold, "0.1"},
		{color.Black, "1"},
		{color.Brown, "10"},
		{color.Red, "100"},
		{color.Orange, "1000"},
		{color.Yellow, "10000"},
		{color.Green, "100000"},
		{color.Blue, "1000000"},
		{color.Violet, "10000000"},
		{color.Grey, "100000000"},
		{color.White, "1000000000"},
	}
	for _, tc := range tests {
		t.Run(tc.c.String(), func(t *testing.T) {
			got, err := color.Multiplier(tc.c)
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.want).Equal(got), "got %s", got)
		})
	}

	_, err := color.Multiplier(color.Empty)
	assert.ErrorIs(t, err, color.ErrNotMultiplier)
}

// TestTolerance covers every valid tolerance color with its letter code.
func TestTolerance(t *testing.T) {
	tests := []struct {
		c      color.Color
		want   string
		letter byte
	}{
		{color.Silver, "10", 'K'},
		{color.Gold, "5", 'J'},
		{color.Brown, "1", 'F'},
		{color.Red, "2", 'G'},
		{color.Orange, "0.05", 'W'},
		{color.Yellow, "0.02", 'P'},
		{color.Green, "0.5", 'D'},
		{color.Blue, "0.25", 'C'},
		{color.Violet, "0.1", 'B'},
		{color.Grey, "0.01", 'L'},
		{color.Empty, "20", 'M'},
	}
	for _, tc := range tests {
		t.Run(tc.c.String(), func(t *testing.T) {
			got, err := color.Tolerance(tc.c)
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.want).Equal(got), "got %s", got)

			letter, err := color.ToleranceLetter(tc.c)
			require.NoError(t, err)
			assert.Equal(t, tc.letter, letter)
		})
	}
}

// TestTolerance_Invalid checks pink, black and white are rejected by both lookups.
func TestTolerance_Invalid(t *testing.T) {
	for _, c := range []color.Color{color.Pink, color.Black, color.White} {
		_, err := color.Tolerance(c)
		assert.ErrorIs(t, err, color.ErrNotTolerance, c.String())
		_, err = color.ToleranceLetter(c)
		assert.ErrorIs(t, err, color.ErrNotTolerance, c.String())
	}
}

// TestTemperatureCoefficient covers black..grey and the rejected colors.
func TestTemperatureCoefficient(t *testing.T) {
	tests := []struct {
		c      color.Color
		want   int
		letter byte
	}{
		{color.Black, 250, 'U'},
		{color.Brown, 100, 'S'},
		{color.Red, 50, 'R'},
		{color.Orange, 15, 'P'},
		{color.Yellow, 25, 'Q'},
		{color.Green, 20, 'Z'},
		{color.Blue, 10, 'Z'},
		{color.Violet, 5, 'M'},
		{color.Grey, 1, 'K'},
	}
	for _, tc := range tests {
		got, err := color.TemperatureCoefficient(tc.c)
		require.NoError(t, err, tc.c.String())
		assert.Equal(t, tc.want, got, tc.c.String())

		letter, err := color.TemperatureCoefficientLetter(tc.c)
		require.NoError(t, err, tc.c.String())
		assert.Equal(t, tc.letter, letter, tc.c.String())
	}

	for _, c := range []color.Color{color.Pink, color.Silver, color.Gold, color.White, color.Empty} {
		_, err := color.TemperatureCoefficient(c)
		assert.ErrorIs(t, err, color.ErrNotTemperatureCoefficient, c.String())
		_, err = color.TemperatureCoefficientLetter(c)
		assert.ErrorIs(t, err, color.ErrNotTemperatureCoefficient, c.String())
	}
}

// TestLookups_Total runs every lookup over the closed set and checks each
// result is either a value or an error, and that out-of-range colors fail.
func TestLookups_Total(t *testing.T) {
	for _, c := range append(color.All(), color.Color(200)) {
		assert.NotPanics(t, func() {
			_, _ = color.Digit(c)
			_, _ = color.Multiplier(c)
			_, _ = color.Tolerance(c)
			_, _ = color.TemperatureCoefficient(c)
		}, c.String())
	}

	_, err := color.Multiplier(color.Color(200))
	assert.ErrorIs(t, err, color.ErrNotMultiplier)
}
