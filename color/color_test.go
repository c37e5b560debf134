package color_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oovm/resistor/color"
)

// TestAll verifies the closed set has fourteen colors, Pink first, Empty last.
func TestAll(t *testing.T) {
	all := color.All()
	require.Len(t, all, 14)
	assert.Equal(t, color.Pink, all[0])
	assert.Equal(t, color.Empty, all[len(all)-1])
	for _, c := range all {
		assert.True(t, c.Valid(), c.String())
	}
	assert.False(t, color.Color(14).Valid())

	// callers own the returned slice
	all[0] = color.White
	assert.Equal(t, color.Pink, color.All()[0])
}

// TestParse covers canonical names, case folding, aliases and unknown names.
func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
	}{
		{"pink", color.Pink},
		{"Silver", color.Silver},
		{"  GOLD ", color.Gold},
		{"grey", color.Grey},
		{"gray", color.Grey},
		{"none", color.Empty},
		{"", color.Empty},
		{"empty", color.Empty},
	}
	for _, tc := range tests {
		got, err := color.Parse(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := color.Parse("magenta")
	assert.ErrorIs(t, err, color.ErrUnknownColor)

	assert.Panics(t, func() { color.MustParse("magenta") })
}

// TestString_RoundTrip checks every name parses back to its color.
func TestString_RoundTrip(t *testing.T) {
	for _, c := range color.All() {
		got, err := color.Parse(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	assert.Equal(t, "color(99)", color.Color(99).String())
}

// TestRole_StringAndPlace checks role names and digit places.
func TestRole_StringAndPlace(t *testing.T) {
	assert.Equal(t, "tens digit", color.RoleTensDigit.String())
	assert.Equal(t, "temperature coefficient", color.RoleTemperatureCoefficient.String())
	assert.Equal(t, "role(42)", color.Role(42).String())

	places := map[color.Role]int{
		color.RoleOnesDigit:      0,
		color.RoleTensDigit:      1,
		color.RoleHundredsDigit:  2,
		color.RoleThousandsDigit: 3,
	}
	for r, want := range places {
		got, ok := r.Place()
		assert.True(t, ok, r.String())
		assert.Equal(t, want, got, r.String())
	}
	_, ok := color.RoleMultiplier.Place()
	assert.False(t, ok)
}

// TestRole_Lookup checks that a color's validity depends on the role.
func TestRole_Lookup(t *testing.T) {
	assert.ErrorIs(t, color.RoleTensDigit.Lookup(color.Silver), color.ErrNotDigit)
	assert.NoError(t, color.RoleMultiplier.Lookup(color.Silver))
	assert.NoError(t, color.RoleTolerance.Lookup(color.Silver))
	assert.ErrorIs(t, color.RoleTemperatureCoefficient.Lookup(color.Silver), color.ErrNotTemperatureCoefficient)
	assert.NoError(t, color.RoleThousandsDigit.Lookup(color.White))
	assert.ErrorIs(t, color.Role(42).Lookup(color.Red), color.ErrUnknownRole)
}
