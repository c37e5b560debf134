// Package builder defines the shared constants of the band layouts.
package builder

//-----------------------------------------------------------------------------
// Layout Name Constants
//   used to prefix errors with the layout name for context.
//-----------------------------------------------------------------------------

const (
	// MethodFourBand is the canonical name of the four-band layout.
	MethodFourBand = "FourBand"
	// MethodFiveBand is the canonical name of the five-band layout.
	MethodFiveBand = "FiveBand"
	// MethodSixBand is the canonical name of the six-band layout.
	MethodSixBand = "SixBand"
	// MethodFromColors is the canonical name of the FromColors entry point.
	MethodFromColors = "FromColors"
)

//-----------------------------------------------------------------------------
// Band Counts
//-----------------------------------------------------------------------------

const (
	// FourBandCount is the number of bands on a four-band resistor.
	FourBandCount = 4
	// FiveBandCount is the number of bands on a five-band resistor.
	FiveBandCount = 5
	// SixBandCount is the number of bands on a six-band resistor.
	SixBandCount = 6
)
