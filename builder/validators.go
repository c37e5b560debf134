// Package builder provides validation helpers for the layout entry points.
package builder

import "fmt"

// validateBandCount ensures got is one of the supported band counts.
// Returns "<Method>: got <n> bands, want 4, 5 or 6: builder: unsupported band count" otherwise.
//
// Complexity: O(1) time and space.
func validateBandCount(method string, got int) error {
	switch got {
	case FourBandCount, FiveBandCount, SixBandCount:
		return nil
	default:
		return fmt.Errorf("%s: got %d bands, want %d, %d or %d: %w",
			method, got, FourBandCount, FiveBandCount, SixBandCount, ErrBandCount)
	}
}
