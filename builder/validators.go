// Package builder provides validation helpers to enforce
// parameter contracts in generators and constructors.
//
// Each function returns an error wrapping a package sentinel
// when its precondition is violated.
package builder

import (
	"fmt"
	"math"
)

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: <name>=<got> < min=<min>: builder: parameter too small" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrParameterTooSmall)
	}

	return nil
}

// validateScale ensures v is finite and ≥ 0.
//
// Complexity: O(1) time and space.
func validateScale(method, name string, v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s: %s=%g: %w", method, name, v, ErrInvalidScale)
	}

	return nil
}
