// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
package builder

import "fmt"

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: parameter must be ≥ <min>, got <got>" wrapping
// ErrTooFewCells otherwise.
//
// Parameters:
//   - method: constructor name constant, e.g. MethodGrid.
//   - got:    actual value supplied by user.
//   - min:    minimal acceptable value.
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: parameter must be ≥ %d, got %d: %w", method, min, got, ErrTooFewCells)
	}

	return nil
}
