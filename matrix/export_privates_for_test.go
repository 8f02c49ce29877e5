// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private validators.
//
// Purpose:
//   - Expose UNEXPORTED grid checks to matrix_test ONLY.
//   - File name ends in _test.go, so it never reaches production builds.

var (
	// GridFromAny_TestOnly exposes gridFromAny.
	GridFromAny_TestOnly = gridFromAny

	// ValidateGrid_TestOnly exposes validateGrid.
	ValidateGrid_TestOnly = validateGrid

	// ValidateLine_TestOnly exposes validateLine.
	ValidateLine_TestOnly = validateLine
)
