// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the Matrix value type and its Size pair.
// Behavior lives in impl_*.go; errors and options in dedicated files.
package matrix

import "fmt"

// Matrix is a dense rectangular grid of float64 values.
//
//   - grid holds the rows in order; each row is its own growable slice so
//     that InsertRow/InsertCol shift elements without rebuilding the matrix.
//   - validateNaNInf is the per-instance numeric policy (see options.go);
//     arithmetic results inherit it from the left operand.
//
// The zero value is a valid empty matrix of size (0, 0).
type Matrix struct {
	grid           [][]float64 // len(grid) rows; every row has the same length (>0)
	validateNaNInf bool        // reject NaN/±Inf on ingestion, Set and results
}

// Size is the (rows, cols) pair of a Matrix.
type Size struct {
	Rows int // number of rows
	Cols int // number of columns (0 for the empty matrix)
}

// String renders the pair as "(rows, cols)".
func (s Size) String() string {
	return fmt.Sprintf("(%d, %d)", s.Rows, s.Cols)
}

// Compile-time assertion for fmt.Stringer conformance.
var (
	_ fmt.Stringer = (*Matrix)(nil)
	_ fmt.Stringer = Size{}
)
