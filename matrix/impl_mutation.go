// SPDX-License-Identifier: MIT

// Package matrix - in-place row and column insertion.
//
// Contract:
//   - Validate-then-mutate: on any error the receiver is left untouched.
//   - Inserted data is copied; the caller may reuse its slice.
//   - On an empty receiver any non-empty row (column) is accepted and fixes
//     the column (row) count from then on.
//   - index is the position the new line occupies afterwards; valid range is
//     0 ≤ index ≤ Rows() (Cols() for columns). index == Rows() appends.

package matrix

import (
	"fmt"
	"slices"
)

const (
	opInsertRow = "InsertRow"
	opInsertCol = "InsertCol"
)

// AddRow appends row at the bottom. See InsertRow.
func (m *Matrix) AddRow(row []float64) error {
	return m.InsertRow(m.Rows(), row)
}

// InsertRow inserts row before index, shifting rows index.. down by one.
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - ErrOutOfRange when index ∉ [0, Rows()].
//   - ErrDimensionMismatch when len(row) != Cols() on a non-empty matrix.
//   - ErrEmptyRow when row is empty and the matrix is empty.
//   - ErrNaNInf under the finite-only policy.
//
// Complexity: O(r + c).
func (m *Matrix) InsertRow(index int, row []float64) error {
	if m == nil {
		return matrixErrorf(opInsertRow, ErrNilMatrix)
	}
	if index < 0 || index > len(m.grid) {
		return matrixErrorf(opInsertRow, fmt.Errorf("index %d: %w", index, ErrOutOfRange))
	}
	if err := validateLine(row, m.Cols(), m.IsEmpty(), m.validateNaNInf); err != nil {
		return matrixErrorf(opInsertRow, err)
	}

	m.grid = slices.Insert(m.grid, index, append([]float64(nil), row...))

	return nil
}

// AddCol appends col as the right-most column. See InsertCol.
func (m *Matrix) AddCol(col []float64) error {
	return m.InsertCol(m.Cols(), col)
}

// InsertCol inserts col before column index in every row, shifting columns
// index.. right by one. On an empty matrix it creates len(col) rows of one
// element each (index must then be 0).
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - ErrOutOfRange when index ∉ [0, Cols()].
//   - ErrDimensionMismatch when len(col) != Rows() on a non-empty matrix.
//   - ErrEmptyRow when col is empty and the matrix is empty.
//   - ErrNaNInf under the finite-only policy.
//
// Complexity: O(r*c) worst case (shifting within each row).
func (m *Matrix) InsertCol(index int, col []float64) error {
	if m == nil {
		return matrixErrorf(opInsertCol, ErrNilMatrix)
	}
	if index < 0 || index > m.Cols() {
		return matrixErrorf(opInsertCol, fmt.Errorf("index %d: %w", index, ErrOutOfRange))
	}
	if err := validateLine(col, m.Rows(), m.IsEmpty(), m.validateNaNInf); err != nil {
		return matrixErrorf(opInsertCol, err)
	}

	if m.IsEmpty() {
		m.grid = make([][]float64, len(col))
		for i, v := range col {
			m.grid[i] = []float64{v}
		}

		return nil
	}
	for i, v := range col {
		m.grid[i] = slices.Insert(m.grid[i], index, v)
	}

	return nil
}
