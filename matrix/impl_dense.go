// SPDX-License-Identifier: MIT

// Package matrix - structural accessors, factories and equality.
//
// Purpose:
//   - Pure queries over the grid (Rows/Cols/Size/IsSquare/IsEmpty).
//   - Safe element access: At/Set/Row/Col return errors instead of panicking.
//   - Factories that always allocate: Zero, Identity, Clone, Raw.
//
// Nil receivers:
//   - Read-only methods treat a nil *Matrix as the empty matrix.
//   - Set returns ErrOutOfRange for a nil receiver (it has no cells).
//
// Complexity quicksheet:
//   - Rows/Cols/Size/IsSquare: O(1); At/Set: O(1); Row/Col: O(r|c);
//     Zero/Identity/Clone/Raw/Equal: O(r*c).

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxRow = "Row"
	ctxCol = "Col"
)

// denseErrorf wraps err with the method context and the callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}

	return len(m.grid)
}

// Cols returns the number of columns, or 0 for the empty matrix.
func (m *Matrix) Cols() int {
	if m == nil || len(m.grid) == 0 {
		return 0
	}

	return len(m.grid[0])
}

// Size returns the (rows, cols) pair.
func (m *Matrix) Size() Size { return Size{Rows: m.Rows(), Cols: m.Cols()} }

// IsSquare reports Rows == Cols. True for the empty matrix.
func (m *Matrix) IsSquare() bool { return m.Rows() == m.Cols() }

// IsEmpty reports whether the matrix has no rows.
func (m *Matrix) IsEmpty() bool { return m.Rows() == 0 }

// At returns the element at (row, col) or ErrOutOfRange.
func (m *Matrix) At(row, col int) (float64, error) {
	if !m.inBounds(row, col) {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.grid[row][col], nil
}

// Set stores v at (row, col).
// Errors: ErrOutOfRange for bounds; ErrNaNInf for non-finite v under policy.
func (m *Matrix) Set(row, col int, v float64) error {
	if !m.inBounds(row, col) {
		return denseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.grid[row][col] = v

	return nil
}

// inBounds reports 0 ≤ row < Rows and 0 ≤ col < Cols.
func (m *Matrix) inBounds(row, col int) bool {
	return row >= 0 && row < m.Rows() && col >= 0 && col < m.Cols()
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.Rows() {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return append([]float64(nil), m.grid[i]...), nil
}

// Col returns a copy of column j.
func (m *Matrix) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.Cols() {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, len(m.grid))
	for i, row := range m.grid {
		out[i] = row[j]
	}

	return out, nil
}

// Raw returns a deep copy of the grid. The empty matrix yields a non-nil
// zero-length slice so encoders render "[]".
func (m *Matrix) Raw() [][]float64 {
	if m == nil {
		return [][]float64{}
	}

	return cloneGrid(m.grid)
}

// Clone returns an independent deep copy with the same numeric policy.
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return &Matrix{}
	}

	return &Matrix{grid: cloneGrid(m.grid), validateNaNInf: m.validateNaNInf}
}

// Zero returns a new matrix of the same size filled with 0.
// The empty matrix yields a new empty matrix.
func (m *Matrix) Zero() *Matrix {
	return newZeroed(m.Rows(), m.Cols(), m.policy())
}

// Identity returns a new identity matrix of the same dimension and true
// when m is square; otherwise (nil, false). The receiver is never modified.
// The empty matrix is square, so its identity is the empty matrix.
func (m *Matrix) Identity() (*Matrix, bool) {
	if !m.IsSquare() {
		return nil, false
	}
	id := newZeroed(m.Rows(), m.Cols(), m.policy())
	for i := range id.grid {
		id.grid[i][i] = 1
	}

	return id, true
}

// Equal reports whether m and other have identical dimensions and every
// pair of corresponding elements compares equal with ==.
// NaN is never equal to NaN. A nil *Matrix equals the empty matrix.
func (m *Matrix) Equal(other *Matrix) bool {
	if m.Rows() != other.Rows() || m.Cols() != other.Cols() {
		return false
	}
	for i := 0; i < m.Rows(); i++ {
		a, b := m.grid[i], other.grid[i]
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}

	return true
}

// EqualApprox reports same shape and |a-b| <= tol element-wise.
// A negative tol is treated as |tol|. +Inf equals +Inf; NaN equals nothing.
func (m *Matrix) EqualApprox(other *Matrix, tol float64) bool {
	if m.Rows() != other.Rows() || m.Cols() != other.Cols() {
		return false
	}
	tol = math.Abs(tol)
	for i := 0; i < m.Rows(); i++ {
		a, b := m.grid[i], other.grid[i]
		for j := range a {
			if !closeEnough(a[j], b[j], tol) {
				return false
			}
		}
	}

	return true
}

// closeEnough is the element predicate of EqualApprox.
func closeEnough(a, b, tol float64) bool {
	if a == b {
		return true // covers equal infinities
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}

	return math.Abs(a-b) <= tol
}

// policy returns the numeric policy; nil behaves like a default instance.
func (m *Matrix) policy() bool {
	if m == nil {
		return DefaultValidateNaNInf
	}

	return m.validateNaNInf
}
