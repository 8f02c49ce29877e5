// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Gonum exposes m to gonum routines without copying (read-only view).
//   - ToDense / FromGonum copy across the boundary.
//
// Notes:
//   - gonum forbids zero-sized matrices: ToDense returns ErrEmptyMatrix and
//     gonum operations on the view of an empty matrix panic as gonum does.
//   - The view follows gonum conventions and panics on out-of-range At.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToDense   = "ToDense"
	opFromGonum = "FromGonum"
)

// gonumView adapts *Matrix to mat.Matrix over the live grid.
type gonumView struct{ m *Matrix }

// Compile-time assertion: the view satisfies gonum's Matrix interface.
var _ mat.Matrix = gonumView{}

// Dims returns the dimensions of the underlying Matrix.
func (v gonumView) Dims() (r, c int) { return v.m.Rows(), v.m.Cols() }

// At returns element (i, j); panics with mat.ErrIndexOutOfRange when out of bounds.
func (v gonumView) At(i, j int) float64 {
	if !v.m.inBounds(i, j) {
		panic(mat.ErrIndexOutOfRange)
	}

	return v.m.grid[i][j]
}

// T returns the implicit transpose.
func (v gonumView) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// Gonum returns a zero-copy read-only mat.Matrix view of m. Later writes to
// m (Set, InsertRow, ...) are visible through the view.
func (m *Matrix) Gonum() mat.Matrix { return gonumView{m: m} }

// ToDense copies m into a new *mat.Dense.
// Errors: ErrEmptyMatrix for the empty matrix.
func (m *Matrix) ToDense() (*mat.Dense, error) {
	if m.IsEmpty() {
		return nil, matrixErrorf(opToDense, ErrEmptyMatrix)
	}
	rows, cols := m.Rows(), m.Cols()
	data := make([]float64, 0, rows*cols)
	for _, row := range m.grid {
		data = append(data, row...)
	}

	return mat.NewDense(rows, cols, data), nil
}

// FromGonum copies any mat.Matrix into a new Matrix. A matrix with a zero
// dimension yields the empty matrix.
//
// Errors:
//   - ErrNilMatrix when a is nil.
//   - ErrNaNInf under WithValidateNaNInf.
func FromGonum(a mat.Matrix, opts ...Option) (*Matrix, error) {
	if a == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	rows, cols := a.Dims()
	res := newZeroed(rows, cols, o.validateNaNInf)
	for i, row := range res.grid {
		for j := range row {
			row[j] = a.At(i, j)
		}
	}
	if err := res.checkPolicy(); err != nil {
		return nil, matrixErrorf(opFromGonum, fmt.Errorf("gonum %dx%d: %w", rows, cols, err))
	}

	return res, nil
}
