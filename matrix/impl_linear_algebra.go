// SPDX-License-Identifier: MIT
// Package matrix provides arithmetic on Matrix values: element-wise
// addition, subtraction and product, matrix multiplication, transpose,
// scalar scaling and the Dot kernel.
//
// Purpose:
//   - Every operation validates first and allocates a fresh result; no
//     operand is ever mutated.
//   - Results inherit the left operand's numeric policy. Under the
//     finite-only policy an overflow to ±Inf (or NaN) fails with ErrNaNInf.
//
// Notes:
//   - Errors are wrapped with an op* tag via matrixErrorf so messages read
//     "Add: ValidateSameShape: Rows: matrix: invalid shape: dimension mismatch"
//     while errors.Is still matches the sentinel.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd     = "Add"
	opSub     = "Sub"
	opMul     = "Mul"
	opMulElem = "MulElem"
	opScale   = "Scale"
	opDot     = "Dot"
)

// ZeroSum is the initial value of every accumulation.
const ZeroSum = 0.0

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// elementwise computes out[i][j] = f(a[i][j], b[i][j]) for same-shaped
// operands. Shared by Add, Sub and MulElem.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: allocate result rows and fill with fixed i→j order.
//   - Stage 3: enforce the left operand's numeric policy on the result.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func elementwise(a, b *Matrix, opTag string, f func(x, y float64) float64) (*Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newZeroed(a.Rows(), a.Cols(), a.validateNaNInf)
	for i, row := range res.grid {
		ar, br := a.grid[i], b.grid[i]
		for j := range row {
			row[j] = f(ar[j], br[j])
		}
	}
	if err := res.checkPolicy(); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	return res, nil
}

// Add returns the element-wise sum m + other as a new Matrix.
// Neither operand is modified.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (size differs), ErrNaNInf (policy).
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	return elementwise(m, other, opAdd, func(x, y float64) float64 { return x + y })
}

// Sub returns the element-wise difference m − other as a new Matrix.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	return elementwise(m, other, opSub, func(x, y float64) float64 { return x - y })
}

// MulElem returns the element-wise (Hadamard) product m ⊙ other.
func (m *Matrix) MulElem(other *Matrix) (*Matrix, error) {
	return elementwise(m, other, opMulElem, func(x, y float64) float64 { return x * y })
}

// Mul returns the matrix product m × other.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (m.Cols == other.Rows).
//   - Stage 2: for each column j of other, gather it once into a buffer,
//     then res[i][j] = dot(row i of m, column j).
//
// Behavior highlights:
//   - Result is m.Rows() × other.Cols(); empty × empty is empty.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (policy).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c + n).
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(m, other); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := m.Rows(), m.Cols(), other.Cols()
	res := newZeroed(rows, cols, m.validateNaNInf)
	column := make([]float64, inner)
	for j := 0; j < cols; j++ {
		for k := 0; k < inner; k++ {
			column[k] = other.grid[k][j]
		}
		for i := 0; i < rows; i++ {
			res.grid[i][j] = dot(m.grid[i], column)
		}
	}
	if err := res.checkPolicy(); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// Transpose returns mᵀ: element (i,j) of the result is element (j,i) of m.
// Defined for every matrix, including the empty one.
// Complexity: O(r*c).
func (m *Matrix) Transpose() *Matrix {
	res := newZeroed(m.Cols(), m.Rows(), m.policy())
	for i, row := range res.grid {
		for j := range row {
			row[j] = m.grid[j][i]
		}
	}

	return res
}

// Scale returns alpha·m.
// Errors: ErrNaNInf when the policy is on and alpha or a product is non-finite.
func (m *Matrix) Scale(alpha float64) (*Matrix, error) {
	res := m.Clone()
	for _, row := range res.grid {
		for j := range row {
			row[j] *= alpha
		}
	}
	if err := res.checkPolicy(); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return res, nil
}

// Dot returns the sum of pairwise products of a and b.
// Errors: ErrDimensionMismatch when the lengths differ.
// Two empty slices have dot product 0.
func Dot(a, b []float64) (float64, error) {
	if err := ValidateVecLen(b, len(a)); err != nil {
		return 0, matrixErrorf(opDot, err)
	}

	return dot(a, b), nil
}

// dot assumes len(a) == len(b).
func dot(a, b []float64) float64 {
	sum := ZeroSum
	for k, x := range a {
		sum += x * b[k]
	}

	return sum
}

// checkPolicy scans m for non-finite values when its policy is on.
func (m *Matrix) checkPolicy() error {
	if !m.validateNaNInf {
		return nil
	}

	return validateGrid(m.grid, true)
}
