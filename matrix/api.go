// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical method.
//   - Keep function names explicit and intention-revealing.
//
// Policy:
//   - Facades never change the numeric policy of the underlying methods.
//   - Validation is performed in the methods; facades only compose or forward.

package matrix

import "fmt"

const (
	opNewZeros     = "NewZeros"
	opNewIdentity  = "NewIdentity"
	opIdentityLike = "IdentityLike"
	opAllClose     = "AllClose"
)

// ---------- Constructors ----------

// NewZeros returns a rows×cols zero matrix.
// Either dimension 0 yields the empty matrix (a matrix cannot have
// zero-length rows). Negative dimensions fail with ErrInvalidDimensions.
func NewZeros(rows, cols int, opts ...Option) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNewZeros, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions))
	}
	o := gatherOptions(opts...)

	return newZeroed(rows, cols, o.validateNaNInf), nil
}

// NewIdentity returns I_n. n == 0 yields the empty matrix.
func NewIdentity(n int, opts ...Option) (*Matrix, error) {
	if n < 0 {
		return nil, matrixErrorf(opNewIdentity, fmt.Errorf("n=%d: %w", n, ErrInvalidDimensions))
	}
	o := gatherOptions(opts...)
	id, _ := newZeroed(n, n, o.validateNaNInf).Identity() // n×n is always square

	return id, nil
}

// ZerosLike returns a new zero matrix with the shape of m.
func ZerosLike(m *Matrix) *Matrix { return m.Zero() }

// IdentityLike is the error-returning form of Identity for callers that
// prefer a sentinel over a boolean.
// Errors: ErrNonSquare.
func IdentityLike(m *Matrix) (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentityLike, err)
	}
	id, _ := m.Identity()

	return id, nil
}

// ---------- Arithmetic aliases ----------

// Sum is an alias for a.Add(b).
func Sum(a, b *Matrix) (*Matrix, error) { return a.Add(b) }

// Diff is an alias for a.Sub(b).
func Diff(a, b *Matrix) (*Matrix, error) { return a.Sub(b) }

// Product is an alias for a.Mul(b).
func Product(a, b *Matrix) (*Matrix, error) { return a.Mul(b) }

// HadamardProd is an alias for a.MulElem(b).
func HadamardProd(a, b *Matrix) (*Matrix, error) { return a.MulElem(b) }

// T is an alias for m.Transpose().
func T(m *Matrix) *Matrix { return m.Transpose() }

// ---------- Comparison ----------

// AllClose reports whether a and b agree element-wise within the
// WithEpsilon tolerance (DefaultEpsilon otherwise).
// Unlike EqualApprox it distinguishes "different" from "incomparable":
// shapes must match, else ErrDimensionMismatch.
func AllClose(a, b *Matrix, opts ...Option) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	o := gatherOptions(opts...)

	return a.EqualApprox(b, o.eps), nil
}
