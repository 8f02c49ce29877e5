// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Operations return
// these sentinels (optionally wrapped with an operation tag) and tests
// check them via errors.Is. No operation panics on user-triggered errors.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & HIERARCHY
// --------------------------
// Every message is prefixed with "matrix: ...". Three root kinds exist:
//
//	ErrConstruction  the argument is not a sequence of rows at all
//	ErrRowType       a row is not a sequence, or holds non-numeric content
//	ErrShape         any rectangular-shape violation
//
// Finer sentinels wrap a root with %w, so errors.Is(err, ErrShape) holds
// for ErrRaggedRows, ErrEmptyRow and ErrDimensionMismatch alike.

var (
	// ErrConstruction is returned when the top-level argument is not a
	// sequence of rows (nil, scalar, map, string, malformed text).
	ErrConstruction = errors.New("matrix: argument is not a sequence of rows")

	// ErrRowType is returned when a claimed row is not itself a sequence
	// or contains a non-numeric element.
	ErrRowType = errors.New("matrix: row is not a numeric sequence")

	// ErrShape is the root of every shape violation.
	ErrShape = errors.New("matrix: invalid shape")
)

var (
	// ErrRaggedRows signals rows of differing lengths.
	ErrRaggedRows = fmt.Errorf("%w: rows differ in length", ErrShape)

	// ErrEmptyRow signals a zero-length row in a non-empty matrix.
	ErrEmptyRow = fmt.Errorf("%w: zero-length row", ErrShape)

	// ErrDimensionMismatch indicates incompatible dimensions between operands
	// (Add/Sub/MulElem with different sizes, Mul with a.Cols != b.Rows, Dot
	// with different lengths) or an inserted row/column of the wrong length.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrShape)

	// ErrNaNInf signals a NaN or ±Inf value under the finite-only policy.
	// It is a row-type violation: such values are not accepted as numbers.
	ErrNaNInf = fmt.Errorf("%w: NaN or Inf encountered", ErrRowType)
)

var (
	// ErrOutOfRange indicates that a row, column or insertion index is
	// outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Matrix was used as an operand or
	// as the receiver of a mutating method.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrInvalidDimensions indicates negative requested dimensions.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrEmptyMatrix is returned by conversions that cannot represent the
	// empty matrix (gonum forbids zero-sized Dense).
	ErrEmptyMatrix = errors.New("matrix: empty matrix")
)
