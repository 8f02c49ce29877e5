// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for shape, nil and numeric checks.
//  - Keep kernels minimal by delegating guards here.
//  - Return sentinel errors (wrapped with a validator tag) so call sites can
//    wrap once more with their operation tag and callers still use errors.Is.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).
//  - Grid validators check raggedness before zero-length rows, so [[], [1]]
//    reports ErrRaggedRows and [[]] reports ErrEmptyRow.

package matrix

import (
	"fmt"
	"math"
	"reflect"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil. Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape runs NotNil on both operands, then SameShape.
// Use for Add/Sub/MulElem.
func ValidateBinarySameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols == b.Rows.
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks Rows == Cols. The empty matrix is square.
func ValidateSquare(m *Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures len(x) == n.
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// validateGrid checks the rectangular invariants of a typed grid and,
// when finiteOnly is set, the numeric policy.
// Order: ragged → zero-length → NaN/Inf. Time O(r*c) only under policy.
func validateGrid(grid [][]float64, finiteOnly bool) error {
	if len(grid) == 0 {
		return nil // empty matrix bypasses row-shape checks
	}
	width := len(grid[0])
	for i := 1; i < len(grid); i++ {
		if len(grid[i]) != width {
			return fmt.Errorf("row %d has %d elements, row 0 has %d: %w", i, len(grid[i]), width, ErrRaggedRows)
		}
	}
	if width == 0 {
		return ErrEmptyRow // all rows share the length, so every row is empty
	}
	if finiteOnly {
		for i, row := range grid {
			if err := validateFinite(row); err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
		}
	}

	return nil
}

// validateFinite rejects NaN and ±Inf values.
func validateFinite(xs []float64) error {
	for j, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("element %d: %w", j, ErrNaNInf)
		}
	}

	return nil
}

// validateLine checks a row or column about to be inserted.
//   - onEmpty: the receiver has no rows, so any non-empty length is legal.
//   - want: required length otherwise.
func validateLine(xs []float64, want int, onEmpty, finiteOnly bool) error {
	switch {
	case len(xs) == 0 && onEmpty:
		return ErrEmptyRow
	case !onEmpty && len(xs) != want:
		return fmt.Errorf("got %d elements, want %d: %w", len(xs), want, ErrDimensionMismatch)
	}
	if finiteOnly {
		return validateFinite(xs)
	}

	return nil
}

// gridFromAny converts a dynamically typed nested sequence into a typed
// grid. It mirrors the runtime checks of a dynamically typed constructor:
//
//   - Stage 1: v must be a slice or array (else ErrConstruction).
//   - Stage 2: every element must be a slice or array (else ErrRowType).
//   - Stage 3: every inner element must be an integer or float kind
//     (else ErrRowType). bool, string, nil and composite values are rejected.
//
// Shape checks are left to validateGrid. The result never aliases v.
func gridFromAny(v any) ([][]float64, error) {
	if g, ok := v.([][]float64); ok {
		return cloneGrid(g), nil // fast path for the typed form
	}

	outer := reflect.ValueOf(v)
	if !isSequence(outer) {
		return nil, fmt.Errorf("got %T: %w", v, ErrConstruction)
	}

	n := outer.Len()
	rows := make([]reflect.Value, n)
	for i := 0; i < n; i++ {
		r := unwrapInterface(outer.Index(i))
		if !isSequence(r) {
			return nil, fmt.Errorf("row %d: not a sequence: %w", i, ErrRowType)
		}
		rows[i] = r
	}

	grid := make([][]float64, n)
	for i, r := range rows {
		row := make([]float64, r.Len())
		for j := range row {
			f, ok := numericValue(unwrapInterface(r.Index(j)))
			if !ok {
				return nil, fmt.Errorf("row %d, element %d: non-numeric value: %w", i, j, ErrRowType)
			}
			row[j] = f
		}
		grid[i] = row
	}

	return grid, nil
}

// isSequence reports whether rv is a non-string slice or array.
func isSequence(rv reflect.Value) bool {
	if !rv.IsValid() {
		return false
	}
	k := rv.Kind()

	return k == reflect.Slice || k == reflect.Array
}

// unwrapInterface peels one interface layer ([]any elements).
func unwrapInterface(rv reflect.Value) reflect.Value {
	if rv.Kind() == reflect.Interface {
		return rv.Elem() // invalid Value for a nil interface
	}

	return rv
}

// numericValue converts integer and float kinds to float64.
func numericValue(rv reflect.Value) (float64, bool) {
	if !rv.IsValid() {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	default:
		return 0, false
	}
}

// cloneGrid deep-copies a grid; nil rows stay zero-length.
func cloneGrid(g [][]float64) [][]float64 {
	out := make([][]float64, len(g))
	for i, row := range g {
		out[i] = append(make([]float64, 0, len(row)), row...)
	}

	return out
}
