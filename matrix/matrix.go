// SPDX-License-Identifier: MIT

// Package matrix: validated constructors.
//
// Purpose:
//   - New builds a Matrix from a typed [][]float64 grid.
//   - NewFromAny builds one from a dynamically typed nested sequence, which is
//     what the text, YAML and JSON decoders produce.
//   - Both deep-copy their input: the returned Matrix exclusively owns its grid.
package matrix

import "fmt"

// Operation tags for constructors.
const (
	opNew        = "New"
	opNewFromAny = "NewFromAny"
)

// New validates grid and returns a Matrix owning a copy of it.
//
// Implementation:
//   - Stage 1: resolve options (numeric policy).
//   - Stage 2: validate shape (ragged, zero-length rows) and numeric policy.
//   - Stage 3: deep-copy into a fresh grid.
//
// Behavior highlights:
//   - nil or zero-length grid yields the empty matrix of size (0, 0).
//   - The caller may reuse grid afterwards; nothing is aliased.
//
// Errors:
//   - ErrRaggedRows, ErrEmptyRow (both ErrShape).
//   - ErrNaNInf (ErrRowType) under WithValidateNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(grid [][]float64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	if err := validateGrid(grid, o.validateNaNInf); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return &Matrix{grid: cloneGrid(grid), validateNaNInf: o.validateNaNInf}, nil
}

// MustNew is like New but panics on error. Intended for literals in tests
// and examples.
func MustNew(grid [][]float64, opts ...Option) *Matrix {
	m, err := New(grid, opts...)
	if err != nil {
		panic(fmt.Sprintf("matrix: MustNew: %v", err))
	}

	return m
}

// NewFromAny validates a dynamically typed nested sequence and returns a
// Matrix. Any slice or array of slices or arrays is accepted ([][]int,
// []any of []any, [][3]float32, ...) as long as every element has an
// integer or float kind.
//
// Validation order (first violation wins):
//  1. v is a sequence                 → else ErrConstruction
//  2. every row is a sequence         → else ErrRowType
//  3. every element is numeric        → else ErrRowType
//  4. rows have equal length          → else ErrRaggedRows
//  5. rows are non-empty              → else ErrEmptyRow
//  6. elements finite (policy only)   → else ErrNaNInf
//
// An untyped nil is not a sequence and fails with ErrConstruction; a typed
// nil slice is an empty sequence and yields the empty matrix.
func NewFromAny(v any, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	grid, err := gridFromAny(v)
	if err != nil {
		return nil, matrixErrorf(opNewFromAny, err)
	}
	if err = validateGrid(grid, o.validateNaNInf); err != nil {
		return nil, matrixErrorf(opNewFromAny, err)
	}

	return &Matrix{grid: grid, validateNaNInf: o.validateNaNInf}, nil
}

// newZeroed allocates a rows×cols zero matrix; either dimension 0 yields
// the empty matrix. Callers guarantee non-negative dimensions.
func newZeroed(rows, cols int, validateNaNInf bool) *Matrix {
	m := &Matrix{validateNaNInf: validateNaNInf}
	if rows == 0 || cols == 0 {
		return m
	}
	m.grid = make([][]float64, rows)
	for i := range m.grid {
		m.grid[i] = make([]float64, cols)
	}

	return m
}
