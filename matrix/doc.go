// SPDX-License-Identifier: MIT

// Package matrix provides a dense, rectangular float64 matrix value type.
//
// The package offers:
//
//   - Validated construction from typed grids (New) or dynamically typed
//     nested sequences (NewFromAny, Parse, YAML/JSON decoding).
//   - Structural queries: Rows, Cols, Size, IsSquare, IsEmpty.
//   - Factories: Zero, Identity and the NewZeros/NewIdentity helpers.
//   - Arithmetic that always allocates a fresh result: Add, Sub, MulElem,
//     Mul, Transpose, Scale and the free function Dot.
//   - In-place row/column insertion: AddRow, InsertRow, AddCol, InsertCol.
//   - Interop with gonum.org/v1/gonum/mat (Gonum, ToDense, FromGonum).
//
// Invariants held by every *Matrix:
//
//   - all rows have the same length;
//   - a non-empty matrix has no zero-length rows;
//   - the empty matrix (zero rows) has size (0, 0) and is square.
//
// Errors are package sentinels (errors.go) matched with errors.Is. The
// spec-level kinds map onto three roots: ErrConstruction, ErrRowType and
// ErrShape; the finer sentinels wrap one of them.
//
// A Matrix carries no lock. Share one across goroutines only with external
// synchronization.
package matrix
