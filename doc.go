// Package densematrix is a small, dependency-light dense matrix library.
//
// What is in the box?
//
//	matrix/ — the Matrix value type: validated construction from typed or
//	          dynamically typed grids, structural queries, elementwise and
//	          matrix arithmetic, transpose, zero/identity factories,
//	          row/column insertion, nested-list text/YAML/JSON codecs and
//	          gonum interop.
//
// Why choose it?
//
//   - Strict invariants: every Matrix is rectangular with non-empty rows,
//     or the distinct empty matrix of size (0, 0).
//   - Value semantics: arithmetic never mutates its operands.
//   - Errors, not panics: sentinel errors matched with errors.Is.
//
// Quick example:
//
//	a := matrix.MustNew([][]float64{{1, 2}, {3, 4}})
//	b := matrix.MustNew([][]float64{{1, 3, -2}, {4, 0, -7}})
//	p, _ := a.Mul(b) // [[9, 3, -16], [19, 9, -34]]
//
//	go get github.com/katalvlaran/densematrix
package densematrix
