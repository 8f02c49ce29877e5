// Package matrix_test contains unit tests for accessors, factories and
// equality of Matrix.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/densematrix/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsSquare checks square-ness including the empty matrix.
func TestIsSquare(t *testing.T) {
	require.True(t, MustNew(t, [][]float64{{1, 2}, {3, 4}}).IsSquare())
	require.False(t, MustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}}).IsSquare())
	require.True(t, MustNew(t, nil).IsSquare())

	var nilM *matrix.Matrix
	require.True(t, nilM.IsSquare(), "nil behaves like the empty matrix")
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustNew(t, [][]float64{{1, 2}, {3, 4}})

	_, err := m.At(-1, 0)                         // negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2) // column index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23) // row index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	var nilM *matrix.Matrix
	require.ErrorIs(t, nilM.Set(0, 0, 1), matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() and the NaN/Inf policy on Set.
func TestSetGet(t *testing.T) {
	m := MustNew(t, [][]float64{{0, 0, 0}, {0, 0, 0}})
	require.NoError(t, m.Set(1, 2, 7.89))
	require.Equal(t, 7.89, MustAt(t, m, 1, 2))

	strict := MustNew(t, [][]float64{{0}}, matrix.WithValidateNaNInf())
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.Equal(t, 0.0, MustAt(t, strict, 0, 0), "rejected write leaves the cell untouched")
}

// TestRowColCopies verifies Row/Col return independent copies.
func TestRowColCopies(t *testing.T) {
	m := MustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)
	row[0] = 99
	require.Equal(t, 4.0, MustAt(t, m, 1, 0))

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, col)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustNew(t, [][]float64{{1, 0}, {0, 2}})
	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3))

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0))
}

// TestRawIsDeepCopy ensures Raw() never exposes the backing grid.
func TestRawIsDeepCopy(t *testing.T) {
	m := MustNew(t, [][]float64{{1, 2}})
	raw := m.Raw()
	raw[0][1] = 42
	require.Equal(t, 2.0, MustAt(t, m, 0, 1))

	require.NotNil(t, MustNew(t, nil).Raw(), "empty matrix yields a non-nil slice")
}

// TestZero keeps the size and zeroes every element.
func TestZero(t *testing.T) {
	m := MustNew(t, [][]float64{{2, 4, 1}, {2, -5, 2}})
	z := m.Zero()

	RequireGrid(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, z)
	require.Equal(t, 2.0, MustAt(t, m, 0, 0), "receiver untouched")
	require.True(t, MustNew(t, nil).Zero().IsEmpty())
}

// TestIdentity_Square checks M[i][j] = 1 iff i == j for several n.
func TestIdentity_Square(t *testing.T) {
	for n := 1; n <= 5; n++ {
		src := RandomMatrix(t, n, n, int64(n))
		before := src.Raw()

		id, ok := src.Identity()
		require.True(t, ok)
		require.Equal(t, matrix.Size{Rows: n, Cols: n}, id.Size())
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				want := 0.0
				if i == j {
					want = 1
				}
				require.Equal(t, want, MustAt(t, id, i, j), "I%d[%d,%d]", n, i, j)
			}
		}
		require.Equal(t, before, src.Raw(), "Identity must not overwrite the receiver")
	}
}

// TestIdentity_NonSquare returns the no-value indicator.
func TestIdentity_NonSquare(t *testing.T) {
	id, ok := MustNew(t, [][]float64{{2, 4, 1}, {2, -5, 2}}).Identity()
	require.False(t, ok)
	require.Nil(t, id)
}

// TestIdentity_Empty is the empty matrix (0 == 0 is square).
func TestIdentity_Empty(t *testing.T) {
	id, ok := MustNew(t, nil).Identity()
	require.True(t, ok)
	require.True(t, id.IsEmpty())
}

// TestEqual covers the equality contract.
func TestEqual(t *testing.T) {
	a := MustNew(t, [][]float64{{1, 2}})
	b := MustNew(t, [][]float64{{1, 2}})
	c := MustNew(t, [][]float64{{1, 2}, {3, 4}})
	d := MustNew(t, [][]float64{{1, 3}})
	e := MustNew(t, [][]float64{{1}, {2}})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "different row count")
	assert.False(t, a.Equal(d), "different element")
	assert.False(t, a.Equal(e), "same element count, transposed shape")

	var nilM *matrix.Matrix
	assert.True(t, nilM.Equal(MustNew(t, nil)))
	assert.False(t, a.Equal(nilM))

	n := MustNew(t, [][]float64{{math.NaN()}})
	assert.False(t, n.Equal(n.Clone()), "NaN never compares equal")
}

// TestEqualApprox covers tolerance and infinities.
func TestEqualApprox(t *testing.T) {
	a := MustNew(t, [][]float64{{1, math.Inf(1)}})
	b := MustNew(t, [][]float64{{1 + 1e-12, math.Inf(1)}})

	assert.True(t, a.EqualApprox(b, 1e-9))
	assert.True(t, a.EqualApprox(b, -1e-9), "negative tol is normalized")
	assert.False(t, a.EqualApprox(b, 0))
	assert.False(t, a.EqualApprox(MustNew(t, [][]float64{{1, 2}}), 1e9), "Inf vs finite")
	assert.False(t, a.EqualApprox(a.Transpose(), 1))
}
