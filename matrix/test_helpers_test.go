// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for construction and kernels.
//   • Keep all data finite unless a test targets the numeric policy.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/densematrix/matrix"
	"github.com/stretchr/testify/require"
)

// MustNew BUILDS a Matrix from grid or fails the test.
func MustNew(t testing.TB, grid [][]float64, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(grid, opts...)
	require.NoError(t, err, "New(%v)", grid)

	return m
}

// MustAt READS (i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// RequireGrid ASSERTS m holds exactly want (shape and values).
func RequireGrid(t testing.TB, want [][]float64, m *matrix.Matrix) {
	t.Helper()
	require.NotNil(t, m)
	if len(want) == 0 {
		require.True(t, m.IsEmpty(), "want empty, got %s", m)

		return
	}
	require.Equal(t, want, m.Raw())
}

// RandomMatrix BUILDS an r×c matrix of U(-1,1) values from seed.
// r or c == 0 yields the empty matrix.
func RandomMatrix(t testing.TB, r, c int, seed int64) *matrix.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewZeros(r, c)
	require.NoError(t, err)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			require.NoError(t, m.Set(i, j, rng.Float64()*2-1))
		}
	}

	return m
}

// IntMatrix BUILDS an r×c matrix with small integer values, so sums and
// products stay exact in float64.
func IntMatrix(t testing.TB, r, c int, seed int64) *matrix.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewZeros(r, c)
	require.NoError(t, err)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			require.NoError(t, m.Set(i, j, float64(rng.Intn(21)-10)))
		}
	}

	return m
}
