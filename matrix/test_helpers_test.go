// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the view, vector and
//     operator tests.
//   - The canonical fixture is the 3×3 matrix whose column-major linear order
//     reads 1..9, so linear positions and values coincide.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matlab/matrix"
	"github.com/stretchr/testify/require"
)

// MustFromRows builds a Matrix from row slices or fails the test.
func MustFromRows(t testing.TB, rows [][]float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustRow builds a RowVector or fails the test.
func MustRow(t testing.TB, vals ...float64) *matrix.RowVector {
	t.Helper()
	v, err := matrix.NewRowVector(vals)
	require.NoError(t, err)

	return v
}

// MustCol builds a ColVector or fails the test.
func MustCol(t testing.TB, vals ...float64) *matrix.ColVector {
	t.Helper()
	v, err := matrix.NewColVector(vals)
	require.NoError(t, err)

	return v
}

// Magic3 returns
//
//	1 4 7
//	2 5 8
//	3 6 9
//
// whose column-major linear order is 1..9.
func Magic3(t testing.TB) *matrix.Matrix {
	t.Helper()

	return MustFromRows(t, [][]float64{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}})
}

// RequireMatrix asserts m has exactly the given rows (exact comparison).
func RequireMatrix(t testing.TB, want [][]float64, m *matrix.Matrix) {
	t.Helper()
	require.Truef(t, MustFromRows(t, want).Equal(m), "want %v, got\n%v", want, m)
}

// RequireCells compares m.Flatten() with want (column-major), treating NaN as equal to NaN.
func RequireCells(t testing.TB, m *matrix.Matrix, want []float64) {
	t.Helper()
	got := m.Flatten().Values()
	require.Len(t, got, len(want))
	for k := range want {
		if math.IsNaN(want[k]) {
			require.Truef(t, math.IsNaN(got[k]), "cell %d: want NaN, got %v", k+1, got[k])
			continue
		}
		require.Equalf(t, want[k], got[k], "cell %d", k+1)
	}
}
