// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise transforms and column reductions over Matrix:
//     PointwiseApply, ColumnwiseApply, and the 0/1 mask builders
//     (Not, EqualsElementwise, NotEqualsElementwise).
//
// NaN policy:
//   - PointwiseApply(f, true) never hands a NaN cell to f; the cell stays NaN.
//   - Mask builders run with ignoreNaN, so a NaN cell yields NaN, not 0 or 1.
//     Such a mask is rejected by RefMask (ErrInvalidMask).
//
// Determinism & Performance:
//   - Delegates the traversal to gonum (mat.Dense.Apply); O(r*c), one
//     allocation for the result.
//   - Column reductions visit columns in ascending order.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// PointwiseApply returns a new Matrix with f applied to every cell.
// When ignoreNaN is true, NaN cells are copied through instead of passed to f.
// Complexity: O(r*c).
func (m *Matrix) PointwiseApply(f func(float64) float64, ignoreNaN bool) *Matrix {
	out := newMatrix(m.r, m.c)
	if m.empty() {
		return out
	}
	out.store.Apply(func(_, _ int, v float64) float64 {
		if ignoreNaN && math.IsNaN(v) {
			return v
		}

		return f(v)
	}, m.store)

	return out
}

// ColumnwiseApply reduces each column to one value, yielding a 1×cols RowVector.
// f receives a fresh copy of the column.
// Complexity: O(r*c) plus the cost of f.
func (m *Matrix) ColumnwiseApply(f func(*ColVector) float64) *RowVector {
	out := make([]float64, m.c)
	for j := 0; j < m.c; j++ {
		if m.r == 0 {
			out[j] = f(newColVector(nil))
			continue
		}
		out[j] = f(newColVector(mat.Col(nil, j, m.store)))
	}

	return newRowVector(out)
}

// notValue is MATLAB's ~x for a numeric cell.
func notValue(v float64) float64 {
	if v == 0 {
		return 1
	}

	return 0
}

// Not returns the logical negation: 0 → 1, nonzero → 0, NaN → NaN.
func (m *Matrix) Not() *Matrix { return m.PointwiseApply(notValue, true) }

// EqualsElementwise returns the mask (A == s): 1 where the cell equals s,
// 0 elsewhere, NaN where the cell is NaN.
func (m *Matrix) EqualsElementwise(s float64) *Matrix {
	return m.PointwiseApply(func(v float64) float64 {
		if v == s {
			return 1
		}

		return 0
	}, true)
}

// NotEqualsElementwise returns the mask (A ~= s): 1 where the cell differs
// from s, 0 where it equals s, NaN where the cell is NaN.
func (m *Matrix) NotEqualsElementwise(s float64) *Matrix {
	return m.PointwiseApply(func(v float64) float64 {
		if v != s {
			return 1
		}

		return 0
	}, true)
}
