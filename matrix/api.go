// SPDX-License-Identifier: MIT
// Package matrix - public API facades (MATLAB toolkit names).
//
// Purpose:
//   - Thin, intention-revealing entry points mirroring the MATLAB built-ins
//     a port most often reaches for: size, length, isempty, sum, max, min,
//     isinf, find, zeros, ones.
//   - Avoid logic duplication: each facade delegates to a method or kernel.
//
// Determinism & Policy:
//   - Reductions run column by column (ColumnwiseApply), as MATLAB's do for
//     matrices.
//   - Facades never change the NaN policy of the kernel they forward to.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	ctxSizeDim  = "SizeDim"
	ctxSumDim   = "SumDim"
	ctxMax      = "Max"
	ctxMin      = "Min"
	ctxZeros    = "Zeros"
	ctxZerosRow = "ZerosRow"
	ctxZerosCol = "ZerosCol"
)

// ---------- Shape queries ----------

// Size returns (rows, cols), MATLAB size(A).
func Size(m *Matrix) (rows, cols int) { return m.Dims() }

// SizeDim returns size(A, dim): dim 1 is rows, dim 2 is cols.
// Errors: ErrOutOfRange for any other dim.
func SizeDim(m *Matrix, dim int) (int, error) {
	switch dim {
	case 1:
		return m.r, nil
	case 2:
		return m.c, nil
	default:
		return 0, matrixErrorf(fmt.Sprintf("%s(%d)", ctxSizeDim, dim), ErrOutOfRange)
	}
}

// Length returns max(rows, cols), or 0 for an empty matrix (MATLAB length).
func Length(m *Matrix) int {
	if m.empty() {
		return 0
	}

	return max(m.r, m.c)
}

// IsEmpty reports rows*cols == 0.
func IsEmpty(m *Matrix) bool { return m.empty() }

// ---------- Reductions ----------

// Sum returns the column sums as a 1×cols RowVector.
func Sum(m *Matrix) *RowVector {
	return m.ColumnwiseApply(func(col *ColVector) float64 { return col.Sum() })
}

// SumDim returns sum(A, dim): dim 1 gives a 1×cols matrix of column sums,
// dim 2 an rows×1 matrix of row sums.
// Errors: ErrOutOfRange for any other dim.
func SumDim(m *Matrix, dim int) (*Matrix, error) {
	switch dim {
	case 1:
		return Sum(m).AsMatrix(), nil
	case 2:
		sums := make([]float64, m.r)
		for i := 0; i < m.r && m.c > 0; i++ {
			sums[i] = floats.Sum(mat.Row(nil, i, m.store))
		}

		return newColVector(sums).AsMatrix(), nil
	default:
		return nil, matrixErrorf(fmt.Sprintf("%s(%d)", ctxSumDim, dim), ErrOutOfRange)
	}
}

// Max returns the column maxima.
// Errors: ErrEmpty when the matrix has no rows (and at least one column).
func Max(m *Matrix) (*RowVector, error) {
	return reduceColumns(ctxMax, m, floats.Max)
}

// Min returns the column minima.
// Errors: ErrEmpty when the matrix has no rows (and at least one column).
func Min(m *Matrix) (*RowVector, error) {
	return reduceColumns(ctxMin, m, floats.Min)
}

func reduceColumns(tag string, m *Matrix, f func([]float64) float64) (*RowVector, error) {
	if m.r == 0 && m.c > 0 {
		return nil, matrixErrorf(tag, ErrEmpty)
	}

	return m.ColumnwiseApply(func(col *ColVector) float64 { return f(col.Values()) }), nil
}

// ---------- Predicates & search ----------

// IsInf returns the 0/1 mask of ±Inf cells; NaN cells stay NaN.
func IsInf(m *Matrix) *Matrix {
	return m.PointwiseApply(func(v float64) float64 {
		if math.IsInf(v, 0) {
			return 1
		}

		return 0
	}, true)
}

// Find returns the 1-based column-major positions of the nonzero cells,
// ascending, as a ColVector. NaN counts as nonzero.
// Complexity: O(r*c).
func Find(m *Matrix) *ColVector { return FindVec(m.Flatten()) }

// ---------- Constructors ----------

// Zeros returns an rows×cols matrix of zeros.
// Errors: ErrInvalidDimensions for negative sizes.
func Zeros(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(fmt.Sprintf("%s(%d,%d)", ctxZeros, rows, cols), ErrInvalidDimensions)
	}

	return newMatrix(rows, cols), nil
}

// Ones returns an rows×cols matrix of ones.
func Ones(rows, cols int) (*Matrix, error) { return Filled(rows, cols, 1) }

// Filled returns an rows×cols matrix with every cell set to v.
// Errors: ErrInvalidDimensions for negative sizes.
func Filled(rows, cols int, v float64) (*Matrix, error) {
	m, err := Zeros(rows, cols)
	if err != nil {
		return nil, err
	}
	if v != 0 {
		(&SliceRef{owner: m, rows: fullSpan(rows), cols: fullSpan(cols)}).Fill(v)
	}

	return m, nil
}

// ZerosRow returns zeros(1, n) as a RowVector. one must be 1.
// Errors: ErrShape (one != 1), ErrInvalidDimensions (n < 0).
func ZerosRow(one, n int) (*RowVector, error) {
	if one != 1 {
		return nil, matrixErrorf(fmt.Sprintf("%s(%d,%d)", ctxZerosRow, one, n), ErrShape)
	}
	if n < 0 {
		return nil, matrixErrorf(fmt.Sprintf("%s(%d,%d)", ctxZerosRow, one, n), ErrInvalidDimensions)
	}

	return newRowVector(make([]float64, n)), nil
}

// ZerosCol returns zeros(n, 1) as a ColVector. one must be 1.
// Errors: ErrShape (one != 1), ErrInvalidDimensions (n < 0).
func ZerosCol(n, one int) (*ColVector, error) {
	if one != 1 {
		return nil, matrixErrorf(fmt.Sprintf("%s(%d,%d)", ctxZerosCol, n, one), ErrShape)
	}
	if n < 0 {
		return nil, matrixErrorf(fmt.Sprintf("%s(%d,%d)", ctxZerosCol, n, one), ErrInvalidDimensions)
	}

	return newColVector(make([]float64, n)), nil
}
