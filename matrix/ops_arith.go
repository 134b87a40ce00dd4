// SPDX-License-Identifier: MIT

// Package matrix - Matrix arithmetic.
//
// Every operator returns a new Matrix or vector; operands are never mutated.
// Shape-checked operators (Add, Sub, MulCol, MulRow) validate first and
// return ErrShape on mismatch; scalar operators cannot fail.
//
// Kernels:
//   - Add/Sub/Scale/MulVec are gonum's (mat.Dense, mat.VecDense).
//   - MulRow is the column-wise dot product out[j] = Σ_i A[i,j]·v[i], built
//     on floats.Dot. It is not the algebraic v·A and requires v.Len() == rows.
package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	ctxAdd    = "Add"
	ctxSub    = "Sub"
	ctxMulCol = "MulCol"
	ctxMulRow = "MulRow"
)

// AddScalar returns A + s.
func (m *Matrix) AddScalar(s float64) *Matrix {
	return m.PointwiseApply(func(v float64) float64 { return v + s }, false)
}

// SubScalar returns A - s.
func (m *Matrix) SubScalar(s float64) *Matrix {
	return m.PointwiseApply(func(v float64) float64 { return v - s }, false)
}

// Scale returns s·A.
func (m *Matrix) Scale(s float64) *Matrix {
	out := newMatrix(m.r, m.c)
	if !m.empty() {
		out.store.Scale(s, m.store)
	}

	return out
}

// DivScalar returns A / s (IEEE semantics: division by zero gives ±Inf or NaN).
func (m *Matrix) DivScalar(s float64) *Matrix {
	return m.PointwiseApply(func(v float64) float64 { return v / s }, false)
}

// ModScalar returns the truncated remainder of every cell by s (math.Mod).
func (m *Matrix) ModScalar(s float64) *Matrix {
	return m.PointwiseApply(func(v float64) float64 { return math.Mod(v, s) }, false)
}

// Add returns A + o.
// Errors: ErrNilMatrix, ErrShape.
// Complexity: O(r*c).
func (m *Matrix) Add(o *Matrix) (*Matrix, error) {
	if err := ValidateSameShape(m, o); err != nil {
		return nil, matrixErrorf(ctxAdd, err)
	}
	out := newMatrix(m.r, m.c)
	if !m.empty() {
		out.store.Add(m.store, o.store)
	}

	return out, nil
}

// Sub returns A - o.
// Errors: ErrNilMatrix, ErrShape.
// Complexity: O(r*c).
func (m *Matrix) Sub(o *Matrix) (*Matrix, error) {
	if err := ValidateSameShape(m, o); err != nil {
		return nil, matrixErrorf(ctxSub, err)
	}
	out := newMatrix(m.r, m.c)
	if !m.empty() {
		out.store.Sub(m.store, o.store)
	}

	return out, nil
}

// MulCol returns the matrix-vector product A·x as a rows-long ColVector.
// Errors: ErrNilMatrix, ErrShape (x.Len() != cols).
// Complexity: O(r*c).
func (m *Matrix) MulCol(x *ColVector) (*ColVector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(ctxMulCol, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(fmt.Sprintf("%s: %dx%d by %d", ctxMulCol, m.r, m.c, vecLen(x)), err)
	}
	if m.r == 0 {
		return newColVector(nil), nil
	}
	if m.c == 0 {
		return newColVector(make([]float64, m.r)), nil
	}
	out := mat.NewVecDense(m.r, nil)
	out.MulVec(m.store, x.data)

	return &ColVector{vector{out}}, nil
}

// MulRow returns the column-wise dot product with v: out[j] = Σ_i A[i,j]·v[i].
// Errors: ErrNilMatrix, ErrShape (v.Len() != rows).
// Complexity: O(r*c).
func (m *Matrix) MulRow(v *RowVector) (*RowVector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(ctxMulRow, err)
	}
	if err := ValidateVecLen(v, m.r); err != nil {
		return nil, matrixErrorf(fmt.Sprintf("%s: %dx%d by %d", ctxMulRow, m.r, m.c, vecLen(v)), err)
	}
	w := v.Values()

	return m.ColumnwiseApply(func(col *ColVector) float64 {
		if len(w) == 0 {
			return 0
		}

		return floats.Dot(col.Values(), w)
	}), nil
}

// vecLen is Len() that tolerates nil, for error messages.
func vecLen(v OrientedVector) int {
	if isNilVector(v) {
		return 0
	}

	return v.Len()
}
