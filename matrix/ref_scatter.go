// SPDX-License-Identifier: MIT

// Package matrix - logical-index (scatter) views, A(mask).
//
// A ScatterRef stores the column-major linear offsets of the selected cells
// (linear = col*rows + row), ascending. Reading gathers those cells into a
// column vector; writing scatters a column vector (or an n×1 matrix) back in
// the same order.
package matrix

import (
	"github.com/katalvlaran/matlab/index"
)

const (
	ctxScatterSet       = "ScatterRef.Set"
	ctxScatterSetMatrix = "ScatterRef.SetMatrix"
)

// ScatterRef aliases an arbitrary set of cells addressed by linear offset.
type ScatterRef struct {
	owner  *Matrix
	linear []int
}

// Len returns the number of selected cells.
func (s *ScatterRef) Len() int { return len(s.linear) }

// Positions returns the 1-based column-major positions of the selected cells,
// the same numbers MATLAB's find(mask) prints.
func (s *ScatterRef) Positions() []int {
	out := make([]int, len(s.linear))
	for k, l := range s.linear {
		out[k] = l + 1
	}

	return out
}

func (s *ScatterRef) cell(k int) (row, col int) {
	return index.FromLinear(s.linear[k], s.owner.r)
}

// Get gathers the selected cells into a new ColVector of length Len().
// Complexity: O(n).
func (s *ScatterRef) Get() *ColVector {
	vals := make([]float64, len(s.linear))
	var r, c int
	for k := range s.linear {
		r, c = s.cell(k)
		vals[k] = s.owner.store.At(r, c)
	}

	return newColVector(vals)
}

// Set scatters v into the selected cells in column-major order.
// Errors: ErrNilMatrix, ErrShape (v.Len() != Len()).
func (s *ScatterRef) Set(v *ColVector) error {
	if err := ValidateVecLen(v, len(s.linear)); err != nil {
		return matrixErrorf(ctxScatterSet, err)
	}
	s.scatter(v.AtVec)

	return nil
}

// SetMatrix scatters an n×1 matrix, n == Len().
// Errors: ErrNilMatrix, ErrShape for any other shape.
func (s *ScatterRef) SetMatrix(src *Matrix) error {
	if err := ValidateShape(src, len(s.linear), 1); err != nil {
		return matrixErrorf(ctxScatterSetMatrix, err)
	}
	if src == s.owner {
		src = src.Clone()
	}
	s.scatter(func(k int) float64 { return src.store.At(k, 0) })

	return nil
}

// Fill broadcasts x over the selected cells.
func (s *ScatterRef) Fill(x float64) {
	s.scatter(func(int) float64 { return x })
}

func (s *ScatterRef) scatter(value func(k int) float64) {
	var r, c int
	for k := range s.linear {
		r, c = s.cell(k)
		s.owner.store.Set(r, c, value(k))
	}
}
