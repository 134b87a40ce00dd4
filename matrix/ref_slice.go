// SPDX-License-Identifier: MIT

// Package matrix - rectangular selections, A(rows, cols).
//
// A SliceRef holds two 0-based offset lists; its selection is their Cartesian
// product. The lists come from spans, explicit index lists, or the All marker,
// may repeat an offset, and keep the caller's order.
//
// Semantics:
//   - Get always builds a new Matrix of shape (len(rows), len(cols)).
//   - Set/Fill/FillRow write through to the owner. With repeated offsets the
//     last write to a cell wins (row-major visit order of the selection).
package matrix

import "fmt"

const (
	ctxSliceSet     = "SliceRef.Set"
	ctxSliceFillRow = "SliceRef.FillRow"
)

// SliceRef aliases the cells owner[rows[i], cols[j]].
type SliceRef struct {
	owner *Matrix
	rows  []int
	cols  []int
}

// Dims returns the shape of the selection.
func (s *SliceRef) Dims() (rows, cols int) { return len(s.rows), len(s.cols) }

// Get copies the selection into a new Matrix.
// Complexity: O(|rows|*|cols|).
func (s *SliceRef) Get() *Matrix {
	out := newMatrix(len(s.rows), len(s.cols))
	if out.empty() {
		return out
	}
	var i, j int
	for i = range s.rows {
		for j = range s.cols {
			out.store.Set(i, j, s.owner.store.At(s.rows[i], s.cols[j]))
		}
	}

	return out
}

// Set writes src into the selection.
// Errors: ErrNilMatrix, ErrShape unless src is exactly |rows|×|cols|.
// Complexity: O(|rows|*|cols|).
func (s *SliceRef) Set(src *Matrix) error {
	if err := ValidateShape(src, len(s.rows), len(s.cols)); err != nil {
		return matrixErrorf(ctxSliceSet, err)
	}
	if src.empty() {
		return nil
	}
	if src == s.owner { // A(p,q) = A with a permuted selection
		src = src.Clone()
	}
	var i, j int
	for i = range s.rows {
		for j = range s.cols {
			s.owner.store.Set(s.rows[i], s.cols[j], src.store.At(i, j))
		}
	}

	return nil
}

// Fill broadcasts x over every selected cell.
func (s *SliceRef) Fill(x float64) {
	for _, r := range s.rows {
		for _, c := range s.cols {
			s.owner.store.Set(r, c, x)
		}
	}
}

// FillRow writes v across a single-row selection, A(i, c0:c1) = v.
// Errors:
//   - ErrInvalidOperation when the selection spans more or fewer than one row.
//   - ErrNilMatrix / ErrShape when v is nil or v.Len() != |cols|.
//
// Complexity: O(|cols|).
func (s *SliceRef) FillRow(v *RowVector) error {
	if len(s.rows) != 1 {
		return matrixErrorf(fmt.Sprintf("%s: selection has %d rows", ctxSliceFillRow, len(s.rows)), ErrInvalidOperation)
	}
	if err := ValidateVecLen(v, len(s.cols)); err != nil {
		return matrixErrorf(ctxSliceFillRow, err)
	}
	r := s.rows[0]
	for j, c := range s.cols {
		s.owner.store.Set(r, c, v.AtVec(j))
	}

	return nil
}
