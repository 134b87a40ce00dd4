// SPDX-License-Identifier: MIT

// Package matrix - whole-row and whole-column views, A(i,:) and A(:,j).
//
// Get copies the line out of the owner (gonum mat.Row / mat.Col); Set and Fill
// write straight into the owner's store. Set validates the length before the
// first write, so a rejected Set leaves the owner untouched.
package matrix

import "gonum.org/v1/gonum/mat"

const (
	ctxRowRefSet = "RowRef.Set"
	ctxColRefSet = "ColRef.Set"
)

// RowRef aliases row `row` (0-based) of its owner.
type RowRef struct {
	owner *Matrix
	row   int
}

// Len returns the number of columns spanned by the row.
func (r *RowRef) Len() int { return r.owner.c }

// Get returns a fresh RowVector holding the row's values.
// Complexity: O(c).
func (r *RowRef) Get() *RowVector {
	if r.owner.c == 0 {
		return newRowVector(nil)
	}

	return newRowVector(mat.Row(nil, r.row, r.owner.store))
}

// Set writes v into the row.
// Errors: ErrNilMatrix (nil v), ErrShape (v.Len() != cols).
// Complexity: O(c).
func (r *RowRef) Set(v *RowVector) error {
	if err := ValidateVecLen(v, r.owner.c); err != nil {
		return matrixErrorf(ctxRowRefSet, err)
	}
	if r.owner.c == 0 {
		return nil
	}
	r.owner.store.SetRow(r.row, v.Values())

	return nil
}

// Fill broadcasts x over the row.
func (r *RowRef) Fill(x float64) {
	for j := 0; j < r.owner.c; j++ {
		r.owner.store.Set(r.row, j, x)
	}
}

// ColRef aliases column `col` (0-based) of its owner.
type ColRef struct {
	owner *Matrix
	col   int
}

// Len returns the number of rows spanned by the column.
func (c *ColRef) Len() int { return c.owner.r }

// Get returns a fresh ColVector holding the column's values.
// Complexity: O(r).
func (c *ColRef) Get() *ColVector {
	if c.owner.r == 0 {
		return newColVector(nil)
	}

	return newColVector(mat.Col(nil, c.col, c.owner.store))
}

// Set writes v into the column.
// Errors: ErrNilMatrix (nil v), ErrShape (v.Len() != rows).
// Complexity: O(r).
func (c *ColRef) Set(v *ColVector) error {
	if err := ValidateVecLen(v, c.owner.r); err != nil {
		return matrixErrorf(ctxColRefSet, err)
	}
	if c.owner.r == 0 {
		return nil
	}
	c.owner.store.SetCol(c.col, v.Values())

	return nil
}

// Fill broadcasts x over the column.
func (c *ColRef) Fill(x float64) {
	for i := 0; i < c.owner.r; i++ {
		c.owner.store.Set(i, c.col, x)
	}
}
