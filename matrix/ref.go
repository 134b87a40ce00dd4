// SPDX-License-Identifier: MIT

// Package matrix - the MATLAB view factory (Ref* family).
//
// Purpose:
//   - One named entry point per MATLAB addressing mode, all 1-based on input:
//     A(i,j), A(i) on a column, A(i,:), A(:,j), A(r0:r1,c0:c1), A(i,c0:c1),
//     A(rows,cols), A(rows,:), A(:,cols), A(mask).
//   - Translate and validate every index at construction time, so a view that
//     exists always addresses cells inside its owner.
//
// Aliasing contract:
//   - A view stores only offsets plus a pointer to its owner; it owns nothing.
//   - Writes (Set/Fill/FillRow) go straight into the owner's store.
//   - Reads of row/col/slice/scatter views materialize fresh values; mutating
//     a read result never touches the owner.
//   - Views are meant to be used within one logical operation
//     (construct → read or write → discard). A view used after its owner's
//     store was replaced is an unchecked hazard.
//
// Out-of-range policy:
//   - Indices are bounds-checked here and rejected with ErrOutOfRange
//     (errors.Is(err, ErrInvalidIndex) also holds). No Ref* defers the check
//     to the storage layer.
package matrix

import "fmt"

// Selector is the type of the literal "all" argument in A(i,:) / A(:,j).
// Only All is accepted; any other value fails with ErrInvalidSelector.
type Selector rune

// All is MATLAB's ':' marker.
const All Selector = ':'

// Span is a closed 1-based range From:To. A reversed span selects nothing.
type Span struct {
	From, To int
}

const (
	ctxRef           = "Ref"
	ctxRefElem       = "RefElem"
	ctxRefRow        = "RefRow"
	ctxRefCol        = "RefCol"
	ctxRefSlice      = "RefSlice"
	ctxRefRowSlice   = "RefRowSlice"
	ctxRefIndices    = "RefIndices"
	ctxRefRowIndices = "RefRowIndices"
	ctxRefColIndices = "RefColIndices"
	ctxRefMask       = "RefMask"
)

// refErrorf tags a factory failure with the call form.
func refErrorf(tag string, args string, err error) error {
	return matrixErrorf(fmt.Sprintf("Matrix.%s(%s)", tag, args), err)
}

// Ref returns an alias to the cell A(row, col).
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) Ref(row, col int) (*PointRef, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, refErrorf(ctxRef, fmt.Sprintf("%d,%d", row, col), err)
	}
	r, err := checkedOffset(row, m.r)
	if err != nil {
		return nil, refErrorf(ctxRef, fmt.Sprintf("%d,%d", row, col), err)
	}
	c, err := checkedOffset(col, m.c)
	if err != nil {
		return nil, refErrorf(ctxRef, fmt.Sprintf("%d,%d", row, col), err)
	}

	return &PointRef{owner: m, row: r, col: c}, nil
}

// RefElem returns an alias to A(row) for a single-column matrix.
// Errors: ErrShape when the matrix has more or fewer than one column,
// ErrOutOfRange.
func (m *Matrix) RefElem(row int) (*PointRef, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, refErrorf(ctxRefElem, fmt.Sprint(row), err)
	}
	if m.c != 1 {
		return nil, refErrorf(ctxRefElem, fmt.Sprint(row), fmt.Errorf("%dx%d is not a column vector: %w", m.r, m.c, ErrShape))
	}

	return m.Ref(row, 1)
}

// RefRow returns an alias to the whole row A(row, :).
// all must be All, otherwise ErrInvalidSelector.
// Errors: ErrNilMatrix, ErrInvalidSelector, ErrOutOfRange.
func (m *Matrix) RefRow(row int, all Selector) (*RowRef, error) {
	args := fmt.Sprintf("%d,%q", row, rune(all))
	if err := ValidateNotNil(m); err != nil {
		return nil, refErrorf(ctxRefRow, args, err)
	}
	if err := ValidateSelector(all); err != nil {
		return nil, refErrorf(ctxRefRow, args, err)
	}
	r, err := checkedOffset(row, m.r)
	if err != nil {
		return nil, refErrorf(ctxRefRow, args, err)
	}

	return &RowRef{owner: m, row: r}, nil
}

// RefCol returns an alias to the whole column A(:, col).
// all must be All, otherwise ErrInvalidSelector.
// Errors: ErrNilMatrix, ErrInvalidSelector, ErrOutOfRange.
func (m *Matrix) RefCol(all Selector, col int) (*ColRef, error) {
	args := fmt.Sprintf("%q,%d", rune(all), col)
	if err := ValidateNotNil(m); err != nil {
		return nil, refErrorf(ctxRefCol, args, err)
	}
	if err := ValidateSelector(all); err != nil {
		return nil, refErrorf(ctxRefCol, args, err)
	}
	c, err := checkedOffset(col, m.c)
	if err != nil {
		return nil, refErrorf(ctxRefCol, args, err)
	}

	return &ColRef{owner: m, col: c}, nil
}

// RefSlice returns a slice view over A(rows.From:rows.To, cols.From:cols.To).
// Errors: ErrNilMatrix, ErrOutOfRange.
func (m *Matrix) RefSlice(rows, cols Span) (*SliceRef, error) {
	args := fmt.Sprintf("%d:%d,%d:%d", rows.From, rows.To, cols.From, cols.To)
	if err := ValidateNotNil(m); err != nil {
		return nil, refErrorf(ctxRefSlice, args, err)
	}
	ri, err := checkedSpan(rows, m.r)
	if err != nil {
		return nil, refErrorf(ctxRefSlice, args, err)
	}
	ci, err := checkedSpan(cols, m.c)
	if err != nil {
		return nil, refErrorf(ctxRefSlice, args, err)
	}

	return &SliceRef{owner: m, rows: ri, cols: ci}, nil
}

// RefRowSlice returns a one-row slice view over A(row, cols.From:cols.To).
// FillRow is legal on the result.
func (m *Matrix) RefRowSlice(row int, cols Span) (*SliceRef, error) {
	sl, err := m.RefSlice(Span{From: row, To: row}, cols)
	if err != nil {
		return nil, matrixErrorf(ctxRefRowSlice, err)
	}

	return sl, nil
}

// RefIndices returns a slice view over the Cartesian product of explicit
// 1-based row and column index lists, A([..],[..]). Order and duplicates are kept.
// Errors: ErrNilMatrix, ErrInvalidIndex (non-integral, all offenders listed),
// ErrOutOfRange.
func (m *Matrix) RefIndices(rows, cols []float64) (*SliceRef, error) {
	args := fmt.Sprintf("%v,%v", rows, cols)
	if err := ValidateNotNil(m); err != nil {
		return nil, refErrorf(ctxRefIndices, args, err)
	}
	ri, err := checkedOffsets(rows, m.r)
	if err != nil {
		return nil, refErrorf(ctxRefIndices, args, err)
	}
	ci, err := checkedOffsets(cols, m.c)
	if err != nil {
		return nil, refErrorf(ctxRefIndices, args, err)
	}

	return &SliceRef{owner: m, rows: ri, cols: ci}, nil
}

// RefRowIndices returns A([..], :): the listed rows, every column.
// Errors: ErrInvalidSelector, ErrInvalidIndex, ErrOutOfRange.
func (m *Matrix) RefRowIndices(rows []float64, all Selector) (*SliceRef, error) {
	args := fmt.Sprintf("%v,%q", rows, rune(all))
	if err := ValidateNotNil(m); err != nil {
		return nil, refErrorf(ctxRefRowIndices, args, err)
	}
	if err := ValidateSelector(all); err != nil {
		return nil, refErrorf(ctxRefRowIndices, args, err)
	}
	ri, err := checkedOffsets(rows, m.r)
	if err != nil {
		return nil, refErrorf(ctxRefRowIndices, args, err)
	}

	return &SliceRef{owner: m, rows: ri, cols: fullSpan(m.c)}, nil
}

// RefColIndices returns A(:, [..]): every row, the listed columns.
// Errors: ErrInvalidSelector, ErrInvalidIndex, ErrOutOfRange.
func (m *Matrix) RefColIndices(all Selector, cols []float64) (*SliceRef, error) {
	args := fmt.Sprintf("%q,%v", rune(all), cols)
	if err := ValidateNotNil(m); err != nil {
		return nil, refErrorf(ctxRefColIndices, args, err)
	}
	if err := ValidateSelector(all); err != nil {
		return nil, refErrorf(ctxRefColIndices, args, err)
	}
	ci, err := checkedOffsets(cols, m.c)
	if err != nil {
		return nil, refErrorf(ctxRefColIndices, args, err)
	}

	return &SliceRef{owner: m, rows: fullSpan(m.r), cols: ci}, nil
}

// RefMask returns a logical-index view A(mask). mask must have the owner's
// shape and hold only 0 and 1; the 1-cells are visited in column-major order.
// Errors: ErrNilMatrix, ErrInvalidMask.
// Complexity: O(r*c).
func (m *Matrix) RefMask(mask *Matrix) (*ScatterRef, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, refErrorf(ctxRefMask, "mask", err)
	}
	linear, err := ValidateMask(m, mask)
	if err != nil {
		return nil, refErrorf(ctxRefMask, "mask", err)
	}

	return &ScatterRef{owner: m, linear: linear}, nil
}
