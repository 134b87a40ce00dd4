// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep views and operators minimal by delegating nil/shape/selector/mask
//    checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their own operation tag.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; only ValidateMask allocates
//    (the selected linear offsets it returns).
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).
//  - Validators run BEFORE any write so a failed Set never mutates the owner.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/matlab/index"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with equal dimensions.
// Return: nil, ErrNilMatrix or ErrShape.
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrShape)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrShape)
	}

	return nil
}

// ValidateShape ensures m is non-nil and exactly rows×cols.
// Complexity: O(1).
func ValidateShape(m *Matrix, rows, cols int) error {
	if m == nil {
		return validatorErrorf("ValidateShape", ErrNilMatrix)
	}
	if m.r != rows || m.c != cols {
		return validatorErrorf(fmt.Sprintf("ValidateShape: want %dx%d, got %dx%d", rows, cols, m.r, m.c), ErrShape)
	}

	return nil
}

// ValidateVecLen ensures v is non-nil and holds exactly n elements.
// Complexity: O(1).
func ValidateVecLen(v OrientedVector, n int) error {
	if isNilVector(v) {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if v.Len() != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: want %d, got %d", n, v.Len()), ErrShape)
	}

	return nil
}

// ValidateSelector ensures sel is the All marker (':').
// Complexity: O(1).
func ValidateSelector(sel Selector) error {
	if sel != All {
		return validatorErrorf(fmt.Sprintf("ValidateSelector(%q)", rune(sel)), ErrInvalidSelector)
	}

	return nil
}

// ValidateMask checks that mask is a 0/1 matrix shaped like owner and returns
// the column-major linear offsets of its 1-cells, ascending.
//
// Implementation:
//   - Stage 1: nil and shape checks (ErrInvalidMask on mismatch).
//   - Stage 2: column-major scan j→i; 0 is skipped, 1 is recorded, anything
//     else (including NaN) fails with ErrInvalidMask.
//
// Complexity:
//   - Time O(r*c), Space O(k) for k selected cells.
func ValidateMask(owner, mask *Matrix) ([]int, error) {
	if owner == nil || mask == nil {
		return nil, validatorErrorf("ValidateMask", ErrNilMatrix)
	}
	if owner.r != mask.r || owner.c != mask.c {
		return nil, validatorErrorf(
			fmt.Sprintf("ValidateMask: mask %dx%d, owner %dx%d", mask.r, mask.c, owner.r, owner.c),
			ErrInvalidMask)
	}
	linear := make([]int, 0)
	var i, j int
	var v float64
	for j = 0; j < mask.c; j++ { // column-major visit order
		for i = 0; i < mask.r; i++ {
			v = mask.store.At(i, j)
			switch v {
			case 0:
			case 1:
				linear = append(linear, index.Linear(i, j, mask.r))
			default:
				return nil, validatorErrorf(fmt.Sprintf("ValidateMask: value %g at (%d,%d)", v, i+1, j+1), ErrInvalidMask)
			}
		}
	}

	return linear, nil
}

// ValidateFinite rejects NaN and ±Inf anywhere in vals.
// Complexity: O(n).
func ValidateFinite(vals []float64) error {
	for k, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite: element %d", k), ErrNaNInf)
		}
	}

	return nil
}

// checkedOffsets converts 1-based MATLAB indices into bounds-checked offsets
// for a dimension of size n.
func checkedOffsets(indices []float64, n int) ([]int, error) {
	offs, err := index.ToZeroBasedAll(indices)
	if err != nil {
		return nil, err
	}
	if err = index.CheckBounds(offs, n); err != nil {
		return nil, err
	}

	return offs, nil
}

// checkedSpan converts a closed 1-based span into bounds-checked offsets.
// Both ends are checked before any offset is allocated.
func checkedSpan(s Span, n int) ([]int, error) {
	if err := index.CheckSpan(s.From, s.To, n); err != nil {
		return nil, err
	}

	return index.Span(s.From, s.To), nil
}

// checkedOffset converts one 1-based integer index and bounds-checks it.
func checkedOffset(i, n int) (int, error) {
	off := index.Offset(i)
	if err := index.CheckBounds([]int{off}, n); err != nil {
		return 0, err
	}

	return off, nil
}

// fullSpan is the offset list 0..n-1 used for the All selector.
func fullSpan(n int) []int { return index.Full(n) }
