// SPDX-License-Identifier: MIT

// Package index translates MATLAB addressing into storage offsets.
//
// Purpose:
//   - Convert 1-based MATLAB indices (given as float64, the way MATLAB stores
//     them) into 0-based storage offsets, rejecting non-integral values.
//   - Define the canonical column-major linear index used by find and by
//     logical (mask) selection: linear = col*rows + row.
//   - Bounds-check offset lists against an owner dimension.
//
// Determinism & Performance:
//   - All functions are pure; the only allocations are the returned slices.
//   - Validation collects every violation before failing, so one error
//     reports the full set of bad values.
package index

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidIndex is returned when an index is not a mathematical integer
// or (see ErrOutOfRange) does not address a cell of the owner.
var ErrInvalidIndex = errors.New("index: invalid index")

// ErrOutOfRange narrows ErrInvalidIndex to bound violations.
// errors.Is(ErrOutOfRange, ErrInvalidIndex) is true.
var ErrOutOfRange = fmt.Errorf("%w: out of range", ErrInvalidIndex)

const _valueSep = "/" // separator used when listing offending values

// IsInteger reports whether d is a finite mathematical integer that fits in int.
// NaN, ±Inf and magnitudes beyond the int range are never integers.
// Complexity: O(1).
func IsInteger(d float64) bool {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return false
	}
	// -float64(math.MinInt) is 2^63 (2^31 on 32-bit), exactly representable.
	if d < float64(math.MinInt) || d >= -float64(math.MinInt) {
		return false
	}

	return d == math.Trunc(d)
}

// ToZeroBased converts a single 1-based MATLAB index into a 0-based offset.
// Returns ErrInvalidIndex when i is not integral. Bounds are not checked here.
// Complexity: O(1).
func ToZeroBased(i float64) (int, error) {
	if !IsInteger(i) {
		return 0, fmt.Errorf("ToZeroBased(%s): %w", formatValue(i), ErrInvalidIndex)
	}

	return int(i) - 1, nil
}

// Offset converts an integral 1-based index into a 0-based offset.
// Complexity: O(1).
func Offset(i int) int { return i - 1 }

// CheckAllIntegers verifies that every value in indices is integral.
//
// Implementation:
//   - Stage 1: scan the whole slice and collect every non-integral value.
//   - Stage 2: if any were found, report all of them in one error.
//
// Behavior highlights:
//   - Not fail-fast: the error lists every violation in input order.
//
// Errors:
//   - ErrInvalidIndex (wrapped with the offending values).
//
// Complexity:
//   - Time O(n), Space O(k) for k violations.
func CheckAllIntegers(indices []float64) error {
	var bad []string
	for _, d := range indices {
		if !IsInteger(d) {
			bad = append(bad, formatValue(d))
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("non-integer index(es) %s: %w", strings.Join(bad, _valueSep), ErrInvalidIndex)
	}

	return nil
}

// ToZeroBasedAll validates indices with CheckAllIntegers and converts each
// 1-based value into a 0-based offset. Order and duplicates are preserved.
// Complexity: O(n).
func ToZeroBasedAll(indices []float64) ([]int, error) {
	if err := CheckAllIntegers(indices); err != nil {
		return nil, err
	}
	out := make([]int, len(indices))
	for k, d := range indices {
		out[k] = int(d) - 1
	}

	return out, nil
}

// Linear returns the column-major linear offset of the 0-based cell (row, col)
// in a grid with the given row count: col*rows + row.
// Complexity: O(1).
func Linear(row, col, rows int) int { return col*rows + row }

// FromLinear inverts Linear for a grid with the given row count.
// rows must be positive.
// Complexity: O(1).
func FromLinear(linear, rows int) (row, col int) {
	return linear % rows, linear / rows
}

// Span returns the 0-based offsets of the closed 1-based range [from, to].
// A reversed range (to < from) is empty, like MATLAB's 3:1.
// Callers addressing an owner run CheckSpan first; a range whose length
// overflows int yields nil.
// Complexity: O(to-from+1).
func Span(from, to int) []int {
	if to < from {
		return []int{}
	}
	if to-from+1 <= 0 {
		return nil
	}
	out := make([]int, to-from+1)
	for k := range out {
		out[k] = from - 1 + k
	}

	return out
}

// Full returns 0..n-1, the expansion of MATLAB's ':' over a dimension of size n.
// Complexity: O(n).
func Full(n int) []int {
	if n <= 0 {
		return []int{}
	}

	return Span(1, n)
}

// CheckBounds verifies 0 <= offset < n for every offset.
//
// Behavior highlights:
//   - Reports every offending index in 1-based form (as the caller wrote it).
//
// Errors:
//   - ErrOutOfRange (errors.Is also matches ErrInvalidIndex).
//
// Complexity:
//   - Time O(len(offsets)).
func CheckBounds(offsets []int, n int) error {
	var bad []string
	for _, off := range offsets {
		if off < 0 || off >= n {
			bad = append(bad, strconv.Itoa(off+1))
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("index(es) %s not in [1,%d]: %w", strings.Join(bad, _valueSep), n, ErrOutOfRange)
	}

	return nil
}

// CheckSpan verifies that the 1-based range [from, to] lies inside [1, n].
// A reversed range (to < from) is empty and always valid. Both ends are
// compared directly, so no length is computed and nothing can overflow.
//
// Errors:
//   - ErrOutOfRange (errors.Is also matches ErrInvalidIndex).
//
// Complexity:
//   - Time O(1).
func CheckSpan(from, to, n int) error {
	if to < from {
		return nil
	}
	if from < 1 || to > n {
		return fmt.Errorf("span %d:%d not in [1,%d]: %w", from, to, n, ErrOutOfRange)
	}

	return nil
}

// formatValue renders a float with the shortest exact representation.
func formatValue(d float64) string {
	return strconv.FormatFloat(d, 'g', -1, 64)
}
