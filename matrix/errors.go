// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matlab/index"
)

// NOTE ON NAMING & WRAPPING
// -------------------------
// Every message is prefixed with "matrix: ..." for consistency. Call sites wrap
// with matrixErrorf("<Op>", ErrX) so the text carries the operation while
// errors.Is keeps matching the sentinel.
//
// ERROR PRIORITY (enforced in tests):
// nil -> selector -> index (integrality, bounds) -> mask -> shape -> operation.

var (
	// ErrInvalidIndex is returned when an index is not a mathematical integer
	// or does not address a cell of the owner. Shared with package index.
	ErrInvalidIndex = index.ErrInvalidIndex

	// ErrOutOfRange is returned when an integral index lies outside the owner.
	// errors.Is(err, ErrInvalidIndex) also holds for it.
	ErrOutOfRange = index.ErrOutOfRange

	// ErrShape signals a dimension mismatch on assignment or arithmetic, or a
	// shape-dependent conversion (AsScalar, AsRowVector, RefElem) on data of
	// the wrong shape.
	ErrShape = errors.New("matrix: shape mismatch")

	// ErrInvalidSelector signals that an "all" argument was not the All marker.
	ErrInvalidSelector = errors.New("matrix: selector must be ':'")

	// ErrInvalidMask signals a logical mask whose shape differs from the owner
	// or that holds a value other than exactly 0 or 1.
	ErrInvalidMask = errors.New("matrix: invalid mask")

	// ErrInvalidOperation signals an operation invoked in a context that
	// forbids it, e.g. FillRow on a slice spanning several rows.
	ErrInvalidOperation = errors.New("matrix: invalid operation")

	// ErrNilMatrix indicates that a nil Matrix or vector (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidDimensions indicates negative dimensions or a data slice whose
	// length does not match the requested shape.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrNaNInf signals a NaN or ±Inf value rejected by the finite-only policy
	// (see WithValidateNaNInf).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrEmpty signals a reduction that has no defined value on an empty operand
	// (max/min of nothing, scalar unpacking of an empty vector).
	ErrEmpty = errors.New("matrix: empty operand")
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
