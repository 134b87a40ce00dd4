// SPDX-License-Identifier: MIT

// Package matrix - orientation-aware vectors.
//
// RowVector (1×n) and ColVector (n×1) are distinct types so that orientation
// errors are caught by the compiler: a RowVector never flows where a
// ColVector is expected, and Transpose is the only (copying) bridge.
// Both embed the same 1-D gonum store; the shared capability is the
// OrientedVector interface, and the Vector constraint lets free functions
// (vector_ops.go) return the operand's own concrete type.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Orientation tags a vector as a row (1×n) or a column (n×1).
type Orientation uint8

const (
	// RowOriented marks a 1×n vector.
	RowOriented Orientation = iota + 1
	// ColOriented marks an n×1 vector.
	ColOriented
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	switch o {
	case RowOriented:
		return "row"
	case ColOriented:
		return "column"
	default:
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
}

// OrientedVector is the capability shared by *RowVector and *ColVector.
// AtVec/SetVec use 0-based offsets (gonum convention); the MATLAB 1-based
// surface is Ref/RefIndices.
type OrientedVector interface {
	Len() int
	Orientation() Orientation
	AtVec(i int) float64
	SetVec(i int, v float64)
	Values() []float64
	RawVector() *mat.VecDense
}

// Vector constrains generic vector operations to the two concrete
// orientations, so results keep the left operand's type.
type Vector interface {
	*RowVector | *ColVector
	OrientedVector
}

// vector is the storage shared by both orientations.
type vector struct {
	data *mat.VecDense // zero-value (empty) when the length is 0
}

// RowVector is a 1×n vector.
type RowVector struct{ vector }

// ColVector is an n×1 vector.
type ColVector struct{ vector }

var (
	_ OrientedVector = (*RowVector)(nil)
	_ OrientedVector = (*ColVector)(nil)
	_ fmt.Stringer   = (*RowVector)(nil)
	_ fmt.Stringer   = (*ColVector)(nil)
)

const (
	ctxNewRowVector = "NewRowVector"
	ctxNewColVector = "NewColVector"
	ctxVecAsScalar  = "AsScalar"
	ctxVecMax       = "Max"
	ctxVecMin       = "Min"
)

// newVecDense wraps data (taking ownership) in a gonum vector.
func newVecDense(data []float64) *mat.VecDense {
	if len(data) == 0 {
		return &mat.VecDense{}
	}

	return mat.NewVecDense(len(data), data)
}

func newRowVector(data []float64) *RowVector { return &RowVector{vector{newVecDense(data)}} }

func newColVector(data []float64) *ColVector { return &ColVector{vector{newVecDense(data)}} }

// NewRowVector copies vals into a new RowVector.
// Errors: ErrNaNInf when WithValidateNaNInf is set and vals holds a non-finite value.
func NewRowVector(vals []float64, opts ...Option) (*RowVector, error) {
	if o := gatherOptions(opts...); o.validateNaNInf {
		if err := ValidateFinite(vals); err != nil {
			return nil, matrixErrorf(ctxNewRowVector, err)
		}
	}

	return newRowVector(append([]float64(nil), vals...)), nil
}

// NewColVector copies vals into a new ColVector.
// Errors: ErrNaNInf when WithValidateNaNInf is set and vals holds a non-finite value.
func NewColVector(vals []float64, opts ...Option) (*ColVector, error) {
	if o := gatherOptions(opts...); o.validateNaNInf {
		if err := ValidateFinite(vals); err != nil {
			return nil, matrixErrorf(ctxNewColVector, err)
		}
	}

	return newColVector(append([]float64(nil), vals...)), nil
}

// isNilVector reports a nil interface or a typed nil pointer.
func isNilVector(v OrientedVector) bool {
	switch x := v.(type) {
	case nil:
		return true
	case *RowVector:
		return x == nil
	case *ColVector:
		return x == nil
	}

	return false
}

// wrapLike returns data as a vector of the same concrete type as like.
func wrapLike[V Vector](like V, data *mat.VecDense) V {
	var out OrientedVector
	switch any(like).(type) {
	case *RowVector:
		out = &RowVector{vector{data}}
	default:
		out = &ColVector{vector{data}}
	}

	return out.(V)
}

// newLike copies nothing: vals is owned by the result.
func newLike[V Vector](like V, vals []float64) V {
	return wrapLike(like, newVecDense(vals))
}

// Len returns the number of elements. Complexity: O(1).
func (v *vector) Len() int { return v.data.Len() }

// AtVec reads the element at 0-based offset i. Panics if out of range,
// like gonum; use Ref for the checked 1-based surface.
func (v *vector) AtVec(i int) float64 { return v.data.AtVec(i) }

// SetVec writes the element at 0-based offset i.
func (v *vector) SetVec(i int, x float64) { v.data.SetVec(i, x) }

// RawVector returns the underlying gonum store (shared, not copied).
func (v *vector) RawVector() *mat.VecDense { return v.data }

// Values returns a copy of the elements.
func (v *vector) Values() []float64 {
	n := v.Len()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = v.data.AtVec(i)
	}

	return out
}

// Sum returns the sum of the elements (0 when empty).
func (v *vector) Sum() float64 {
	if v.Len() == 0 {
		return 0
	}

	return floats.Sum(v.Values())
}

// Norm returns the Euclidean norm (0 when empty).
func (v *vector) Norm() float64 {
	if v.Len() == 0 {
		return 0
	}

	return floats.Norm(v.Values(), 2)
}

// Max returns the largest element or ErrEmpty.
func (v *vector) Max() (float64, error) {
	if v.Len() == 0 {
		return 0, matrixErrorf(ctxVecMax, ErrEmpty)
	}

	return floats.Max(v.Values()), nil
}

// Min returns the smallest element or ErrEmpty.
func (v *vector) Min() (float64, error) {
	if v.Len() == 0 {
		return 0, matrixErrorf(ctxVecMin, ErrEmpty)
	}

	return floats.Min(v.Values()), nil
}

// AsScalar unpacks a one-element vector; any other length fails with ErrShape.
func (v *vector) AsScalar() (float64, error) {
	if v.Len() != 1 {
		return 0, matrixErrorf(fmt.Sprintf("%s: length %d", ctxVecAsScalar, v.Len()), ErrShape)
	}

	return v.data.AtVec(0), nil
}

// AsScalarOr is AsScalar with a fallback value for an empty vector.
func (v *vector) AsScalarOr(empty float64) (float64, error) {
	if v.Len() == 0 {
		return empty, nil
	}

	return v.AsScalar()
}

// EqualValues reports whether the vector holds exactly len(vals) elements,
// each within the configured epsilon of vals (exact by default).
func (v *vector) EqualValues(vals []float64, opts ...Option) bool {
	if v.Len() != len(vals) {
		return false
	}
	if len(vals) == 0 {
		return true
	}

	return floats.EqualApprox(v.Values(), vals, gatherOptions(opts...).eps)
}

// Orientation returns RowOriented.
func (v *RowVector) Orientation() Orientation { return RowOriented }

// Orientation returns ColOriented.
func (v *ColVector) Orientation() Orientation { return ColOriented }

// Clone returns an independent copy.
func (v *RowVector) Clone() *RowVector { return newRowVector(v.Values()) }

// Clone returns an independent copy.
func (v *ColVector) Clone() *ColVector { return newColVector(v.Values()) }

// Transpose copies the row vector into a column vector.
func (v *RowVector) Transpose() *ColVector { return newColVector(v.Values()) }

// Transpose copies the column vector into a row vector.
func (v *ColVector) Transpose() *RowVector { return newRowVector(v.Values()) }

// AsMatrix copies the vector into a 1×n Matrix.
func (v *RowVector) AsMatrix() *Matrix {
	m := newMatrix(1, v.Len())
	for j := 0; j < v.Len(); j++ {
		m.store.Set(0, j, v.data.AtVec(j))
	}

	return m
}

// AsMatrix copies the vector into an n×1 Matrix.
func (v *ColVector) AsMatrix() *Matrix {
	m := newMatrix(v.Len(), 1)
	for i := 0; i < v.Len(); i++ {
		m.store.Set(i, 0, v.data.AtVec(i))
	}

	return m
}

// Ref returns an alias to the element at 1-based position i.
// Errors: ErrOutOfRange.
func (v *RowVector) Ref(i int) (*VectorPointRef, error) { return newVectorPointRef(v, i) }

// Ref returns an alias to the element at 1-based position i.
// Errors: ErrOutOfRange.
func (v *ColVector) Ref(i int) (*VectorPointRef, error) { return newVectorPointRef(v, i) }

// RefIndices returns a scatter alias over the 1-based positions in indices.
// Errors: ErrInvalidIndex (non-integral), ErrOutOfRange.
func (v *RowVector) RefIndices(indices []float64) (*VectorScatterRef[*RowVector], error) {
	return newVectorScatterRef(v, indices)
}

// RefIndices returns a scatter alias over the 1-based positions in indices.
// Errors: ErrInvalidIndex (non-integral), ErrOutOfRange.
func (v *ColVector) RefIndices(indices []float64) (*VectorScatterRef[*ColVector], error) {
	return newVectorScatterRef(v, indices)
}

// String renders the vector horizontally for rows and vertically for columns.
func (v *RowVector) String() string {
	if v.Len() == 0 {
		return "[]"
	}

	return fmt.Sprintf("%v", mat.Formatted(v.data.T()))
}

// String renders the vector horizontally for rows and vertically for columns.
func (v *ColVector) String() string {
	if v.Len() == 0 {
		return "[]"
	}

	return fmt.Sprintf("%v", mat.Formatted(v.data))
}
