// SPDX-License-Identifier: MIT

// Package matrix - element and scatter views over vectors, v(i) and v([..]).
//
// VectorScatterRef is generic over the owner's concrete type so Get hands back
// a vector of the same orientation (a RowVector scatter reads as a RowVector).
package matrix

import "fmt"

const (
	ctxVectorRef        = "Vector.Ref"
	ctxVectorRefIndices = "Vector.RefIndices"
	ctxVectorScatterSet = "VectorScatterRef.Set"
)

// VectorPointRef aliases one element of a vector.
type VectorPointRef struct {
	owner OrientedVector
	i     int // 0-based
}

func newVectorPointRef(v OrientedVector, i int) (*VectorPointRef, error) {
	if isNilVector(v) {
		return nil, matrixErrorf(ctxVectorRef, ErrNilMatrix)
	}
	off, err := checkedOffset(i, v.Len())
	if err != nil {
		return nil, matrixErrorf(fmt.Sprintf("%s(%d)", ctxVectorRef, i), err)
	}

	return &VectorPointRef{owner: v, i: off}, nil
}

// Get reads the element.
func (p *VectorPointRef) Get() float64 { return p.owner.AtVec(p.i) }

// Set writes x into the owner.
func (p *VectorPointRef) Set(x float64) { p.owner.SetVec(p.i, x) }

// VectorScatterRef aliases a list of positions in a vector of type V.
// Positions keep the caller's order and may repeat.
type VectorScatterRef[V Vector] struct {
	owner V
	offs  []int
}

func newVectorScatterRef[V Vector](v V, indices []float64) (*VectorScatterRef[V], error) {
	if isNilVector(v) {
		return nil, matrixErrorf(ctxVectorRefIndices, ErrNilMatrix)
	}
	offs, err := checkedOffsets(indices, v.Len())
	if err != nil {
		return nil, matrixErrorf(ctxVectorRefIndices, err)
	}

	return &VectorScatterRef[V]{owner: v, offs: offs}, nil
}

// Len returns the number of addressed positions.
func (s *VectorScatterRef[V]) Len() int { return len(s.offs) }

// Get gathers the addressed elements into a new vector of the owner's orientation.
func (s *VectorScatterRef[V]) Get() V {
	vals := make([]float64, len(s.offs))
	for k, off := range s.offs {
		vals[k] = s.owner.AtVec(off)
	}

	return newLike(s.owner, vals)
}

// Set writes v element-wise into the addressed positions.
// Errors: ErrNilMatrix, ErrShape (v.Len() != Len()).
func (s *VectorScatterRef[V]) Set(v V) error {
	if err := ValidateVecLen(v, len(s.offs)); err != nil {
		return matrixErrorf(ctxVectorScatterSet, err)
	}
	vals := v.RawVector() // read before writing: v may be the owner itself
	buf := make([]float64, len(s.offs))
	for k := range s.offs {
		buf[k] = vals.AtVec(k)
	}
	for k, off := range s.offs {
		s.owner.SetVec(off, buf[k])
	}

	return nil
}

// Fill broadcasts x over the addressed positions.
func (s *VectorScatterRef[V]) Fill(x float64) {
	for _, off := range s.offs {
		s.owner.SetVec(off, x)
	}
}
