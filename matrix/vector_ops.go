// SPDX-License-Identifier: MIT

// Package matrix - orientation-preserving vector arithmetic.
//
// Every function is generic over V (*RowVector or *ColVector) and returns a
// new V: a row operand yields a row result and a column operand a column
// result. Mixing orientations is a compile error; call Transpose first.
//
// Element-wise binary kernels are gonum's (AddVec, SubVec, MulElemVec);
// scalar forms go through Apply. Operands are never mutated.
package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	ctxVecAdd     = "Add"
	ctxVecSub     = "Sub"
	ctxVecMulElem = "MulElem"
)

// binaryVec validates a, b as equal-length and applies kernel into a fresh store.
func binaryVec[V Vector](tag string, a, b V, kernel func(dst, x, y *mat.VecDense)) (V, error) {
	if isNilVector(a) {
		var zero V
		return zero, matrixErrorf(tag, ErrNilMatrix)
	}
	if err := ValidateVecLen(b, a.Len()); err != nil {
		var zero V
		return zero, matrixErrorf(fmt.Sprintf("%s: %s vector of length %d", tag, a.Orientation(), a.Len()), err)
	}
	if a.Len() == 0 {
		return newLike(a, nil), nil
	}
	dst := mat.NewVecDense(a.Len(), nil)
	kernel(dst, a.RawVector(), b.RawVector())

	return wrapLike(a, dst), nil
}

// Add returns a + b.
// Errors: ErrNilMatrix, ErrShape (length mismatch).
func Add[V Vector](a, b V) (V, error) {
	return binaryVec(ctxVecAdd, a, b, func(dst, x, y *mat.VecDense) { dst.AddVec(x, y) })
}

// Sub returns a - b.
// Errors: ErrNilMatrix, ErrShape (length mismatch).
func Sub[V Vector](a, b V) (V, error) {
	return binaryVec(ctxVecSub, a, b, func(dst, x, y *mat.VecDense) { dst.SubVec(x, y) })
}

// MulElem returns the element-wise product a .* b.
// Errors: ErrNilMatrix, ErrShape (length mismatch).
func MulElem[V Vector](a, b V) (V, error) {
	return binaryVec(ctxVecMulElem, a, b, func(dst, x, y *mat.VecDense) { dst.MulElemVec(x, y) })
}

// Apply returns f mapped over v. With ignoreNaN, NaN elements are copied
// through instead of passed to f.
// Complexity: O(n).
func Apply[V Vector](v V, f func(float64) float64, ignoreNaN bool) V {
	vals := v.Values()
	for k, x := range vals {
		if ignoreNaN && math.IsNaN(x) {
			continue
		}
		vals[k] = f(x)
	}

	return newLike(v, vals)
}

// AddScalar returns v + s.
func AddScalar[V Vector](v V, s float64) V {
	return Apply(v, func(x float64) float64 { return x + s }, false)
}

// SubScalar returns v - s.
func SubScalar[V Vector](v V, s float64) V {
	return Apply(v, func(x float64) float64 { return x - s }, false)
}

// ScalarSub returns s - v.
func ScalarSub[V Vector](s float64, v V) V {
	return Apply(v, func(x float64) float64 { return s - x }, false)
}

// Scale returns s·v.
func Scale[V Vector](v V, s float64) V {
	if v.Len() == 0 {
		return newLike(v, nil)
	}
	dst := mat.NewVecDense(v.Len(), nil)
	dst.ScaleVec(s, v.RawVector())

	return wrapLike(v, dst)
}

// DivScalar returns v / s.
func DivScalar[V Vector](v V, s float64) V {
	return Apply(v, func(x float64) float64 { return x / s }, false)
}

// ScalarDiv returns s ./ v.
func ScalarDiv[V Vector](s float64, v V) V {
	return Apply(v, func(x float64) float64 { return s / x }, false)
}

// ModScalar returns the truncated remainder of each element by s.
func ModScalar[V Vector](v V, s float64) V {
	return Apply(v, func(x float64) float64 { return math.Mod(x, s) }, false)
}

// ScalarMod returns the truncated remainder of s by each element.
func ScalarMod[V Vector](s float64, v V) V {
	return Apply(v, func(x float64) float64 { return math.Mod(s, x) }, false)
}

// Exp returns e^v element-wise; NaN stays NaN.
func Exp[V Vector](v V) V { return Apply(v, math.Exp, true) }

// Floor rounds each element toward -Inf; NaN stays NaN.
func Floor[V Vector](v V) V { return Apply(v, math.Floor, true) }

// Not returns ~v: 0 → 1, nonzero → 0, NaN → NaN.
func Not[V Vector](v V) V { return Apply(v, notValue, true) }

// FindVec returns the 1-based positions of the nonzero elements, ascending,
// in a vector of v's orientation. NaN counts as nonzero.
func FindVec[V Vector](v V) V {
	pos := make([]float64, 0, v.Len())
	for k := 0; k < v.Len(); k++ {
		if v.AtVec(k) != 0 {
			pos = append(pos, float64(k+1))
		}
	}

	return newLike(v, pos)
}

// Equal reports whether a and b have the same length and every pair of
// elements is within the configured epsilon (exact by default).
func Equal[V Vector](a, b V, opts ...Option) bool {
	if isNilVector(a) || isNilVector(b) {
		return isNilVector(a) && isNilVector(b)
	}
	if a.Len() != b.Len() {
		return false
	}
	if a.Len() == 0 {
		return true
	}

	return floats.EqualApprox(a.Values(), b.Values(), gatherOptions(opts...).eps)
}
