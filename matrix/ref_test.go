// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Ref* view family:
// construction-time validation, read-as-copy and write-through semantics.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matlab/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestViews_ConcreteScenario walks the canonical 3×3 example end to end.
func TestViews_ConcreteScenario(t *testing.T) {
	t.Parallel()

	m := Magic3(t)

	p, err := m.Ref(2, 2)
	require.NoError(t, err)
	require.Equal(t, 5.0, p.Get())

	r, err := m.RefRow(2, matrix.All)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 5, 8}, r.Get().Values())

	s, err := m.RefSlice(matrix.Span{From: 1, To: 2}, matrix.Span{From: 1, To: 2})
	require.NoError(t, err)
	RequireMatrix(t, [][]float64{{1, 4}, {2, 5}}, s.Get())

	sc, err := m.RefMask(m.NotEqualsElementwise(0))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, sc.Get().Values())
}

// TestPointRef_RoundTrip checks Get against the 0-based accessor for every cell.
func TestPointRef_RoundTrip(t *testing.T) {
	t.Parallel()

	m := Magic3(t)
	for i := 1; i <= 3; i++ {
		for j := 1; j <= 3; j++ {
			p, err := m.Ref(i, j)
			require.NoError(t, err)
			want, err := m.At(i-1, j-1)
			require.NoError(t, err)
			assert.Equal(t, want, p.Get())
			assert.Equal(t, i, p.Row())
			assert.Equal(t, j, p.Col())

			p.Set(float64(10 * i * j))
			assert.Equal(t, float64(10*i*j), p.Get())
		}
	}
}

// TestRef_OutOfRange verifies that bounds are checked when the view is built.
func TestRef_OutOfRange(t *testing.T) {
	t.Parallel()

	m := Magic3(t)
	tests := []struct {
		name string
		call func() error
	}{
		{"Ref row 0", func() error { _, err := m.Ref(0, 1); return err }},
		{"Ref col 4", func() error { _, err := m.Ref(1, 4); return err }},
		{"RefRow 4", func() error { _, err := m.RefRow(4, matrix.All); return err }},
		{"RefCol 0", func() error { _, err := m.RefCol(matrix.All, 0); return err }},
		{"RefSlice rows 2:4", func() error {
			_, err := m.RefSlice(matrix.Span{From: 2, To: 4}, matrix.Span{From: 1, To: 1})
			return err
		}},
		{"RefSlice rows 1:MaxInt", func() error {
			_, err := m.RefSlice(matrix.Span{From: 1, To: math.MaxInt}, matrix.Span{From: 1, To: 3})
			return err
		}},
		{"RefSlice rows MinInt:MaxInt", func() error {
			_, err := m.RefSlice(matrix.Span{From: math.MinInt, To: math.MaxInt}, matrix.Span{From: 1, To: 3})
			return err
		}},
		{"RefRowSlice cols 0:MaxInt", func() error {
			_, err := m.RefRowSlice(2, matrix.Span{From: 0, To: math.MaxInt})
			return err
		}},
		{"RefRowSlice col 0", func() error { _, err := m.RefRowSlice(1, matrix.Span{From: 0, To: 2}); return err }},
		{"RefIndices 5", func() error { _, err := m.RefIndices([]float64{1}, []float64{5}); return err }},
		{"RefRowIndices 0", func() error { _, err := m.RefRowIndices([]float64{0}, matrix.All); return err }},
		{"RefColIndices 4", func() error { _, err := m.RefColIndices(matrix.All, []float64{4}); return err }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.call()
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
			require.ErrorIs(t, err, matrix.ErrInvalidIndex)
		})
	}
}

// TestRef_InvalidSelector ensures only All is accepted as the ':' marker.
func TestRef_InvalidSelector(t *testing.T) {
	t.Parallel()

	m := Magic3(t)
	_, err := m.RefRow(1, matrix.Selector('*'))
	require.ErrorIs(t, err, matrix.ErrInvalidSelector)
	_, err = m.RefCol(matrix.Selector(0), 1)
	require.ErrorIs(t, err, matrix.ErrInvalidSelector)
	_, err = m.RefRowIndices([]float64{1}, matrix.Selector('x'))
	require.ErrorIs(t, err, matrix.ErrInvalidSelector)
	_, err = m.RefColIndices(matrix.Selector(';'), []float64{1})
	require.ErrorIs(t, err, matrix.ErrInvalidSelector)
}

// TestRef_NilOwner checks the nil receiver guard.
func TestRef_NilOwner(t *testing.T) {
	t.Parallel()

	var m *matrix.Matrix
	_, err := m.Ref(1, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = m.RefMask(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestRefElem covers A(i) on a column matrix.
func TestRefElem(t *testing.T) {
	t.Parallel()

	col := MustFromRows(t, [][]float64{{10}, {20}, {30}})
	p, err := col.RefElem(3)
	require.NoError(t, err)
	require.Equal(t, 30.0, p.Get())
	p.Set(-1)
	v, err := col.At(2, 0)
	require.NoError(t, err)
	require.Equal(t, -1.0, v)

	_, err = col.RefElem(4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = Magic3(t).RefElem(1)
	require.ErrorIs(t, err, matrix.ErrShape)
}

// TestRowRef_SetShapeMismatchLeavesOwner checks check-then-write.
func TestRowRef_SetShapeMismatchLeavesOwner(t *testing.T) {
	t.Parallel()

	m := Magic3(t)
	before := m.Clone()
	r, err := m.RefRow(1, matrix.All)
	require.NoError(t, err)

	require.ErrorIs(t, r.Set(MustRow(t, 1, 2)), matrix.ErrShape)
	require.ErrorIs(t, r.Set(nil), matrix.ErrNilMatrix)
	require.True(t, before.Equal(m))

	require.NoError(t, r.Set(MustRow(t, -1, -2, -3)))
	RequireMatrix(t, [][]float64{{-1, -2, -3}, {2, 5, 8}, {3, 6, 9}}, m)
	require.Equal(t, 3, r.Len())
}

// TestRowRef_GetIsCopy verifies mutating a read result never touches the owner.
func TestRowRef_GetIsCopy(t *testing.T) {
	t.Parallel()

	m := Magic3(t)
	r, err := m.RefRow(3, matrix.All)
	require.NoError(t, err)
	got := r.Get()
	got.SetVec(0, 100)
	p, err := m.Ref(3, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, p.Get())

	r.Fill(0)
	RequireMatrix(t, [][]float64{{1, 4, 7}, {2, 5, 8}, {0, 0, 0}}, m)
}

// TestColRef covers Get, Set and Fill on A(:,j).
func TestColRef(t *testing.T) {
	t.Parallel()

	m := Magic3(t)
	c, err := m.RefCol(matrix.All, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{7, 8, 9}, c.Get().Values())
	require.Equal(t, 3, c.Len())

	require.ErrorIs(t, c.Set(MustCol(t, 1)), matrix.ErrShape)
	require.NoError(t, c.Set(MustCol(t, 0, 0, 1)))
	RequireMatrix(t, [][]float64{{1, 4, 0}, {2, 5, 0}, {3, 6, 1}}, m)

	c.Fill(2)
	RequireMatrix(t, [][]float64{{1, 4, 2}, {2, 5, 2}, {3, 6, 2}}, m)
}

// TestSliceRef_Shapes covers spans, reversed spans and explicit index lists.
func TestSliceRef_Shapes(t *testing.T) {
	t.Parallel()

	m := Magic3(t)

	rev, err := m.RefSlice(matrix.Span{From: 3, To: 1}, matrix.Span{From: 1, To: 3})
	require.NoError(t, err)
	r, c := rev.Dims()
	require.Equal(t, 0, r)
	require.Equal(t, 3, c)
	require.True(t, matrix.IsEmpty(rev.Get()))

	perm, err := m.RefIndices([]float64{3, 1}, []float64{2, 2})
	require.NoError(t, err)
	RequireMatrix(t, [][]float64{{6, 6}, {4, 4}}, perm.Get())

	rows, err := m.RefRowIndices([]float64{2}, matrix.All)
	require.NoError(t, err)
	RequireMatrix(t, [][]float64{{2, 5, 8}}, rows.Get())

	cols, err := m.RefColIndices(matrix.All, []float64{1, 3})
	require.NoError(t, err)
	RequireMatrix(t, [][]float64{{1, 7}, {2, 8}, {3, 9}}, cols.Get())
}

// TestSliceRef_NonIntegralIndices lists every offending value at once.
func TestSliceRef_NonIntegralIndices(t *testing.T) {
	t.Parallel()

	m := Magic3(t)
	_, err := m.RefIndices([]float64{1, 1.5, 2.5}, []float64{1})
	require.ErrorIs(t, err, matrix.ErrInvalidIndex)
	require.NotErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "1.5/2.5")

	_, err = m.RefColIndices(matrix.All, []float64{math.NaN()})
	require.ErrorIs(t, err, matrix.ErrInvalidIndex)

	// integral, but beyond the int range: rejected as non-integer
	_, err = m.RefIndices([]float64{1e300}, []float64{1})
	require.ErrorIs(t, err, matrix.ErrInvalidIndex)
	require.NotErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "1e+300")
}

// TestSliceRef_SetFill covers Set (with shape check), Fill and self-assignment.
func TestSliceRef_SetFill(t *testing.T) {
	t.Parallel()

	m := Magic3(t)
	s, err := m.RefSlice(matrix.Span{From: 2, To: 3}, matrix.Span{From: 2, To: 3})
	require.NoError(t, err)

	require.ErrorIs(t, s.Set(Magic3(t)), matrix.ErrShape)
	require.ErrorIs(t, s.Set(nil), matrix.ErrNilMatrix)

	require.NoError(t, s.Set(MustFromRows(t, [][]float64{{0, 0}, {0, 1}})))
	RequireMatrix(t, [][]float64{{1, 4, 7}, {2, 0, 0}, {3, 0, 1}}, m)

	s.Fill(-1)
	RequireMatrix(t, [][]float64{{1, 4, 7}, {2, -1, -1}, {3, -1, -1}}, m)

	// A([3 2 1], :) = A reverses the rows without reading overwritten cells.
	flip, err := m.RefRowIndices([]float64{3, 2, 1}, matrix.All)
	require.NoError(t, err)
	require.NoError(t, flip.Set(m))
	RequireMatrix(t, [][]float64{{3, -1, -1}, {2, -1, -1}, {1, 4, 7}}, m)
}

// TestSliceRef_FillRow covers the single-row restriction.
func TestSliceRef_FillRow(t *testing.T) {
	t.Parallel()

	m := Magic3(t)
	one, err := m.RefRowSlice(2, matrix.Span{From: 2, To: 3})
	require.NoError(t, err)
	require.ErrorIs(t, one.FillRow(MustRow(t, 1, 2, 3)), matrix.ErrShape)
	require.NoError(t, one.FillRow(MustRow(t, 50, 80)))
	RequireMatrix(t, [][]float64{{1, 4, 7}, {2, 50, 80}, {3, 6, 9}}, m)

	two, err := m.RefSlice(matrix.Span{From: 1, To: 2}, matrix.Span{From: 1, To: 2})
	require.NoError(t, err)
	require.ErrorIs(t, two.FillRow(MustRow(t, 1, 2)), matrix.ErrInvalidOperation)
}

// TestScatterRef_Mask covers gather, scatter and mask validation.
func TestScatterRef_Mask(t *testing.T) {
	t.Parallel()

	m := Magic3(t)
	mask := m.ModScalar(2).EqualsElementwise(0) // even cells: 2, 4, 6, 8
	sc, err := m.RefMask(mask)
	require.NoError(t, err)
	require.Equal(t, 4, sc.Len())
	require.Equal(t, []int{2, 4, 6, 8}, sc.Positions())
	require.Equal(t, []float64{2, 4, 6, 8}, sc.Get().Values())

	before := m.Clone()
	require.ErrorIs(t, sc.Set(MustCol(t, 1, 2, 3)), matrix.ErrShape)
	require.ErrorIs(t, sc.SetMatrix(MustFromRows(t, [][]float64{{1, 2, 3, 4}})), matrix.ErrShape)
	require.True(t, before.Equal(m))

	require.NoError(t, sc.Set(MustCol(t, 20, 40, 60, 80)))
	RequireMatrix(t, [][]float64{{1, 40, 7}, {20, 5, 80}, {3, 60, 9}}, m)

	require.NoError(t, sc.SetMatrix(MustFromRows(t, [][]float64{{0}, {0}, {0}, {1}})))
	RequireMatrix(t, [][]float64{{1, 0, 7}, {0, 5, 1}, {3, 0, 9}}, m)

	sc.Fill(7)
	RequireMatrix(t, [][]float64{{1, 7, 7}, {7, 5, 7}, {3, 7, 9}}, m)
}

// TestRefMask_Invalid rejects wrong shapes and non-0/1 values.
func TestRefMask_Invalid(t *testing.T) {
	t.Parallel()

	m := Magic3(t)
	_, err := m.RefMask(MustFromRows(t, [][]float64{{1, 0}}))
	require.ErrorIs(t, err, matrix.ErrInvalidMask)

	_, err = m.RefMask(m) // values other than 0/1
	require.ErrorIs(t, err, matrix.ErrInvalidMask)

	withNaN := m.Clone()
	require.NoError(t, withNaN.Set(0, 0, math.NaN()))
	_, err = m.RefMask(withNaN.EqualsElementwise(1)) // NaN passes through the mask
	require.ErrorIs(t, err, matrix.ErrInvalidMask)

	_, err = m.RefMask(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestRefMask_Empty selects nothing from an all-zero mask.
func TestRefMask_Empty(t *testing.T) {
	t.Parallel()

	m := Magic3(t)
	zero, err := matrix.Zeros(3, 3)
	require.NoError(t, err)
	sc, err := m.RefMask(zero)
	require.NoError(t, err)
	require.Equal(t, 0, sc.Get().Len())
	require.NoError(t, sc.Set(MustCol(t)))
}

// TestVectorRefs covers v(i) and v([..]) on both orientations.
func TestVectorRefs(t *testing.T) {
	t.Parallel()

	row := MustRow(t, 10, 20, 30, 40)
	p, err := row.Ref(2)
	require.NoError(t, err)
	require.Equal(t, 20.0, p.Get())
	p.Set(21)
	require.Equal(t, []float64{10, 21, 30, 40}, row.Values())

	_, err = row.Ref(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	sc, err := row.RefIndices([]float64{4, 1})
	require.NoError(t, err)
	got := sc.Get()
	require.Equal(t, matrix.RowOriented, got.Orientation())
	require.Equal(t, []float64{40, 10}, got.Values())

	require.ErrorIs(t, sc.Set(MustRow(t, 1)), matrix.ErrShape)
	require.NoError(t, sc.Set(MustRow(t, 0, 1)))
	require.Equal(t, []float64{1, 21, 30, 0}, row.Values())
	sc.Fill(5)
	require.Equal(t, []float64{5, 21, 30, 5}, row.Values())

	col := MustCol(t, 1, 2, 3)
	csc, err := col.RefIndices([]float64{3})
	require.NoError(t, err)
	require.Equal(t, matrix.ColOriented, csc.Get().Orientation())
	require.Equal(t, 1, csc.Len())

	_, err = col.RefIndices([]float64{0.5})
	require.ErrorIs(t, err, matrix.ErrInvalidIndex)

	var nilCol *matrix.ColVector
	_, err = nilCol.Ref(1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestScatter_OwnerAsSource assigns a view from its own owner: every value
// is read before any cell is written.
func TestScatter_OwnerAsSource(t *testing.T) {
	t.Parallel()

	row := MustRow(t, 1, 2, 3, 4)
	rev, err := row.RefIndices([]float64{4, 3, 2, 1})
	require.NoError(t, err)
	require.NoError(t, rev.Set(row)) // row(4:-1:1) = row
	require.Equal(t, []float64{4, 3, 2, 1}, row.Values())

	col := MustCol(t, 1, 2, 3)
	shift, err := col.RefIndices([]float64{2, 3, 1})
	require.NoError(t, err)
	require.NoError(t, shift.Set(col)) // col([2 3 1]) = col
	require.Equal(t, []float64{3, 1, 2}, col.Values())

	owner := MustFromRows(t, [][]float64{{5}, {6}, {7}})
	sc, err := owner.RefMask(MustFromRows(t, [][]float64{{1}, {1}, {1}}))
	require.NoError(t, err)
	require.NoError(t, sc.SetMatrix(owner))
	RequireMatrix(t, [][]float64{{5}, {6}, {7}}, owner)
}
