// SPDX-License-Identifier: MIT

// Package matrix - Matrix: a shape-tracking wrapper over gonum dense storage.
//
// Purpose:
//   - Own a *mat.Dense and expose its shape (rows, cols) even when empty.
//   - Offer 0-based safe accessors (At/Set return errors instead of panicking)
//     next to the 1-based MATLAB view factory (see ref.go).
//   - Provide explicit, shape-checked conversions (AsScalar, AsRowVector,
//     AsColVector) in place of implicit coercions.
//
// Storage notes:
//   - gonum rejects zero-length dimensions, so a matrix with rows*cols == 0
//     holds the zero-value mat.Dense and keeps its declared shape in r, c.
//   - gonum stores row-major; the MATLAB column-major linear order is a pure
//     index formula (see package index) and never depends on the layout.
//
// Complexity quicksheet:
//   - NewMatrix/FromRows/FromColumns: O(r*c); At/Set: O(1); Clone: O(r*c).
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ---------- error context tags ----------

const (
	ctxAt          = "At"
	ctxSet         = "Set"
	ctxNewMatrix   = "NewMatrix"
	ctxFromRows    = "FromRows"
	ctxFromColumns = "FromColumns"
	ctxAsScalar    = "AsScalar"
	ctxAsRowVector = "AsRowVector"
	ctxAsColVector = "AsColVector"
)

// Matrix is a dense rows×cols matrix of float64 values.
//   - store is the gonum buffer; zero-value (empty) when rows*cols == 0.
//   - r, c are the declared dimensions (>= 0).
//
// A Matrix is mutated in place through its views and returned fresh by every
// arithmetic operator. It is not safe for concurrent mutation.
type Matrix struct {
	store *mat.Dense
	r, c  int
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// newMatrix allocates a zero-filled rows×cols Matrix. rows, cols must be >= 0.
func newMatrix(rows, cols int) *Matrix {
	if rows == 0 || cols == 0 {
		return &Matrix{store: &mat.Dense{}, r: rows, c: cols}
	}

	return &Matrix{store: mat.NewDense(rows, cols, nil), r: rows, c: cols}
}

// NewMatrix creates a rows×cols Matrix from row-major data.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and optional finite-only policy.
//
// Implementation:
//   - Stage 1: validate rows, cols >= 0 and len(data) == rows*cols (nil data ⇒ zeros).
//   - Stage 2: apply numeric policy (WithValidateNaNInf).
//   - Stage 3: copy data into a fresh gonum buffer; the caller's slice is never aliased.
//
// Errors:
//   - ErrInvalidDimensions, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewMatrix(rows, cols int, data []float64, opts ...Option) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(ctxNewMatrix, ErrInvalidDimensions)
	}
	if data != nil && len(data) != rows*cols {
		return nil, matrixErrorf(fmt.Sprintf("%s: %dx%d needs %d values, got %d", ctxNewMatrix, rows, cols, rows*cols, len(data)), ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		if err := ValidateFinite(data); err != nil {
			return nil, matrixErrorf(ctxNewMatrix, err)
		}
	}
	m := newMatrix(rows, cols)
	if data == nil || m.empty() {
		return m, nil
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			m.store.Set(i, j, data[i*cols+j])
		}
	}

	return m, nil
}

// FromRows builds a Matrix from row slices, e.g. FromRows([][]float64{{1, 4}, {2, 5}}).
// All rows must have the same length; no rows yields a 0×0 matrix.
// Errors: ErrInvalidDimensions (ragged input), ErrNaNInf (policy).
func FromRows(rows [][]float64, opts ...Option) (*Matrix, error) {
	r := len(rows)
	if r == 0 {
		return newMatrix(0, 0), nil
	}
	c := len(rows[0])
	data := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(fmt.Sprintf("%s: row %d has %d values, want %d", ctxFromRows, i+1, len(row), c), ErrInvalidDimensions)
		}
		data = append(data, row...)
	}
	m, err := NewMatrix(r, c, data, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}

	return m, nil
}

// FromColumns builds a Matrix from column slices, e.g.
// FromColumns([][]float64{{1, 2, 3}, {4, 5, 6}}) is 3×2.
// Errors: ErrInvalidDimensions (ragged input), ErrNaNInf (policy).
func FromColumns(cols [][]float64, opts ...Option) (*Matrix, error) {
	c := len(cols)
	if c == 0 {
		return newMatrix(0, 0), nil
	}
	r := len(cols[0])
	for j, col := range cols {
		if len(col) != r {
			return nil, matrixErrorf(fmt.Sprintf("%s: column %d has %d values, want %d", ctxFromColumns, j+1, len(col), r), ErrInvalidDimensions)
		}
	}
	data := make([]float64, r*c)
	for j, col := range cols {
		for i, v := range col {
			data[i*c+j] = v
		}
	}
	m, err := NewMatrix(r, c, data, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFromColumns, err)
	}

	return m, nil
}

// FromDense copies any gonum matrix into a new Matrix.
// Complexity: O(r*c).
func FromDense(a mat.Matrix) *Matrix {
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return newMatrix(r, c)
	}

	return &Matrix{store: mat.DenseCopyOf(a), r: r, c: c}
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix) Cols() int { return m.c }

// Dims returns (rows, cols). Complexity: O(1).
func (m *Matrix) Dims() (rows, cols int) { return m.r, m.c }

func (m *Matrix) empty() bool { return m.r == 0 || m.c == 0 }

// RawMatrix returns the underlying gonum store (shared, not copied).
// Writes through it are visible to every live view. Replacing or resizing it
// invalidates outstanding views.
func (m *Matrix) RawMatrix() *mat.Dense { return m.store }

// At returns the value at the 0-based cell (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, matrixErrorf(fmt.Sprintf("Matrix.%s(%d,%d)", ctxAt, row, col), ErrOutOfRange)
	}

	return m.store.At(row, col), nil
}

// Set stores v at the 0-based cell (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v float64) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return matrixErrorf(fmt.Sprintf("Matrix.%s(%d,%d)", ctxSet, row, col), ErrOutOfRange)
	}
	m.store.Set(row, col, v)

	return nil
}

// Clone returns a deep copy; mutations do not affect the receiver.
// Complexity: O(r*c).
func (m *Matrix) Clone() *Matrix {
	if m.empty() {
		return newMatrix(m.r, m.c)
	}

	return &Matrix{store: mat.DenseCopyOf(m.store), r: m.r, c: m.c}
}

// Transpose returns a fresh cols×rows copy (MATLAB A').
// Complexity: O(r*c).
func (m *Matrix) Transpose() *Matrix {
	if m.empty() {
		return newMatrix(m.c, m.r)
	}

	return &Matrix{store: mat.DenseCopyOf(m.store.T()), r: m.c, c: m.r}
}

// Flatten returns the cells in column-major order as a column vector (MATLAB A(:)).
// Complexity: O(r*c).
func (m *Matrix) Flatten() *ColVector {
	vals := make([]float64, 0, m.r*m.c)
	var i, j int
	for j = 0; j < m.c; j++ {
		for i = 0; i < m.r; i++ {
			vals = append(vals, m.store.At(i, j))
		}
	}

	return newColVector(vals)
}

// AsScalar unpacks a 1×1 matrix. Any other shape fails with ErrShape.
func (m *Matrix) AsScalar() (float64, error) {
	if m.r != 1 || m.c != 1 {
		return 0, matrixErrorf(fmt.Sprintf("%s: %dx%d", ctxAsScalar, m.r, m.c), ErrShape)
	}

	return m.store.At(0, 0), nil
}

// AsRowVector copies a 1×n matrix into a RowVector. Other shapes fail with ErrShape.
func (m *Matrix) AsRowVector() (*RowVector, error) {
	if m.r != 1 {
		return nil, matrixErrorf(fmt.Sprintf("%s: %dx%d is not a row vector", ctxAsRowVector, m.r, m.c), ErrShape)
	}
	if m.c == 0 {
		return newRowVector(nil), nil
	}

	return newRowVector(mat.Row(nil, 0, m.store)), nil
}

// AsColVector copies an n×1 matrix into a ColVector. Other shapes fail with ErrShape.
func (m *Matrix) AsColVector() (*ColVector, error) {
	if m.c != 1 {
		return nil, matrixErrorf(fmt.Sprintf("%s: %dx%d is not a column vector", ctxAsColVector, m.r, m.c), ErrShape)
	}
	if m.r == 0 {
		return newColVector(nil), nil
	}

	return newColVector(mat.Col(nil, 0, m.store)), nil
}

// Equal reports whether o has the same shape and every cell differs by at
// most the configured epsilon (exact by default). NaN never equals anything.
func (m *Matrix) Equal(o *Matrix, opts ...Option) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	if m.empty() {
		return true
	}

	return mat.EqualApprox(m.store, o.store, gatherOptions(opts...).eps)
}

// String renders the matrix with gonum's formatter; empty matrices print
// their declared shape.
func (m *Matrix) String() string {
	if m.empty() {
		return fmt.Sprintf("[](%dx%d)", m.r, m.c)
	}

	return fmt.Sprintf("%v", mat.Formatted(m.store))
}
