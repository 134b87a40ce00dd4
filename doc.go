// Package matlab brings MATLAB-style indexing to Go: one-based addressing,
// column-major linear indices, row/column/slice/logical selection and
// orientation-aware vectors, all on top of gonum dense storage.
//
// What is inside?
//
//	index/   translation of 1-based MATLAB indices into 0-based offsets,
//	          integer checks and column-major linear addressing
//	matrix/  Matrix, RowVector, ColVector, the Ref* view family
//	          (PointRef, RowRef, ColRef, SliceRef, ScatterRef,
//	          VectorPointRef, VectorScatterRef) and the operator set
//
// Views alias the owner's storage on write and copy on read:
//
//	M, _ := matrix.FromRows([][]float64{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}})
//	r, _ := M.RefRow(2, matrix.All)
//	row := r.Get()  // fresh copy: [2 5 8]
//	r.Fill(0)       // writes through into M
//
// Nothing here is safe for concurrent mutation; a view must not outlive
// the operation it was created for.
//
//	go get github.com/katalvlaran/matlab
package matlab
