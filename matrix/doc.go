// Package matrix offers MATLAB-style matrices, oriented vectors and views.
//
// The matrix package provides:
//
//   - Matrix, a shape-tracking dense matrix over gonum storage that keeps its
//     declared shape even when empty (0×n, n×0).
//   - RowVector and ColVector, distinct orientation types; Transpose is the
//     only (copying) bridge between them.
//   - The Ref* view family, one method per MATLAB addressing mode: A(i,j),
//     A(i,:), A(:,j), A(r0:r1,c0:c1), A([..],[..]), A(mask) and v(i), v([..]).
//     Indices are 1-based and checked when the view is built.
//   - Element-wise and shape-checked arithmetic that keeps the operand's
//     orientation, plus toolkit facades (Size, Sum, Max, Find, Zeros, ...).
//
// Views write through to their owner and copy on read. They are meant to be
// short-lived; none of the types is safe for concurrent mutation.
//
// Errors are package sentinels (ErrInvalidIndex, ErrShape, ErrInvalidMask, ...)
// matched with errors.Is.
package matrix
