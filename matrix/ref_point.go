// SPDX-License-Identifier: MIT

package matrix

// PointRef aliases one cell of a Matrix. Produced by Matrix.Ref / RefElem,
// so its coordinates are already bounds-checked.
type PointRef struct {
	owner    *Matrix
	row, col int // 0-based
}

// Get reads the cell.
func (p *PointRef) Get() float64 { return p.owner.store.At(p.row, p.col) }

// Set writes v into the owner's cell.
func (p *PointRef) Set(v float64) { p.owner.store.Set(p.row, p.col, v) }

// Row returns the 1-based row of the aliased cell.
func (p *PointRef) Row() int { return p.row + 1 }

// Col returns the 1-based column of the aliased cell.
func (p *PointRef) Col() int { return p.col + 1 }
