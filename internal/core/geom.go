// Package core provides fundamental types and utilities for the puzzle
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Rect is an axis-aligned box in screen cells, used for layout and pointer
// hit-testing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CellGrid maps screen points to rows and columns of equally sized cells.
type CellGrid struct {
	Origin Rect // Area covered by the cells
	CellW  int
	CellH  int
}

// CellAt returns the cell under (x, y). Points outside the grid return
// ok=false together with the row/column they would fall into, which may be
// negative.
func (g CellGrid) CellAt(x, y int) (row, col int, ok bool) {
	if g.CellW <= 0 || g.CellH <= 0 {
		return -1, -1, false
	}
	col = floorDiv(x-g.Origin.X, g.CellW)
	row = floorDiv(y-g.Origin.Y, g.CellH)
	return row, col, g.Origin.Contains(x, y)
}

// CellRect returns the screen rectangle of a cell.
func (g CellGrid) CellRect(row, col int) Rect {
	return NewRect(g.Origin.X+col*g.CellW, g.Origin.Y+row*g.CellH, g.CellW, g.CellH)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
