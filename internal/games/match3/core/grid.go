package core

import "fmt"

// Grid is the rows x columns array of tiles. Tiles live in an arena indexed
// by ID and cells store IDs, so identities stay stable across exchanges.
// Cells are stored in row-major order: index = row*cols + col.
type Grid struct {
	rows   int
	cols   int
	cells  []TileID
	tiles  map[TileID]*Tile
	nextID TileID
}

// NewGrid creates a grid whose cells are filled by typeAt.
func NewGrid(rows, cols int, typeAt func(row, col int) TileType) *Grid {
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]TileID, rows*cols),
		tiles: make(map[TileID]*Tile, rows*cols),
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			g.place(g.newTile(typeAt(row, col), row, col))
		}
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidIndex returns true if (row, col) is inside the grid.
func (g *Grid) IsValidIndex(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// At returns the tile in the given cell, or nil if out of bounds.
func (g *Grid) At(row, col int) *Tile {
	if !g.IsValidIndex(row, col) {
		return nil
	}
	return g.tiles[g.cells[g.index(row, col)]]
}

// Tile returns the tile with the given ID, or nil if it was released.
func (g *Grid) Tile(id TileID) *Tile {
	return g.tiles[id]
}

// Resident reports whether t occupies the cell named by its coordinates.
func (g *Grid) Resident(t *Tile) bool {
	return t != nil && g.At(t.Row, t.Col) == t
}

// Swap exchanges two resident tiles. Both cells and both tiles' coordinates
// are updated in one step. A tile that is still on a swap arc cannot be
// swapped again.
func (g *Grid) Swap(a, b *Tile) error {
	if !g.Resident(a) || !g.Resident(b) || a == b {
		return ErrNotResident
	}
	if a.IsSwapping() || b.IsSwapping() {
		return ErrSwapInFlight
	}
	g.exchange(a, b)
	return nil
}

// exchange swaps two resident tiles without any guard.
func (g *Grid) exchange(a, b *Tile) {
	ia := g.index(a.Row, a.Col)
	ib := g.index(b.Row, b.Col)
	g.cells[ia], g.cells[ib] = b.ID, a.ID
	a.Row, b.Row = b.Row, a.Row
	a.Col, b.Col = b.Col, a.Col
}

// newTile allocates a tile in the arena without placing it.
func (g *Grid) newTile(tt TileType, row, col int) *Tile {
	t := &Tile{ID: g.nextID, Type: tt, Row: row, Col: col}
	g.nextID++
	g.tiles[t.ID] = t
	return t
}

// place writes t's ID into the cell named by its coordinates.
func (g *Grid) place(t *Tile) {
	g.cells[g.index(t.Row, t.Col)] = t.ID
}

// land moves a refill tile into row 0 of its column, replacing the removed
// tile that was waiting there.
func (g *Grid) land(t *Tile) {
	if hole := g.At(0, t.Col); hole != nil {
		delete(g.tiles, hole.ID)
	}
	t.Row = 0
	g.place(t)
}

// Each calls fn for every resident tile in row-major order.
func (g *Grid) Each(fn func(t *Tile)) {
	for _, id := range g.cells {
		fn(g.tiles[id])
	}
}

// Types returns a copy of the tile types, indexed [row][col].
func (g *Grid) Types() [][]TileType {
	types := make([][]TileType, g.rows)
	for row := range types {
		types[row] = make([]TileType, g.cols)
		for col := range types[row] {
			types[row][col] = g.At(row, col).Type
		}
	}
	return types
}

// HoleCount returns the number of removed tiles still occupying cells.
func (g *Grid) HoleCount() int {
	count := 0
	g.Each(func(t *Tile) {
		if t.Complete {
			count++
		}
	})
	return count
}

// CheckInvariants verifies that every cell holds exactly one tile and that
// each tile's coordinates match its cell.
func (g *Grid) CheckInvariants() error {
	seen := make(map[TileID]bool, len(g.cells))
	for i, id := range g.cells {
		row, col := i/g.cols, i%g.cols
		t := g.tiles[id]
		if t == nil {
			return fmt.Errorf("cell (%d,%d): tile %d not in arena", row, col, id)
		}
		if seen[id] {
			return fmt.Errorf("cell (%d,%d): tile %d occupies two cells", row, col, id)
		}
		seen[id] = true
		if t.Row != row || t.Col != col {
			return fmt.Errorf("cell (%d,%d): tile %d claims (%d,%d)", row, col, id, t.Row, t.Col)
		}
	}
	return nil
}
