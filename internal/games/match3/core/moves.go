package core

// Move is a swap of two adjacent cells.
type Move struct {
	A Pos
	B Pos
}

// PossibleMoves lists every adjacent swap that would create at least one
// run, in row-major order of A. Only right and down neighbors are tried, so
// each pair appears once.
func (b *Board) PossibleMoves() []Move {
	return PossibleMovesIn(b.grid.Types())
}

// PossibleMovesIn runs the move finder on a types layout indexed [row][col].
func PossibleMovesIn(types [][]TileType) []Move {
	rows := len(types)
	if rows == 0 {
		return nil
	}
	cols := len(types[0])

	scratch := make([][]TileType, rows)
	for row := range types {
		scratch[row] = append([]TileType(nil), types[row]...)
	}
	cell := func(row, col int) (TileID, TileType) {
		return TileID(row*cols + col), scratch[row][col]
	}

	var moves []Move
	try := func(a, c Pos) {
		if c.Row >= rows || c.Col >= cols || scratch[a.Row][a.Col] == scratch[c.Row][c.Col] {
			return
		}
		scratch[a.Row][a.Col], scratch[c.Row][c.Col] = scratch[c.Row][c.Col], scratch[a.Row][a.Col]
		if len(findRuns(rows, cols, cell)) > 0 {
			moves = append(moves, Move{A: a, B: c})
		}
		scratch[a.Row][a.Col], scratch[c.Row][c.Col] = scratch[c.Row][c.Col], scratch[a.Row][a.Col]
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			a := P(row, col)
			try(a, a.Add(0, 1))
			try(a, a.Add(1, 0))
		}
	}
	return moves
}

// HasMatches reports whether a types layout already contains a run.
func HasMatches(types [][]TileType) bool {
	rows := len(types)
	if rows == 0 {
		return false
	}
	cols := len(types[0])
	return len(findRuns(rows, cols, func(row, col int) (TileID, TileType) {
		return TileID(row*cols + col), types[row][col]
	})) > 0
}
