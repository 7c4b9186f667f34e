package core

// Tile is a single typed piece on the board.
type Tile struct {
	ID       TileID
	Type     TileType
	Row      int
	Col      int
	Complete bool      // Queued for removal, or already removed and waiting to be refilled
	Anim     Animation // nil when the tile is at rest
}

// Pos returns the tile's current cell.
func (t *Tile) Pos() Pos {
	return Pos{Row: t.Row, Col: t.Col}
}

// Info returns a value copy suitable for events.
func (t *Tile) Info() TileInfo {
	return TileInfo{ID: t.ID, Type: t.Type, Row: t.Row, Col: t.Col}
}

// Animating reports whether any animation is attached.
func (t *Tile) Animating() bool {
	return t.Anim != nil
}

// IsSwapping reports whether the tile is travelling along a swap arc.
func (t *Tile) IsSwapping() bool {
	_, ok := t.Anim.(Swapping)
	return ok
}

// IsRemoving reports whether the tile is fading out.
func (t *Tile) IsRemoving() bool {
	_, ok := t.Anim.(Removing)
	return ok
}

// IsFalling reports whether the tile is dropping one row.
func (t *Tile) IsFalling() bool {
	_, ok := t.Anim.(Falling)
	return ok
}

// Animation is the single animation slot of a tile. Exactly one of
// Swapping, Removing or Falling can be attached at a time.
type Animation interface {
	animation()
}

// Swapping moves the tile along a half circle into its neighbor's cell.
type Swapping struct {
	Arc *CurveTween
}

func (Swapping) animation() {}

// Removing fades the tile from alpha 1 to 0. Component 0 is the alpha.
type Removing struct {
	Fade *LinearTween
}

func (Removing) animation() {}

// Falling drops the tile by one tile diameter. Component 0 is the offset.
type Falling struct {
	Drop *LinearTween
}

func (Falling) animation() {}

// TileInfo is a detached copy of a tile's identity and position.
type TileInfo struct {
	ID   TileID
	Type TileType
	Row  int
	Col  int
}
