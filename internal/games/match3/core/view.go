package core

// TileView is the render state of one tile for a single frame.
type TileView struct {
	ID       TileID
	Type     TileType
	Row      int // May be -1 for a refill entering the grid
	Col      int
	OffsetX  float64 // Draw units from the cell center
	OffsetY  float64
	Alpha    float64 // 1 opaque, 0 gone
	Selected bool    // Head of the selection trail
}

// View is a read-only frame of the board for renderers.
type View struct {
	Rows       int
	Cols       int
	TileRadius float64
	Status     Status
	Tiles      []TileView
}

// View returns the current frame. Removed tiles waiting for a refill are
// omitted; refills still above the grid are omitted until released.
func (b *Board) View() View {
	v := View{
		Rows:       b.grid.rows,
		Cols:       b.grid.cols,
		TileRadius: b.opts.TileRadius,
		Status:     b.status,
		Tiles:      make([]TileView, 0, len(b.grid.cells)+len(b.dropping)),
	}
	var head *Tile
	if len(b.trail) > 0 {
		head = b.trail[0]
	}

	b.grid.Each(func(t *Tile) {
		if t.Complete && t.Anim == nil {
			return
		}
		tv := tileView(t)
		tv.Selected = t == head
		v.Tiles = append(v.Tiles, tv)
	})
	for _, t := range b.dropping {
		v.Tiles = append(v.Tiles, tileView(t))
	}
	return v
}

func tileView(t *Tile) TileView {
	tv := TileView{ID: t.ID, Type: t.Type, Row: t.Row, Col: t.Col, Alpha: 1}
	switch anim := t.Anim.(type) {
	case Swapping:
		off := anim.Arc.Offset()
		tv.OffsetX, tv.OffsetY = off[0], off[1]
	case Removing:
		tv.Alpha = anim.Fade.Pos()[0]
	case Falling:
		tv.OffsetY = anim.Drop.Pos()[0]
	}
	return tv
}
