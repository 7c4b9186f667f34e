package core

// Group is a set of tiles removed together, in detection order.
type Group []TileID

// FindGroups scans the grid for runs of MinRun or more equal tiles and
// returns them as removal groups. Rows are scanned before columns, so a
// column run that crosses a row run is merged into the row's group.
// The grid is not modified.
func FindGroups(g *Grid) []Group {
	return findRuns(g.rows, g.cols, func(row, col int) (TileID, TileType) {
		t := g.At(row, col)
		return t.ID, t.Type
	})
}

// findRuns implements the detector over an arbitrary cell accessor so the
// move finder can run it on a scratch copy of the types.
func findRuns(rows, cols int, cell func(row, col int) (TileID, TileType)) []Group {
	d := detector{owner: make(map[TileID]int)}

	for row := 0; row < rows; row++ {
		d.scan(cols, func(i int) (TileID, TileType) { return cell(row, i) })
	}
	for col := 0; col < cols; col++ {
		d.scan(rows, func(i int) (TileID, TileType) { return cell(i, col) })
	}

	out := make([]Group, 0, len(d.groups))
	for _, grp := range d.groups {
		if grp != nil {
			out = append(out, grp)
		}
	}
	return out
}

type detector struct {
	groups []Group
	owner  map[TileID]int // Tile -> index into groups
}

// scan walks one line of n cells and closes runs on a type change or at
// the end of the line.
func (d *detector) scan(n int, cell func(i int) (TileID, TileType)) {
	if n == 0 {
		return
	}
	run := make([]TileID, 0, n)
	id, prev := cell(0)
	run = append(run, id)
	for i := 1; i < n; i++ {
		id, tt := cell(i)
		if tt == prev {
			run = append(run, id)
			continue
		}
		d.commit(run)
		run = append(run[:0], id)
		prev = tt
	}
	d.commit(run)
}

// commit turns a closed run into a group, or merges it into every group it
// intersects. The earliest intersecting group absorbs the others.
func (d *detector) commit(run []TileID) {
	if len(run) < MinRun {
		return
	}

	target := -1
	for _, id := range run {
		if idx, ok := d.owner[id]; ok && (target < 0 || idx < target) {
			target = idx
		}
	}

	if target < 0 {
		grp := make(Group, len(run))
		copy(grp, run)
		for _, id := range grp {
			d.owner[id] = len(d.groups)
		}
		d.groups = append(d.groups, grp)
		return
	}

	// Fold any other intersecting groups into the target first.
	for _, id := range run {
		idx, ok := d.owner[id]
		if !ok || idx == target || d.groups[idx] == nil {
			continue
		}
		for _, member := range d.groups[idx] {
			d.owner[member] = target
		}
		d.groups[target] = append(d.groups[target], d.groups[idx]...)
		d.groups[idx] = nil
	}

	for _, id := range run {
		if _, ok := d.owner[id]; ok {
			continue
		}
		d.owner[id] = target
		d.groups[target] = append(d.groups[target], id)
	}
}
