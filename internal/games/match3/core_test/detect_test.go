package core_test

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

func idsAt(g *core.Grid, cells ...core.Pos) core.Group {
	grp := make(core.Group, len(cells))
	for i, p := range cells {
		grp[i] = g.At(p.Row, p.Col).ID
	}
	return grp
}

func TestFindGroupsPairIsNotARun(t *testing.T) {
	// Row 1 starts with a pair of type 2.
	b := newBoard(t, calm, nil)
	for _, grp := range core.FindGroups(b.Grid()) {
		t.Errorf("unexpected group %v", grp)
	}
}

func TestFindGroupsLongRun(t *testing.T) {
	layout := [][]core.TileType{
		{2, 2, 2, 2, 2},
		{0, 1, 3, 4, 0},
		{1, 1, 0, 3, 3},
		{3, 4, 1, 0, 1},
		{4, 0, 3, 1, 4},
	}
	g := newBoard(t, layout, nil).Grid()

	groups := core.FindGroups(g)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	want := idsAt(g, core.P(0, 0), core.P(0, 1), core.P(0, 2), core.P(0, 3), core.P(0, 4))
	if !reflect.DeepEqual(groups[0], want) {
		t.Errorf("expected %v, got %v", want, groups[0])
	}
}

func TestFindGroupsCrossMerge(t *testing.T) {
	// Row 2 has a run across columns 1..3, column 2 a run across rows 0..3.
	layout := [][]core.TileType{
		{0, 1, 2, 4, 0},
		{1, 3, 2, 0, 1},
		{3, 2, 2, 2, 4},
		{4, 0, 2, 1, 3},
		{0, 1, 3, 3, 4},
	}
	g := newBoard(t, layout, nil).Grid()

	groups := core.FindGroups(g)
	if len(groups) != 1 {
		t.Fatalf("expected the two runs merged into 1 group, got %d", len(groups))
	}
	// Row run first, then the column run without the shared tile.
	want := idsAt(g,
		core.P(2, 1), core.P(2, 2), core.P(2, 3),
		core.P(0, 2), core.P(1, 2), core.P(3, 2),
	)
	if !reflect.DeepEqual(groups[0], want) {
		t.Errorf("expected %v, got %v", want, groups[0])
	}
}

func TestFindGroupsColumnJoinsTwoRowGroups(t *testing.T) {
	// Two row runs bridged by a column run form one U-shaped group.
	layout := [][]core.TileType{
		{2, 2, 2, 4, 0},
		{2, 3, 1, 0, 1},
		{2, 2, 2, 1, 4},
		{4, 0, 3, 1, 3},
		{0, 1, 3, 3, 4},
	}
	g := newBoard(t, layout, nil).Grid()

	groups := core.FindGroups(g)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d: %v", len(groups), groups)
	}
	if len(groups[0]) != 7 {
		t.Errorf("expected 7 tiles, got %d", len(groups[0]))
	}
	seen := make(map[core.TileID]bool)
	for _, id := range groups[0] {
		if seen[id] {
			t.Errorf("tile %d appears twice", id)
		}
		seen[id] = true
	}
}

func TestFindGroupsSeparateRuns(t *testing.T) {
	layout := [][]core.TileType{
		{1, 1, 1, 0, 2},
		{0, 2, 3, 4, 2},
		{3, 4, 0, 1, 2},
		{4, 0, 1, 3, 0},
	}
	g := newBoard(t, layout, nil).Grid()

	groups := core.FindGroups(g)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	// Row groups come before column groups.
	if !reflect.DeepEqual(groups[0], idsAt(g, core.P(0, 0), core.P(0, 1), core.P(0, 2))) {
		t.Errorf("unexpected first group %v", groups[0])
	}
	if !reflect.DeepEqual(groups[1], idsAt(g, core.P(0, 4), core.P(1, 4), core.P(2, 4))) {
		t.Errorf("unexpected second group %v", groups[1])
	}
}

func TestFindGroupsIsIdempotent(t *testing.T) {
	layout := [][]core.TileType{
		{0, 1, 2, 4, 0},
		{1, 3, 2, 0, 1},
		{3, 2, 2, 2, 4},
		{4, 0, 2, 1, 3},
		{0, 1, 3, 3, 4},
	}
	g := newBoard(t, layout, nil).Grid()
	before := g.Types()

	first := core.FindGroups(g)
	second := core.FindGroups(g)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("detection is not idempotent: %v vs %v", first, second)
	}
	if !reflect.DeepEqual(before, g.Types()) {
		t.Error("detection modified the grid")
	}
	for _, id := range first[0] {
		if g.Tile(id).Complete {
			t.Error("detection must not mark tiles")
		}
	}
}

func TestPossibleMoves(t *testing.T) {
	b := newBoard(t, calm, nil)
	moves := b.PossibleMoves()

	found := false
	for _, m := range moves {
		if m.A == core.P(1, 2) && m.B == core.P(2, 2) {
			found = true
		}
		types := b.Grid().Types()
		types[m.A.Row][m.A.Col], types[m.B.Row][m.B.Col] = types[m.B.Row][m.B.Col], types[m.A.Row][m.A.Col]
		if !core.HasMatches(types) {
			t.Errorf("move %v does not create a run", m)
		}
	}
	if !found {
		t.Errorf("expected (1,2)<->(2,2) among %v", moves)
	}
	if core.HasMatches(calm) {
		t.Error("calm layout should have no matches")
	}
}
