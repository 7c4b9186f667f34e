package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

func TestGridLayout(t *testing.T) {
	b := newBoard(t, calm, nil)
	g := b.Grid()

	if g.Rows() != 5 || g.Cols() != 6 {
		t.Fatalf("expected 5x6 grid, got %dx%d", g.Rows(), g.Cols())
	}
	for row := range calm {
		for col, want := range calm[row] {
			tile := g.At(row, col)
			if tile.Type != want {
				t.Errorf("(%d,%d): expected type %d, got %d", row, col, want, tile.Type)
			}
			if tile.Row != row || tile.Col != col {
				t.Errorf("(%d,%d): tile claims (%d,%d)", row, col, tile.Row, tile.Col)
			}
		}
	}
	if err := g.CheckInvariants(); err != nil {
		t.Errorf("CheckInvariants: %v", err)
	}
}

func TestGridIsValidIndex(t *testing.T) {
	g := newBoard(t, calm, nil).Grid()

	testCases := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{4, 5, true},
		{-1, 0, false},
		{0, -1, false},
		{5, 0, false},
		{0, 6, false},
	}
	for _, tc := range testCases {
		if got := g.IsValidIndex(tc.row, tc.col); got != tc.want {
			t.Errorf("IsValidIndex(%d,%d) = %v, want %v", tc.row, tc.col, got, tc.want)
		}
		if !tc.want && g.At(tc.row, tc.col) != nil {
			t.Errorf("At(%d,%d) should be nil out of bounds", tc.row, tc.col)
		}
	}
}

func TestGridSwapUpdatesCellsAndCoordinates(t *testing.T) {
	g := newBoard(t, calm, nil).Grid()
	a, c := g.At(1, 2), g.At(2, 2)
	idA, idC := a.ID, c.ID

	if err := g.Swap(a, c); err != nil {
		t.Fatalf("Swap: %v", err)
	}

	if g.At(1, 2).ID != idC || g.At(2, 2).ID != idA {
		t.Error("cells were not exchanged")
	}
	if a.Row != 2 || a.Col != 2 || c.Row != 1 || c.Col != 2 {
		t.Errorf("coordinates not exchanged: a=%v c=%v", a.Pos(), c.Pos())
	}
	if err := g.CheckInvariants(); err != nil {
		t.Errorf("CheckInvariants: %v", err)
	}
}

func TestGridSwapRejectsSameTile(t *testing.T) {
	g := newBoard(t, calm, nil).Grid()
	a := g.At(0, 0)
	if err := g.Swap(a, a); !errors.Is(err, core.ErrNotResident) {
		t.Errorf("expected ErrNotResident, got %v", err)
	}
}

func TestGridSwapRejectsTileInFlight(t *testing.T) {
	g := newBoard(t, calm, nil).Grid()
	a, c := g.At(0, 0), g.At(0, 1)
	arc, err := core.NewCurveTween(core.DirRight, 8, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	a.Anim = core.Swapping{Arc: arc}

	if err := g.Swap(a, c); !errors.Is(err, core.ErrSwapInFlight) {
		t.Errorf("expected ErrSwapInFlight, got %v", err)
	}
	if g.At(0, 0) != a || a.Col != 0 {
		t.Error("rejected swap must not touch the grid")
	}
}

func TestNewBoardValidatesOptions(t *testing.T) {
	opts := core.DefaultOptions()
	opts.Rows = 0
	if _, err := core.NewBoard(opts); !errors.Is(err, core.ErrInvalidOptions) {
		t.Errorf("expected ErrInvalidOptions for zero rows, got %v", err)
	}

	ragged := [][]core.TileType{{0, 1, 2}, {0, 1}}
	if _, err := core.NewBoardFromTypes(ragged, core.DefaultOptions()); !errors.Is(err, core.ErrInvalidOptions) {
		t.Errorf("expected ErrInvalidOptions for ragged layout, got %v", err)
	}

	outside := [][]core.TileType{{0, 1, 9}}
	if _, err := core.NewBoardFromTypes(outside, core.DefaultOptions()); !errors.Is(err, core.ErrInvalidOptions) {
		t.Errorf("expected ErrInvalidOptions for type outside alphabet, got %v", err)
	}
}

func TestNewBoardIsDeterministic(t *testing.T) {
	opts := core.DefaultOptions()
	opts.Seed = "abcd"

	b1, err := core.NewBoard(opts)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := core.NewBoard(opts)
	if err != nil {
		t.Fatal(err)
	}
	if b1.Snapshot().Hash != b2.Snapshot().Hash {
		t.Error("same seed produced different boards")
	}
}

func TestNewBoardAvoidInitialMatches(t *testing.T) {
	for _, seed := range []string{"abcd", "a", "b", "c", "match3", "12345"} {
		opts := core.DefaultOptions()
		opts.Rows, opts.Cols = 8, 8
		opts.Seed = seed
		opts.AvoidInitialMatches = true

		b, err := core.NewBoard(opts)
		if err != nil {
			t.Fatal(err)
		}
		if groups := core.FindGroups(b.Grid()); len(groups) != 0 {
			t.Errorf("seed %q: expected no initial runs, got %d groups", seed, len(groups))
		}
	}
}

func TestRNGRange(t *testing.T) {
	rng := core.NewRNGFromString("abcd")
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := rng.Range(0, 4)
		if v < 0 || v > 4 {
			t.Fatalf("Range(0,4) returned %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Errorf("expected all 5 values drawn, got %v", seen)
	}
}
