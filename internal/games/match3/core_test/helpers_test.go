package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

// calm is a 5x6 layout without runs. Swapping (1,2) and (2,2) creates a
// run of type 2 across row 1.
var calm = [][]core.TileType{
	{0, 1, 3, 4, 0, 1},
	{2, 2, 4, 0, 1, 3},
	{3, 4, 2, 1, 0, 4},
	{1, 0, 3, 4, 2, 0},
	{4, 3, 1, 0, 3, 2},
}

const frame = 1.0 / 60

func newBoard(t *testing.T, types [][]core.TileType, mutate func(*core.Options)) *core.Board {
	t.Helper()
	opts := core.DefaultOptions()
	opts.Seed = "abcd"
	if mutate != nil {
		mutate(&opts)
	}
	b, err := core.NewBoardFromTypes(types, opts)
	if err != nil {
		t.Fatalf("NewBoardFromTypes: %v", err)
	}
	return b
}

// runUntilSettled steps the board until it waits for input again and
// returns every event raised on the way.
func runUntilSettled(t *testing.T, b *core.Board) []core.Event {
	t.Helper()
	var events []core.Event
	events = append(events, b.Drain()...)
	for i := 0; i < 20000; i++ {
		res := b.Step(frame)
		events = append(events, res.Events...)
		if b.Settled() {
			return events
		}
	}
	t.Fatalf("board did not settle, status %v", b.Status())
	return nil
}

func statusPath(events []core.Event) []core.Status {
	var path []core.Status
	for _, e := range events {
		if sc, ok := e.(core.StatusChanged); ok {
			path = append(path, sc.To)
		}
	}
	return path
}

func eventsOf[T core.Event](events []core.Event) []T {
	var out []T
	for _, e := range events {
		if v, ok := e.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func assertRestingGrid(t *testing.T, b *core.Board) {
	t.Helper()
	g := b.Grid()
	if err := g.CheckInvariants(); err != nil {
		t.Fatalf("grid invariants: %v", err)
	}
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			tile := g.At(row, col)
			if tile.Complete {
				t.Errorf("tile at (%d,%d) still marked complete", row, col)
			}
			if tile.Animating() {
				t.Errorf("tile at (%d,%d) still animating", row, col)
			}
		}
	}
	if v := b.Violations(); len(v) > 0 {
		t.Errorf("unexpected invariant violations: %v", v)
	}
}
