package match3

import (
	platformcore "github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

// handleInput turns one input frame into touch intents. Pointer events are
// applied first, in arrival order, then keyboard actions.
func (g *Game) handleInput(in platformcore.InputFrame) {
	for _, ev := range in.Pointer {
		g.handlePointer(ev)
	}

	if in.Has(platformcore.ActionHint) {
		g.showHint()
	}
	if in.Has(platformcore.ActionCancel) && g.grabbed {
		g.grabbed = false
		g.board.TouchCancel()
	}

	dr, dc := 0, 0
	switch {
	case in.Has(platformcore.ActionUp):
		dr = -1
	case in.Has(platformcore.ActionDown):
		dr = 1
	case in.Has(platformcore.ActionLeft):
		dc = -1
	case in.Has(platformcore.ActionRight):
		dc = 1
	}
	if dr != 0 || dc != 0 {
		g.moveCursor(dr, dc)
	}

	if in.Has(platformcore.ActionSelect) {
		g.toggleGrab()
	}
}

// handlePointer maps a screen event to the cell under it. Cells outside the
// board are passed through so the board can ignore them.
func (g *Game) handlePointer(ev platformcore.PointerEvent) {
	row, col, inside := g.layout.cells.CellAt(ev.X, ev.Y)
	switch ev.Kind {
	case platformcore.PointerDown:
		if g.grabbed {
			g.grabbed = false
			g.board.TouchCancel()
		}
		if inside {
			g.cursor = core.P(row, col)
		}
		g.board.TouchDown(row, col)
	case platformcore.PointerMove:
		g.board.TouchMove(row, col)
	case platformcore.PointerUp:
		g.board.TouchUp()
	case platformcore.PointerCancel:
		g.board.TouchCancel()
	}
}

// moveCursor moves the keyboard cursor. While a tile is grabbed the move
// drags it, exactly like a pointer drag.
func (g *Game) moveCursor(dr, dc int) {
	rows, cols := g.cfg.Grid.Rows, g.cfg.Grid.Columns
	next := core.P(
		platformcore.Clamp(g.cursor.Row+dr, 0, rows-1),
		platformcore.Clamp(g.cursor.Col+dc, 0, cols-1),
	)
	if next == g.cursor {
		return
	}
	g.cursor = next
	if g.grabbed {
		g.board.TouchMove(next.Row, next.Col)
	}
}

// toggleGrab grabs the tile under the cursor or releases the grabbed one.
func (g *Game) toggleGrab() {
	if g.grabbed {
		g.grabbed = false
		g.board.TouchUp()
		return
	}
	g.board.TouchDown(g.cursor.Row, g.cursor.Col)
	g.grabbed = g.board.Status() == core.StatusSelectStart
}

// showHint highlights the first possible move.
func (g *Game) showHint() {
	moves := g.board.PossibleMoves()
	if len(moves) == 0 {
		g.clearHint()
		return
	}
	m := moves[0]
	g.hint = &m
	g.hintTimer = hintTicks
}
