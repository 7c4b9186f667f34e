package match3

import (
	"math"
	"strconv"

	platformcore "github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

// Tile cell size in screen characters.
const (
	cellW = 4
	cellH = 2
)

// hudRows is the number of screen rows above the board area, footerRows
// the number below it.
const (
	hudRows    = 2
	footerRows = 2
)

// TileGlyphs distinguishes tile types without relying on color alone.
var TileGlyphs = []rune{'●', '◆', '▲', '■', '★', '♥', '♣', '♠'}

// layout is the screen placement of the board.
type layout struct {
	frame platformcore.Rect     // Border around the cells
	cells platformcore.CellGrid // Tile area, used for pointer hit-testing
}

// calculateLayout centers the board in the area between HUD and footer.
func (g *Game) calculateLayout() {
	rows, cols := g.cfg.Grid.Rows, g.cfg.Grid.Columns
	w, h := g.runtime.ScreenW, g.runtime.ScreenH

	frameW := cols*cellW + 2
	frameH := rows*cellH + 2
	areaH := h - hudRows - footerRows

	g.tooSmall = w < frameW || areaH < frameH
	if g.tooSmall {
		g.layout = layout{}
		return
	}

	fx := (w - frameW) / 2
	fy := hudRows + (areaH-frameH)/2
	g.layout = layout{
		frame: platformcore.NewRect(fx, fy, frameW, frameH),
		cells: platformcore.CellGrid{
			Origin: platformcore.NewRect(fx+1, fy+1, cols*cellW, rows*cellH),
			CellW:  cellW,
			CellH:  cellH,
		},
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	if g.board == nil {
		g.renderOverlay(dst, "Invalid configuration", "Check the log for details")
		return
	}

	g.renderBoard(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over: "+g.reason, "Score: "+strconv.Itoa(g.State().Score)+"  Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar and the controls footer.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := " " + g.Title()
	if g.keeper != nil {
		hud += " | Score: " + strconv.Itoa(g.keeper.Score())
	}
	if g.turnsLeft >= 0 {
		hud += " | Turns: " + strconv.Itoa(g.turnsLeft)
	} else {
		hud += " | Round: " + strconv.Itoa(g.turnsUsed+1)
	}
	if g.board != nil {
		hud += " | " + g.board.Status().String()
	}
	dst.DrawTextWithColor(0, 0, hud, platformcore.ColorCyan)

	for x := 0; x < dst.Width(); x++ {
		dst.SetWithColor(x, 1, '─', platformcore.ColorGray)
		dst.SetWithColor(x, dst.Height()-footerRows, '─', platformcore.ColorGray)
	}

	controls := " Mouse: drag | Arrows: move | Space: grab/drop | X: cancel | H: hint | P: pause"
	if g.grabbed {
		controls = " [GRAB] Arrows: drag | Space: drop | X: cancel"
	}
	dst.DrawTextWithColor(0, dst.Height()-1, controls, platformcore.ColorGray)
}

// renderBoard draws the frame, the keyboard cursor and every visible tile.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	frameColor := platformcore.ColorGray
	if g.board.Status() == core.StatusBlocked {
		frameColor = platformcore.ColorDefault
	}
	dst.DrawBoxWithColor(g.layout.frame, frameColor)

	view := g.board.View()
	for _, tv := range view.Tiles {
		g.renderTile(dst, tv, view.TileRadius)
	}
	g.renderMarkers(dst)
}

// renderTile draws one tile, shifted by its animation offset and clipped to
// the tile area.
func (g *Game) renderTile(dst *platformcore.Screen, tv core.TileView, radius float64) {
	if tv.Alpha <= 0 {
		return
	}
	r := g.layout.cells.CellRect(tv.Row, tv.Col)
	r.X += toCells(tv.OffsetX, radius, cellW)
	r.Y += toCells(tv.OffsetY, radius, cellH)

	cell := platformcore.Cell{
		Rune:  TileGlyph(tv.Type),
		Color: platformcore.TileColor(int(tv.Type)),
		Dim:   tv.Alpha < 0.5,
	}
	area := g.layout.cells.Origin
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X + 1; x < r.Right()-1; x++ {
			if area.Contains(x, y) {
				dst.SetCell(x, y, cell)
			}
		}
	}
	if tv.Selected {
		g.bracket(dst, r, '[', ']', platformcore.ColorBrightWhite)
	}
}

// renderMarkers draws the keyboard cursor and the hint.
func (g *Game) renderMarkers(dst *platformcore.Screen) {
	if g.hint != nil {
		for _, p := range []core.Pos{g.hint.A, g.hint.B} {
			g.bracket(dst, g.layout.cells.CellRect(p.Row, p.Col), '<', '>', platformcore.ColorBrightYellow)
		}
	}
	if g.grabbed {
		return
	}
	c := g.layout.cells.CellRect(g.cursor.Row, g.cursor.Col)
	g.bracket(dst, c, '›', '‹', platformcore.ColorBrightWhite)
}

func (g *Game) bracket(dst *platformcore.Screen, r platformcore.Rect, left, right rune, c platformcore.Color) {
	area := g.layout.cells.Origin
	for y := r.Y; y < r.Bottom(); y++ {
		if area.Contains(r.X, y) {
			dst.SetWithColor(r.X, y, left, c)
		}
		if area.Contains(r.Right()-1, y) {
			dst.SetWithColor(r.Right()-1, y, right, c)
		}
	}
}

// toCells converts a draw-unit offset into screen cells. One tile is two
// radii wide and span cells on screen.
func toCells(offset, radius float64, span int) int {
	if radius <= 0 {
		return 0
	}
	return int(math.Round(offset / (2 * radius) * float64(span)))
}

// TileGlyph returns the glyph of a tile type.
func TileGlyph(tt core.TileType) rune {
	return TileGlyphs[int(tt)%len(TileGlyphs)]
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len([]rune(line1))
	if n := len([]rune(line2)); n > maxLen {
		maxLen = n
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(platformcore.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(platformcore.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
