package core

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Options configures a Board.
type Options struct {
	Rows      int
	Cols      int
	TileTypes int    // Alphabet size, types are drawn from [0, TileTypes)
	Seed      string // Used when RNG is nil
	RNG       *RNG

	TileRadius     float64 // Draw units; a tile is 2*TileRadius wide
	SwapDuration   float64 // Seconds for a swap arc
	RemoveDuration float64 // Seconds for a fade out
	FallDuration   float64 // Seconds to drop one row

	AllowDistantSwaps   bool // Skip the adjacency check on drag
	AutoRearm           bool // Settle to Idle instead of Blocked
	AvoidInitialMatches bool // Reroll initial cells that would complete a run

	Logger *log.Logger // nil discards
}

// DefaultOptions returns the options of a classic 5x6 board.
func DefaultOptions() Options {
	return Options{
		Rows:           5,
		Cols:           6,
		TileTypes:      DefaultTileTypes,
		TileRadius:     8,
		SwapDuration:   0.2,
		RemoveDuration: 0.25,
		FallDuration:   0.06,
	}
}

func (o Options) validate() error {
	if o.Rows < 1 || o.Cols < 1 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidOptions, o.Rows, o.Cols)
	}
	if o.TileTypes < 1 || o.TileTypes > 255 {
		return fmt.Errorf("%w: %d tile types", ErrInvalidOptions, o.TileTypes)
	}
	if o.AvoidInitialMatches && o.TileTypes < 3 {
		return fmt.Errorf("%w: avoiding initial matches needs at least 3 tile types", ErrInvalidOptions)
	}
	if o.TileRadius < 0 || o.SwapDuration < 0 || o.RemoveDuration < 0 || o.FallDuration < 0 {
		return fmt.Errorf("%w: negative radius or duration", ErrInvalidOptions)
	}
	return nil
}

// exchange is the single swap arc in flight.
type exchange struct {
	a, b *Tile
}

// Board owns the grid and runs the status state machine. It is not safe for
// concurrent use; one driver calls the touch handlers and Step.
type Board struct {
	opts Options
	grid *Grid
	rng  *RNG
	log  *log.Logger

	status Status
	tick   uint64

	// Selection
	trail    []*Tile
	lastCell Pos
	swapped  bool // An exchange landed during the current gesture
	exchange *exchange

	// Removal and refill
	groups   []Group
	pool     []*Tile
	queues   [][]*Tile // Per-column refill queues, oldest first
	dropping []*Tile   // Released refills travelling into row 0

	cascade       int
	roundRemoved  int
	roundCascades int

	events     []Event
	violations []error
}

// NewBoard creates a board filled with random tiles drawn from the options'
// RNG, or from Seed when RNG is nil.
func NewBoard(opts Options) (*Board, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	rng := opts.RNG
	if rng == nil {
		rng = NewRNGFromString(opts.Seed)
	}

	types := make([][]TileType, opts.Rows)
	for row := range types {
		types[row] = make([]TileType, opts.Cols)
		for col := range types[row] {
			tt := rng.TileType(opts.TileTypes)
			for opts.AvoidInitialMatches && completesRun(types, row, col, tt) {
				tt = rng.TileType(opts.TileTypes)
			}
			types[row][col] = tt
		}
	}
	return newBoard(opts, rng, types), nil
}

// NewBoardFromTypes creates a board with explicit contents, indexed
// [row][col]. The RNG is only used for refills.
func NewBoardFromTypes(types [][]TileType, opts Options) (*Board, error) {
	if len(types) == 0 || len(types[0]) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidOptions)
	}
	opts.Rows, opts.Cols = len(types), len(types[0])
	if err := opts.validate(); err != nil {
		return nil, err
	}
	for row, line := range types {
		if len(line) != opts.Cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidOptions, row, len(line), opts.Cols)
		}
		for col, tt := range line {
			if int(tt) >= opts.TileTypes {
				return nil, fmt.Errorf("%w: type %d at (%d,%d) outside alphabet", ErrInvalidOptions, tt, row, col)
			}
		}
	}
	rng := opts.RNG
	if rng == nil {
		rng = NewRNGFromString(opts.Seed)
	}
	return newBoard(opts, rng, types), nil
}

func newBoard(opts Options, rng *RNG, types [][]TileType) *Board {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Board{
		opts:   opts,
		grid:   NewGrid(opts.Rows, opts.Cols, func(row, col int) TileType { return types[row][col] }),
		rng:    rng,
		log:    logger,
		status: StatusIdle,
		queues: make([][]*Tile, opts.Cols),
	}
}

// completesRun reports whether tt would form a run of three with its two
// left or two upper neighbors.
func completesRun(types [][]TileType, row, col int, tt TileType) bool {
	if col >= 2 && types[row][col-1] == tt && types[row][col-2] == tt {
		return true
	}
	return row >= 2 && types[row-1][col] == tt && types[row-2][col] == tt
}

// Grid returns the board's grid. Callers must not mutate it.
func (b *Board) Grid() *Grid {
	return b.grid
}

// Options returns the options the board was created with.
func (b *Board) Options() Options {
	return b.opts
}

// Status returns the current state.
func (b *Board) Status() Status {
	return b.status
}

// Tick returns the number of Step calls so far.
func (b *Board) Tick() uint64 {
	return b.tick
}

// Trail returns the cells of the current selection trail.
func (b *Board) Trail() []Pos {
	cells := make([]Pos, len(b.trail))
	for i, t := range b.trail {
		cells[i] = t.Pos()
	}
	return cells
}

// Settled reports whether the board waits for input with nothing animating.
func (b *Board) Settled() bool {
	return (b.status == StatusIdle || b.status == StatusBlocked) && b.exchange == nil
}

// Violations returns the invariant violations reported so far.
func (b *Board) Violations() []error {
	return b.violations
}

// TouchDown starts a selection trail at (row, col). Out-of-range cells and
// touches while Blocked are ignored.
func (b *Board) TouchDown(row, col int) {
	if b.status != StatusIdle && b.status != StatusSelectMove {
		return
	}
	if !b.grid.IsValidIndex(row, col) || b.exchange != nil {
		return
	}
	b.trail = append(b.trail[:0], b.grid.At(row, col))
	b.lastCell = P(row, col)
	b.setStatus(StatusSelectStart)
}

// TouchMove extends the trail with the tile under (row, col).
func (b *Board) TouchMove(row, col int) {
	if b.status != StatusSelectStart && b.status != StatusSelectMove {
		return
	}
	if !b.grid.IsValidIndex(row, col) {
		return
	}
	b.setStatus(StatusSelectMove)

	cell := P(row, col)
	if cell == b.lastCell {
		return
	}
	b.lastCell = cell

	t := b.grid.At(row, col)
	for _, member := range b.trail {
		if member == t {
			return
		}
	}
	// The last trail entry's cell is where the dragged tile ends up once all
	// queued exchanges land.
	last := b.trail[len(b.trail)-1]
	if !b.opts.AllowDistantSwaps && !last.Pos().Adjacent(cell) {
		b.log.Debug("distant drag ignored", "from", last.Pos(), "to", cell)
		return
	}
	b.trail = append(b.trail, t)
}

// TouchUp ends the gesture. Detection runs once no exchange is in flight.
func (b *Board) TouchUp() {
	if b.status != StatusSelectStart && b.status != StatusSelectMove {
		return
	}
	b.setStatus(StatusSelectEnd)
	b.settle()
}

// TouchCancel behaves like TouchUp.
func (b *Board) TouchCancel() {
	b.TouchUp()
}

// SwapIntent performs a complete gesture from a to b. It returns false if
// the board did not accept both cells.
func (b *Board) SwapIntent(from, to Pos) bool {
	b.TouchDown(from.Row, from.Col)
	if b.status != StatusSelectStart {
		return false
	}
	b.TouchMove(to.Row, to.Col)
	accepted := len(b.trail) == 2
	b.TouchUp()
	return accepted
}

// SetTiming changes the animation durations used for tweens created from
// now on. Negative values keep the current duration.
func (b *Board) SetTiming(swap, remove, fall float64) {
	if swap >= 0 {
		b.opts.SwapDuration = swap
	}
	if remove >= 0 {
		b.opts.RemoveDuration = remove
	}
	if fall >= 0 {
		b.opts.FallDuration = fall
	}
}

// Rearm moves a Blocked board back to Idle.
func (b *Board) Rearm() {
	if b.status == StatusBlocked {
		b.setStatus(StatusIdle)
	}
}

// Step advances the board by dt seconds and returns the events raised since
// the previous call.
func (b *Board) Step(dt float64) StepResult {
	b.tick++
	if dt < 0 {
		dt = 0
	}

	switch b.status {
	case StatusSelectStart, StatusSelectMove, StatusSelectEnd:
		b.stepExchange(dt)
	case StatusRemoving:
		b.stepRemoving(dt)
	case StatusFalling:
		b.stepFalling(dt)
	}

	return StepResult{
		Tick:   b.tick,
		Status: b.status,
		Events: b.Drain(),
	}
}

// Drain returns and clears the pending events.
func (b *Board) Drain() []Event {
	events := b.events
	b.events = nil
	return events
}

func (b *Board) emit(e Event) {
	b.events = append(b.events, e)
}

func (b *Board) setStatus(s Status) {
	if s == b.status {
		return
	}
	b.emit(StatusChanged{From: b.status, To: s})
	b.status = s
}

func (b *Board) violation(code string, err error) error {
	ierr := &InvariantError{Code: code, Err: err}
	b.violations = append(b.violations, ierr)
	b.log.Error("invariant violation", "code", code, "err", err, "status", b.status)
	return ierr
}

// swapDirections picks the arc direction of each participant. Columns are
// compared before rows.
func swapDirections(a, b Pos) (Direction, Direction, bool) {
	switch {
	case a.Col > b.Col:
		return DirLeft, DirRight, true
	case a.Col < b.Col:
		return DirRight, DirLeft, true
	case a.Row > b.Row:
		return DirTop, DirBottom, true
	case a.Row < b.Row:
		return DirBottom, DirTop, true
	default:
		return 0, 0, false
	}
}

// dropTrailEntry removes the tile the dragged tile was exchanged with.
func (b *Board) dropTrailEntry() {
	b.trail = append(b.trail[:1], b.trail[2:]...)
}

func (b *Board) startExchange() {
	a, c := b.trail[0], b.trail[1]
	if a.Animating() || c.Animating() {
		b.violation("swap-in-flight", fmt.Errorf("%w: %v and %v", ErrSwapInFlight, a.Pos(), c.Pos()))
		b.dropTrailEntry()
		return
	}
	dirA, dirC, ok := swapDirections(a.Pos(), c.Pos())
	if !ok {
		b.violation("swap-same-cell", fmt.Errorf("%w: %v", ErrNotResident, a.Pos()))
		b.dropTrailEntry()
		return
	}
	arcA, err := NewCurveTween(dirA, b.opts.TileRadius, b.opts.SwapDuration)
	if err != nil {
		b.violation("swap-direction", err)
		b.dropTrailEntry()
		return
	}
	arcC, err := NewCurveTween(dirC, b.opts.TileRadius, b.opts.SwapDuration)
	if err != nil {
		b.violation("swap-direction", err)
		b.dropTrailEntry()
		return
	}
	a.Anim = Swapping{Arc: arcA}
	c.Anim = Swapping{Arc: arcC}
	b.exchange = &exchange{a: a, b: c}
}

func (b *Board) stepExchange(dt float64) {
	if b.exchange == nil && len(b.trail) > 1 {
		b.startExchange()
	}
	if b.exchange == nil {
		return
	}

	a, c := b.exchange.a, b.exchange.b
	arcA := a.Anim.(Swapping).Arc
	arcC := c.Anim.(Swapping).Arc
	arcA.Update(dt)
	arcC.Update(dt)
	if arcA.Done() || arcC.Done() {
		b.finishExchange()
	}
}

func (b *Board) finishExchange() {
	a, c := b.exchange.a, b.exchange.b
	a.Anim, c.Anim = nil, nil
	b.exchange = nil

	if err := b.grid.Swap(a, c); err != nil {
		b.violation("swap", err)
	} else {
		b.swapped = true
		b.emit(SwapApplied{A: a.Info(), B: c.Info()})
	}
	b.dropTrailEntry()
	b.settle()
}

func (b *Board) resetSelection() {
	b.trail = b.trail[:0]
	b.swapped = false
}

// settle runs the match detector once the board is at rest after a swap
// gesture or a refill.
func (b *Board) settle() {
	if b.status != StatusSelectEnd && b.status != StatusFalling {
		return
	}
	if b.exchange != nil || len(b.trail) > 1 {
		return
	}

	fromSwap := b.status == StatusSelectEnd
	if fromSwap && !b.swapped {
		b.resetSelection()
		b.setStatus(StatusIdle)
		return
	}
	b.resetSelection()

	groups := FindGroups(b.grid)
	if len(groups) == 0 {
		next := StatusBlocked
		if b.opts.AutoRearm {
			next = StatusIdle
		}
		b.setStatus(next)
		b.emit(RoundSettled{Status: next, Cascades: b.roundCascades, Removed: b.roundRemoved})
		b.log.Debug("round settled", "status", next, "removed", b.roundRemoved, "cascades", b.roundCascades)
		b.cascade, b.roundCascades, b.roundRemoved = 0, 0, 0
		return
	}

	if fromSwap {
		b.cascade = 0
	} else {
		b.cascade++
	}
	b.roundCascades = max(b.roundCascades, b.cascade)

	infos := make([][]TileInfo, len(groups))
	for i, grp := range groups {
		infos[i] = make([]TileInfo, len(grp))
		for j, id := range grp {
			t := b.grid.Tile(id)
			t.Complete = true
			t.Anim = Removing{Fade: NewLinearTween(Vec2{1, 0}, Vec2{0, 0}, b.opts.RemoveDuration, nil)}
			infos[i][j] = t.Info()
			b.roundRemoved++
		}
	}
	b.groups = groups
	b.setStatus(StatusRemoving)
	b.emit(GroupsRemoved{Groups: infos, Cascade: b.cascade})
}

// stepRemoving fades the head group only; later groups wait at full opacity.
func (b *Board) stepRemoving(dt float64) {
	for len(b.groups) > 0 && len(b.groups[0]) == 0 {
		b.violation("empty-group", ErrEmptyGroup)
		b.groups = b.groups[1:]
	}

	if len(b.groups) > 0 {
		head := b.groups[0]
		done := false
		for _, id := range head {
			t := b.grid.Tile(id)
			rm, ok := t.Anim.(Removing)
			if !ok {
				done = true
				continue
			}
			rm.Fade.Update(dt)
			if rm.Fade.Done() {
				done = true
			}
		}
		if done {
			for _, id := range head {
				t := b.grid.Tile(id)
				t.Anim = nil
				b.pool = append(b.pool, t)
			}
			b.groups = b.groups[1:]
		}
	}

	if len(b.groups) == 0 {
		b.spawnRefills()
		b.setStatus(StatusFalling)
	}
}

// spawnRefills creates one new tile per removed tile, queued above its
// column. Types are drawn in removal order so refills are reproducible.
func (b *Board) spawnRefills() {
	for _, removed := range b.pool {
		col := removed.Col
		q := b.queues[col]
		t := b.grid.newTile(b.rng.TileType(b.opts.TileTypes), -(len(q) + 1), col)
		b.queues[col] = append(q, t)
	}
	b.log.Debug("refill spawned", "tiles", len(b.pool))
	b.pool = b.pool[:0]
}

func (b *Board) newDrop() Falling {
	return Falling{Drop: NewLinearTween(Vec2{0, 0}, Vec2{2 * b.opts.TileRadius, 0}, b.opts.FallDuration, nil)}
}

// stepFalling lets tiles drop into the holes left by removed tiles, then
// feeds refills into row 0.
func (b *Board) stepFalling(dt float64) {
	for row := b.grid.rows - 2; row >= 0; row-- {
		for col := 0; col < b.grid.cols; col++ {
			b.fall(b.grid.At(row, col), dt)
		}
	}

	if len(b.dropping) == 0 {
		b.releaseRefills()
	}
	remaining := b.dropping[:0]
	for _, t := range b.dropping {
		drop := t.Anim.(Falling).Drop
		drop.Update(dt)
		if drop.Done() && b.grid.At(0, t.Col).Complete {
			t.Anim = nil
			b.grid.land(t)
			continue
		}
		remaining = append(remaining, t)
	}
	b.dropping = remaining

	if b.fallingDone() {
		b.settle()
	}
}

// fall advances a single settled tile, descending through as many rows as
// its completed drops allow.
func (b *Board) fall(t *Tile, dt float64) {
	if t.Complete {
		return
	}
	for t.Row < b.grid.rows-1 {
		below := b.grid.At(t.Row+1, t.Col)
		fall, falling := t.Anim.(Falling)
		if !below.Complete && !below.IsFalling() {
			if falling {
				t.Anim = nil
			}
			return
		}
		if !falling {
			fall = b.newDrop()
			t.Anim = fall
		}
		fall.Drop.Update(dt)
		if !fall.Drop.Done() || !below.Complete {
			return
		}
		b.grid.exchange(t, below)
		t.Anim = nil
		dt = 0
	}
}

func (b *Board) releaseRefills() {
	for col, q := range b.queues {
		if len(q) == 0 {
			continue
		}
		t := q[0]
		b.queues[col] = q[1:]
		t.Row = -1
		t.Anim = b.newDrop()
		b.dropping = append(b.dropping, t)
		for i, rest := range b.queues[col] {
			rest.Row = -(i + 2)
		}
	}
}

func (b *Board) fallingDone() bool {
	if len(b.dropping) > 0 {
		return false
	}
	for _, q := range b.queues {
		if len(q) > 0 {
			return false
		}
	}
	busy := false
	b.grid.Each(func(t *Tile) {
		if t.Complete || t.IsFalling() {
			busy = true
		}
	})
	return !busy
}
