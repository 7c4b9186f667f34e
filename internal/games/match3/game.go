// Package match3 adapts the match-3 board to the terminal platform: it maps
// pointer and keyboard input to touch intents, keeps score, enforces the
// turn policy and draws the board into the platform screen.
package match3

import (
	"io"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	platformcore "github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// Mode selects the turn policy.
type Mode int

const (
	ModeClassic Mode = iota // Fixed number of swaps, board re-armed after each round
	ModeEndless             // Auto re-arm, ends when no move is left
)

// Game over reasons shown in the overlay.
const (
	reasonOutOfTurns = "Out of turns"
	reasonNoMoves    = "No moves left"
)

// hintTicks is how long a hint stays highlighted.
const hintTicks = 90

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

var pkgLogger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLogger sets the logger used by new games. nil discards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	pkgLogger = l
}

func init() {
	registry.Register("match3", func() registry.Game { return New() })
	registry.Register("match3_endless", func() registry.Game { return NewEndless() })
}

// Game implements registry.Game for the match-3 puzzle.
type Game struct {
	mode Mode

	preset    config.DifficultyPreset
	presetSet bool // preset overrides the package-level preset

	runtime    platformcore.RuntimeConfig
	cfg        config.Match3Config
	difficulty *config.DifficultyManager
	log        *log.Logger

	board  *core.Board
	keeper *Scorekeeper
	seed   string
	err    error // Board construction failure, shown instead of the board

	turnsUsed int
	turnsLeft int // -1 when unlimited
	rounds    []platformcore.RoundSummary

	// Keyboard cursor
	cursor  core.Pos
	grabbed bool

	hint      *core.Move
	hintTimer int

	layout   layout
	tooSmall bool
	paused   bool
	gameOver bool
	reason   string
	tick     uint64
}

// New creates a classic game with a limited number of turns.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates a game that re-arms automatically and ends when the
// board has no possible move.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "match3_endless"
	}
	return "match3"
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Match-3 (Endless)"
	}
	return "Match-3"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.mode == ModeEndless {
		return "Swap tiles until no move is left"
	}
	return "Score as much as you can in a fixed number of swaps"
}

// SetDifficulty selects a preset for this instance only, taking effect on
// the next Reset. An empty or unknown name keeps the config file settings.
func (g *Game) SetDifficulty(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	g.preset = p
	g.presetSet = true
}

// Reset loads the configuration and deals a new board.
func (g *Game) Reset(runtime platformcore.RuntimeConfig) {
	g.runtime = runtime
	g.log = pkgLogger.WithPrefix(g.ID())

	cfg, err := config.LoadMatch3(configPath)
	if err != nil {
		g.log.Warn("falling back to default config", "err", err)
		cfg = config.DefaultMatch3Config()
	}
	preset := difficultyPreset
	if g.presetSet {
		preset = g.preset
	}
	if preset != "" {
		config.ApplyMatch3Preset(&cfg, preset)
	}
	if g.mode == ModeEndless {
		cfg.Rules.AutoRearm = true
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.seed = runtime.Seed
	if g.seed == "" {
		g.seed = cfg.Seed
	}
	if g.seed == "" {
		g.seed = g.ID()
	}

	g.turnsUsed = 0
	g.turnsLeft = -1
	if g.mode == ModeClassic && cfg.Rules.Turns > 0 {
		g.turnsLeft = cfg.Rules.Turns
	}
	g.rounds = nil
	g.cursor = core.P(0, 0)
	g.grabbed = false
	g.clearHint()
	g.paused = false
	g.gameOver = false
	g.reason = ""
	g.tick = 0

	g.keeper = NewScorekeeper(cfg.Scoring, cfg.Tiles.Types, g.log)
	g.board, g.err = core.NewBoard(g.options())
	if g.err != nil {
		g.log.Error("cannot create board", "err", g.err)
	} else {
		g.log.Info("game started", "seed", g.seed, "rows", cfg.Grid.Rows, "cols", cfg.Grid.Columns, "turns", g.turnsLeft)
	}

	g.calculateLayout()
}

// options builds the board options from the loaded config.
func (g *Game) options() core.Options {
	a := g.cfg.Animation
	return core.Options{
		Rows:                g.cfg.Grid.Rows,
		Cols:                g.cfg.Grid.Columns,
		TileTypes:           g.cfg.Tiles.Types,
		Seed:                g.seed,
		TileRadius:          a.TileRadius,
		SwapDuration:        g.difficulty.Duration(a.SwapDuration, 0, 0),
		RemoveDuration:      g.difficulty.Duration(a.RemoveDuration, 0, 0),
		FallDuration:        g.difficulty.Duration(a.FallDuration, 0, 0),
		AllowDistantSwaps:   g.cfg.Rules.AllowDistantSwaps,
		AutoRearm:           g.cfg.Rules.AutoRearm,
		AvoidInitialMatches: g.cfg.Tiles.AvoidInitialMatches,
		Logger:              g.log.WithPrefix("board"),
	}
}

// Resize recomputes the layout without dealing a new board.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.calculateLayout()
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if in.Has(platformcore.ActionRestart) && g.gameOver {
		next := g.runtime
		next.Seed = strconv.FormatUint(core.NewRNGFromString(g.seed).Next(), 36)
		g.Reset(next)
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall || g.board == nil {
		return platformcore.StepResult{State: g.State()}
	}

	g.handleInput(in)

	res := g.board.Step(g.runtime.Dt())
	for _, ev := range res.Events {
		g.handleEvent(ev)
	}

	if g.hintTimer > 0 {
		g.hintTimer--
		if g.hintTimer == 0 {
			g.hint = nil
		}
	}

	return platformcore.StepResult{State: g.State()}
}

func (g *Game) handleEvent(ev core.Event) {
	switch e := ev.(type) {
	case core.SwapApplied:
		g.clearHint()
	case core.GroupsRemoved:
		g.keeper.Removed(e)
	case core.RoundSettled:
		g.endRound(e)
	}
}

// endRound books the settled round and applies the turn policy.
func (g *Game) endRound(e core.RoundSettled) {
	g.turnsUsed++
	summary := g.keeper.Settle(e)
	summary.Turn = g.turnsUsed
	g.rounds = append(g.rounds, summary)

	g.retime()

	if g.turnsLeft > 0 {
		g.turnsLeft--
	}
	switch {
	case g.turnsLeft == 0:
		g.finish(reasonOutOfTurns)
	case len(g.board.PossibleMoves()) == 0:
		g.finish(reasonNoMoves)
	default:
		g.board.Rearm()
	}
}

// retime shortens animations as the difficulty level rises.
func (g *Game) retime() {
	score := g.keeper.Score()
	a := g.cfg.Animation
	g.board.SetTiming(
		g.difficulty.Duration(a.SwapDuration, score, g.turnsUsed),
		g.difficulty.Duration(a.RemoveDuration, score, g.turnsUsed),
		g.difficulty.Duration(a.FallDuration, score, g.turnsUsed),
	)
	g.keeper.SetCascadeBonus(g.difficulty.CascadeBonus(g.cfg.Scoring.CascadeBonus, score, g.turnsUsed))
}

func (g *Game) finish(reason string) {
	g.gameOver = true
	g.reason = reason
	g.grabbed = false
	g.log.Info("game over", "reason", reason, "score", g.keeper.Score(), "turns", g.turnsUsed)
}

func (g *Game) clearHint() {
	g.hint = nil
	g.hintTimer = 0
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	st := platformcore.GameState{
		GameOver:  g.gameOver,
		Paused:    g.paused,
		TurnsLeft: g.turnsLeft,
	}
	if g.keeper != nil {
		st.Score = g.keeper.Score()
	}
	if g.board != nil {
		st.Status = g.board.Status().String()
	}
	return st
}

// DrainRounds returns the rounds settled since the previous call.
func (g *Game) DrainRounds() []platformcore.RoundSummary {
	r := g.rounds
	g.rounds = nil
	return r
}

// Seed returns the seed the current board was dealt with.
func (g *Game) Seed() string {
	return g.seed
}

// Board exposes the underlying board for inspection.
func (g *Game) Board() *core.Board {
	return g.board
}

// Scorekeeper exposes the score tallies.
func (g *Game) Scorekeeper() *Scorekeeper {
	return g.keeper
}

// Reason returns why the game ended, empty while it is running.
func (g *Game) Reason() string {
	return g.reason
}

// Snapshot returns the board snapshot, for determinism tests.
func (g *Game) Snapshot() core.Snapshot {
	if g.board == nil {
		return core.Snapshot{}
	}
	return g.board.Snapshot()
}
