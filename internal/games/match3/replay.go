package match3

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-match3/internal/config"
	platformcore "github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

// DefaultReplayDt is the fixed tick length of a replay when the script does
// not set one.
const DefaultReplayDt = 1.0 / 60

// maxSettleTicks bounds a settle step so a broken board cannot hang a
// replay.
const maxSettleTicks = 100000

// Script is a headless gesture list.
//
//	seed: "abcd"
//	dt: 0.0166
//	layout: ["01201", "12012"]   # optional, one digit per tile type
//	steps:
//	  - swap: [1, 2, 2, 2]
//	  - settle: true
//	  - down: [0, 0]
//	  - move: [0, 1]
//	  - up: true
//	  - wait: 0.5
type Script struct {
	Seed      string       `yaml:"seed"`
	Dt        float64      `yaml:"dt"`
	Layout    []string     `yaml:"layout"`
	AutoRearm *bool        `yaml:"auto_rearm"` // Overrides rules.auto_rearm
	Steps     []ScriptStep `yaml:"steps"`
}

// ScriptStep holds exactly one gesture or wait.
type ScriptStep struct {
	Swap   []int   `yaml:"swap"` // from row, from col, to row, to col
	Down   []int   `yaml:"down"`
	Move   []int   `yaml:"move"`
	Up     bool    `yaml:"up"`
	Cancel bool    `yaml:"cancel"`
	Wait   float64 `yaml:"wait"` // Seconds
	Settle bool    `yaml:"settle"`
	Rearm  bool    `yaml:"rearm"`
}

func (s ScriptStep) validate() error {
	n := 0
	for _, set := range []bool{
		s.Swap != nil, s.Down != nil, s.Move != nil,
		s.Up, s.Cancel, s.Wait != 0, s.Settle, s.Rearm,
	} {
		if set {
			n++
		}
	}
	if n != 1 {
		return fmt.Errorf("want exactly one action, got %d", n)
	}
	switch {
	case s.Swap != nil && len(s.Swap) != 4:
		return fmt.Errorf("swap needs 4 numbers, got %d", len(s.Swap))
	case s.Down != nil && len(s.Down) != 2:
		return fmt.Errorf("down needs 2 numbers, got %d", len(s.Down))
	case s.Move != nil && len(s.Move) != 2:
		return fmt.Errorf("move needs 2 numbers, got %d", len(s.Move))
	case s.Wait < 0:
		return fmt.Errorf("wait must not be negative, got %v", s.Wait)
	}
	return nil
}

// ParseScript decodes and validates a YAML script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	if s.Dt < 0 {
		return nil, fmt.Errorf("replay: dt must not be negative, got %v", s.Dt)
	}
	if s.Dt == 0 {
		s.Dt = DefaultReplayDt
	}
	var errs []error
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			errs = append(errs, fmt.Errorf("step %d: %w", i+1, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	return &s, nil
}

// LoadScript reads a script from disk.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	return ParseScript(data)
}

// parseLayout turns rows of digits into a types layout.
func parseLayout(rows []string) ([][]core.TileType, error) {
	types := make([][]core.TileType, len(rows))
	for r, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, fmt.Errorf("layout row %d has %d tiles, want %d", r, len(row), len(rows[0]))
		}
		types[r] = make([]core.TileType, len(row))
		for c, ch := range row {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("layout row %d: %q is not a digit", r, ch)
			}
			types[r][c] = core.TileType(ch - '0')
		}
	}
	return types, nil
}

// ReplayResult is the outcome of a replay.
type ReplayResult struct {
	Seed       string
	Ticks      uint64
	Snapshot   core.Snapshot
	Events     []core.Event
	Score      int
	Tally      []int
	Rounds     []platformcore.RoundSummary
	Violations []error
}

// Replay runs a script headless against a board built from cfg. Blocked
// rounds are re-armed automatically so the next gesture is accepted.
func Replay(s *Script, cfg config.Match3Config, logger *log.Logger) (*ReplayResult, error) {
	if logger == nil {
		logger = pkgLogger
	}
	if s.AutoRearm != nil {
		cfg.Rules.AutoRearm = *s.AutoRearm
	}
	seed := s.Seed
	if seed == "" {
		seed = cfg.Seed
	}
	dt := s.Dt
	if dt <= 0 {
		dt = DefaultReplayDt
	}

	opts := core.Options{
		Rows:                cfg.Grid.Rows,
		Cols:                cfg.Grid.Columns,
		TileTypes:           cfg.Tiles.Types,
		Seed:                seed,
		TileRadius:          cfg.Animation.TileRadius,
		SwapDuration:        cfg.Animation.SwapDuration,
		RemoveDuration:      cfg.Animation.RemoveDuration,
		FallDuration:        cfg.Animation.FallDuration,
		AllowDistantSwaps:   cfg.Rules.AllowDistantSwaps,
		AutoRearm:           cfg.Rules.AutoRearm,
		AvoidInitialMatches: cfg.Tiles.AvoidInitialMatches,
		Logger:              logger.WithPrefix("board"),
	}

	var (
		board *core.Board
		err   error
	)
	if len(s.Layout) > 0 {
		types, lerr := parseLayout(s.Layout)
		if lerr != nil {
			return nil, fmt.Errorf("replay: %w", lerr)
		}
		opts.Rows, opts.Cols = len(types), len(types[0])
		board, err = core.NewBoardFromTypes(types, opts)
	} else {
		board, err = core.NewBoard(opts)
	}
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	r := &replayer{
		board:  board,
		keeper: NewScorekeeper(cfg.Scoring, opts.TileTypes, logger),
		dt:     dt,
		res:    &ReplayResult{Seed: seed},
	}
	for i, st := range s.Steps {
		if err := r.apply(st); err != nil {
			return nil, fmt.Errorf("replay: step %d: %w", i+1, err)
		}
	}

	r.res.Ticks = board.Tick()
	r.res.Snapshot = board.Snapshot()
	r.res.Score = r.keeper.Score()
	r.res.Tally = r.keeper.Tally()
	r.res.Violations = board.Violations()
	return r.res, nil
}

type replayer struct {
	board  *core.Board
	keeper *Scorekeeper
	dt     float64
	turn   int
	res    *ReplayResult
}

func (r *replayer) apply(st ScriptStep) error {
	b := r.board
	switch {
	case st.Swap != nil:
		b.SwapIntent(core.P(st.Swap[0], st.Swap[1]), core.P(st.Swap[2], st.Swap[3]))
	case st.Down != nil:
		b.TouchDown(st.Down[0], st.Down[1])
	case st.Move != nil:
		b.TouchMove(st.Move[0], st.Move[1])
	case st.Up:
		b.TouchUp()
	case st.Cancel:
		b.TouchCancel()
	case st.Rearm:
		b.Rearm()
	case st.Wait > 0:
		ticks := int(st.Wait/r.dt + 0.5)
		for i := 0; i < ticks; i++ {
			r.step()
		}
	case st.Settle:
		for i := 0; !b.Settled(); i++ {
			if i == maxSettleTicks {
				return fmt.Errorf("board did not settle within %d ticks", maxSettleTicks)
			}
			r.step()
		}
	}
	r.collect(b.Drain())
	return nil
}

func (r *replayer) step() {
	r.collect(r.board.Step(r.dt).Events)
}

func (r *replayer) collect(events []core.Event) {
	for _, ev := range events {
		r.res.Events = append(r.res.Events, ev)
		switch e := ev.(type) {
		case core.GroupsRemoved:
			r.keeper.Removed(e)
		case core.RoundSettled:
			r.turn++
			summary := r.keeper.Settle(e)
			summary.Turn = r.turn
			r.res.Rounds = append(r.res.Rounds, summary)
			r.board.Rearm()
		}
	}
}

// FormatEvent renders an event as a single log-style line.
func FormatEvent(ev core.Event) string {
	switch e := ev.(type) {
	case core.StatusChanged:
		return fmt.Sprintf("status %s -> %s", e.From, e.To)
	case core.SwapApplied:
		return fmt.Sprintf("swap %d@(%d,%d) <-> %d@(%d,%d)", e.A.ID, e.A.Row, e.A.Col, e.B.ID, e.B.Row, e.B.Col)
	case core.GroupsRemoved:
		return fmt.Sprintf("removed %d groups, %d tiles, cascade %d", len(e.Groups), e.Tiles(), e.Cascade)
	case core.RoundSettled:
		return fmt.Sprintf("settled %s, removed %d, cascades %d", e.Status, e.Removed, e.Cascades)
	default:
		return fmt.Sprintf("%T", ev)
	}
}
