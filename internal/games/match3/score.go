package match3

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	platformcore "github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

// Scorekeeper turns removal events into points and keeps per-type tallies
// of removed tiles.
type Scorekeeper struct {
	pointsPerTile int
	cascadeBonus  float64
	log           *log.Logger

	score int
	tally []int // Removed tiles by type, whole game
	round []int // Removed tiles by type, current round

	roundPoints int
}

// NewScorekeeper creates a scorekeeper for an alphabet of types tile types.
func NewScorekeeper(cfg config.ScoringConfig, types int, logger *log.Logger) *Scorekeeper {
	if types < 1 {
		types = core.DefaultTileTypes
	}
	if logger == nil {
		logger = pkgLogger
	}
	return &Scorekeeper{
		pointsPerTile: cfg.PointsPerTile,
		cascadeBonus:  cfg.CascadeBonus,
		log:           logger,
		tally:         make([]int, types),
		round:         make([]int, types),
	}
}

// SetCascadeBonus changes the extra multiplier applied per cascade level.
func (s *Scorekeeper) SetCascadeBonus(bonus float64) {
	s.cascadeBonus = math.Max(0, bonus)
}

// Points returns the points for n tiles removed at the given cascade depth.
func (s *Scorekeeper) Points(n, cascade int) int {
	mult := 1 + s.cascadeBonus*float64(cascade)
	return int(math.Round(float64(n*s.pointsPerTile) * mult))
}

// Removed books one GroupsRemoved event and returns the points it earned.
func (s *Scorekeeper) Removed(e core.GroupsRemoved) int {
	for _, grp := range e.Groups {
		for _, t := range grp {
			s.count(t.Type)
		}
	}
	pts := s.Points(e.Tiles(), e.Cascade)
	s.score += pts
	s.roundPoints += pts
	s.log.Debug("groups removed", "groups", len(e.Groups), "tiles", e.Tiles(), "cascade", e.Cascade, "points", pts)
	return pts
}

func (s *Scorekeeper) count(tt core.TileType) {
	i := int(tt)
	if i >= len(s.tally) {
		grow := i + 1 - len(s.tally)
		s.tally = append(s.tally, make([]int, grow)...)
		s.round = append(s.round, make([]int, grow)...)
	}
	s.tally[i]++
	s.round[i]++
}

// Settle closes the current round and returns its summary. Turn is left
// for the caller.
func (s *Scorekeeper) Settle(e core.RoundSettled) platformcore.RoundSummary {
	summary := platformcore.RoundSummary{
		Removed:  e.Removed,
		Cascades: e.Cascades,
		Points:   s.roundPoints,
	}
	s.log.Info("round settled",
		"removed", e.Removed,
		"cascades", e.Cascades,
		"points", s.roundPoints,
		"by_type", append([]int(nil), s.round...),
		"score", s.score,
	)
	s.roundPoints = 0
	for i := range s.round {
		s.round[i] = 0
	}
	return summary
}

// Score returns the total score.
func (s *Scorekeeper) Score() int {
	return s.score
}

// Tally returns the removed-tile count of each type over the whole game.
func (s *Scorekeeper) Tally() []int {
	return append([]int(nil), s.tally...)
}
