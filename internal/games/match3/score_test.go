package match3

import (
	"testing"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

func group(types ...core.TileType) []core.TileInfo {
	infos := make([]core.TileInfo, len(types))
	for i, tt := range types {
		infos[i] = core.TileInfo{ID: core.TileID(i), Type: tt}
	}
	return infos
}

func TestScorekeeperPoints(t *testing.T) {
	s := NewScorekeeper(config.ScoringConfig{PointsPerTile: 10, CascadeBonus: 0.5}, 5, nil)

	tests := []struct {
		tiles, cascade, want int
	}{
		{3, 0, 30},
		{4, 0, 40},
		{3, 1, 45},
		{3, 2, 60},
		{5, 3, 125},
	}
	for _, tt := range tests {
		if got := s.Points(tt.tiles, tt.cascade); got != tt.want {
			t.Errorf("Points(%d, %d) = %d, want %d", tt.tiles, tt.cascade, got, tt.want)
		}
	}
}

func TestScorekeeperRound(t *testing.T) {
	s := NewScorekeeper(config.ScoringConfig{PointsPerTile: 10, CascadeBonus: 0.5}, 5, nil)

	s.Removed(core.GroupsRemoved{Groups: [][]core.TileInfo{group(2, 2, 2), group(4, 4, 4)}, Cascade: 0})
	s.Removed(core.GroupsRemoved{Groups: [][]core.TileInfo{group(1, 1, 1)}, Cascade: 1})

	if s.Score() != 60+45 {
		t.Errorf("Score = %d, want 105", s.Score())
	}
	sum := s.Settle(core.RoundSettled{Status: core.StatusBlocked, Cascades: 1, Removed: 9})
	if sum.Points != 105 || sum.Removed != 9 || sum.Cascades != 1 {
		t.Errorf("unexpected summary %+v", sum)
	}

	tally := s.Tally()
	want := []int{0, 3, 3, 0, 3}
	for i := range want {
		if tally[i] != want[i] {
			t.Errorf("tally[%d] = %d, want %d", i, tally[i], want[i])
		}
	}

	// Round points start over, the total does not.
	s.Removed(core.GroupsRemoved{Groups: [][]core.TileInfo{group(0, 0, 0)}})
	sum = s.Settle(core.RoundSettled{Status: core.StatusBlocked, Removed: 3})
	if sum.Points != 30 {
		t.Errorf("second round points = %d, want 30", sum.Points)
	}
	if s.Score() != 135 {
		t.Errorf("Score = %d, want 135", s.Score())
	}
}

func TestScorekeeperUnknownType(t *testing.T) {
	s := NewScorekeeper(config.ScoringConfig{PointsPerTile: 1}, 3, nil)
	s.Removed(core.GroupsRemoved{Groups: [][]core.TileInfo{group(7, 7, 7)}})
	if got := s.Tally(); len(got) != 8 || got[7] != 3 {
		t.Errorf("tally = %v", got)
	}
}

func TestScorekeeperCascadeBonus(t *testing.T) {
	s := NewScorekeeper(config.ScoringConfig{PointsPerTile: 10, CascadeBonus: 0.5}, 5, nil)
	s.SetCascadeBonus(-1)
	if got := s.Points(3, 4); got != 30 {
		t.Errorf("Points with clamped bonus = %d, want 30", got)
	}
}
