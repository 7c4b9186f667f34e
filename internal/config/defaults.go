package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the default match-3 configuration.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Grid: GridConfig{
			Rows:    5,
			Columns: 6,
		},
		Tiles: TilesConfig{
			Types: 5,
		},
		Animation: AnimationConfig{
			SwapDuration:   0.2,
			RemoveDuration: 0.25,
			FallDuration:   0.06,
			TileRadius:     8,
		},
		Rules: RulesConfig{
			Turns: 20,
		},
		Scoring: ScoringConfig{
			PointsPerTile: 10,
			CascadeBonus:  0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				BonusReduction:  0.25,
			},
		},
	}
}
