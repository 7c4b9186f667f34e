// Package config provides YAML-based game configuration loading and
// difficulty management for the match-3 puzzle.
package config

import (
	"errors"
	"fmt"
)

// Match3Config contains all configuration for the match-3 puzzle.
type Match3Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Tiles      TilesConfig      `yaml:"tiles"`
	Animation  AnimationConfig  `yaml:"animation"`
	Rules      RulesConfig      `yaml:"rules"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Seed       string           `yaml:"seed"` // Empty means a fresh seed per game
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the board dimensions.
type GridConfig struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

// TilesConfig defines the tile alphabet.
type TilesConfig struct {
	Types               int  `yaml:"types"`
	AvoidInitialMatches bool `yaml:"avoid_initial_matches"`
}

// AnimationConfig defines tween durations in seconds and the tile radius in
// draw units.
type AnimationConfig struct {
	SwapDuration   float64 `yaml:"swap_duration"`
	RemoveDuration float64 `yaml:"remove_duration"`
	FallDuration   float64 `yaml:"fall_duration"`
	TileRadius     float64 `yaml:"tile_radius"`
}

// RulesConfig defines gesture and round rules.
type RulesConfig struct {
	AllowDistantSwaps bool `yaml:"allow_distant_swaps"`
	Turns             int  `yaml:"turns"`      // Swaps per game in classic mode
	AutoRearm         bool `yaml:"auto_rearm"` // Endless mode
}

// ScoringConfig defines how removed tiles turn into points.
type ScoringConfig struct {
	PointsPerTile int     `yaml:"points_per_tile"`
	CascadeBonus  float64 `yaml:"cascade_bonus"` // Extra multiplier per cascade level
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "turns", or "none"
	MaxAt int    `yaml:"max_at"` // Score/turns at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Animation speed-up at max difficulty
	BonusReduction  float64 `yaml:"bonus_reduction"`  // Cascade bonus removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate reports the first unusable setting.
func (c Match3Config) Validate() error {
	var errs []error
	if c.Grid.Rows < 3 || c.Grid.Columns < 3 {
		errs = append(errs, fmt.Errorf("grid must be at least 3x3, got %dx%d", c.Grid.Rows, c.Grid.Columns))
	}
	if c.Grid.Rows > 16 || c.Grid.Columns > 16 {
		errs = append(errs, fmt.Errorf("grid must be at most 16x16, got %dx%d", c.Grid.Rows, c.Grid.Columns))
	}
	if c.Tiles.Types < 3 || c.Tiles.Types > 8 {
		errs = append(errs, fmt.Errorf("tiles.types must be in [3, 8], got %d", c.Tiles.Types))
	}
	a := c.Animation
	if a.SwapDuration < 0 || a.RemoveDuration < 0 || a.FallDuration < 0 || a.TileRadius < 0 {
		errs = append(errs, errors.New("animation values must not be negative"))
	}
	if c.Rules.Turns < 0 {
		errs = append(errs, fmt.Errorf("rules.turns must not be negative, got %d", c.Rules.Turns))
	}
	if c.Scoring.PointsPerTile < 0 || c.Scoring.CascadeBonus < 0 {
		errs = append(errs, errors.New("scoring values must not be negative"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
