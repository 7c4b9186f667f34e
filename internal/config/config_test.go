package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := LoadMatch3("")
	if err != nil {
		t.Fatalf("LoadMatch3: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	def := DefaultMatch3Config()
	if cfg.Grid != def.Grid || cfg.Tiles.Types != def.Tiles.Types || cfg.Rules.Turns != def.Rules.Turns {
		t.Errorf("embedded defaults drifted from hardcoded: %+v vs %+v", cfg, def)
	}
}

func TestLoadMatch3CustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("grid:\n  rows: 8\n  columns: 8\nseed: abcd\nrules:\n  auto_rearm: true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMatch3(path)
	if err != nil {
		t.Fatalf("LoadMatch3: %v", err)
	}
	if cfg.Grid.Rows != 8 || cfg.Grid.Columns != 8 {
		t.Errorf("expected 8x8 grid, got %dx%d", cfg.Grid.Rows, cfg.Grid.Columns)
	}
	if cfg.Seed != "abcd" || !cfg.Rules.AutoRearm {
		t.Errorf("expected seed and auto_rearm from file, got %+v", cfg)
	}
	// Unset keys keep their defaults.
	if cfg.Tiles.Types != 5 {
		t.Errorf("expected default tile types, got %d", cfg.Tiles.Types)
	}
}

func TestLoadMatch3Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadMatch3(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMatch3(bad); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("grid:\n  rows: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMatch3(invalid); err == nil {
		t.Error("expected validation error for a 2-row grid")
	}
}

func TestApplyMatch3Preset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		turns   int
		enabled bool
	}{
		{DifficultyEasy, 30, true},
		{DifficultyNormal, 20, true},
		{DifficultyHard, 12, true},
		{DifficultyFixed, 20, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultMatch3Config()
			ApplyMatch3Preset(&cfg, tt.preset)
			if cfg.Rules.Turns != tt.turns {
				t.Errorf("expected %d turns, got %d", tt.turns, cfg.Rules.Turns)
			}
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("expected enabled=%v, got %v", tt.enabled, cfg.Difficulty.Enabled)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("brutal"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultMatch3Config().Difficulty
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(0, 0); got != 0 {
		t.Errorf("Level at start = %v, want 0", got)
	}
	if got := dm.Level(1500, 0); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level halfway = %v, want 0.5", got)
	}
	if got := dm.Level(1_000_000, 0); got != 1 {
		t.Errorf("Level past max = %v, want 1", got)
	}

	if got := dm.Duration(0.2, 3000, 0); math.Abs(got-0.1) > 1e-9 {
		t.Errorf("Duration at max = %v, want 0.1", got)
	}
	if got := dm.CascadeBonus(0.5, 3000, 0); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("CascadeBonus at max = %v, want 0.25", got)
	}

	dm.SetEnabled(false)
	if dm.IsEnabled() {
		t.Error("expected progression disabled")
	}
	if got := dm.Duration(0.2, 3000, 0); got != 0.2 {
		t.Errorf("Duration with progression off = %v, want 0.2", got)
	}
}

func TestDifficultyByTurns(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "turns", MaxAt: 10},
	})
	if got := dm.Level(0, 5); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Level after 5 of 10 turns = %v, want 0.75", got)
	}
}
