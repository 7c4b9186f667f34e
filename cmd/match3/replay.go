package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

var flagEvents bool

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Run a gesture script without a terminal UI",
	Long: `Replay a YAML gesture script against a fresh board and print the final
board, score and any invariant violations. The board comes from the
script's layout or seed, falling back to the config seed. The same script
always produces the same result.

Script format:
  seed: abc            # optional
  dt: 0.0166           # optional, seconds per tick
  layout:              # optional, one digit per tile type
    - "01230"
    - "12301"
  steps:
    - swap: [0, 0, 0, 1]   # from row, from col, to row, to col
    - settle: true
    - down: [1, 1]
    - move: [1, 2]
    - up: true
    - wait: 0.5

Examples:
  match3 replay ./calm.yaml
  match3 replay ./calm.yaml --events
  match3 replay ./calm.yaml --difficulty hard --config ./my-match3.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagEvents, "events", false, "Print every emitted event")
}

func runReplay(_ *cobra.Command, args []string) error {
	script, err := match3.LoadScript(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.LoadMatch3(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset, _ := config.ParsePreset(flagDifficulty)
		config.ApplyMatch3Preset(&cfg, preset)
	}
	if flagSeed != "" {
		script.Seed = flagSeed
	}

	res, err := match3.Replay(script, cfg, logger)
	if err != nil {
		return err
	}

	if flagEvents {
		for _, ev := range res.Events {
			fmt.Println(match3.FormatEvent(ev))
		}
		fmt.Println()
	}

	fmt.Printf("Seed: %s  Ticks: %d  Status: %s  Hash: %016x\n",
		res.Seed, res.Ticks, res.Snapshot.Status, res.Snapshot.Hash)
	fmt.Print(res.Snapshot.String())
	fmt.Printf("Score: %d\n", res.Score)
	fmt.Print("By type:")
	for tt, n := range res.Tally {
		fmt.Printf(" %c=%d", match3.TileGlyph(core.TileType(tt)), n)
	}
	fmt.Println()

	for _, r := range res.Rounds {
		fmt.Printf("  round %d: %d points, %d tiles, %d cascades\n", r.Turn, r.Points, r.Removed, r.Cascades)
	}

	if len(res.Violations) > 0 {
		for _, v := range res.Violations {
			fmt.Fprintf(os.Stderr, "violation: %v\n", v)
		}
		return fmt.Errorf("replay: %d invariant violations", len(res.Violations))
	}
	return nil
}
