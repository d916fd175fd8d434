package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/samdwyer/roguelike/internal/game"
	"github.com/samdwyer/roguelike/internal/ui"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a generated level and exit",
	Long: `Set up one level without starting the game loop and print it.
The same --seed and settings always produce the same board.

Examples:
  roguelike generate --seed 7
  roguelike generate --level 16 --config ./big-board.yaml`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := newLogger(os.Stderr)

	ctx := cmd.Context()
	stop := startTelemetry(ctx, logger)
	defer stop()

	cfg, registry, err := loadGameConfig()
	if err != nil {
		return err
	}

	s, _, err := game.NewLauncher(cfg, registry, logger).Open(ctx)
	if err != nil {
		return err
	}

	board := s.Settings().Board
	layout := s.Layout()
	out := cmd.OutOrStdout()
	fmt.Fprint(out, ui.NewGrid(s.Scene(), board.Columns, board.Rows).String())
	fmt.Fprintf(out, "seed %d  level %d  walls %d  food %d  enemies %d\n",
		s.Seed(), s.Level(), len(layout.Walls), len(layout.Food), len(layout.Enemies))
	return nil
}
