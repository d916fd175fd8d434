package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/samdwyer/roguelike/internal/game"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a new run.

Controls:
  Arrows    - Move (walking into a wall damages it)
  R         - Restart after starving
  Q/Esc     - Quit

The terminal is taken over while playing, so logs are only written
when --log-file is given.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(cmd *cobra.Command, args []string) error {
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := newLogger(out)

	ctx := cmd.Context()
	stop := startTelemetry(ctx, logger)
	defer stop()

	cfg, registry, err := loadGameConfig()
	if err != nil {
		return err
	}

	g, err := game.New(cfg, registry, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}
	return g.Run(ctx)
}
