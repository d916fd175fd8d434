// roguelike is a turn-based terminal roguelike on a small procedurally
// generated board.
//
// Usage:
//
//	roguelike play        - Play in the terminal
//	roguelike generate    - Print a generated level and exit
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible levels
//	--config <path>      - Board settings YAML
//	--templates <path>   - Template palette JSON (default: built-in)
//	--verbose            - Debug logging
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/samdwyer/roguelike/internal/config"
	"github.com/samdwyer/roguelike/internal/game"
	"github.com/samdwyer/roguelike/internal/gamedata"
	"github.com/samdwyer/roguelike/internal/telemetry"
)

var (
	// Global flags
	flagSeed      int64
	flagConfig    string
	flagTemplates string
	flagLevel     int
	flagVerbose   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roguelike",
	Short: "Survive as many days as you can on a shrinking food supply",
	Long: `Roguelike is a turn-based game played on a small board in your terminal.
Every step costs food. Break through walls, avoid the zombies and reach
the exit to advance to the next day.

Examples:
  roguelike play
  roguelike play --seed 42 --config ./board.yaml
  roguelike generate --level 8`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to board settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagTemplates, "templates", "", "Path to template palette JSON")
	rootCmd.PersistentFlags().IntVar(&flagLevel, "level", 0, "Starting level (0 = from settings)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(generateCmd)
}

// newLogger returns a logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "roguelike",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadGameConfig resolves settings and templates from the global flags.
func loadGameConfig() (game.Config, *gamedata.TemplateRegistry, error) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return game.Config{}, nil, err
	}
	if flagLevel > 0 {
		settings.Session.StartLevel = flagLevel
	}

	registry, err := gamedata.LoadTemplateRegistry(flagTemplates)
	if err != nil {
		return game.Config{}, nil, err
	}
	return game.Config{Seed: flagSeed, Settings: settings}, registry, nil
}

// startTelemetry loads .env and enables tracing when an API key is configured.
// The returned function flushes pending spans.
func startTelemetry(ctx context.Context, logger *log.Logger) func() {
	// Not fatal: env vars might be set directly
	if err := godotenv.Load(); err != nil {
		logger.Debug(".env file not loaded", "error", err)
	}

	if !telemetry.ConfigureEnv() {
		return func() {}
	}

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Warn("telemetry setup failed, running without tracing", "error", err)
		return func() {}
	}
	return func() {
		if err := shutdown(ctx); err != nil {
			logger.Error("telemetry shutdown failed", "error", err)
		}
	}
}
