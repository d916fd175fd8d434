package world

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/bits"
	"time"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/roguelike/internal/telemetry"
)

// ErrInvalidLevel is returned for level numbers below 1.
var ErrInvalidLevel = errors.New("world: level must be at least 1")

// LevelConfig holds the board dimensions and scatter ranges for level setup.
type LevelConfig struct {
	Columns   int
	Rows      int
	WallCount CountRange
	FoodCount CountRange
}

// Palettes holds the templates for every board role.
type Palettes struct {
	Floor     Palette
	OuterWall Palette
	Wall      Palette
	Food      Palette // Food and soda
	Enemy     Palette
	Exit      Palette
}

// Layout reports what a level setup placed.
type Layout struct {
	Level   int
	Tiles   int    // Floor and outer-wall tiles
	Walls   []Cell // Inner walls
	Food    []Cell // Food and soda
	Enemies []Cell
	Exit    Cell
}

// EnemyCount returns floor(log2(level)): 0 at level 1, 1 at 2, 2 at 4, 3 at 8.
func EnemyCount(level int) (int, error) {
	if level < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidLevel, level)
	}
	return bits.Len(uint(level)) - 1, nil
}

// Director sets up levels: board, scattered objects and exit.
type Director struct {
	cfg      LevelConfig
	palettes Palettes
	rng      Rand
	pool     *PositionPool
	scene    *Scene
	logger   *log.Logger
}

// NewDirector creates a director that populates scene.
// A nil logger discards output.
func NewDirector(cfg LevelConfig, palettes Palettes, rng Rand, scene *Scene, logger *log.Logger) (*Director, error) {
	if cfg.Columns < 3 || cfg.Rows < 3 {
		return nil, fmt.Errorf("world: board must be at least 3x3, got %dx%d", cfg.Columns, cfg.Rows)
	}
	if err := cfg.WallCount.Validate(); err != nil {
		return nil, fmt.Errorf("wall count: %w", err)
	}
	if err := cfg.FoodCount.Validate(); err != nil {
		return nil, fmt.Errorf("food count: %w", err)
	}
	if len(palettes.Exit) == 0 {
		return nil, fmt.Errorf("exit tiles: %w", ErrEmptyPalette)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Director{
		cfg:      cfg,
		palettes: palettes,
		rng:      rng,
		pool:     NewPositionPool(rng),
		scene:    scene,
		logger:   logger,
	}, nil
}

// SetupLevel rebuilds the scene for the given level.
//
// Walls are scattered first, then food, then floor(log2(level)) enemies, all
// drawing from the same pool of free interior cells. The exit always goes to
// (columns-1, rows-1) regardless of what was scattered there.
//
// The pass is all-or-nothing: on error the scene is left as it was.
func (d *Director) SetupLevel(ctx context.Context, level int) (*Layout, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "level.setup")
	defer span.End()

	startTime := time.Now()

	enemies, err := EnemyCount(level)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid level")
		return nil, err
	}

	batch := &Batch{}
	layout, err := d.layout(batch, level, enemies)
	if err != nil {
		batch.Discard()
		span.RecordError(err)
		span.SetStatus(codes.Error, "level setup failed")
		d.logger.Error("level setup failed", "level", level, "error", err)
		return nil, fmt.Errorf("setting up level %d: %w", level, err)
	}

	d.scene.Reset()
	batch.Commit(d.scene)

	span.SetAttributes(
		attribute.Int("level", level),
		attribute.Int("board.columns", d.cfg.Columns),
		attribute.Int("board.rows", d.cfg.Rows),
		attribute.Int("level.walls", len(layout.Walls)),
		attribute.Int("level.food", len(layout.Food)),
		attribute.Int("level.enemies", len(layout.Enemies)),
		attribute.Int("level.free_cells", d.pool.Len()),
		attribute.Int64("level.setup_us", time.Since(startTime).Microseconds()),
	)
	d.logger.Debug("level ready",
		"level", level,
		"walls", len(layout.Walls),
		"food", len(layout.Food),
		"enemies", len(layout.Enemies),
		"instances", d.scene.Count(),
	)
	return layout, nil
}

func (d *Director) layout(sp Spawner, level, enemies int) (*Layout, error) {
	layout := &Layout{Level: level}
	var err error

	layout.Tiles, err = BuildBoard(sp, d.rng, d.cfg.Columns, d.cfg.Rows, d.palettes.Floor, d.palettes.OuterWall)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}

	d.pool.Reset(d.cfg.Columns, d.cfg.Rows)

	if layout.Walls, err = Scatter(sp, d.rng, d.pool, d.palettes.Wall, d.cfg.WallCount); err != nil {
		return nil, fmt.Errorf("walls: %w", err)
	}
	if layout.Food, err = Scatter(sp, d.rng, d.pool, d.palettes.Food, d.cfg.FoodCount); err != nil {
		return nil, fmt.Errorf("food: %w", err)
	}
	if layout.Enemies, err = Scatter(sp, d.rng, d.pool, d.palettes.Enemy, Exactly(enemies)); err != nil {
		return nil, fmt.Errorf("enemies: %w", err)
	}

	exit, err := d.palettes.Exit.Pick(d.rng)
	if err != nil {
		return nil, fmt.Errorf("exit: %w", err)
	}
	layout.Exit = Cell{X: d.cfg.Columns - 1, Y: d.cfg.Rows - 1}
	sp.Spawn(exit, layout.Exit, "")

	return layout, nil
}
