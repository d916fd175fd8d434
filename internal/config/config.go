// Package config holds game settings loaded from YAML.
package config

import (
	"errors"
	"fmt"

	"github.com/samdwyer/roguelike/internal/world"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid settings")

// maxFrameRate is the highest accepted frame_rate.
const maxFrameRate = 1000

// Settings is the complete tunable configuration.
type Settings struct {
	Board   BoardSettings   `yaml:"board"`
	Player  PlayerSettings  `yaml:"player"`
	Enemy   EnemySettings   `yaml:"enemy"`
	Wall    WallSettings    `yaml:"wall"`
	Session SessionSettings `yaml:"session"`
}

// BoardSettings controls board size and scatter counts.
type BoardSettings struct {
	Columns   int              `yaml:"columns"`
	Rows      int              `yaml:"rows"`
	WallCount world.CountRange `yaml:"wall_count"`
	FoodCount world.CountRange `yaml:"food_count"`
}

// PlayerSettings controls the player.
type PlayerSettings struct {
	StartingFood int     `yaml:"starting_food"`
	FoodPoints   int     `yaml:"food_points"`
	SodaPoints   int     `yaml:"soda_points"`
	WallDamage   int     `yaml:"wall_damage"`
	MoveTime     float64 `yaml:"move_time"` // seconds per cell
}

// EnemySettings controls enemies.
type EnemySettings struct {
	Damage   int     `yaml:"damage"`
	MoveTime float64 `yaml:"move_time"`
}

// WallSettings controls inner walls.
type WallSettings struct {
	HP int `yaml:"hp"`
}

// SessionSettings controls level progression and frame timing.
type SessionSettings struct {
	StartLevel int     `yaml:"start_level"`
	LevelDelay float64 `yaml:"level_delay"` // seconds between levels
	FrameRate  int     `yaml:"frame_rate"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Board: BoardSettings{
			Columns:   8,
			Rows:      8,
			WallCount: world.CountRange{Min: 5, Max: 9},
			FoodCount: world.CountRange{Min: 1, Max: 5},
		},
		Player: PlayerSettings{
			StartingFood: 100,
			FoodPoints:   10,
			SodaPoints:   20,
			WallDamage:   1,
			MoveTime:     0.1,
		},
		Enemy: EnemySettings{
			Damage:   10,
			MoveTime: 0.1,
		},
		Wall: WallSettings{HP: 4},
		Session: SessionSettings{
			StartLevel: 3,
			LevelDelay: 1.0,
			FrameRate:  60,
		},
	}
}

// LevelConfig converts the board settings for the level director.
func (s Settings) LevelConfig() world.LevelConfig {
	return world.LevelConfig{
		Columns:   s.Board.Columns,
		Rows:      s.Board.Rows,
		WallCount: s.Board.WallCount,
		FoodCount: s.Board.FoodCount,
	}
}

// FrameTime returns the duration of one frame in seconds.
func (s Settings) FrameTime() float64 {
	if s.Session.FrameRate <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(s.Session.FrameRate)
}

// Validate checks that the settings describe a playable game.
func (s Settings) Validate() error {
	b := s.Board
	if b.Columns < 3 || b.Rows < 3 {
		return fmt.Errorf("%w: board must be at least 3x3, got %dx%d", ErrInvalidConfig, b.Columns, b.Rows)
	}
	if err := b.WallCount.Validate(); err != nil {
		return fmt.Errorf("%w: wall_count: %v", ErrInvalidConfig, err)
	}
	if err := b.FoodCount.Validate(); err != nil {
		return fmt.Errorf("%w: food_count: %v", ErrInvalidConfig, err)
	}
	if s.Player.MoveTime <= 0 || s.Enemy.MoveTime <= 0 {
		return fmt.Errorf("%w: move_time must be positive", ErrInvalidConfig)
	}
	if s.Player.StartingFood <= 0 {
		return fmt.Errorf("%w: starting_food must be positive", ErrInvalidConfig)
	}
	if s.Wall.HP <= 0 {
		return fmt.Errorf("%w: wall hp must be positive", ErrInvalidConfig)
	}
	if s.Session.FrameRate < 1 || s.Session.FrameRate > maxFrameRate {
		return fmt.Errorf("%w: frame_rate must be in [1, %d], got %d", ErrInvalidConfig, maxFrameRate, s.Session.FrameRate)
	}
	if s.Session.StartLevel < 1 {
		return fmt.Errorf("%w: start_level must be at least 1, got %d", ErrInvalidConfig, s.Session.StartLevel)
	}
	return nil
}
