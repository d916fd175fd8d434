package game

import "github.com/samdwyer/roguelike/internal/config"

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible level generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Settings are the tunable game values, usually from config.Load.
	Settings config.Settings
}
