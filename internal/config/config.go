// Package config collects every tunable the engine consumes into one
// immutable value passed to generation and turn-resolution entry
// points. Nothing in the engine reads ambient global state.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the per-session settings. Values come from the
// environment with the defaults below.
type Config struct {
	MapWidth    int   `env:"DEEPSPIRE_MAP_WIDTH" envDefault:"80"`
	MapHeight   int   `env:"DEEPSPIRE_MAP_HEIGHT" envDefault:"43"`
	MaxRooms    int   `env:"DEEPSPIRE_MAX_ROOMS" envDefault:"30"`
	RoomMinSize int   `env:"DEEPSPIRE_ROOM_MIN" envDefault:"6"`
	RoomMaxSize int   `env:"DEEPSPIRE_ROOM_MAX" envDefault:"10"`
	RoomMargin  int   `env:"DEEPSPIRE_ROOM_MARGIN" envDefault:"1"`
	FOVRadius   int   `env:"DEEPSPIRE_FOV_RADIUS" envDefault:"10"`
	LightWalls  bool  `env:"DEEPSPIRE_LIGHT_WALLS" envDefault:"true"`
	MaxDepth    int   `env:"DEEPSPIRE_MAX_DEPTH" envDefault:"10"`
	Seed        int64 `env:"DEEPSPIRE_SEED" envDefault:"0"` // 0 seeds from the clock
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings that would make session setup impossible.
func (c Config) Validate() error {
	if c.MaxRooms < 1 {
		return fmt.Errorf("config: MaxRooms must be at least 1, got %d", c.MaxRooms)
	}
	if c.RoomMinSize < 3 || c.RoomMinSize > c.RoomMaxSize {
		return fmt.Errorf("config: bad room size bounds [%d,%d]", c.RoomMinSize, c.RoomMaxSize)
	}
	if c.MapWidth < c.RoomMinSize+2 || c.MapHeight < c.RoomMinSize+2 {
		return fmt.Errorf("config: %dx%d map cannot fit a %d-tile room",
			c.MapWidth, c.MapHeight, c.RoomMinSize)
	}
	if c.FOVRadius < 1 {
		return fmt.Errorf("config: FOVRadius must be positive, got %d", c.FOVRadius)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("config: MaxDepth must be at least 1, got %d", c.MaxDepth)
	}
	return nil
}
