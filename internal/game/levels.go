package game

import (
	"math/rand"

	"deepspire/internal/config"
	"deepspire/internal/generate"
)

// levelConfig builds a generator config for the given depth from the
// session configuration.
func levelConfig(cfg config.Config, depth int, rng *rand.Rand) *generate.Config {
	return &generate.Config{
		Width:       cfg.MapWidth,
		Height:      cfg.MapHeight,
		MaxRooms:    cfg.MaxRooms,
		RoomMinSize: cfg.RoomMinSize,
		RoomMaxSize: cfg.RoomMaxSize,
		RoomMargin:  cfg.RoomMargin,
		Depth:       depth,
		Rand:        rng,
	}
}
