// Package generate builds one dungeon level: a tile grid carved with
// non-overlapping rooms and corridors, and the entity store populated
// from the depth-dependent spawn tables.
package generate

import (
	"fmt"
	"math/rand"

	"deepspire/internal/entity"
	"deepspire/internal/gamemap"
)

// placeAttempts bounds how often one room is re-sampled before the
// generator gives up on it and moves on.
const placeAttempts = 30

// Config drives procedural generation for one level.
type Config struct {
	Width, Height int
	MaxRooms      int
	RoomMinSize   int
	RoomMaxSize   int
	RoomMargin    int // empty tiles required between accepted rooms
	Depth         int
	Rand          *rand.Rand
}

// validate rejects configurations that cannot place a single room.
// These are construction errors surfaced at setup, not per-turn
// conditions.
func (cfg *Config) validate() error {
	if cfg.MaxRooms < 1 {
		return fmt.Errorf("generate: MaxRooms must be at least 1, got %d", cfg.MaxRooms)
	}
	if cfg.RoomMinSize < 3 || cfg.RoomMinSize > cfg.RoomMaxSize {
		return fmt.Errorf("generate: bad room size bounds [%d,%d]", cfg.RoomMinSize, cfg.RoomMaxSize)
	}
	// A room needs its interior plus a one-tile wall border.
	if cfg.Width < cfg.RoomMinSize+2 || cfg.Height < cfg.RoomMinSize+2 {
		return fmt.Errorf("generate: %dx%d grid cannot fit a %d-tile room",
			cfg.Width, cfg.Height, cfg.RoomMinSize)
	}
	if cfg.Rand == nil {
		return fmt.Errorf("generate: nil random source")
	}
	return nil
}

// Generate builds the grid and entity store for one level. The first
// accepted room holds the player (id 0) at its center; every later room
// is populated from the spawn tables before its corridor is carved.
// Rooms that cannot be placed within the attempt budget are skipped
// silently; a level that ends up with zero rooms is a generation error.
func Generate(cfg *Config) (*gamemap.Grid, *entity.Store, error) {
	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	grid := gamemap.New(cfg.Width, cfg.Height)
	store := entity.NewStore()

	for i := 0; i < cfg.MaxRooms; i++ {
		room, ok := sampleRoom(grid, cfg)
		if !ok {
			continue // attempt budget spent; skip this room
		}
		carveRoom(grid, room)
		cx, cy := room.Center()

		if len(grid.Rooms) == 0 {
			placePlayer(store, cx, cy)
		} else {
			if err := populateRoom(grid, store, room, cfg); err != nil {
				return nil, nil, err
			}
			// Connect to the previous room's center with an L-corridor,
			// bend orientation chosen per connection.
			px, py := grid.Rooms[len(grid.Rooms)-1].Center()
			carveCorridor(grid, px, py, cx, cy, cfg.Rand)
		}
		grid.Rooms = append(grid.Rooms, room)
	}

	if len(grid.Rooms) == 0 {
		return nil, nil, fmt.Errorf("generate: no room could be placed in %dx%d grid",
			cfg.Width, cfg.Height)
	}

	// Stairs down at the last room's center.
	sx, sy := grid.Rooms[len(grid.Rooms)-1].Center()
	grid.Set(sx, sy, gamemap.MakeStairsDown())

	return grid, store, nil
}

// sampleRoom draws candidate rectangles until one fits without touching
// an accepted room (margin included), or the attempt budget runs out.
func sampleRoom(grid *gamemap.Grid, cfg *Config) (gamemap.Rect, bool) {
	for try := 0; try < placeAttempts; try++ {
		w := cfg.RoomMinSize + cfg.Rand.Intn(cfg.RoomMaxSize-cfg.RoomMinSize+1)
		h := cfg.RoomMinSize + cfg.Rand.Intn(cfg.RoomMaxSize-cfg.RoomMinSize+1)
		if w > grid.Width-2 {
			w = grid.Width - 2
		}
		if h > grid.Height-2 {
			h = grid.Height - 2
		}
		// Keep a one-tile wall border around the grid edge.
		x := 1 + cfg.Rand.Intn(grid.Width-w-1)
		y := 1 + cfg.Rand.Intn(grid.Height-h-1)

		cand := gamemap.Rect{X1: x, Y1: y, X2: x + w - 1, Y2: y + h - 1}
		if overlapsAny(cand.Grown(cfg.RoomMargin), grid.Rooms) {
			continue
		}
		return cand, true
	}
	return gamemap.Rect{}, false
}

func overlapsAny(r gamemap.Rect, rooms []gamemap.Rect) bool {
	for _, other := range rooms {
		if r.Intersects(other) {
			return true
		}
	}
	return false
}

// carveRoom opens the room's interior.
func carveRoom(grid *gamemap.Grid, room gamemap.Rect) {
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			grid.Set(x, y, gamemap.MakeFloor())
		}
	}
}

// carveCorridor digs an L-shaped tunnel between (x1,y1) and (x2,y2),
// bending horizontally-then-vertically or the reverse at random.
func carveCorridor(grid *gamemap.Grid, x1, y1, x2, y2 int, rng *rand.Rand) {
	if rng.Intn(2) == 0 {
		carveH(grid, x1, x2, y1)
		carveV(grid, y1, y2, x2)
	} else {
		carveV(grid, y1, y2, x1)
		carveH(grid, x1, x2, y2)
	}
}

func carveH(grid *gamemap.Grid, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if grid.InBounds(x, y) && grid.At(x, y).Kind == gamemap.KindWall {
			grid.Set(x, y, gamemap.MakeFloor())
		}
	}
}

func carveV(grid *gamemap.Grid, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if grid.InBounds(x, y) && grid.At(x, y).Kind == gamemap.KindWall {
			grid.Set(x, y, gamemap.MakeFloor())
		}
	}
}
