package generate

import (
	"math/rand"
	"testing"

	"deepspire/internal/entity"
	"deepspire/internal/gamemap"
)

func testConfig(seed int64) *Config {
	return &Config{
		Width:       80,
		Height:      43,
		MaxRooms:    30,
		RoomMinSize: 6,
		RoomMaxSize: 10,
		RoomMargin:  1,
		Depth:       1,
		Rand:        rand.New(rand.NewSource(seed)),
	}
}

func TestGenerateRoomsStayInBounds(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		cfg := testConfig(seed)
		grid, _, err := Generate(cfg)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if len(grid.Rooms) == 0 {
			t.Fatalf("seed %d: no rooms placed", seed)
		}
		for _, r := range grid.Rooms {
			if r.X1 < 1 || r.Y1 < 1 || r.X2 > cfg.Width-2 || r.Y2 > cfg.Height-2 {
				t.Errorf("seed %d: room %+v breaches the border wall", seed, r)
			}
			w, h := r.X2-r.X1+1, r.Y2-r.Y1+1
			if w < cfg.RoomMinSize || w > cfg.RoomMaxSize || h < cfg.RoomMinSize || h > cfg.RoomMaxSize {
				t.Errorf("seed %d: room %+v outside size bounds", seed, r)
			}
		}
	}
}

func TestGenerateRoomsKeepMargin(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		cfg := testConfig(seed)
		grid, _, err := Generate(cfg)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		for i, a := range grid.Rooms {
			for _, b := range grid.Rooms[i+1:] {
				if a.Grown(cfg.RoomMargin).Intersects(b) {
					t.Errorf("seed %d: rooms %+v and %+v closer than the margin", seed, a, b)
				}
			}
		}
	}
}

func TestGeneratePlacesPlayerInFirstRoom(t *testing.T) {
	grid, store, err := Generate(testConfig(3))
	if err != nil {
		t.Fatal(err)
	}
	p := store.Player()
	if p.ID != entity.PlayerID {
		t.Fatalf("player id = %d, want %d", p.ID, entity.PlayerID)
	}
	if !p.Alive || !p.Blocks {
		t.Error("the player spawns alive and blocking")
	}
	cx, cy := grid.Rooms[0].Center()
	if p.X != cx || p.Y != cy {
		t.Errorf("player at (%d,%d), want first room center (%d,%d)", p.X, p.Y, cx, cy)
	}
	if !grid.IsWalkable(p.X, p.Y) {
		t.Error("the player's tile must be carved floor")
	}
}

func TestGeneratePlacesStairsInLastRoom(t *testing.T) {
	grid, _, err := Generate(testConfig(3))
	if err != nil {
		t.Fatal(err)
	}
	sx, sy := grid.Rooms[len(grid.Rooms)-1].Center()
	tile := grid.At(sx, sy)
	if tile.Kind != gamemap.KindStairsDown {
		t.Fatalf("last room center holds %v, want stairs down", tile.Kind)
	}
	if !tile.Walkable || !tile.Transparent {
		t.Error("stairs are walkable and transparent")
	}
}

func TestGenerateSpawnsStayOnFloor(t *testing.T) {
	grid, store, err := Generate(testConfig(11))
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range store.IDs() {
		e := store.Snapshot(id)
		if !grid.IsWalkable(e.X, e.Y) {
			t.Errorf("%s spawned on unwalkable tile (%d,%d)", e.Name, e.X, e.Y)
		}
	}
}

func TestGenerateMonstersDoNotStack(t *testing.T) {
	grid, store, err := Generate(testConfig(11))
	if err != nil {
		t.Fatal(err)
	}
	_ = grid
	seen := map[[2]int]bool{}
	for _, id := range store.IDs() {
		e := store.Snapshot(id)
		if !e.Blocks {
			continue // items may share tiles
		}
		key := [2]int{e.X, e.Y}
		if seen[key] {
			t.Errorf("two blocking entities share (%d,%d)", e.X, e.Y)
		}
		seen[key] = true
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	gridA, storeA, err := Generate(testConfig(99))
	if err != nil {
		t.Fatal(err)
	}
	gridB, storeB, err := Generate(testConfig(99))
	if err != nil {
		t.Fatal(err)
	}
	if len(gridA.Rooms) != len(gridB.Rooms) {
		t.Fatalf("room counts differ: %d vs %d", len(gridA.Rooms), len(gridB.Rooms))
	}
	for i := range gridA.Rooms {
		if gridA.Rooms[i] != gridB.Rooms[i] {
			t.Errorf("room %d differs: %+v vs %+v", i, gridA.Rooms[i], gridB.Rooms[i])
		}
	}
	if storeA.Len() != storeB.Len() {
		t.Errorf("entity counts differ: %d vs %d", storeA.Len(), storeB.Len())
	}
}

func TestGenerateRejectsBadConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero rooms", func(c *Config) { c.MaxRooms = 0 }},
		{"min below 3", func(c *Config) { c.RoomMinSize = 2 }},
		{"min above max", func(c *Config) { c.RoomMinSize = 12 }},
		{"grid too small", func(c *Config) { c.Width = 7; c.Height = 7 }},
		{"nil rand", func(c *Config) { c.Rand = nil }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := testConfig(1)
			c.mutate(cfg)
			if _, _, err := Generate(cfg); err == nil {
				t.Fatal("expected a construction error")
			}
		})
	}
}
