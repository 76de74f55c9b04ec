package generate

import (
	"fmt"

	"deepspire/assets"
	"deepspire/internal/entity"
	"deepspire/internal/gamemap"
	"deepspire/internal/spawn"
)

// placePlayer inserts the player as the store's first entity. Id 0 is
// reserved for it.
func placePlayer(store *entity.Store, x, y int) {
	id := store.Add(entity.Entity{
		X:           x,
		Y:           y,
		Name:        assets.Player.Name,
		Glyph:       assets.Player.Glyph,
		Blocks:      true,
		Alive:       true,
		RenderOrder: entity.OrderPlayer,
		Fighter: entity.Fighter{
			HP:      assets.Player.MaxHP,
			MaxHP:   assets.Player.MaxHP,
			Power:   assets.Player.Power,
			Defense: assets.Player.Defense,
		},
	})
	if id != entity.PlayerID {
		panic("generate: player was not the first entity inserted")
	}
}

// populateRoom spawns monsters and items into one room. Per-room counts
// come from the count progressions; per-entity kinds from weighted
// tables whose weights are themselves depth-derived, so stronger kinds
// grow proportionally more likely with depth.
func populateRoom(grid *gamemap.Grid, store *entity.Store, room gamemap.Rect, cfg *Config) error {
	monsters := cfg.Rand.Intn(assets.MonsterCount.ValueFor(cfg.Depth) + 1)
	for i := 0; i < monsters; i++ {
		table, err := monsterTable(cfg.Depth)
		if err != nil {
			return err
		}
		def := table.Choice(cfg.Rand)
		x, y, ok := freeSpot(grid, store, room, cfg)
		if !ok {
			continue // room too crowded; skip the spawn
		}
		store.Add(entity.Entity{
			X:           x,
			Y:           y,
			Name:        def.Name,
			Glyph:       def.Glyph,
			Blocks:      true,
			Alive:       true,
			RenderOrder: entity.OrderActor,
			Sight:       def.Sight,
			Fighter: entity.Fighter{
				HP:      def.MaxHP,
				MaxHP:   def.MaxHP,
				Power:   def.Power,
				Defense: def.Defense,
			},
			Behavior: entity.BehaviorChase,
		})
	}

	items := cfg.Rand.Intn(assets.ItemCount.ValueFor(cfg.Depth) + 1)
	for i := 0; i < items; i++ {
		table, err := itemTable(cfg.Depth)
		if err != nil {
			return err
		}
		def := table.Choice(cfg.Rand)
		x, y, ok := freeSpot(grid, store, room, cfg)
		if !ok {
			continue
		}
		store.Add(entity.Entity{
			X:           x,
			Y:           y,
			Name:        def.Name,
			Glyph:       def.Glyph,
			Alive:       false,
			RenderOrder: entity.OrderItem,
			Heal:        def.Heal,
		})
	}
	return nil
}

// monsterTable builds the kind-selection table for the given depth.
// Kinds whose progression yields weight 0 at this depth are left out.
func monsterTable(depth int) (*spawn.Table[assets.MonsterDef], error) {
	var entries []spawn.Entry[assets.MonsterDef]
	for _, def := range assets.Monsters {
		if w := def.Weights.ValueFor(depth); w > 0 {
			entries = append(entries, spawn.Entry[assets.MonsterDef]{Weight: w, Value: def})
		}
	}
	t, err := spawn.NewTable(entries)
	if err != nil {
		return nil, fmt.Errorf("generate: monster table for depth %d: %w", depth, err)
	}
	return t, nil
}

func itemTable(depth int) (*spawn.Table[assets.ItemDef], error) {
	var entries []spawn.Entry[assets.ItemDef]
	for _, def := range assets.Items {
		if w := def.Weights.ValueFor(depth); w > 0 {
			entries = append(entries, spawn.Entry[assets.ItemDef]{Weight: w, Value: def})
		}
	}
	t, err := spawn.NewTable(entries)
	if err != nil {
		return nil, fmt.Errorf("generate: item table for depth %d: %w", depth, err)
	}
	return t, nil
}

// freeSpot tries a bounded number of times to find an unoccupied tile
// inside room. Occupancy means any entity, blocking or not, so spawns
// never stack.
func freeSpot(grid *gamemap.Grid, store *entity.Store, room gamemap.Rect, cfg *Config) (int, int, bool) {
	const maxAttempts = 20
	for try := 0; try < maxAttempts; try++ {
		x := room.X1 + cfg.Rand.Intn(room.X2-room.X1+1)
		y := room.Y1 + cfg.Rand.Intn(room.Y2-room.Y1+1)
		if _, taken := store.At(x, y); !taken {
			return x, y, true
		}
	}
	return 0, 0, false
}
