package assets

import "deepspire/internal/spawn"

// ItemDef describes one spawnable item kind. All items are consumed on
// pickup.
type ItemDef struct {
	Name    string
	Glyph   string
	Heal    int
	Weights spawn.Progression
}

// Items is the full spawnable item list.
var Items = []ItemDef{
	{
		Name:    "hyperflask",
		Glyph:   "⚗️",
		Heal:    15,
		Weights: spawn.Progression{{Level: 1, Value: 35}},
	},
	{
		Name:    "spore draught",
		Glyph:   "🧪",
		Heal:    25,
		Weights: spawn.Progression{{Level: 4, Value: 25}},
	},
}

// ItemCount caps items per room by depth.
var ItemCount = spawn.Progression{{Level: 1, Value: 1}, {Level: 4, Value: 2}}
