package assets

import "deepspire/internal/spawn"

// MonsterDef describes one spawnable monster kind. Weights is the
// depth-keyed selection weight: rarer, stronger kinds gain weight at
// greater depth without changing the selection mechanism.
type MonsterDef struct {
	Name    string
	Glyph   string
	MaxHP   int
	Power   int
	Defense int
	Sight   int
	Weights spawn.Progression
}

// Monsters is the full spawnable bestiary.
var Monsters = []MonsterDef{
	{
		Name:    "orc",
		Glyph:   "👹",
		MaxHP:   20,
		Power:   4,
		Defense: 0,
		Sight:   8,
		Weights: spawn.Progression{{Level: 1, Value: 80}},
	},
	{
		Name:    "troll",
		Glyph:   "🧌",
		MaxHP:   30,
		Power:   8,
		Defense: 2,
		Sight:   8,
		Weights: spawn.Progression{{Level: 3, Value: 15}, {Level: 5, Value: 30}, {Level: 7, Value: 60}},
	},
	{
		Name:    "ashwight",
		Glyph:   "👻",
		MaxHP:   16,
		Power:   6,
		Defense: 1,
		Sight:   10,
		Weights: spawn.Progression{{Level: 6, Value: 20}},
	},
}

// MonsterCount caps monsters per room by depth.
var MonsterCount = spawn.Progression{{Level: 1, Value: 2}, {Level: 4, Value: 3}, {Level: 6, Value: 5}}

// Player is the fixed player definition.
var Player = struct {
	Name    string
	Glyph   string
	MaxHP   int
	Power   int
	Defense int
}{
	Name:    "you",
	Glyph:   "🧙",
	MaxHP:   30,
	Power:   5,
	Defense: 2,
}
