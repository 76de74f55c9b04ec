package assets

// TileTheme holds the emoji glyphs used to draw one depth's terrain.
// Emoji render with their own colors, so visible vs explored-but-dark
// states use distinct glyphs instead of terminal FG tinting.
type TileTheme struct {
	Wall     string // fully-visible wall tile
	Floor    string // fully-visible floor tile
	DimWall  string // explored but not currently visible wall
	DimFloor string // explored but not currently visible floor
	Stairs   string // stairs down, visible or explored
}

// Themes maps depth (1-indexed, clamped) to its tile set.
var Themes = []TileTheme{
	{}, // depth 0 unused
	{
		// Depth 1 — Rootcellars: earth and stone
		Wall:     "🪨",
		Floor:    "🟫",
		DimWall:  "🌑",
		DimFloor: "🔲",
		Stairs:   "🔽",
	},
	{
		// Depth 2-3 — Fungal Galleries
		Wall:     "🍄",
		Floor:    "🌿",
		DimWall:  "🌑",
		DimFloor: "🔲",
		Stairs:   "🔽",
	},
	{
		// Depth 4-5 — Drowned Vaults
		Wall:     "🫧",
		Floor:    "🌊",
		DimWall:  "🌑",
		DimFloor: "🔲",
		Stairs:   "🔽",
	},
	{
		// Depth 6-7 — Ember Forges
		Wall:     "🌋",
		Floor:    "🔥",
		DimWall:  "🌑",
		DimFloor: "🔲",
		Stairs:   "🔽",
	},
	{
		// Depth 8+ — The Deepspire Heart
		Wall:     "🌈",
		Floor:    "🌟",
		DimWall:  "🌑",
		DimFloor: "🔲",
		Stairs:   "🔽",
	},
}

// ThemeFor returns the tile theme for the given depth.
func ThemeFor(depth int) TileTheme {
	switch {
	case depth <= 1:
		return Themes[1]
	case depth <= 3:
		return Themes[2]
	case depth <= 5:
		return Themes[3]
	case depth <= 7:
		return Themes[4]
	default:
		return Themes[5]
	}
}
