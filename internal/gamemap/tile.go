package gamemap

// Kind identifies the terrain of a map tile.
type Kind uint8

const (
	KindWall Kind = iota
	KindFloor
	KindStairsDown
)

// Tile holds the state of one map cell. Walkable and Transparent are
// fixed once generation finishes; Explored only ever flips false→true.
type Tile struct {
	Kind        Kind
	Walkable    bool
	Transparent bool
	Explored    bool
}

// MakeWall returns a blocking, opaque wall tile.
func MakeWall() Tile {
	return Tile{Kind: KindWall}
}

// MakeFloor returns a passable, transparent floor tile.
func MakeFloor() Tile {
	return Tile{Kind: KindFloor, Walkable: true, Transparent: true}
}

// MakeStairsDown returns a downward staircase tile.
func MakeStairsDown() Tile {
	return Tile{Kind: KindStairsDown, Walkable: true, Transparent: true}
}
