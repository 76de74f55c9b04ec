// Package entity holds the shared, insertion-ordered collection that
// every resolver operates on. Entities are addressed by stable integer
// ID, never by reference: any cross-entity query goes through the Store,
// so one entity can be mutated while others (including itself) are read.
package entity

// ID addresses an entity in a Store. The Store assigns IDs densely in
// insertion order and never removes or reuses one within a level, so an
// ID doubles as the entity's index.
type ID int

// PlayerID is reserved for the player, which is always the first entity
// inserted into a Store.
const PlayerID ID = 0

// None is the ID returned when a positional query matches nothing. No
// valid entity carries it.
const None ID = -1

// Behavior selects how an entity acts during the monster pass.
type Behavior uint8

const (
	// BehaviorNone never acts. The player and items carry it, and dead
	// monsters are demoted to it.
	BehaviorNone Behavior = iota
	// BehaviorChase steps toward the player when in sight and attacks
	// when adjacent.
	BehaviorChase
)

// Fighter holds combat stats. Entities with MaxHP 0 neither deal nor
// take damage.
type Fighter struct {
	HP      int
	MaxHP   int
	Power   int
	Defense int
}

// Entity is one thing on the map: the player, a monster, an item, or a
// corpse. Position is always within grid bounds.
type Entity struct {
	ID          ID
	X, Y        int
	Name        string
	Glyph       string
	Blocks      bool
	Alive       bool
	RenderOrder int
	Sight       int
	Heal        int // HP restored when picked up (items only)
	Fighter     Fighter
	Behavior    Behavior
}

// Render order bands, lowest drawn first.
const (
	OrderCorpse = 1
	OrderItem   = 2
	OrderActor  = 5
	OrderPlayer = 10
)

const corpseGlyph = "💀"

// Die turns the entity into a corpse. It stops blocking and acting but
// keeps its position and stays in the store so it can still be drawn
// and queried.
func (e *Entity) Die() {
	e.Alive = false
	e.Blocks = false
	e.Behavior = BehaviorNone
	e.Glyph = corpseGlyph
	e.Name = "remains of " + e.Name
	e.RenderOrder = OrderCorpse
}
