package entity

import "fmt"

// Store is the insertion-ordered entity collection for one dungeon
// level. Order is stable: it is the monster-turn iteration order and
// the tie-break when several entities occupy the same tile.
type Store struct {
	entities []Entity
}

// NewStore creates an empty Store. The first Add must be the player.
func NewStore() *Store {
	return &Store{}
}

// Add inserts e, assigns it the next ID, and returns that ID.
func (s *Store) Add(e Entity) ID {
	id := ID(len(s.entities))
	e.ID = id
	s.entities = append(s.entities, e)
	return id
}

// Len returns the number of entities ever inserted (corpses included).
func (s *Store) Len() int {
	return len(s.entities)
}

// Get returns a mutable reference to the entity with the given id. The
// pointer is into the store's backing array and must not be retained
// across a subsequent Add. An unknown id is a defect, not a runtime
// condition.
func (s *Store) Get(id ID) *Entity {
	if id < 0 || int(id) >= len(s.entities) {
		panic(fmt.Sprintf("entity: no entity with id %d", id))
	}
	return &s.entities[id]
}

// Snapshot returns a copy of the entity with the given id.
func (s *Store) Snapshot(id ID) Entity {
	return *s.Get(id)
}

// Player returns the player entity. A store whose first entity is not
// the player violates a construction invariant.
func (s *Store) Player() *Entity {
	p := s.Get(PlayerID)
	if p.ID != PlayerID {
		panic("entity: id 0 is not the player")
	}
	return p
}

// IDs returns every ID in insertion order.
func (s *Store) IDs() []ID {
	ids := make([]ID, len(s.entities))
	for i := range s.entities {
		ids[i] = ID(i)
	}
	return ids
}

// At returns the first entity in insertion order at (x, y), or None.
func (s *Store) At(x, y int) (ID, bool) {
	for i := range s.entities {
		if s.entities[i].X == x && s.entities[i].Y == y {
			return ID(i), true
		}
	}
	return None, false
}

// BlockerAt reports whether a blocking entity other than exclude
// occupies (x, y). Pass None to exclude nothing.
func (s *Store) BlockerAt(x, y int, exclude ID) bool {
	for i := range s.entities {
		e := &s.entities[i]
		if e.ID == exclude || !e.Blocks {
			continue
		}
		if e.X == x && e.Y == y {
			return true
		}
	}
	return false
}

// LivingAt returns the first living entity in insertion order at
// (x, y), skipping exclude. Corpses never match: positional scanning
// alone cannot distinguish liveness, so targeting goes through here.
func (s *Store) LivingAt(x, y int, exclude ID) (ID, bool) {
	for i := range s.entities {
		e := &s.entities[i]
		if e.ID == exclude || !e.Alive {
			continue
		}
		if e.X == x && e.Y == y {
			return ID(i), true
		}
	}
	return None, false
}
