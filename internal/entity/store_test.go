package entity

import "testing"

func newTestStore() *Store {
	s := NewStore()
	s.Add(Entity{X: 1, Y: 1, Name: "you", Blocks: true, Alive: true})
	return s
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	s := newTestStore()
	a := s.Add(Entity{X: 2, Y: 2, Name: "orc"})
	b := s.Add(Entity{X: 3, Y: 3, Name: "troll"})
	if a != 1 || b != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", a, b)
	}
	if s.Get(a).Name != "orc" || s.Get(b).Name != "troll" {
		t.Fatal("ids should address the entity they were minted for")
	}
}

func TestPlayerIsFirst(t *testing.T) {
	s := newTestStore()
	p := s.Player()
	if p.ID != PlayerID {
		t.Fatalf("player id = %d, want %d", p.ID, PlayerID)
	}
	if p.Name != "you" {
		t.Fatalf("player name = %q", p.Name)
	}
}

func TestGetUnknownIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Get with an unknown id should panic")
		}
	}()
	newTestStore().Get(42)
}

func TestAtTieBreaksByInsertionOrder(t *testing.T) {
	s := newTestStore()
	first := s.Add(Entity{X: 4, Y: 4, Name: "orc"})
	s.Add(Entity{X: 4, Y: 4, Name: "troll"})

	id, ok := s.At(4, 4)
	if !ok {
		t.Fatal("expected an occupant at (4,4)")
	}
	if id != first {
		t.Fatalf("first-inserted entity should win the tie: got %d, want %d", id, first)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newTestStore()
	snap := s.Snapshot(PlayerID)
	snap.X = 99
	if s.Get(PlayerID).X == 99 {
		t.Fatal("mutating a snapshot must not touch the store")
	}
}

func TestBlockerAt(t *testing.T) {
	s := newTestStore()
	orc := s.Add(Entity{X: 2, Y: 1, Name: "orc", Blocks: true, Alive: true})
	s.Add(Entity{X: 3, Y: 1, Name: "hyperflask"}) // non-blocking

	if !s.BlockerAt(2, 1, None) {
		t.Error("orc should block (2,1)")
	}
	if s.BlockerAt(3, 1, None) {
		t.Error("an item should not block")
	}
	if s.BlockerAt(2, 1, orc) {
		t.Error("excluding the orc, (2,1) is free")
	}
	if s.BlockerAt(5, 5, None) {
		t.Error("empty tile should not be blocked")
	}
}

func TestLivingAtSkipsCorpses(t *testing.T) {
	s := newTestStore()
	orc := s.Add(Entity{X: 2, Y: 2, Name: "orc", Blocks: true, Alive: true})
	s.Get(orc).Die()
	troll := s.Add(Entity{X: 2, Y: 2, Name: "troll", Blocks: true, Alive: true})

	id, ok := s.LivingAt(2, 2, None)
	if !ok || id != troll {
		t.Fatalf("LivingAt should skip the corpse and find the troll; got (%d,%v)", id, ok)
	}

	s.Get(troll).Die()
	if _, ok := s.LivingAt(2, 2, None); ok {
		t.Fatal("a tile holding only corpses has no living occupant")
	}
}

func TestDieKeepsEntityQueryable(t *testing.T) {
	s := newTestStore()
	orc := s.Add(Entity{X: 2, Y: 2, Name: "orc", Blocks: true, Alive: true, Behavior: BehaviorChase})
	s.Get(orc).Die()

	e := s.Snapshot(orc)
	if e.Alive || e.Blocks {
		t.Error("a corpse neither lives nor blocks")
	}
	if e.Behavior != BehaviorNone {
		t.Error("a corpse does not act")
	}
	if e.Name != "remains of orc" {
		t.Errorf("corpse name = %q", e.Name)
	}
	if e.X != 2 || e.Y != 2 {
		t.Error("the corpse stays at its last position")
	}
	if id, ok := s.At(2, 2); !ok || id != orc {
		t.Error("the corpse must remain positionally queryable")
	}
}
