package system

import (
	"deepspire/internal/entity"
	"deepspire/internal/gamemap"
)

// TurnEvent records one monster attack on the player during a pass.
type TurnEvent struct {
	Actor  entity.ID
	Damage int
	Killed bool // the player died from this hit
}

// TakeTurns runs one action for every living entity with a behavior, in
// store order, the player excluded. Entities act on the live store:
// each actor observes the effects of entities that already acted in the
// same pass — there is no snapshot isolation.
func TakeTurns(g *gamemap.Grid, s *entity.Store) []TurnEvent {
	var events []TurnEvent
	for _, id := range s.IDs() {
		if id == entity.PlayerID {
			continue
		}
		m := s.Get(id)
		if !m.Alive || m.Behavior != entity.BehaviorChase {
			continue
		}
		player := s.Player()
		if !player.Alive {
			break // no one left to hunt
		}
		if ev, attacked := chase(g, s, id); attacked {
			events = append(events, ev)
		}
	}
	return events
}

// chase steps entity id toward the player and bump-attacks when the
// player occupies the destination. Monsters only ever attack the
// player; another monster in the way makes them slide along one axis.
func chase(g *gamemap.Grid, s *entity.Store, id entity.ID) (TurnEvent, bool) {
	m := s.Get(id)
	player := s.Player()

	dx := player.X - m.X
	dy := player.Y - m.Y
	if dx*dx+dy*dy > m.Sight*m.Sight {
		return TurnEvent{}, false
	}

	stepX, stepY := sign(dx), sign(dy)
	nx, ny := m.X+stepX, m.Y+stepY

	if target, ok := s.LivingAt(nx, ny, id); ok {
		if target == entity.PlayerID {
			dmg, killed := Attack(s, id, entity.PlayerID)
			return TurnEvent{Actor: id, Damage: dmg, Killed: killed}, true
		}
		// A fellow monster blocks the diagonal — try each axis alone.
		if stepX == 0 || !Move(g, s, id, stepX, 0) {
			Move(g, s, id, 0, stepY)
		}
		return TurnEvent{}, false
	}

	if !Move(g, s, id, stepX, stepY) {
		// Diagonal blocked by terrain — fall back to one axis.
		if stepX == 0 || !Move(g, s, id, stepX, 0) {
			Move(g, s, id, 0, stepY)
		}
	}
	return TurnEvent{}, false
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
