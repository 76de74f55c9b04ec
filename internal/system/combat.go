package system

import (
	"deepspire/internal/entity"
	"deepspire/internal/gamemap"
)

// BumpOutcome classifies what happened when an entity moved into a
// direction. Every consumer must handle all three variants.
type BumpOutcome uint8

const (
	BumpMoved    BumpOutcome = iota // position updated
	BumpBlocked                    // wall or occupied tile; nothing changed
	BumpAttacked                   // a living entity stood at the destination
)

// BumpResult describes the outcome of one MoveOrAttack call. Target,
// Damage, and Killed are meaningful only for BumpAttacked.
type BumpResult struct {
	Outcome BumpOutcome
	Target  entity.ID
	Damage  int
	Killed  bool
}

// MoveOrAttack resolves a directional action for entity id: if a living
// entity occupies the destination (first in store order, the actor
// excluded) the action is an attack, otherwise it delegates to Move.
// Corpses are never targets, so walking onto a dead entity's tile is a
// plain move.
func MoveOrAttack(g *gamemap.Grid, s *entity.Store, id entity.ID, dx, dy int) BumpResult {
	e := s.Get(id)
	nx, ny := e.X+dx, e.Y+dy

	if target, ok := s.LivingAt(nx, ny, id); ok {
		dmg, killed := Attack(s, id, target)
		return BumpResult{Outcome: BumpAttacked, Target: target, Damage: dmg, Killed: killed}
	}
	if Move(g, s, id, dx, dy) {
		return BumpResult{Outcome: BumpMoved, Target: entity.None}
	}
	return BumpResult{Outcome: BumpBlocked, Target: entity.None}
}

// Attack resolves one attack. Damage is max(power − defense, 0). If the
// defender's HP drops to 0 or below it becomes a corpse: Alive and
// Blocks flip false but the entity stays in the store at its position.
// The attack is fully resolved before anything can react; there is no
// counter-attack mechanism.
func Attack(s *entity.Store, attackerID, defenderID entity.ID) (damage int, killed bool) {
	attacker := s.Get(attackerID)
	defender := s.Get(defenderID)

	damage = attacker.Fighter.Power - defender.Fighter.Defense
	if damage < 0 {
		damage = 0
	}
	defender.Fighter.HP -= damage
	if defender.Fighter.HP <= 0 {
		defender.Die()
		killed = true
	}
	return damage, killed
}
