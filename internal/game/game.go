// Package game sequences player actions, monster turns, and visibility
// refreshes for one session. The controller is pure state-machine code:
// it consumes abstract actions and exposes read-only queries, leaving
// drawing and key handling to the surfaces around it.
package game

import (
	"fmt"
	"math/rand"

	"deepspire/internal/config"
	"deepspire/internal/entity"
	"deepspire/internal/gamemap"
	"deepspire/internal/generate"
	"deepspire/internal/system"
)

// State is the controller's position in the turn cycle. Between Advance
// calls the controller always rests at StateAwaitingInput or
// StateTerminated; the two resolving states exist within one call.
type State uint8

const (
	StateAwaitingInput State = iota
	StateResolvingPlayerAction
	StateResolvingMonsterTurns
	StateTerminated
)

// TurnResult classifies one player input. Turn cost is decoupled from
// input cost: only TookTurn lets the monsters act.
type TurnResult uint8

const (
	TookTurn TurnResult = iota
	DidntTakeTurn
	Exit
)

// StepResult is what Advance reports to the driving loop.
type StepResult uint8

const (
	ContinuePlaying StepResult = iota
	Exited
)

const messageCap = 50

// Game is the top-level turn controller for one session. It owns the
// current level's grid and entity store exclusively; both are replaced
// wholesale when the player descends.
type Game struct {
	cfg      config.Config
	rng      *rand.Rand
	grid     *gamemap.Grid
	store    *entity.Store
	fov      *system.FOVEngine
	depth    int
	state    State
	messages []string
	showLog  bool
}

// New generates depth 1 and returns a controller awaiting input.
func New(cfg config.Config, rng *rand.Rand) (*Game, error) {
	g := &Game{cfg: cfg, rng: rng, showLog: true}
	if err := g.loadLevel(1); err != nil {
		return nil, err
	}
	g.addMessage("You descend into the Deepspire. Arrow keys or hjklyubn to move.")
	return g, nil
}

// NewWithLevel wraps an already-generated level. Collaborators and
// tests use it to drive the controller over a known grid and store.
func NewWithLevel(cfg config.Config, grid *gamemap.Grid, store *entity.Store, rng *rand.Rand) *Game {
	g := &Game{cfg: cfg, rng: rng, grid: grid, store: store, depth: 1, showLog: true}
	g.fov = system.NewFOVEngine(grid, cfg.FOVRadius, cfg.LightWalls)
	p := store.Player()
	g.fov.Compute(grid, p.X, p.Y)
	return g
}

// loadLevel generates and installs the given depth. The player's HP
// carries across the transition; everything else is fresh — the old
// grid and store are discarded wholesale.
func (g *Game) loadLevel(depth int) error {
	savedHP := -1
	if g.store != nil {
		savedHP = g.store.Player().Fighter.HP
	}

	grid, store, err := generate.Generate(levelConfig(g.cfg, depth, g.rng))
	if err != nil {
		return fmt.Errorf("game: load level %d: %w", depth, err)
	}
	g.grid = grid
	g.store = store
	g.depth = depth

	p := store.Player()
	if savedHP > 0 && savedHP < p.Fighter.MaxHP {
		p.Fighter.HP = savedHP
	}

	g.fov = system.NewFOVEngine(grid, g.cfg.FOVRadius, g.cfg.LightWalls)
	g.fov.Compute(grid, p.X, p.Y)
	return nil
}

// Advance drives one full controller step for the given action: resolve
// the player's action, then (only if it consumed a turn) one action
// from every other living entity, then return to awaiting input.
func (g *Game) Advance(action Action) StepResult {
	if g.state == StateTerminated {
		return Exited
	}

	g.state = StateResolvingPlayerAction
	switch g.resolvePlayerAction(action) {
	case Exit:
		g.state = StateTerminated
		return Exited
	case TookTurn:
		g.state = StateResolvingMonsterTurns
		g.resolveMonsterTurns()
	case DidntTakeTurn:
		// Loops straight back without advancing any other entity.
	}

	g.state = StateAwaitingInput
	return ContinuePlaying
}

// resolvePlayerAction classifies one input into exactly one TurnResult.
func (g *Game) resolvePlayerAction(action Action) TurnResult {
	switch action {
	case ActionQuit:
		// Quit works regardless of player liveness.
		return Exit
	case ActionNone:
		return DidntTakeTurn
	case ActionToggleLog:
		g.showLog = !g.showLog
		return DidntTakeTurn
	}

	// Once the game-over condition holds, only the actions above do
	// anything.
	if !g.store.Player().Alive {
		return DidntTakeTurn
	}

	switch action {
	case ActionWait:
		return TookTurn

	case ActionPickup:
		g.tryPickup()
		return TookTurn

	case ActionDescend:
		g.tryDescend()
		// Descending swaps in a fresh level; its monsters act only
		// after the player's first real action there.
		return DidntTakeTurn

	default:
		dx, dy := actionDelta(action)
		if dx == 0 && dy == 0 {
			return DidntTakeTurn
		}
		g.bump(dx, dy)
		return TookTurn
	}
}

// bump resolves one directional player action through the combat
// resolver and refreshes visibility when the player actually moved.
func (g *Game) bump(dx, dy int) {
	res := system.MoveOrAttack(g.grid, g.store, entity.PlayerID, dx, dy)
	switch res.Outcome {
	case system.BumpMoved:
		p := g.store.Player()
		g.fov.Compute(g.grid, p.X, p.Y)
	case system.BumpAttacked:
		target := g.store.Snapshot(res.Target)
		if res.Killed {
			g.addMessage(fmt.Sprintf("You strike down the %s!", strippedName(target)))
		} else {
			g.addMessage(fmt.Sprintf("You hit the %s for %d damage.", target.Name, res.Damage))
		}
	case system.BumpBlocked:
		// Walking into a wall is a normal outcome; no message.
	}
}

// resolveMonsterTurns runs one pass of the monster AI and reports its
// attacks in the log.
func (g *Game) resolveMonsterTurns() {
	for _, ev := range system.TakeTurns(g.grid, g.store) {
		actor := g.store.Snapshot(ev.Actor)
		if ev.Damage > 0 {
			g.addMessage(fmt.Sprintf("The %s hits you for %d damage.", actor.Name, ev.Damage))
		} else {
			g.addMessage(fmt.Sprintf("The %s claws at you but does no harm.", actor.Name))
		}
		if ev.Killed {
			g.addMessage("You died. Press q to return to the surface.")
		}
	}
}

// tryPickup consumes the first unspent item at the player's position.
// Spent items stay in the store, there is no removal path, but lose
// their glyph and heal value.
func (g *Game) tryPickup() {
	p := g.store.Player()
	for _, id := range g.store.IDs() {
		e := g.store.Get(id)
		if e.Heal <= 0 || e.X != p.X || e.Y != p.Y {
			continue
		}
		healed := min(e.Heal, p.Fighter.MaxHP-p.Fighter.HP)
		p.Fighter.HP += healed
		g.addMessage(fmt.Sprintf("The %s restores %d HP.", e.Name, healed))
		e.Heal = 0
		e.Glyph = ""
		return
	}
	g.addMessage("Nothing to pick up here.")
}

// tryDescend regenerates the session one level deeper when the player
// stands on stairs.
func (g *Game) tryDescend() {
	p := g.store.Player()
	if g.grid.At(p.X, p.Y).Kind != gamemap.KindStairsDown {
		g.addMessage("There are no stairs down here.")
		return
	}
	if g.depth >= g.cfg.MaxDepth {
		g.addMessage("The spire goes no deeper.")
		return
	}
	if err := g.loadLevel(g.depth + 1); err != nil {
		// Generation failed mid-session; a defect in the configuration
		// would have been caught at setup.
		panic(err)
	}
	g.addMessage(fmt.Sprintf("You descend to depth %d.", g.depth))
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > messageCap {
		g.messages = g.messages[len(g.messages)-messageCap:]
	}
}

// strippedName returns the entity's pre-corpse name for kill messages.
func strippedName(e entity.Entity) string {
	const prefix = "remains of "
	if len(e.Name) > len(prefix) && e.Name[:len(prefix)] == prefix {
		return e.Name[len(prefix):]
	}
	return e.Name
}

// ─── read-only queries for the presentation surface ─────────────────────────

// State returns the controller's current state.
func (g *Game) State() State { return g.state }

// Depth returns the current dungeon depth, 1-indexed.
func (g *Game) Depth() int { return g.depth }

// Grid exposes the current level's tile grid for drawing.
func (g *Game) Grid() *gamemap.Grid { return g.grid }

// Store exposes the current level's entity store for drawing.
func (g *Game) Store() *entity.Store { return g.store }

// IsInFov reports whether (x, y) is currently visible to the player.
func (g *Game) IsInFov(x, y int) bool { return g.fov.InFov(x, y) }

// IsExplored reports whether (x, y) has ever been visible.
func (g *Game) IsExplored(x, y int) bool { return g.grid.IsExplored(x, y) }

// EntityAt returns the first entity in insertion order at (x, y).
func (g *Game) EntityAt(x, y int) (entity.ID, bool) { return g.store.At(x, y) }

// EntitySnapshot returns a copy of the entity with the given id.
func (g *Game) EntitySnapshot(id entity.ID) entity.Entity { return g.store.Snapshot(id) }

// Messages returns the log, oldest first.
func (g *Game) Messages() []string { return g.messages }

// ShowLog reports whether the message log display is toggled on.
func (g *Game) ShowLog() bool { return g.showLog }

// PlayerAlive reports whether the game-over condition does not hold.
func (g *Game) PlayerAlive() bool { return g.store.Player().Alive }
