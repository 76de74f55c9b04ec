package system

import (
	"deepspire/internal/entity"
	"deepspire/internal/gamemap"
)

// IsBlocked reports whether (x, y) cannot be entered: out of bounds, a
// non-walkable tile, or occupied by a blocking entity. O(entities).
func IsBlocked(g *gamemap.Grid, s *entity.Store, x, y int) bool {
	if !g.IsWalkable(x, y) {
		return true
	}
	return s.BlockerAt(x, y, entity.None)
}

// Move attempts to move entity id by (dx, dy) and reports whether it
// moved. A blocked destination is a silent rejection, never an error —
// bumping into a wall or an occupied tile is a normal outcome. The
// mover's own tile never blocks its own move; it is leaving it.
func Move(g *gamemap.Grid, s *entity.Store, id entity.ID, dx, dy int) bool {
	e := s.Get(id)
	nx, ny := e.X+dx, e.Y+dy
	if !g.IsWalkable(nx, ny) {
		return false
	}
	if s.BlockerAt(nx, ny, id) {
		return false
	}
	e.X, e.Y = nx, ny
	return true
}
