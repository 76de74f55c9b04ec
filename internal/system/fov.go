package system

import (
	"deepspire/internal/gamemap"
)

// octant transform matrices.
// For each octant, a (dx, dy) sweep pair maps to a world offset via:
//
//	worldX = ox + dx*xx + dy*xy
//	worldY = oy + dx*yx + dy*yy
//
// where dx sweeps horizontally within the row and dy is the fixed row
// index. These match the standard RogueBasin recursive shadowcasting
// multipliers.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// FOVEngine computes and caches the set of tiles visible from an
// observer. It owns the visible mask for one grid; the grid itself only
// keeps the monotonic Explored flags the engine sets as a side effect.
type FOVEngine struct {
	width, height int
	radius        int
	lightWalls    bool
	visible       [][]bool
	lastX, lastY  int
}

// NewFOVEngine creates an engine sized to the grid. When lightWalls is
// true, a wall at the shadow edge is itself lit. The memoized origin
// starts at an out-of-bounds sentinel so the first Compute always runs.
func NewFOVEngine(g *gamemap.Grid, radius int, lightWalls bool) *FOVEngine {
	visible := make([][]bool, g.Height)
	for y := range visible {
		visible[y] = make([]bool, g.Width)
	}
	return &FOVEngine{
		width:      g.Width,
		height:     g.Height,
		radius:     radius,
		lightWalls: lightWalls,
		visible:    visible,
		lastX:      -1,
		lastY:      -1,
	}
}

// InFov reports whether (x, y) was visible at the last Compute.
func (e *FOVEngine) InFov(x, y int) bool {
	if x < 0 || x >= e.width || y < 0 || y >= e.height {
		return false
	}
	return e.visible[y][x]
}

// Compute recalculates visibility from (ox, oy) and marks every visible
// tile explored. Recomputation is skipped when the origin matches the
// previous call — visibility only changes when the observer moves,
// because sight-blocking terrain is fixed after generation.
func (e *FOVEngine) Compute(g *gamemap.Grid, ox, oy int) {
	if ox == e.lastX && oy == e.lastY {
		return
	}
	e.lastX, e.lastY = ox, oy

	for y := range e.visible {
		for x := range e.visible[y] {
			e.visible[y][x] = false
		}
	}

	// Origin is always visible.
	e.light(g, ox, oy)

	for _, m := range octants {
		e.castLight(g, ox, oy, 1, 1.0, 0.0, m[0], m[1], m[2], m[3])
	}
}

// light marks one world position visible and explored.
func (e *FOVEngine) light(g *gamemap.Grid, x, y int) {
	if x < 0 || x >= e.width || y < 0 || y >= e.height {
		return
	}
	e.visible[y][x] = true
	g.MarkExplored(x, y)
}

// castLight casts light for one octant using recursive shadowcasting.
//
//   - j is the current row (distance from origin along the main axis)
//   - dy = -j is fixed for the entire inner sweep (the row coordinate)
//   - dx sweeps from -j to 0 (the column coordinate within the row)
//   - world position: (ox + dx*xx + dy*xy,  oy + dx*yx + dy*yy)
//   - lSlope = (dx - 0.5) / (dy + 0.5)   rSlope = (dx + 0.5) / (dy - 0.5)
//
// The radius bound compares squared distances so no floating-point
// distance is ever taken.
func (e *FOVEngine) castLight(g *gamemap.Grid, ox, oy, row int, start, end float64, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := e.radius * e.radius
	newStart := start

	for j := row; j <= e.radius; j++ {
		dy := -j // fixed row index (always negative — moving away from origin)
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			// Map sweep coordinates to world position.
			wx := ox + dx*xx + dy*xy
			wy := oy + dx*yx + dy*yy

			// Slope of the left and right edges of this cell. dy is
			// negative, so both slopes are positive for dx < 0 and
			// decrease toward 0 as dx moves right.
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue // cell is to the right of the current beam
			}
			if end > lSlope {
				break // cell is to the left; so are all remaining cells
			}

			opaque := !g.IsTransparent(wx, wy)

			// Light this cell if it lies within the radius circle. An
			// opaque target tile is only lit when walls are lit.
			if dx*dx+dy*dy < radiusSq && g.InBounds(wx, wy) {
				if !opaque || e.lightWalls {
					e.light(g, wx, wy)
				}
			}

			if blocked {
				if opaque {
					// Still inside a wall run — advance the shadow edge.
					newStart = rSlope
				} else {
					// Transitioned wall→open: resume with the updated
					// start slope.
					blocked = false
					start = newStart
				}
			} else {
				if opaque && j < e.radius {
					// Hit a new wall — cast a child scan beyond it.
					blocked = true
					e.castLight(g, ox, oy, j+1, start, lSlope, xx, xy, yx, yy)
					newStart = rSlope
				}
			}
		}
		if blocked {
			break // entire row was wall; no light beyond
		}
	}
}
