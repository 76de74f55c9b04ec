// Package render draws the world onto a tcell screen. It only reads the
// controller's queries; nothing here mutates game state.
package render

import (
	"sort"

	"deepspire/assets"
	"deepspire/internal/game"
	"deepspire/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of bottom rows reserved for the status bar and
// message log.
const hudRows = 5

// Renderer draws frames for one session.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// New creates a Renderer for the given screen.
func New(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, h-hudRows),
	}
}

// DrawFrame renders tiles, entities, and the HUD, centered on the
// player.
func (r *Renderer) DrawFrame(g *game.Game) {
	w, h := r.screen.Size()
	r.camera.ViewWidth, r.camera.ViewHeight = w, h-hudRows

	p := g.EntitySnapshot(0)
	r.camera.Center(p.X, p.Y)

	r.screen.Clear()
	r.drawMap(g)
	r.drawEntities(g)
	r.drawHUD(g)
	r.screen.Show()
}

// drawMap renders every visible or explored tile using the depth theme.
// Unexplored tiles stay black — the fog of war is absence of drawing.
func (r *Renderer) drawMap(g *game.Game) {
	theme := assets.ThemeFor(g.Depth())
	grid := g.Grid()
	style := tcell.StyleDefault.Background(tcell.ColorBlack)

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			inFov := g.IsInFov(x, y)
			if !inFov && !g.IsExplored(x, y) {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}

			var glyph string
			switch grid.At(x, y).Kind {
			case gamemap.KindWall:
				if inFov {
					glyph = theme.Wall
				} else {
					glyph = theme.DimWall
				}
			case gamemap.KindStairsDown:
				glyph = theme.Stairs
			case gamemap.KindFloor:
				if inFov {
					glyph = theme.Floor
				} else {
					glyph = theme.DimFloor
				}
			default:
				panic("render: unknown tile kind")
			}
			r.putGlyph(sx, sy, glyph, style)
		}
	}
}

// drawEntities renders all entities on visible tiles, lowest render
// order first so actors cover corpses and items.
func (r *Renderer) drawEntities(g *game.Game) {
	store := g.Store()

	ids := store.IDs()
	sort.SliceStable(ids, func(i, j int) bool {
		return store.Get(ids[i]).RenderOrder < store.Get(ids[j]).RenderOrder
	})

	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	for _, id := range ids {
		e := store.Snapshot(id)
		if e.Glyph == "" || !g.IsInFov(e.X, e.Y) {
			continue
		}
		sx, sy, onScreen := r.camera.WorldToScreen(e.X, e.Y)
		if !onScreen {
			continue
		}
		r.putGlyph(sx, sy, e.Glyph, style)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen
// position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
