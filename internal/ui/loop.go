// Package ui connects the terminal surfaces to the turn controller: it
// owns the draw/poll loop, translating key events into abstract actions
// and frames out of the controller's read-only queries.
package ui

import (
	"deepspire/internal/game"
	"deepspire/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Run drives one session on the given screen until the player quits.
// It blocks in PollEvent between turns; that is the engine's only
// blocking point. The caller owns screen setup and Fini.
func Run(screen tcell.Screen, g *game.Game) {
	renderer := render.New(screen)

	for {
		renderer.DrawFrame(g)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if g.Advance(keyToAction(ev)) == game.Exited {
				return
			}
		}
	}
}
