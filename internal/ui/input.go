package ui

import (
	"deepspire/internal/game"

	"github.com/gdamore/tcell/v2"
)

// keyToAction maps a tcell key event to an abstract game action. Keys
// the game does not know yield ActionNone, which the controller treats
// as an ignored input.
func keyToAction(ev *tcell.EventKey) game.Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return game.ActionMoveN
	case tcell.KeyDown:
		return game.ActionMoveS
	case tcell.KeyRight:
		return game.ActionMoveE
	case tcell.KeyLeft:
		return game.ActionMoveW
	case tcell.KeyEscape:
		return game.ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return game.ActionMoveN
	case 'j', 'J':
		return game.ActionMoveS
	case 'l', 'L':
		return game.ActionMoveE
	case 'h', 'H':
		return game.ActionMoveW
	case 'y', 'Y':
		return game.ActionMoveNW
	case 'u', 'U':
		return game.ActionMoveNE
	case 'b', 'B':
		return game.ActionMoveSW
	case 'n', 'N':
		return game.ActionMoveSE
	case '.':
		return game.ActionWait
	case ',':
		return game.ActionPickup
	case '>':
		return game.ActionDescend
	case 'm', 'M':
		return game.ActionToggleLog
	case 'q', 'Q':
		return game.ActionQuit
	}
	return game.ActionNone
}
