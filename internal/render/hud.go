package render

import (
	"fmt"

	"deepspire/internal/game"

	"github.com/gdamore/tcell/v2"
)

// drawHUD renders the status bar and, when toggled on, the message log
// at the bottom of the screen.
func (r *Renderer) drawHUD(g *game.Game) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)

	p := g.EntitySnapshot(0)
	status := fmt.Sprintf("HP: %d/%d  ATK:%d DEF:%d  Depth: %d  The Deepspire",
		p.Fighter.HP, p.Fighter.MaxHP, p.Fighter.Power, p.Fighter.Defense, g.Depth())
	if !g.PlayerAlive() {
		status = fmt.Sprintf("YOU DIED  Depth: %d  (q to quit)", g.Depth())
	}
	r.drawText(0, hudY+1, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	if !g.ShowLog() {
		return
	}
	messages := g.Messages()
	start := len(messages) - 3
	if start < 0 {
		start = 0
	}
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+2+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}
