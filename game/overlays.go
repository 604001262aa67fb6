package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawOverlay renders the debug HUD.
func (g *Game) drawOverlay() {
	rl.DrawText(fmt.Sprintf("Tick: %d  FPS: %d", g.tick, rl.GetFPS()), 10, 10, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Active: %d  Pending: %d", len(g.field.Points), len(g.field.Pending)), 10, 35, 20, rl.White)
	if g.points != nil {
		rl.DrawText(fmt.Sprintf("Glow cache: %d", g.points.CacheLen()), 10, 60, 20, rl.White)
	}
	if g.pointer.Still() {
		rl.DrawText("POINTER STILL", 10, 85, 20, rl.Gray)
	}
	if g.paused {
		rl.DrawText("PAUSED", 10, 110, 20, rl.Yellow)
	}
}
