package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes keyboard input and window resize.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyD) {
		g.debug = !g.debug
	}
}

// handleResize propagates new surface dimensions to the field. Particle
// positions are not rescaled; only future spawn positions use the new
// extents.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	g.field.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
}

// pollPointer compares the mouse position against the last poll and turns
// changes into pointer-move events. The first observed move wakes the
// field from dormancy.
func (g *Game) pollPointer() {
	pos := rl.GetMousePosition()
	x, y := float64(pos.X), float64(pos.Y)

	if !g.polled {
		// Startup position is not a move.
		g.polled = true
		g.lastPollX, g.lastPollY = x, y
		return
	}
	if x == g.lastPollX && y == g.lastPollY {
		return
	}
	g.lastPollX, g.lastPollY = x, y

	if g.pointer.Record(x, y) {
		g.field.Activate()
	}
}
