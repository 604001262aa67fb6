package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// CursorRenderer draws the custom cursor visual that replaces the hidden
// OS cursor: a thin ring with a solid center dot.
type CursorRenderer struct {
	ringRadius float32
	dotRadius  float32
	color      rl.Color
}

// NewCursorRenderer creates the cursor visual and hides the OS cursor.
func NewCursorRenderer() *CursorRenderer {
	rl.HideCursor()
	return &CursorRenderer{
		ringRadius: 9,
		dotRadius:  2.5,
		color:      rl.NewColor(235, 235, 245, 220),
	}
}

// Draw renders the cursor at the live pointer position.
func (r *CursorRenderer) Draw(x, y float64) {
	rl.DrawCircleLines(int32(x), int32(y), r.ringRadius, r.color)
	rl.DrawCircleV(rl.Vector2{X: float32(x), Y: float32(y)}, r.dotRadius, r.color)
}
