// Glow brush preview tool - interactive visualization with sliders.
//
// Usage: go run ./cmd/glowpreview
package main

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/EternoSeeker/line-follow-cursor/config"
)

const (
	windowWidth  = 860
	windowHeight = 520
	previewSize  = 480
	panelWidth   = windowWidth - previewSize - 30
)

// GlowParams holds the radial fade brush parameters.
type GlowParams struct {
	Radius  float32
	Density float32
	Color   int
}

func main() {
	config.MustInit("")
	cfg := config.Cfg()
	palette := cfg.Derived.Palette

	rl.InitWindow(windowWidth, windowHeight, "Glow Brush Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := GlowParams{
		Radius:  float32(cfg.Glow.Radius),
		Density: float32(cfg.Glow.Density),
	}

	var texture rl.Texture2D
	needsRegen := true
	defer func() { rl.UnloadTexture(texture) }()

	for !rl.WindowShouldClose() {
		if needsRegen {
			rl.UnloadTexture(texture)
			c := palette[params.Color]
			size := int(params.Radius) * 2
			img := rl.GenImageGradientRadial(
				size, size,
				params.Density,
				rl.NewColor(c.R, c.G, c.B, 255),
				rl.NewColor(c.R, c.G, c.B, 0),
			)
			texture = rl.LoadTextureFromImage(img)
			rl.UnloadImage(img)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(20, 20, 32, 255))

		// Draw preview centered in its pane
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)
		rl.DrawTexture(
			texture,
			10+previewSize/2-texture.Width/2,
			10+previewSize/2-texture.Height/2,
			rl.White,
		)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Glow Brush Parameters", int32(panelX), int32(panelY), 20, rl.RayWhite)
		panelY += 35

		rl.DrawText("Radius (gradient extent, px)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newRadius := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"20", "200",
			params.Radius, 20, 200,
		)
		rl.DrawText(fmt.Sprintf("%.0f", params.Radius), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.RayWhite)
		if newRadius != params.Radius {
			params.Radius = newRadius
			needsRegen = true
		}
		panelY += 35

		rl.DrawText("Density (falloff steepness)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newDensity := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0.0", "1.0",
			params.Density, 0, 1,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.Density), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.RayWhite)
		if newDensity != params.Density {
			params.Density = newDensity
			needsRegen = true
		}
		panelY += 35

		rl.DrawText("Palette color", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Next Color") {
			params.Color = (params.Color + 1) % len(palette)
			needsRegen = true
		}
		c := palette[params.Color]
		rl.DrawRectangle(int32(panelX)+130, int32(panelY), 30, 30, rl.NewColor(c.R, c.G, c.B, 255))
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = GlowParams{
				Radius:  float32(cfg.Glow.Radius),
				Density: float32(cfg.Glow.Density),
			}
			needsRegen = true
		}

		rl.EndDrawing()
	}
}
