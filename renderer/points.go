package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/EternoSeeker/line-follow-cursor/config"
	"github.com/EternoSeeker/line-follow-cursor/systems"
)

// PointRenderer draws the active particles: fading trail strokes, a soft
// radial glow, and a solid core dot per particle.
type PointRenderer struct {
	glow       *GlowCache
	coreRadius float32
	trailAlpha float64
}

// NewPointRenderer creates a renderer with its own glow cache.
func NewPointRenderer(cfg *config.Config) *PointRenderer {
	return &PointRenderer{
		glow: NewGlowCache(
			cfg.Glow.Radius,
			cfg.Glow.Density,
			cfg.Glow.GridPx,
			cfg.Glow.MaxEntries,
		),
		coreRadius: float32(cfg.Points.Radius),
		trailAlpha: cfg.Points.TrailAlpha,
	}
}

// Draw renders all particles in creation order.
func (r *PointRenderer) Draw(points []systems.Particle) {
	for i := range points {
		p := &points[i]
		alpha := p.Alpha()

		r.drawTrail(p, alpha)

		// Glow blends additively so overlapping points brighten.
		tex := r.glow.Get(p.Color, p.X, p.Y)
		rl.BeginBlendMode(rl.BlendAdditive)
		rl.DrawTexture(
			tex,
			int32(p.X)-tex.Width/2,
			int32(p.Y)-tex.Height/2,
			rl.Fade(rl.White, float32(alpha)),
		)
		rl.EndBlendMode()

		core := rl.NewColor(p.Color.R, p.Color.G, p.Color.B, uint8(alpha*255))
		rl.DrawCircleV(rl.Vector2{X: float32(p.X), Y: float32(p.Y)}, r.coreRadius, core)
	}
}

// drawTrail strokes the recent-position history as connected segments,
// each segment fading with age: newest nearly at the particle's own
// opacity, oldest almost transparent.
func (r *PointRenderer) drawTrail(p *systems.Particle, alpha float64) {
	n := len(p.Trail)
	for i := 1; i < n; i++ {
		a := float64(i) / float64(n) * alpha * r.trailAlpha
		col := rl.NewColor(p.Color.R, p.Color.G, p.Color.B, uint8(a*255))
		rl.DrawLineEx(
			rl.Vector2{X: float32(p.Trail[i-1].X), Y: float32(p.Trail[i-1].Y)},
			rl.Vector2{X: float32(p.Trail[i].X), Y: float32(p.Trail[i].Y)},
			1.5,
			col,
		)
	}
}

// CacheLen returns the glow cache entry count, for the debug overlay.
func (r *PointRenderer) CacheLen() int {
	return r.glow.Len()
}

// Unload releases the glow textures.
func (r *PointRenderer) Unload() {
	r.glow.Clear()
}
