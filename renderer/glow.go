package renderer

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// glowKey identifies a cached fade brush: palette color plus the particle
// position quantized to the cache grid.
type glowKey struct {
	r, g, b uint8
	gx, gy  int32
}

// brushBuilder creates the radial fade texture for a palette color.
type brushBuilder func(c color.RGBA) rl.Texture2D

// GlowCache memoizes radial fade brushes per color and grid cell. Growth is
// bounded by a hard cap: once the entry count passes the cap, the next
// lookup drops the whole cache and unloads every texture. Deliberately a
// full clear, not an LRU.
type GlowCache struct {
	entries    map[glowKey]rl.Texture2D
	build      brushBuilder
	unload     func(rl.Texture2D)
	gridPx     int
	maxEntries int
}

// NewGlowCache creates a cache whose brushes are radial gradient textures:
// the color fully opaque at the center fading to transparent at radius.
func NewGlowCache(radius, density float64, gridPx, maxEntries int) *GlowCache {
	size := int(radius) * 2
	build := func(c color.RGBA) rl.Texture2D {
		inner := rl.NewColor(c.R, c.G, c.B, 255)
		outer := rl.NewColor(c.R, c.G, c.B, 0)
		img := rl.GenImageGradientRadial(size, size, float32(density), inner, outer)
		tex := rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		return tex
	}
	return newGlowCache(build, rl.UnloadTexture, gridPx, maxEntries)
}

// newGlowCache wires an explicit builder and unloader; tests use this to
// exercise the eviction bound without a graphics context.
func newGlowCache(build brushBuilder, unload func(rl.Texture2D), gridPx, maxEntries int) *GlowCache {
	if gridPx < 1 {
		gridPx = 1
	}
	return &GlowCache{
		entries:    make(map[glowKey]rl.Texture2D),
		build:      build,
		unload:     unload,
		gridPx:     gridPx,
		maxEntries: maxEntries,
	}
}

// Get returns the fade brush for a color at a position, building and
// caching it on a miss. A lookup that finds the cache past its cap clears
// everything first.
func (g *GlowCache) Get(c color.RGBA, x, y float64) rl.Texture2D {
	if len(g.entries) > g.maxEntries {
		g.Clear()
	}

	// Floor division keeps the grid uniform on both sides of the origin;
	// truncation would merge the cells straddling zero into one.
	key := glowKey{
		r:  c.R,
		g:  c.G,
		b:  c.B,
		gx: int32(math.Floor(x / float64(g.gridPx))),
		gy: int32(math.Floor(y / float64(g.gridPx))),
	}
	if tex, ok := g.entries[key]; ok {
		return tex
	}
	tex := g.build(c)
	g.entries[key] = tex
	return tex
}

// Len returns the current entry count.
func (g *GlowCache) Len() int {
	return len(g.entries)
}

// Clear unloads every cached texture and empties the cache.
func (g *GlowCache) Clear() {
	for _, tex := range g.entries {
		g.unload(tex)
	}
	g.entries = make(map[glowKey]rl.Texture2D)
}
