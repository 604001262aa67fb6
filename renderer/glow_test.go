package renderer

import (
	"image/color"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// fakeCache returns a cache backed by counting stubs instead of GPU
// textures.
func fakeCache(gridPx, maxEntries int) (g *GlowCache, built, unloaded *int) {
	built = new(int)
	unloaded = new(int)
	build := func(c color.RGBA) rl.Texture2D {
		*built++
		return rl.Texture2D{ID: uint32(*built)}
	}
	unload := func(rl.Texture2D) { *unloaded++ }
	return newGlowCache(build, unload, gridPx, maxEntries), built, unloaded
}

func TestGlowCacheHit(t *testing.T) {
	g, built, _ := fakeCache(8, 1000)
	c := color.RGBA{R: 255, G: 94, B: 91, A: 255}

	first := g.Get(c, 100, 100)
	// Same grid cell: 103/8 == 100/8.
	second := g.Get(c, 103, 101)
	if *built != 1 {
		t.Errorf("built %d brushes for one grid cell, want 1", *built)
	}
	if first.ID != second.ID {
		t.Error("same key returned different brushes")
	}

	// Different cell or color misses.
	g.Get(c, 200, 100)
	g.Get(color.RGBA{R: 91, G: 192, B: 255, A: 255}, 100, 100)
	if *built != 3 {
		t.Errorf("built %d brushes, want 3", *built)
	}
	if g.Len() != 3 {
		t.Errorf("cache holds %d entries, want 3", g.Len())
	}
}

// Past the cap the next lookup observes an empty cache: one full clear,
// not per-entry eviction.
func TestGlowCacheFullClearPastCap(t *testing.T) {
	g, _, unloaded := fakeCache(1, 1000)
	c := color.RGBA{R: 10, G: 20, B: 30, A: 255}

	for i := 0; i < 1001; i++ {
		g.Get(c, float64(i*2), 0)
	}
	if g.Len() != 1001 {
		t.Fatalf("cache holds %d entries after 1001 distinct inserts, want 1001", g.Len())
	}
	if *unloaded != 0 {
		t.Fatalf("%d brushes unloaded during fill, want 0", *unloaded)
	}

	// The next lookup fires the clear, then re-inserts its own key.
	g.Get(c, 5000, 0)
	if g.Len() != 1 {
		t.Errorf("cache holds %d entries after the clear, want 1", g.Len())
	}
	if *unloaded != 1001 {
		t.Errorf("%d brushes unloaded, want all 1001", *unloaded)
	}
}

// Grid cells keep their full width across the origin: (-4, -4) lands in
// cell (-1, -1), not in the (0, 0) cell with (4, 4).
func TestGlowCacheGridUniformAcrossOrigin(t *testing.T) {
	g, built, _ := fakeCache(8, 1000)
	c := color.RGBA{R: 255, G: 94, B: 91, A: 255}

	g.Get(c, 4, 4)
	g.Get(c, -4, -4)
	if *built != 2 {
		t.Errorf("built %d brushes across the origin, want 2", *built)
	}

	// Within one negative cell: -4/8 and -1/8 both floor to -1.
	g.Get(c, -1, -1)
	if *built != 2 {
		t.Errorf("built %d brushes, want the (-1, -1) cell to hit", *built)
	}
}

func TestGlowCacheClear(t *testing.T) {
	g, _, unloaded := fakeCache(8, 1000)
	c := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	g.Get(c, 0, 0)
	g.Get(c, 100, 0)

	g.Clear()
	if g.Len() != 0 {
		t.Errorf("cache holds %d entries after Clear, want 0", g.Len())
	}
	if *unloaded != 2 {
		t.Errorf("%d brushes unloaded, want 2", *unloaded)
	}
}
