package systems

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/EternoSeeker/line-follow-cursor/config"
)

// TrailPoint is one past position in a particle's fading streak.
type TrailPoint struct {
	X, Y float64
}

// PendingSpawn is a particle-in-waiting: a randomized position that becomes
// an active particle once its delay runs out. Counted toward the population
// target but not yet visible or moving.
type PendingSpawn struct {
	DelayMs float64
	X, Y    float64
}

// Particle is an active point pursuing the pointer, leaving a bounded trail
// and fading out over its lifetime.
type Particle struct {
	X, Y             float64
	TargetX, TargetY float64
	Color            color.RGBA
	LifeMs           float64
	MaxLifeMs        float64
	Trail            []TrailPoint

	// DiagonalBias is fixed at spawn. Biased particles add the
	// secondary-axis step whenever they move; unbiased ones add it only
	// when both axis deltas match exactly. Inherited movement quirk,
	// kept as-is for parity with the original animation.
	DiagonalBias bool

	// RetargetMs is the time since the pursuit target last snapped to the
	// pointer. Staggers re-aiming while the pointer idles so the points
	// do not all jitter in sync.
	RetargetMs float64
}

// Alpha returns the particle's draw opacity, floored so a point never
// vanishes before it expires.
func (p *Particle) Alpha() float64 {
	return math.Max(0.1, p.LifeMs/p.MaxLifeMs)
}

// update advances one particle by dtMs. Returns whether the particle is
// still alive and whether it re-aimed at the pointer this frame.
func (p *Particle) update(dtMs float64, ptr *Pointer, speed, retargetMs float64, maxTrail int) (alive, retargeted bool) {
	// Re-aim when the pointer is moving, or when this particle's own
	// stagger window has run out during an idle hover.
	if !ptr.Still() || p.RetargetMs > retargetMs {
		p.TargetX, p.TargetY = ptr.X, ptr.Y
		p.RetargetMs = 0
		retargeted = true
	} else {
		p.RetargetMs += dtMs
	}

	dx := p.TargetX - p.X
	dy := p.TargetY - p.Y
	if math.Hypot(dx, dy) > 1 {
		sx, sy := axisStep(dx, dy, speed, p.DiagonalBias)
		p.X += sx
		p.Y += sy

		p.Trail = append(p.Trail, TrailPoint{X: p.X, Y: p.Y})
		if len(p.Trail) > maxTrail {
			copy(p.Trail, p.Trail[1:])
			p.Trail = p.Trail[:maxTrail]
		}
	}

	p.LifeMs -= dtMs
	return p.LifeMs > 0, retargeted
}

// axisStep computes the movement step toward (dx, dy). Steps are
// axis-aligned or exact diagonals, never arbitrary angles: the axis with
// the larger absolute delta moves at full speed, and the other axis joins
// in when the deltas match exactly or the particle carries the bias flag.
func axisStep(dx, dy, speed float64, diagonalBias bool) (sx, sy float64) {
	adx := math.Abs(dx)
	ady := math.Abs(dy)
	switch {
	case adx > ady:
		sx = stepSign(dx, speed)
		if diagonalBias {
			sy = stepSign(dy, speed)
		}
	case ady > adx:
		sy = stepSign(dy, speed)
		if diagonalBias {
			sx = stepSign(dx, speed)
		}
	default:
		sx = stepSign(dx, speed)
		sy = stepSign(dy, speed)
	}
	return sx, sy
}

// stepSign returns a full-speed step in the direction of d, or zero when
// there is no delta on that axis.
func stepSign(d, speed float64) float64 {
	if d > 0 {
		return speed
	}
	if d < 0 {
		return -speed
	}
	return 0
}

// StepStats reports what happened during one Field step.
type StepStats struct {
	Spawned    int
	Expired    int
	Retargeted int
}

// Field owns the particle population: the active points, the pending
// spawns, and the drive back toward the configured target count. It stays
// dormant until Activate is called on the first observed pointer move.
type Field struct {
	Points  []Particle
	Pending []PendingSpawn

	cfg           *config.Config
	rng           *rand.Rand
	width, height float64
	active        bool
}

// NewField creates a dormant field sized to the configured screen.
func NewField(cfg *config.Config, rng *rand.Rand) *Field {
	return &Field{
		cfg:    cfg,
		rng:    rng,
		width:  float64(cfg.Screen.Width),
		height: float64(cfg.Screen.Height),
	}
}

// Activate wakes the field and queues the full target population as
// pending spawns. Safe to call more than once; only the first call does
// anything.
func (f *Field) Activate() {
	if f.active {
		return
	}
	f.active = true
	for i := 0; i < f.cfg.Points.MaxPoints; i++ {
		f.enqueuePending()
	}
}

// Active reports whether the field has been woken by a pointer move.
func (f *Field) Active() bool {
	return f.active
}

// Resize updates the extents used for randomized spawn positions. Existing
// particle positions are not rescaled.
func (f *Field) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	f.width = width
	f.height = height
}

// Step advances the whole field by dtMs: pending delays count down and
// ready spawns become particles, every particle updates against the
// pointer, expired ones are dropped, and at most one new pending spawn is
// queued to pull the population back toward the target.
func (f *Field) Step(dtMs float64, ptr *Pointer) StepStats {
	var st StepStats
	if !f.active {
		return st
	}

	// Pending pass: count down delays, convert ready spawns.
	keep := f.Pending[:0]
	for i := range f.Pending {
		f.Pending[i].DelayMs -= dtMs
		if f.Pending[i].DelayMs <= 0 {
			f.Points = append(f.Points, f.spawn(f.Pending[i], ptr))
			st.Spawned++
		} else {
			keep = append(keep, f.Pending[i])
		}
	}
	f.Pending = keep

	// Particle pass: in-place compaction preserving creation order.
	alive := 0
	for i := range f.Points {
		ok, retargeted := f.Points[i].update(
			dtMs, ptr,
			f.cfg.Points.Speed,
			f.cfg.Points.RetargetMs,
			f.cfg.Points.MaxTrail,
		)
		if retargeted {
			st.Retargeted++
		}
		if !ok {
			st.Expired++
			continue
		}
		f.Points[alive] = f.Points[i]
		alive++
	}
	f.Points = f.Points[:alive]

	// Refill one slot per frame at most, so the population converges to
	// the target without ever overshooting it.
	if len(f.Points)+len(f.Pending) < f.cfg.Points.MaxPoints {
		f.enqueuePending()
	}

	return st
}

// enqueuePending queues one spawn with a randomized delay and position.
func (f *Field) enqueuePending() {
	minD := f.cfg.Spawn.DelayMinMs
	maxD := f.cfg.Spawn.DelayMaxMs
	f.Pending = append(f.Pending, PendingSpawn{
		DelayMs: minD + f.rng.Float64()*(maxD-minD),
		X:       f.rng.Float64() * f.width,
		Y:       f.rng.Float64() * f.height,
	})
}

// spawn converts a ready pending spawn into a particle aimed at the live
// pointer position.
func (f *Field) spawn(ps PendingSpawn, ptr *Pointer) Particle {
	palette := f.cfg.Derived.Palette
	life := f.cfg.Points.LifetimeMs
	return Particle{
		X:            ps.X,
		Y:            ps.Y,
		TargetX:      ptr.X,
		TargetY:      ptr.Y,
		Color:        palette[f.rng.Intn(len(palette))],
		LifeMs:       life,
		MaxLifeMs:    life,
		Trail:        make([]TrailPoint, 0, f.cfg.Points.MaxTrail),
		DiagonalBias: f.rng.Intn(2) == 0,
	}
}
