package systems

import "math"

// Pointer tracks the live cursor position and how long it has been idle.
// It is mutated by move events and by the per-frame tick; the animation
// reads it but never writes it.
type Pointer struct {
	X, Y         float64
	PrevX, PrevY float64
	IdleMs       float64

	moveThreshold float64
	stillMs       float64
	seen          bool
}

// NewPointer creates a pointer tracker with the given stillness thresholds.
// moveThreshold is the per-event distance in px below which the pointer
// counts as not moving; stillMs is the idle time after which it is "still".
func NewPointer(moveThreshold, stillMs float64) *Pointer {
	return &Pointer{
		moveThreshold: moveThreshold,
		stillMs:       stillMs,
	}
}

// Record registers a pointer-move event. The current position shifts into
// the previous slot and the idle timer resets when the move is larger than
// the movement threshold. Returns true on the very first event observed,
// which is the signal that wakes the animation from dormancy.
func (p *Pointer) Record(x, y float64) (first bool) {
	first = !p.seen
	if first {
		// No meaningful previous position exists yet.
		p.PrevX, p.PrevY = x, y
		p.seen = true
	} else {
		p.PrevX, p.PrevY = p.X, p.Y
	}
	p.X, p.Y = x, y

	if p.MoveDistance() > p.moveThreshold {
		p.IdleMs = 0
	}
	return first
}

// Tick accumulates idle time. Called once per frame regardless of movement.
func (p *Pointer) Tick(dtMs float64) {
	p.IdleMs += dtMs
}

// MoveDistance returns the Euclidean distance between the current and
// previous recorded positions.
func (p *Pointer) MoveDistance() float64 {
	dx := p.X - p.PrevX
	dy := p.Y - p.PrevY
	return math.Hypot(dx, dy)
}

// Still reports whether the pointer counts as motionless: the last recorded
// move stayed under the movement threshold and the idle timer has run past
// the stillness window.
func (p *Pointer) Still() bool {
	return p.MoveDistance() < p.moveThreshold && p.IdleMs > p.stillMs
}

// Seen reports whether any pointer event has been observed yet.
func (p *Pointer) Seen() bool {
	return p.seen
}
