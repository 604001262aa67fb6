package telemetry

import "github.com/EternoSeeker/line-follow-cursor/systems"

// Collector accumulates animation events within time windows and produces
// WindowStats.
type Collector struct {
	windowMs float64

	// Current window tracking
	accumMs         float64
	windowStartTick int64

	// Event counters for current window
	spawned    int
	expired    int
	retargeted int
}

// NewCollector creates a stats collector with the given window length in
// simulated milliseconds.
func NewCollector(windowMs float64) *Collector {
	if windowMs <= 0 {
		windowMs = 5000
	}
	return &Collector{windowMs: windowMs}
}

// Record accumulates one frame's elapsed time and step events.
func (c *Collector) Record(dtMs float64, st systems.StepStats) {
	c.accumMs += dtMs
	c.spawned += st.Spawned
	c.expired += st.Expired
	c.retargeted += st.Retargeted
}

// ShouldFlush reports whether the current window has run its course.
func (c *Collector) ShouldFlush() bool {
	return c.accumMs >= c.windowMs
}

// Flush produces a WindowStats and resets counters for the next window.
// agesMs are the ages of the currently active particles.
func (c *Collector) Flush(currentTick int64, simTimeSec float64, active, pending, cacheEntries int, agesMs []float64) WindowStats {
	mean, std := ComputeAgeStats(agesMs)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      simTimeSec,
		ActivePoints:    active,
		PendingSpawns:   pending,
		Spawned:         c.spawned,
		Expired:         c.expired,
		Retargeted:      c.retargeted,
		AgeMeanMs:       mean,
		AgeStdMs:        std,
		CacheEntries:    cacheEntries,
	}

	c.accumMs = 0
	c.windowStartTick = currentTick
	c.spawned = 0
	c.expired = 0
	c.retargeted = 0

	return stats
}
