package telemetry

import (
	"testing"

	"github.com/EternoSeeker/line-follow-cursor/systems"
)

func TestCollectorWindowCadence(t *testing.T) {
	c := NewCollector(1000)

	// 62 frames at 16 ms = 992 ms: not yet.
	for i := 0; i < 62; i++ {
		c.Record(16, systems.StepStats{})
	}
	if c.ShouldFlush() {
		t.Error("collector flushed before the window elapsed")
	}

	c.Record(16, systems.StepStats{})
	if !c.ShouldFlush() {
		t.Error("collector should flush after the window elapsed")
	}
}

func TestCollectorFlushAggregatesAndResets(t *testing.T) {
	c := NewCollector(1000)

	c.Record(500, systems.StepStats{Spawned: 2, Retargeted: 5})
	c.Record(500, systems.StepStats{Spawned: 1, Expired: 3, Retargeted: 4})

	stats := c.Flush(125, 2.0, 4, 2, 17, []float64{100, 300})

	if stats.WindowStartTick != 0 || stats.WindowEndTick != 125 {
		t.Errorf("window = [%d, %d], want [0, 125]",
			stats.WindowStartTick, stats.WindowEndTick)
	}
	if stats.Spawned != 3 || stats.Expired != 3 || stats.Retargeted != 9 {
		t.Errorf("events = %d/%d/%d, want 3/3/9",
			stats.Spawned, stats.Expired, stats.Retargeted)
	}
	if stats.ActivePoints != 4 || stats.PendingSpawns != 2 {
		t.Errorf("population = %d/%d, want 4/2", stats.ActivePoints, stats.PendingSpawns)
	}
	if stats.AgeMeanMs != 200 {
		t.Errorf("AgeMeanMs = %v, want 200", stats.AgeMeanMs)
	}
	if stats.CacheEntries != 17 {
		t.Errorf("CacheEntries = %d, want 17", stats.CacheEntries)
	}

	// Counters reset for the next window.
	if c.ShouldFlush() {
		t.Error("collector should not want another flush right after Flush")
	}
	next := c.Flush(126, 2.016, 0, 0, 0, nil)
	if next.Spawned != 0 || next.Expired != 0 || next.Retargeted != 0 {
		t.Errorf("counters survived the reset: %+v", next)
	}
	// Each window starts where the previous one ended.
	if next.WindowStartTick != 125 {
		t.Errorf("WindowStartTick = %d, want the previous flush tick 125",
			next.WindowStartTick)
	}
}
