package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated animation statistics for a time window.
type WindowStats struct {
	WindowStartTick int64   `csv:"window_start"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Population at window end
	ActivePoints  int `csv:"active"`
	PendingSpawns int `csv:"pending"`

	// Events during window
	Spawned    int `csv:"spawned"`
	Expired    int `csv:"expired"`
	Retargeted int `csv:"retargeted"`

	// Particle age distribution (sampled at window end)
	AgeMeanMs float64 `csv:"age_mean_ms"`
	AgeStdMs  float64 `csv:"age_std_ms"`

	// Glow cache occupancy at window end
	CacheEntries int `csv:"cache_entries"`
}

// ComputeAgeStats calculates mean and sample standard deviation of particle
// ages in milliseconds. Returns zeros for empty input; deviation needs at
// least two samples.
func ComputeAgeStats(agesMs []float64) (mean, std float64) {
	if len(agesMs) == 0 {
		return 0, 0
	}
	mean = stat.Mean(agesMs, nil)
	if len(agesMs) > 1 {
		std = stat.StdDev(agesMs, nil)
	}
	return mean, std
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("active", s.ActivePoints),
		slog.Int("pending", s.PendingSpawns),
		slog.Int("spawned", s.Spawned),
		slog.Int("expired", s.Expired),
		slog.Int("retargeted", s.Retargeted),
		slog.Float64("age_mean_ms", s.AgeMeanMs),
		slog.Float64("age_std_ms", s.AgeStdMs),
		slog.Int("cache_entries", s.CacheEntries),
	)
}
