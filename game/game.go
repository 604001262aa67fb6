package game

import (
	"log/slog"
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/EternoSeeker/line-follow-cursor/config"
	"github.com/EternoSeeker/line-follow-cursor/renderer"
	"github.com/EternoSeeker/line-follow-cursor/systems"
	"github.com/EternoSeeker/line-follow-cursor/telemetry"
)

// Frame timing bounds.
const (
	// headlessStepMs is the fixed step used without a display, matching a
	// 60 Hz frame.
	headlessStepMs = 16.0
	// maxFrameMs clamps the frame delta so a stalled frame cannot make
	// every timer leap at once.
	maxFrameMs = 100.0
)

// Options holds run configuration built from CLI flags.
type Options struct {
	Seed      int64
	LogStats  bool
	OutputDir string
	Headless  bool
}

// Game holds the complete animation state.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	pointer *systems.Pointer
	field   *systems.Field

	points *renderer.PointRenderer
	cursor *renderer.CursorRenderer

	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager
	logStats  bool

	tick      int64
	simTimeMs float64
	paused    bool
	debug     bool

	// Pointer polling state; a change between polls is a move event.
	lastPollX, lastPollY float64
	polled               bool

	// Scripted pointer path for headless runs.
	orbitAngle float64
}

// NewGame creates a game instance from the global config and run options.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, err
	}

	g := &Game{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		collector: telemetry.NewCollector(cfg.Telemetry.WindowMs),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		output:    output,
		logStats:  opts.LogStats,
	}
	g.pointer = systems.NewPointer(cfg.Pointer.MoveThreshold, cfg.Pointer.StillMs)
	g.field = systems.NewField(cfg, g.rng)

	if !opts.Headless {
		g.points = renderer.NewPointRenderer(cfg)
		g.cursor = renderer.NewCursorRenderer()
	}

	return g, nil
}

// Update runs one frame of input handling and simulation.
func (g *Game) Update() {
	g.perf.StartFrame()
	g.perf.StartPhase(telemetry.PhaseInput)

	dtMs := math.Min(float64(rl.GetFrameTime())*1000, maxFrameMs)
	g.handleInput()
	g.pollPointer()

	g.perf.StartPhase(telemetry.PhaseSimulate)
	if !g.paused {
		g.step(dtMs)
	}
}

// UpdateHeadless runs one fixed step driven by the scripted pointer path.
func (g *Game) UpdateHeadless() {
	g.perf.StartFrame()
	g.perf.StartPhase(telemetry.PhaseInput)
	g.scriptPointer(headlessStepMs)

	g.perf.StartPhase(telemetry.PhaseSimulate)
	g.step(headlessStepMs)
	g.perf.EndFrame()
}

// step advances the simulation by dtMs and feeds telemetry.
func (g *Game) step(dtMs float64) {
	g.pointer.Tick(dtMs)
	st := g.field.Step(dtMs, g.pointer)

	g.tick++
	g.simTimeMs += dtMs

	g.collector.Record(dtMs, st)
	if g.collector.ShouldFlush() {
		g.flushTelemetry()
	}
}

// scriptPointer moves the headless pointer along a circular orbit around
// the screen center. The first scripted move wakes the field, same as a
// real pointer event would.
func (g *Game) scriptPointer(dtMs float64) {
	w := float64(g.cfg.Screen.Width)
	h := float64(g.cfg.Screen.Height)
	radius := math.Min(w, h) / 3

	g.orbitAngle += 0.8 * dtMs / 1000
	x := w/2 + radius*math.Cos(g.orbitAngle)
	y := h/2 + radius*math.Sin(g.orbitAngle)

	if g.pointer.Record(x, y) {
		g.field.Activate()
	}
}

// flushTelemetry emits one stats window to the log and CSV sinks.
func (g *Game) flushTelemetry() {
	g.perf.StartPhase(telemetry.PhaseTelemetry)

	ages := make([]float64, len(g.field.Points))
	for i := range g.field.Points {
		p := &g.field.Points[i]
		ages[i] = p.MaxLifeMs - p.LifeMs
	}
	cacheLen := 0
	if g.points != nil {
		cacheLen = g.points.CacheLen()
	}

	stats := g.collector.Flush(
		g.tick, g.simTimeMs/1000,
		len(g.field.Points), len(g.field.Pending),
		cacheLen, ages,
	)

	if g.logStats {
		slog.Info("window stats", "stats", stats)
	}
	if err := g.output.WriteTelemetry(stats); err != nil {
		slog.Warn("telemetry write failed", "error", err)
	}
	if err := g.output.WritePerf(g.perf.Stats(), g.tick); err != nil {
		slog.Warn("perf write failed", "error", err)
	}
}

// Draw renders the frame: full repaint over the background color, then
// every particle in creation order, then the cursor visual.
func (g *Game) Draw() {
	g.perf.StartPhase(telemetry.PhaseDraw)

	rl.BeginDrawing()
	bg := g.cfg.Derived.Background
	rl.ClearBackground(rl.NewColor(bg.R, bg.G, bg.B, 255))

	if g.field.Active() {
		g.points.Draw(g.field.Points)
	}
	if g.pointer.Seen() {
		g.cursor.Draw(g.pointer.X, g.pointer.Y)
	}
	if g.debug {
		g.drawOverlay()
	}

	rl.EndDrawing()
	g.perf.EndFrame()
}

// Unload releases renderer resources and closes output files.
func (g *Game) Unload() {
	if g.points != nil {
		g.points.Unload()
	}
	if err := g.output.Close(); err != nil {
		slog.Warn("closing output", "error", err)
	}
}

// Tick returns the current frame counter.
func (g *Game) Tick() int64 {
	return g.tick
}
