// Package config provides configuration loading and access for the animation.
package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all animation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Points    PointsConfig    `yaml:"points"`
	Pointer   PointerConfig   `yaml:"pointer"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Glow      GlowConfig      `yaml:"glow"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	TargetFPS  int    `yaml:"target_fps"`
	Background string `yaml:"background"` // hex color, e.g. "#1a1a2e"
}

// PointsConfig holds particle behavior parameters.
type PointsConfig struct {
	MaxPoints  int      `yaml:"max_points"`  // target active+pending population
	Speed      float64  `yaml:"speed"`       // step length in px per frame
	LifetimeMs float64  `yaml:"lifetime_ms"` // particle lifetime
	Radius     float64  `yaml:"radius"`      // core dot radius in px
	MaxTrail   int      `yaml:"max_trail"`   // trail history cap
	TrailAlpha float64  `yaml:"trail_alpha"` // trail opacity scale
	RetargetMs float64  `yaml:"retarget_ms"` // stagger window for idle re-aiming
	Palette    []string `yaml:"palette"`     // hex colors, chosen per particle at spawn
}

// PointerConfig holds pointer tracking parameters.
type PointerConfig struct {
	MoveThreshold float64 `yaml:"move_threshold"` // px below which movement counts as still
	StillMs       float64 `yaml:"still_ms"`       // idle time before the pointer is "still"
}

// SpawnConfig holds pending-spawn delay bounds.
type SpawnConfig struct {
	DelayMinMs float64 `yaml:"delay_min_ms"`
	DelayMaxMs float64 `yaml:"delay_max_ms"`
}

// GlowConfig holds radial fade brush parameters.
type GlowConfig struct {
	Radius     float64 `yaml:"radius"`      // gradient extent in px
	Density    float64 `yaml:"density"`     // gradient falloff density
	GridPx     int     `yaml:"grid_px"`     // cache key quantization grid
	MaxEntries int     `yaml:"max_entries"` // full-clear trigger
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	WindowMs            float64 `yaml:"window_ms"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Background color.RGBA   // parsed Screen.Background
	Palette    []color.RGBA // parsed Points.Palette
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// computeDerived parses the color fields and validates bounds.
func (c *Config) computeDerived() error {
	bg, err := ParseHexColor(c.Screen.Background)
	if err != nil {
		return fmt.Errorf("screen.background: %w", err)
	}
	c.Derived.Background = bg

	if len(c.Points.Palette) == 0 {
		return fmt.Errorf("points.palette: at least one color required")
	}
	c.Derived.Palette = make([]color.RGBA, len(c.Points.Palette))
	for i, hex := range c.Points.Palette {
		col, err := ParseHexColor(hex)
		if err != nil {
			return fmt.Errorf("points.palette[%d]: %w", i, err)
		}
		c.Derived.Palette[i] = col
	}

	if c.Spawn.DelayMaxMs < c.Spawn.DelayMinMs {
		return fmt.Errorf("spawn: delay_max_ms (%v) < delay_min_ms (%v)",
			c.Spawn.DelayMaxMs, c.Spawn.DelayMinMs)
	}

	return nil
}

// ParseHexColor parses "#rrggbb" or "rrggbb" into an opaque RGBA color.
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	var c color.RGBA
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	c.A = 255
	return c, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
