// Package config loads the demo host's TOML configuration
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/cellshape/core"
	"github.com/lixenwraith/cellshape/engine"
)

// Backend names
const (
	BackendTcell = "tcell"
	BackendPNG   = "png"
)

// Scene names
const (
	SceneDemo     = "demo"
	SceneShowcase = "showcase"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Duration decodes TOML strings such as "100ms"
type Duration time.Duration

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Animation configures pacing and wraparound
type Animation struct {
	Interval Duration `toml:"interval"`
	Boundary int      `toml:"boundary"`
	Step     int      `toml:"step"`
}

// Ellipse configures the demo's starting ellipse
type Ellipse struct {
	X            int `toml:"x"`
	Y            int `toml:"y"`
	RadiusX      int `toml:"radius_x"`
	RadiusY      int `toml:"radius_y"`
	Tessellation int `toml:"tessellation"`
}

// Stroke configures the demo's cell style
// Colors are tcell names ("white", "darkcyan") or "#rrggbb"
type Stroke struct {
	Fg    string `toml:"fg"`
	Bg    string `toml:"bg"`
	Glyph string `toml:"glyph"`
}

// Surface configures the output backend
type Surface struct {
	Backend string `toml:"backend"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	OutDir  string `toml:"out_dir"`
}

// Config is the full host configuration
type Config struct {
	Scene     string    `toml:"scene"`
	Debug     bool      `toml:"debug"`
	Sound     bool      `toml:"sound"`
	Frames    int       `toml:"frames"`
	Animation Animation `toml:"animation"`
	Ellipse   Ellipse   `toml:"ellipse"`
	Stroke    Stroke    `toml:"stroke"`
	Surface   Surface   `toml:"surface"`
}

// Default returns the built-in demo configuration
func Default() Config {
	return Config{
		Scene: SceneDemo,
		Animation: Animation{
			Interval: Duration(engine.DefaultInterval),
			Boundary: engine.DefaultBoundary,
			Step:     engine.DefaultStep,
		},
		Ellipse: Ellipse{
			X:            engine.DefaultCenter.X,
			Y:            engine.DefaultCenter.Y,
			RadiusX:      engine.DefaultRadiusX,
			RadiusY:      engine.DefaultRadiusY,
			Tessellation: engine.DefaultTessellation,
		},
		Stroke: Stroke{
			Fg:    "white",
			Bg:    "black",
			Glyph: string(engine.DefaultStroke.Glyph),
		},
		Surface: Surface{
			Backend: BackendTcell,
			Width:   120,
			Height:  40,
			OutDir:  "frames",
		},
	}
}

// Load reads path over the defaults; an empty path returns the defaults
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults and validates the result
// Unknown keys are rejected
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("%w: %s", ErrInvalid, strict.String())
		}
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode renders cfg as TOML
func Encode(cfg Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

// Validate checks every field, naming the offending key
func (c Config) Validate() error {
	switch c.Scene {
	case SceneDemo, SceneShowcase:
	default:
		return fmt.Errorf("%w: scene %q (want %q or %q)", ErrInvalid, c.Scene, SceneDemo, SceneShowcase)
	}
	if err := c.Engine().Validate(); err != nil {
		return fmt.Errorf("%w: animation: %w", ErrInvalid, err)
	}
	if c.Ellipse.Tessellation <= 0 {
		return fmt.Errorf("%w: ellipse.tessellation %d must be positive", ErrInvalid, c.Ellipse.Tessellation)
	}
	if c.Ellipse.RadiusX <= 0 || c.Ellipse.RadiusY <= 0 {
		return fmt.Errorf("%w: ellipse radii (%d,%d) must be positive", ErrInvalid, c.Ellipse.RadiusX, c.Ellipse.RadiusY)
	}
	if _, err := c.Style(); err != nil {
		return err
	}
	switch c.Surface.Backend {
	case BackendTcell:
	case BackendPNG:
		if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
			return fmt.Errorf("%w: surface size %dx%d must be positive", ErrInvalid, c.Surface.Width, c.Surface.Height)
		}
		if c.Surface.OutDir == "" {
			return fmt.Errorf("%w: surface.out_dir is required for the png backend", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: surface.backend %q (want %q or %q)", ErrInvalid, c.Surface.Backend, BackendTcell, BackendPNG)
	}
	if c.Frames < 0 {
		return fmt.Errorf("%w: frames %d is negative", ErrInvalid, c.Frames)
	}
	return nil
}

// Engine returns the animation driver config
func (c Config) Engine() engine.Config {
	return engine.Config{
		Interval: time.Duration(c.Animation.Interval),
		Boundary: c.Animation.Boundary,
		Step:     c.Animation.Step,
	}
}

// Center returns the starting ellipse center
func (c Config) Center() core.Point {
	return core.Pt(c.Ellipse.X, c.Ellipse.Y)
}

// Style resolves the stroke colors and glyph
func (c Config) Style() (core.Style, error) {
	fg, err := parseColor("stroke.fg", c.Stroke.Fg)
	if err != nil {
		return core.Style{}, err
	}
	bg, err := parseColor("stroke.bg", c.Stroke.Bg)
	if err != nil {
		return core.Style{}, err
	}
	if utf8.RuneCountInString(c.Stroke.Glyph) != 1 {
		return core.Style{}, fmt.Errorf("%w: stroke.glyph %q must be a single character", ErrInvalid, c.Stroke.Glyph)
	}
	glyph, _ := utf8.DecodeRuneInString(c.Stroke.Glyph)
	return core.NewStyle(fg, bg, glyph), nil
}

// parseColor accepts "", "default", tcell color names and #rrggbb
func parseColor(key, name string) (tcell.Color, error) {
	if name == "" || name == "default" {
		return tcell.ColorDefault, nil
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("%w: %s: unknown color %q", ErrInvalid, key, name)
	}
	return c, nil
}
