package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cellshape/core"
	"github.com/lixenwraith/cellshape/shape"
)

// Demo defaults
const (
	DefaultInterval     = 100 * time.Millisecond
	DefaultBoundary     = 100
	DefaultStep         = 1
	DefaultRadiusX      = 10
	DefaultRadiusY      = 5
	DefaultTessellation = 100
)

var (
	// DefaultCenter is the demo ellipse start position
	DefaultCenter = core.Point{X: 0, Y: 15}
	// DefaultStroke is the demo ellipse style
	DefaultStroke = core.NewStyle(tcell.ColorWhite, tcell.ColorBlack, 'E')
)

var errInvalidConfig = errors.New("invalid animation config")

// Config holds the frame pacing and wraparound policy
type Config struct {
	Interval time.Duration // Delay between presenting a frame and advancing the scene
	Boundary int           // Center X at or past this resets to 0
	Step     int           // Center X increment per frame
}

// DefaultConfig returns 100ms pacing, boundary 100, step +1
func DefaultConfig() Config {
	return Config{
		Interval: DefaultInterval,
		Boundary: DefaultBoundary,
		Step:     DefaultStep,
	}
}

// Validate rejects configs that would stall or never wrap
func (c Config) Validate() error {
	if c.Interval < 0 {
		return fmt.Errorf("%w: interval %v is negative", errInvalidConfig, c.Interval)
	}
	if c.Boundary <= 0 {
		return fmt.Errorf("%w: boundary %d must be positive", errInvalidConfig, c.Boundary)
	}
	if c.Step <= 0 {
		return fmt.Errorf("%w: step %d must be positive", errInvalidConfig, c.Step)
	}
	return nil
}

// Scene is the set of shapes presented in one frame
// Static shapes draw first in order, then the moving ellipse
type Scene struct {
	Static  []shape.Shape
	Ellipse *shape.Ellipse
	Wrapped bool // Set by Step when the ellipse was reset to X=0
}

// Shapes returns the draw order for the frame
func (s Scene) Shapes() []shape.Shape {
	out := make([]shape.Shape, 0, len(s.Static)+1)
	out = append(out, s.Static...)
	if s.Ellipse != nil {
		out = append(out, s.Ellipse)
	}
	return out
}

// Step computes the next frame's scene
// The ellipse is replaced by one shifted right by cfg.Step with its vertical radius set to the horizontal one;
// when the new center X reaches cfg.Boundary it is reset to 0, keeping Y
func Step(s Scene, cfg Config) Scene {
	next := Scene{Static: s.Static}
	if s.Ellipse == nil {
		return next
	}

	center := s.Ellipse.Center().Add(cfg.Step, 0)
	if center.X >= cfg.Boundary {
		center.X = 0
		next.Wrapped = true
	}
	next.Ellipse = s.Ellipse.Circle().Moved(center)
	return next
}

// DemoScene builds the moving-ellipse scene
func DemoScene(center core.Point, radiusX, radiusY, tessellation int, stroke core.Style) (Scene, error) {
	e, err := shape.NewEllipse(center, radiusX, radiusY, tessellation, stroke)
	if err != nil {
		return Scene{}, fmt.Errorf("demo scene: %w", err)
	}
	return Scene{Ellipse: e}, nil
}

// DefaultDemoScene builds the demo with default geometry and stroke
func DefaultDemoScene() Scene {
	s, err := DemoScene(DefaultCenter, DefaultRadiusX, DefaultRadiusY, DefaultTessellation, DefaultStroke)
	if err != nil {
		panic(err)
	}
	return s
}

// ShowcaseScene builds the static sample: crossing lines, rectangle, open polygon, triangle and ellipse
// It needs an 81x76 surface to be fully visible
func ShowcaseScene() (Scene, error) {
	style := func(c tcell.Color, glyph rune) core.Style {
		return core.NewStyle(c, tcell.ColorBlack, glyph)
	}

	ellipse, err := shape.NewEllipse(core.Pt(70, 70), 10, 5, 100, style(tcell.ColorYellow, 'E'))
	if err != nil {
		return Scene{}, fmt.Errorf("showcase scene: %w", err)
	}

	return Scene{
		Static: []shape.Shape{
			shape.NewLine(core.Pt(0, 0), core.Pt(20, 10), style(tcell.ColorWhite, 'X')),
			shape.NewLine(core.Pt(0, 10), core.Pt(20, 0), style(tcell.ColorWhite, 'X')),
			shape.NewRectangle(core.Pt(5, 5), core.Pt(15, 15), style(tcell.ColorRed, 'R')),
			shape.NewPolygon([]core.Point{{X: 30, Y: 30}, {X: 40, Y: 30}, {X: 35, Y: 40}}, false, style(tcell.ColorGreen, 'P')),
			shape.NewTriangle(core.Pt(50, 50), core.Pt(60, 50), core.Pt(55, 60), style(tcell.ColorBlue, 'T')),
		},
		Ellipse: ellipse,
	}, nil
}
