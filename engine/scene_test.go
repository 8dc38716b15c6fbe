package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/cellshape/core"
	"github.com/lixenwraith/cellshape/render"
	"github.com/lixenwraith/cellshape/shape"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Interval != 100*time.Millisecond {
		t.Errorf("Expected 100ms interval, got %v", cfg.Interval)
	}
	if cfg.Boundary != 100 || cfg.Step != 1 {
		t.Errorf("Expected boundary 100 step 1, got %d step %d", cfg.Boundary, cfg.Step)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"negative interval", Config{Interval: -time.Millisecond, Boundary: 100, Step: 1}},
		{"zero boundary", Config{Interval: 0, Boundary: 0, Step: 1}},
		{"zero step", Config{Interval: 0, Boundary: 100, Step: 0}},
	}
	for _, tt := range tests {
		if err := tt.cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestStepMovesAndForcesCircle(t *testing.T) {
	scene := DefaultDemoScene()
	next := Step(scene, DefaultConfig())

	e := next.Ellipse
	if e == scene.Ellipse {
		t.Fatal("Expected a new ellipse instance")
	}
	if e.Center() != core.Pt(1, 15) {
		t.Errorf("Expected center (1,15), got %v", e.Center())
	}
	if e.RadiusX() != 10 || e.RadiusY() != 10 {
		t.Errorf("Expected radii (10,10) after first step, got (%d,%d)", e.RadiusX(), e.RadiusY())
	}
	if e.Tessellation() != DefaultTessellation || e.Stroke() != DefaultStroke {
		t.Error("Expected tessellation and stroke inherited")
	}
	if next.Wrapped {
		t.Error("Expected no wrap on first step")
	}

	// Input scene untouched
	if scene.Ellipse.Center() != core.Pt(0, 15) || scene.Ellipse.RadiusY() != 5 {
		t.Error("Expected input scene unchanged")
	}
}

func TestStepWrapsAfterBoundary(t *testing.T) {
	cfg := DefaultConfig()
	scene := DefaultDemoScene()

	for i := 1; i <= 99; i++ {
		scene = Step(scene, cfg)
		if scene.Wrapped {
			t.Fatalf("Unexpected wrap at step %d", i)
		}
		if scene.Ellipse.Center().X != i {
			t.Fatalf("Step %d: expected X=%d, got %d", i, i, scene.Ellipse.Center().X)
		}
	}

	scene = Step(scene, cfg)
	if !scene.Wrapped {
		t.Error("Expected wrap on step 100")
	}
	if c := scene.Ellipse.Center(); c != core.Pt(0, 15) {
		t.Errorf("Expected center (0,15) after wrap, got %v", c)
	}

	scene = Step(scene, cfg)
	if scene.Wrapped || scene.Ellipse.Center().X != 1 {
		t.Errorf("Expected wrap flag cleared and X=1, got wrapped=%v X=%d", scene.Wrapped, scene.Ellipse.Center().X)
	}
}

func TestStepOvershootingBoundary(t *testing.T) {
	cfg := Config{Boundary: 10, Step: 4}
	scene := DefaultDemoScene()

	var xs []int
	for i := 0; i < 4; i++ {
		scene = Step(scene, cfg)
		xs = append(xs, scene.Ellipse.Center().X)
	}
	want := []int{4, 8, 0, 4}
	for i := range want {
		if xs[i] != want[i] {
			t.Fatalf("Expected X sequence %v, got %v", want, xs)
		}
	}
}

func TestStepKeepsStaticShapes(t *testing.T) {
	static := []shape.Shape{shape.NewLine(core.Pt(0, 0), core.Pt(3, 3), DefaultStroke)}
	scene := Step(Scene{Static: static}, DefaultConfig())

	if scene.Ellipse != nil {
		t.Error("Expected no ellipse")
	}
	if len(scene.Shapes()) != 1 || scene.Shapes()[0] != static[0] {
		t.Error("Expected static shapes carried over")
	}
}

func TestShowcaseSceneFits(t *testing.T) {
	scene, err := ShowcaseScene()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if n := len(scene.Shapes()); n != 6 {
		t.Fatalf("Expected 6 shapes, got %d", n)
	}

	buf := render.NewBuffer(81, 76)
	shape.DrawAll(buf, scene.Shapes()...)
	for _, glyph := range []rune{'X', 'R', 'P', 'T', 'E'} {
		if buf.Count(glyph) == 0 {
			t.Errorf("Expected cells with glyph %q", glyph)
		}
	}
}
