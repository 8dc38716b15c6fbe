package engine

import (
	"context"
	"log"

	"github.com/lixenwraith/cellshape/render"
	"github.com/lixenwraith/cellshape/shape"
)

// Driver owns the frame loop: clear, draw, present, wait, advance
// All methods must be called from a single goroutine
type Driver struct {
	surface render.Surface
	scene   Scene
	cfg     Config
	clock   Clock
	frames  int

	beforeFrame func()
	onWrap      func(Scene)
}

// NewDriver creates a driver paced by the system clock
func NewDriver(surface render.Surface, scene Scene, cfg Config) *Driver {
	return &Driver{
		surface: surface,
		scene:   scene,
		cfg:     cfg,
		clock:   NewTimeProvider(),
	}
}

// SetClock replaces the pacing clock
func (d *Driver) SetClock(c Clock) {
	d.clock = c
}

// SetBeforeFrame registers a hook run at the start of every frame, before Clear
func (d *Driver) SetBeforeFrame(fn func()) {
	d.beforeFrame = fn
}

// SetOnWrap registers a hook run after a Step that reset the ellipse to X=0
func (d *Driver) SetOnWrap(fn func(Scene)) {
	d.onWrap = fn
}

// Scene returns the current scene
func (d *Driver) Scene() Scene {
	return d.scene
}

// Frames returns the number of presented frames
func (d *Driver) Frames() int {
	return d.frames
}

// Frame clears the surface, draws the current scene and presents it
func (d *Driver) Frame() {
	if d.beforeFrame != nil {
		d.beforeFrame()
	}
	d.surface.Clear()
	shape.DrawAll(d.surface, d.scene.Shapes()...)
	d.surface.Present()
	d.frames++
}

// Advance replaces the scene with the next one
func (d *Driver) Advance() {
	d.scene = Step(d.scene, d.cfg)
	if !d.scene.Wrapped {
		return
	}
	if e := d.scene.Ellipse; e != nil {
		log.Printf("engine: wrapped at frame %d, y=%d", d.frames, e.Center().Y)
	}
	if d.onWrap != nil {
		d.onWrap(d.scene)
	}
}

// Run loops until ctx is done and returns ctx.Err()
// The loop has no natural end; stopping it is the host's concern
func (d *Driver) Run(ctx context.Context) error {
	return d.RunFrames(ctx, -1)
}

// RunFrames presents n frames, advancing the scene after each; n < 0 runs until ctx is done
func (d *Driver) RunFrames(ctx context.Context, n int) error {
	for i := 0; n < 0 || i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		d.Frame()
		if err := d.clock.Sleep(ctx, d.cfg.Interval); err != nil {
			return err
		}
		d.Advance()
	}
	return nil
}
