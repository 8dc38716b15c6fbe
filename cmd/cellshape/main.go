package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cellshape/audio"
	"github.com/lixenwraith/cellshape/config"
	"github.com/lixenwraith/cellshape/engine"
	"github.com/lixenwraith/cellshape/render"
)

var (
	configFlag  = flag.String("config", "", "TOML config file")
	backendFlag = flag.String("backend", "", "Output backend: tcell, png (overrides config)")
	outFlag     = flag.String("out", "", "Frame directory for the png backend (overrides config)")
	framesFlag  = flag.Int("frames", -1, "Frames to render, 0 runs until interrupted (overrides config)")
	sceneFlag   = flag.String("scene", "", "Scene: demo, showcase (overrides config)")
	debugFlag   = flag.Bool("debug", false, "Write debug log to logs/cellshape.log")
	soundFlag   = flag.Bool("sound", false, "Play a tone each time the ellipse wraps")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid options: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "cellshape: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags overlays explicitly set flags onto cfg
func applyFlags(cfg *config.Config) {
	if *backendFlag != "" {
		cfg.Surface.Backend = *backendFlag
	}
	if *outFlag != "" {
		cfg.Surface.OutDir = *outFlag
	}
	if *framesFlag >= 0 {
		cfg.Frames = *framesFlag
	}
	if *sceneFlag != "" {
		cfg.Scene = *sceneFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *soundFlag {
		cfg.Sound = true
	}
}

func run(ctx context.Context, cfg config.Config) error {
	scene, err := buildScene(cfg)
	if err != nil {
		return err
	}
	log.Printf("starting scene=%s backend=%s interval=%v boundary=%d",
		cfg.Scene, cfg.Surface.Backend, cfg.Engine().Interval, cfg.Engine().Boundary)

	switch cfg.Surface.Backend {
	case config.BackendPNG:
		return runPNG(ctx, cfg, scene)
	default:
		return runTerminal(ctx, cfg, scene)
	}
}

func buildScene(cfg config.Config) (engine.Scene, error) {
	if cfg.Scene == config.SceneShowcase {
		return engine.ShowcaseScene()
	}
	style, err := cfg.Style()
	if err != nil {
		return engine.Scene{}, err
	}
	return engine.DemoScene(cfg.Center(), cfg.Ellipse.RadiusX, cfg.Ellipse.RadiusY, cfg.Ellipse.Tessellation, style)
}

// attachSound wires the wraparound cue; failures leave the demo silent
func attachSound(cfg config.Config, d *engine.Driver) func() {
	if !cfg.Sound {
		return func() {}
	}
	cue, err := audio.NewCue(audio.DefaultFrequency, audio.DefaultLength)
	if err != nil {
		// Non-fatal, demo can run without sound
		log.Printf("Audio initialization failed: %v", err)
		return func() {}
	}
	d.SetOnWrap(func(engine.Scene) { cue.Play() })
	return cue.Close
}

func runPNG(ctx context.Context, cfg config.Config, scene engine.Scene) error {
	if err := os.MkdirAll(cfg.Surface.OutDir, 0o755); err != nil {
		return fmt.Errorf("create frame directory: %w", err)
	}
	surface := render.NewImageSurface(cfg.Surface.Width, cfg.Surface.Height, render.DirSink{Dir: cfg.Surface.OutDir})
	d := engine.NewDriver(render.NewClip(surface), scene, cfg.Engine())

	frames := cfg.Frames
	switch {
	case cfg.Scene == config.SceneShowcase:
		frames = 1
	case frames == 0:
		// One full sweep across the boundary
		frames = cfg.Engine().Boundary
	}

	// Frame export is offline; pacing would only slow it down
	d.SetClock(instantClock{engine.NewTimeProvider()})
	if err := d.RunFrames(ctx, frames); err != nil {
		return err
	}
	if err := surface.Err(); err != nil {
		return err
	}
	log.Printf("wrote %d frames to %s", surface.Frames(), cfg.Surface.OutDir)
	return nil
}

// instantClock skips pacing waits but still honors cancellation
type instantClock struct {
	*engine.TimeProvider
}

func (c instantClock) Sleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

func runTerminal(ctx context.Context, cfg config.Config, scene engine.Scene) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Panic Recovery: restore the terminal before reporting
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCELLSHAPE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	surface := render.NewScreenSurface(screen)
	var resized atomic.Bool
	redraw := make(chan struct{}, 1)

	// Dedicated input goroutine; only cancels or flags, never draws
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					cancel()
					return
				}
			case *tcell.EventResize:
				resized.Store(true)
				select {
				case redraw <- struct{}{}:
				default:
				}
			}
		}
	}()

	d := engine.NewDriver(render.NewClip(surface), scene, cfg.Engine())
	d.SetBeforeFrame(func() {
		if resized.Swap(false) {
			surface.Resize()
			w, h := surface.Size()
			log.Printf("resized to %dx%d", w, h)
		}
	})
	defer attachSound(cfg, d)()

	if cfg.Scene == config.SceneShowcase {
		return showStatic(ctx, d, redraw)
	}

	if cfg.Frames > 0 {
		err = d.RunFrames(ctx, cfg.Frames)
	} else {
		err = d.Run(ctx)
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// showStatic presents the scene once and redraws it on resize until ctx is done
func showStatic(ctx context.Context, d *engine.Driver, redraw <-chan struct{}) error {
	d.Frame()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-redraw:
			d.Frame()
		}
	}
}
