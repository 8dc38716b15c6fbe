package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/cellshape/config"
	"github.com/lixenwraith/cellshape/core"
)

func TestBuildScene(t *testing.T) {
	cfg := config.Default()
	scene, err := buildScene(cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if scene.Ellipse == nil || scene.Ellipse.Center() != core.Pt(0, 15) {
		t.Fatalf("Expected demo ellipse at (0,15), got %+v", scene.Ellipse)
	}
	if len(scene.Static) != 0 {
		t.Errorf("Expected no static shapes in demo, got %d", len(scene.Static))
	}

	cfg.Scene = config.SceneShowcase
	scene, err = buildScene(cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(scene.Shapes()) != 6 {
		t.Errorf("Expected 6 showcase shapes, got %d", len(scene.Shapes()))
	}
}

func TestRunPNGWritesFrames(t *testing.T) {
	cfg := config.Default()
	cfg.Surface.Backend = config.BackendPNG
	cfg.Surface.Width = 40
	cfg.Surface.Height = 30
	cfg.Surface.OutDir = filepath.Join(t.TempDir(), "frames")
	cfg.Frames = 3

	scene, err := buildScene(cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := runPNG(context.Background(), cfg, scene); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	entries, err := os.ReadDir(cfg.Surface.OutDir)
	if err != nil {
		t.Fatalf("Failed to read frame dir: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("Expected 3 frame files, got %d", len(entries))
	}
}

func TestRunPNGCancelled(t *testing.T) {
	cfg := config.Default()
	cfg.Surface.Backend = config.BackendPNG
	cfg.Surface.OutDir = t.TempDir()

	scene, err := buildScene(cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := runPNG(ctx, cfg, scene); err == nil {
		t.Error("Expected cancellation error")
	}
}
