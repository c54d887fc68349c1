package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-mrt-raytracer/pkg/scene"
)

func TestCreateScene(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "two-spheres.mrt")
	if err := os.WriteFile(scriptPath, []byte("# Description: Two spheres\nsphere 0 0 -5 1\n"), 0o644); err != nil {
		t.Fatalf("Failed to write script: %v", err)
	}

	tests := []struct {
		name        string
		sceneType   string
		wantScript  string
		expectError bool
	}{
		{"default scene", "default", "", false},
		{"spheregrid scene", "spheregrid", "", false},
		{"circles scene", "circles", "", false},
		{"empty scene", "empty", "", false},
		{"script by path", scriptPath, scriptPath, false},
		{"script in scenes dir", "lantern", filepath.Join("scenes", "lantern.mrt"), false},
		{"script by id", "script:lantern", filepath.Join("scenes", "lantern.mrt"), false},

		{"unknown scene", "nonexistent", "", true},
		{"missing script path", filepath.Join(dir, "missing.mrt"), "", true},
		{"empty scene name", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, script, err := createScene(tt.sceneType)

			if tt.expectError {
				if !errors.Is(err, scene.ErrUnknownScene) {
					t.Errorf("Expected ErrUnknownScene for %q, got %v", tt.sceneType, err)
				}
				if s != nil {
					t.Errorf("Expected nil scene for %q", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", tt.sceneType, err)
			}
			if s == nil {
				t.Fatalf("Expected scene for %q, got nil", tt.sceneType)
			}
			if script != tt.wantScript {
				t.Errorf("Expected script %q, got %q", tt.wantScript, script)
			}
			if s.Width <= 0 || s.Height <= 0 {
				t.Errorf("Scene size should be positive, got %dx%d", s.Width, s.Height)
			}
		})
	}
}

func TestCreateScene_ScriptMetadata(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "floor.mrt")
	if err := os.WriteFile(scriptPath, []byte("# Description: Just a floor\nplane 0 -1 0 0 -1 0\n"), 0o644); err != nil {
		t.Fatalf("Failed to write script: %v", err)
	}

	s, _, err := createScene(scriptPath)
	if err != nil {
		t.Fatalf("createScene failed: %v", err)
	}
	if s.Name != "floor" || s.Description != "Just a floor" {
		t.Errorf("Unexpected scene metadata %q %q", s.Name, s.Description)
	}
	if s.GetPrimitiveCount() != 0 {
		t.Errorf("Expected script scene to start empty, got %d primitives", s.GetPrimitiveCount())
	}
}

func TestRun_HeadlessRender(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out", "render.png")
	script := filepath.Join(dir, "extra.mrt")
	if err := os.WriteFile(script, []byte("sphere 0 0 -8 1 0 1 0\n"), 0o644); err != nil {
		t.Fatalf("Failed to write script: %v", err)
	}

	err := run(Config{
		SceneType: "default",
		Width:     40,
		Height:    30,
		Output:    output,
		Scale:     2,
		Workers:   2,
		Script:    script,
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if _, err := os.Stat(output); err != nil {
		t.Errorf("Expected output image: %v", err)
	}
}

func TestRun_InvalidSize(t *testing.T) {
	err := run(Config{SceneType: "empty", Width: -1, Height: 10, Output: filepath.Join(t.TempDir(), "x.png")})
	if err == nil {
		t.Error("Expected an error for a negative width")
	}
}

func TestListScenes(t *testing.T) {
	var buf bytes.Buffer
	if err := listScenes(&buf); err != nil {
		t.Fatalf("listScenes failed: %v", err)
	}
	for _, name := range scene.Names() {
		if !strings.Contains(buf.String(), name) {
			t.Errorf("Expected %q in scene list", name)
		}
	}
}

func TestRun_ScriptScene(t *testing.T) {
	output := filepath.Join(t.TempDir(), "lantern.png")
	if err := run(Config{SceneType: "lantern", Width: 32, Height: 24, Output: output, Scale: 1, Workers: 1}); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if _, err := os.Stat(output); err != nil {
		t.Errorf("Expected output image: %v", err)
	}
}
