package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"red-spheres", "Red Spheres"},
		{"floor_and_wall", "Floor And Wall"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	for _, id := range []string{"default", "spheregrid", "circles", "empty"} {
		s, err := Lookup(id)
		if err != nil {
			t.Errorf("Lookup(%q) error: %v", id, err)
			continue
		}
		if s.Name != id {
			t.Errorf("Lookup(%q) returned scene %q", id, s.Name)
		}
	}

	_, err := Lookup("cornell-box")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestLookup_ReturnsFreshScene(t *testing.T) {
	a, _ := Lookup("default")
	a.AddSphere(a.Camera.Position, 1, a.Background)

	b, _ := Lookup("default")
	if b.GetPrimitiveCount() == a.GetPrimitiveCount() {
		t.Error("Expected Lookup to build an independent scene each call")
	}
}

func writeScript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write script: %v", err)
	}
	return path
}

func TestParseScriptMetadata(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		file        string
		content     string
		name        string
		description string
	}{
		{
			file: "complete.mrt",
			content: `# Scene: Two Spheres
# Description: A red and a blue sphere

sphere 0 0 -5 1
color 0 0 1`,
			name:        "Two Spheres",
			description: "A red and a blue sphere",
		},
		{
			file:    "no-metadata.mrt",
			content: "sphere 0 0 -5 1\n",
			name:    "No Metadata",
		},
		{
			file: "late-comment.mrt",
			content: `#Scene:Tight
render
# Description: ignored after the header`,
			name: "Tight",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.file, func(t *testing.T) {
			path := writeScript(t, dir, tc.file, tc.content)

			info, err := ParseScriptMetadata(path)
			if err != nil {
				t.Fatalf("ParseScriptMetadata() error: %v", err)
			}
			if info.Name != tc.name {
				t.Errorf("Name = %q, want %q", info.Name, tc.name)
			}
			if info.Description != tc.description {
				t.Errorf("Description = %q, want %q", info.Description, tc.description)
			}
			if info.Type != "script" || info.FilePath != path {
				t.Errorf("Unexpected type/path: %q %q", info.Type, info.FilePath)
			}
		})
	}
}

func TestParseScriptMetadata_MissingFile(t *testing.T) {
	if _, err := ParseScriptMetadata(filepath.Join(t.TempDir(), "missing.mrt")); err == nil {
		t.Error("Expected an error for a missing script")
	}
}

func TestListScriptScenes(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		scenes, err := ListScriptScenes(filepath.Join(t.TempDir(), "nope"))
		if err != nil {
			t.Fatalf("ListScriptScenes() error: %v", err)
		}
		if scenes == nil || len(scenes) != 0 {
			t.Errorf("Expected empty slice, got %v", scenes)
		}
	})

	t.Run("sorted by name", func(t *testing.T) {
		dir := t.TempDir()
		writeScript(t, dir, "b.mrt", "# Scene: Zebra\n")
		writeScript(t, dir, "a.mrt", "# Scene: Apple\n")
		writeScript(t, dir, "ignored.txt", "# Scene: Not A Script\n")

		scenes, err := ListScriptScenes(dir)
		if err != nil {
			t.Fatalf("ListScriptScenes() error: %v", err)
		}
		if len(scenes) != 2 {
			t.Fatalf("Expected 2 scripts, got %d", len(scenes))
		}
		if scenes[0].Name != "Apple" || scenes[1].Name != "Zebra" {
			t.Errorf("Expected Apple, Zebra; got %q, %q", scenes[0].Name, scenes[1].Name)
		}
		if scenes[0].ID != "script:a" {
			t.Errorf("Expected ID script:a, got %q", scenes[0].ID)
		}
	})
}

func TestListAllScenes(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "custom.mrt", "# Scene: Custom\n")

	scenes, err := ListAllScenes(dir)
	if err != nil {
		t.Fatalf("ListAllScenes() error: %v", err)
	}

	names := Names()
	if len(scenes) != len(names)+1 {
		t.Fatalf("Expected %d scenes, got %d", len(names)+1, len(scenes))
	}
	for i, id := range names {
		if scenes[i].ID != id || scenes[i].Type != "builtin" {
			t.Errorf("Scene %d: expected builtin %q, got %+v", i, id, scenes[i])
		}
	}
	if last := scenes[len(scenes)-1]; last.Type != "script" || last.Name != "Custom" {
		t.Errorf("Expected trailing script scene, got %+v", last)
	}
}
