package scene

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrUnknownScene is returned when no built-in scene or script matches a name
var ErrUnknownScene = errors.New("unknown scene")

// ScriptExt is the file extension of interpreter scripts describing scenes
const ScriptExt = ".mrt"

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string // Unique identifier, used on the command line
	Name        string // Scene name
	Description string // Optional description
	Type        string // "builtin" or "script"
	FilePath    string // Path to the script (script type only)
}

type builtin struct {
	info SceneInfo
	new  func() *Scene
}

var builtins = []builtin{
	{SceneInfo{ID: "default", Name: "Default Scene", Description: "Three spheres over a circular floor", Type: "builtin"},
		func() *Scene { return NewDefaultScene() }},
	{SceneInfo{ID: "spheregrid", Name: "Sphere Grid", Description: "9x9 grid of colored spheres", Type: "builtin"},
		func() *Scene { return NewSphereGridScene(9) }},
	{SceneInfo{ID: "circles", Name: "Circles", Description: "Tilted discs receding from the camera", Type: "builtin"},
		func() *Scene { return NewCirclesScene() }},
	{SceneInfo{ID: "empty", Name: "Empty", Description: "Background only", Type: "builtin"},
		func() *Scene { return NewEmptyScene() }},
}

// Lookup returns a fresh instance of the named built-in scene
func Lookup(id string) (*Scene, error) {
	for _, b := range builtins {
		if b.info.ID == id {
			return b.new(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, id, strings.Join(Names(), ", "))
}

// Names returns the identifiers of the built-in scenes in display order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for _, b := range builtins {
		names = append(names, b.info.ID)
	}
	return names
}

// ListScriptScenes scans dir for interpreter scripts and returns their metadata
func ListScriptScenes(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		// No scenes directory, nothing to list
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*"+ScriptExt))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		info, err := ParseScriptMetadata(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse metadata for %s: %w", filePath, err)
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes, nil
}

// ParseScriptMetadata extracts metadata from the header comments of a script
func ParseScriptMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := SceneInfo{
		ID:       "script:" + nameWithoutExt,
		Name:     titleCase(nameWithoutExt),
		Type:     "script",
		FilePath: filePath,
	}

	file, err := os.Open(filePath)
	if err != nil {
		return info, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Metadata only lives in the leading comment block
		if !strings.HasPrefix(line, "#") {
			break
		}

		content := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		if v, ok := strings.CutPrefix(content, "Scene:"); ok {
			info.Name = strings.TrimSpace(v)
		} else if v, ok := strings.CutPrefix(content, "Description:"); ok {
			info.Description = strings.TrimSpace(v)
		}
	}

	return info, scanner.Err()
}

// ListAllScenes returns the built-in scenes followed by the scripts found in dir
func ListAllScenes(dir string) ([]SceneInfo, error) {
	all := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		all = append(all, b.info)
	}

	scripts, err := ListScriptScenes(dir)
	if err != nil {
		return nil, err
	}
	return append(all, scripts...), nil
}

// titleCase converts a filename-style string to title case
// e.g., "red-spheres" -> "Red Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
