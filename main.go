package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-mrt-raytracer/pkg/console"
	"github.com/df07/go-mrt-raytracer/pkg/display"
	"github.com/df07/go-mrt-raytracer/pkg/display/window"
	"github.com/df07/go-mrt-raytracer/pkg/renderer"
	"github.com/df07/go-mrt-raytracer/pkg/scene"
)

// scenesDir holds interpreter scripts that can be selected with -scene
const scenesDir = "scenes"

// Config holds the command line options
type Config struct {
	SceneType   string
	Width       int
	Height      int
	Output      string
	Scale       int
	Workers     int
	Window      bool
	Interactive bool
	Script      string
	List        bool
	Help        bool
}

func main() {
	config := parseFlags()

	if config.Help {
		showHelp()
		return
	}
	if config.List {
		if err := listScenes(os.Stdout); err != nil {
			log.Fatalf("Error listing scenes: %v", err)
		}
		return
	}

	if err := run(config); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.SceneType, "scene", "default", "Built-in scene name, or a script: scenes/<name>.mrt or a path ending in .mrt")
	flag.IntVar(&config.Width, "width", 0, "Image width (0 uses the scene's size)")
	flag.IntVar(&config.Height, "height", 0, "Image height (0 uses the scene's size)")
	flag.StringVar(&config.Output, "out", "", "Output image path (default output/<scene>/render_<timestamp>.png)")
	flag.IntVar(&config.Scale, "scale", 1, "Integer upscale factor for saved images and the window")
	flag.IntVar(&config.Workers, "workers", 1, "Number of rendering workers (1 renders on a single goroutine)")
	flag.BoolVar(&config.Window, "window", false, "Show the render in a desktop window")
	flag.BoolVar(&config.Interactive, "interactive", false, "Read interpreter commands from stdin")
	flag.StringVar(&config.Script, "script", "", "Interpreter script to run after loading the scene")
	flag.BoolVar(&config.List, "list", false, "List available scenes")
	flag.BoolVar(&config.Help, "help", false, "Show help information")
	flag.Parse()
	return config
}

func showHelp() {
	fmt.Println("MRT Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Printf("Built-in scenes: %s\n", strings.Join(scene.Names(), ", "))
	fmt.Println("Without -interactive the scene is rendered once and saved to -out.")
	fmt.Println("Type 'help' in interactive mode for the command list.")
}

func listScenes(w io.Writer) error {
	scenes, err := scene.ListAllScenes(scenesDir)
	if err != nil {
		return err
	}
	for _, s := range scenes {
		fmt.Fprintf(w, "  %-20s %s\n", s.ID, s.Description)
	}
	return nil
}

// createScene resolves a scene name to a built-in scene, or to an empty scene
// plus the path of the script that builds it
func createScene(sceneType string) (*scene.Scene, string, error) {
	if sceneType == "" {
		return nil, "", fmt.Errorf("%w: empty scene name", scene.ErrUnknownScene)
	}

	if s, err := scene.Lookup(sceneType); err == nil {
		return s, "", nil
	}

	scriptPath := sceneType
	if !strings.HasSuffix(scriptPath, scene.ScriptExt) {
		scriptPath = filepath.Join(scenesDir, strings.TrimPrefix(sceneType, "script:")+scene.ScriptExt)
	}
	info, err := scene.ParseScriptMetadata(scriptPath)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %q (available: %s)", scene.ErrUnknownScene, sceneType, strings.Join(scene.Names(), ", "))
	}

	s := scene.NewEmptyScene()
	s.Name = strings.TrimPrefix(info.ID, "script:")
	s.Description = info.Description
	return s, scriptPath, nil
}

func run(config Config) error {
	s, sceneScript, err := createScene(config.SceneType)
	if err != nil {
		return err
	}

	width, height := s.Width, s.Height
	if config.Width != 0 {
		width = config.Width
	}
	if config.Height != 0 {
		height = config.Height
	}

	logger := renderer.NewDefaultLogger()
	rtConfig := renderer.DefaultConfig()
	rtConfig.NumWorkers = max(1, config.Workers)
	rt := renderer.NewRaytracer(width, height, rtConfig, logger)
	if !rt.IsInit() {
		return fmt.Errorf("invalid image size %dx%d: %w", width, height, renderer.ErrNotInitialised)
	}

	interp, err := console.NewInterpreter(rt, os.Stdout, logger)
	if err != nil {
		return err
	}
	interp.OutputScale = max(1, config.Scale)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scripts := []string{sceneScript, config.Script}
	fmt.Printf("Using %s scene (%dx%d)...\n", s.Name, width, height)

	if config.Window {
		fb := display.NewFrameBuffer(width, height)
		rt.SetDisplay(fb)

		go func() {
			if err := session(ctx, config, s, scripts, rt, interp); err != nil {
				logger.Printf("Session ended: %v\n", err)
			}
			if interp.QuitRequested() {
				fb.Close()
			}
		}()

		return window.Run(fb, "MRT Raytracer - "+s.Name, config.Scale)
	}

	sink := display.NewImageSink(width, height)
	rt.SetDisplay(sink)
	if err := session(ctx, config, s, scripts, rt, interp); err != nil {
		return err
	}
	if config.Interactive {
		return nil
	}

	output := config.Output
	if output == "" {
		timestamp := time.Now().Format("20060102_150405")
		output = filepath.Join("output", s.Name, fmt.Sprintf("render_%s.png", timestamp))
	}
	if err := sink.Save(output, config.Scale); err != nil {
		return err
	}
	fmt.Printf("Render saved as %s\n", output)
	return nil
}

// session sets up the scene, runs scripts and then either reads commands from
// stdin or renders once
func session(ctx context.Context, config Config, s *scene.Scene, scripts []string, rt *renderer.Raytracer, interp *console.Interpreter) error {
	added := s.Apply(rt)
	if added < s.GetPrimitiveCount() {
		fmt.Printf("Warning: only %d of %d primitives fit in the scene\n", added, s.GetPrimitiveCount())
	}

	for _, path := range scripts {
		if path == "" {
			continue
		}
		if err := runScript(ctx, interp, path); err != nil {
			return err
		}
		if interp.QuitRequested() {
			return nil
		}
	}

	if config.Interactive {
		fmt.Println("Type 'help' for commands, 'quit' to exit.")
		interp.Prompt = "> "
		return interp.Run(ctx, os.Stdin)
	}

	stats, err := rt.RenderScene(ctx)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	printStats(rt, stats)
	return nil
}

func runScript(ctx context.Context, interp *console.Interpreter, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open script: %w", err)
	}
	defer file.Close()

	return interp.Run(ctx, file)
}

func printStats(rt *renderer.Raytracer, stats renderer.RenderStats) {
	fmt.Printf("Render completed in %v\n", stats.Duration)
	fmt.Printf("Primitives: %d/%d, hit ratio: %.1f%%, intersection tests: %d\n",
		rt.PrimitiveCount(), rt.Capacity(), 100*stats.HitRatio(), stats.IntersectionTests)
}
