package renderer

import (
	"context"
	"errors"
	"slices"
	"sort"
	"time"

	"github.com/df07/go-mrt-raytracer/pkg/core"
	"github.com/df07/go-mrt-raytracer/pkg/geometry"
)

// ErrNotInitialised is returned when rendering with a raytracer whose image
// plane or primitive storage could not be set up
var ErrNotInitialised = errors.New("raytracer not initialised")

// Config contains rendering configuration
type Config struct {
	Capacity   int             // Maximum number of primitives in the scene
	Background core.ColorPixel // Color of pixels where nothing is hit
	SampleX    float64         // Sub-pixel sample offset in [0, 1)
	SampleY    float64
	NumWorkers int // Parallel row workers (<= 1 renders on the calling goroutine)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Capacity:   100,
		Background: core.NewColorPixel(0.4, 0.5, 1.0),
		SampleX:    0.5,
		SampleY:    0.5,
		NumWorkers: 1,
	}
}

// Raytracer owns the camera and the scene's primitives and renders them
type Raytracer struct {
	camera *Camera
	config Config

	// primitives is kept sorted by distance from the camera at insertion time;
	// distances holds the matching distance for each entry
	primitives []geometry.Primitive
	distances  []float64

	display     core.Display
	logger      core.Logger
	initialised bool
}

// NewRaytracer creates a raytracer with a width x height image plane. The
// returned raytracer refuses to act when the image plane or primitive storage
// cannot be set up; check IsInit.
func NewRaytracer(width, height int, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = nopLogger{}
	}

	rt := &Raytracer{
		camera: NewCamera(width, height),
		config: config,
		logger: logger,
	}

	if config.Capacity > 0 {
		rt.primitives = make([]geometry.Primitive, 0, config.Capacity)
		rt.distances = make([]float64, 0, config.Capacity)
	}
	rt.initialised = rt.camera.IsInit() && config.Capacity > 0
	return rt
}

// IsInit reports whether the raytracer is usable
func (rt *Raytracer) IsInit() bool {
	return rt.initialised
}

// GetCamera returns the raytracer's camera
func (rt *Raytracer) GetCamera() *Camera {
	return rt.camera
}

// SetDisplay sets the display rendered pixels are presented on (nil for none)
func (rt *Raytracer) SetDisplay(display core.Display) {
	rt.display = display
}

// SetBackgroundColor sets the color of pixels where nothing is hit
func (rt *Raytracer) SetBackgroundColor(color core.ColorPixel) {
	rt.config.Background = color
}

// GetBackgroundColor returns the background color
func (rt *Raytracer) GetBackgroundColor() core.ColorPixel {
	return rt.config.Background
}

// SetNumWorkers sets how many goroutines render rows in parallel
func (rt *Raytracer) SetNumWorkers(n int) {
	rt.config.NumWorkers = n
}

// SetCameraPosition moves the camera
func (rt *Raytracer) SetCameraPosition(position core.Vec3) {
	rt.camera.SetPosition(position)
}

// SetCameraRotation rotates the camera angleDegrees around axis
func (rt *Raytracer) SetCameraRotation(axis core.Vec3, angleDegrees float64) {
	rt.camera.SetRotation(axis, angleDegrees)
}

// SetCameraLookAt aims the camera at point
func (rt *Raytracer) SetCameraLookAt(point core.Vec3) bool {
	return rt.camera.LookAt(point)
}

// SetCameraFOV sets the camera field of view in degrees
func (rt *Raytracer) SetCameraFOV(angleDegrees float64) {
	rt.camera.SetFOV(angleDegrees)
}

// SetCameraRenderDistance sets the camera's max viewing distance
func (rt *Raytracer) SetCameraRenderDistance(distance float64) {
	rt.camera.SetRenderDistance(distance)
}

// AddPrimitive adds a primitive to the scene, ordered by its distance from the
// camera. It returns false without adding anything when the raytracer is not
// initialised or the scene is at capacity.
func (rt *Raytracer) AddPrimitive(object geometry.Primitive) bool {
	if !rt.initialised || object == nil {
		return false
	}
	if len(rt.primitives) >= rt.config.Capacity {
		rt.logger.Printf("Scene is full (%d primitives), %T not added\n", rt.config.Capacity, object)
		return false
	}

	dist := core.Distance(object.GetPosition(), rt.camera.GetPosition())

	// Insert before the first entry that is farther away; ties keep insertion order
	insert := sort.Search(len(rt.distances), func(i int) bool {
		return rt.distances[i] > dist
	})
	rt.primitives = slices.Insert(rt.primitives, insert, object)
	rt.distances = slices.Insert(rt.distances, insert, dist)
	return true
}

// AddSphere adds a sphere to the scene
func (rt *Raytracer) AddSphere(position core.Vec3, radius float64, color core.ColorPixel) bool {
	return rt.AddPrimitive(geometry.NewSphere(position, radius, color))
}

// AddCircle adds a circle to the scene
func (rt *Raytracer) AddCircle(position, normal core.Vec3, radius float64, color core.ColorPixel) bool {
	return rt.AddPrimitive(geometry.NewCircle(position, normal, radius, color))
}

// AddPlane adds an infinite one-sided plane to the scene
func (rt *Raytracer) AddPlane(position, normal core.Vec3, color core.ColorPixel) bool {
	return rt.AddPrimitive(geometry.NewPlane(position, normal, color))
}

// ClearPrimitives removes every primitive from the scene
func (rt *Raytracer) ClearPrimitives() {
	clear(rt.primitives)
	rt.primitives = rt.primitives[:0]
	rt.distances = rt.distances[:0]
}

// PrimitiveCount returns the number of primitives in the scene
func (rt *Raytracer) PrimitiveCount() int {
	return len(rt.primitives)
}

// Capacity returns the maximum number of primitives the scene can hold
func (rt *Raytracer) Capacity() int {
	return rt.config.Capacity
}

// GetPrimitives returns the primitives nearest-first
func (rt *Raytracer) GetPrimitives() []geometry.Primitive {
	return slices.Clone(rt.primitives)
}

// RenderScene traces one ray through the center of every pixel, writes the
// result to the camera's image plane and presents it on the display. Rendering
// stops early when ctx is cancelled or the display asks to shut down.
func (rt *Raytracer) RenderScene(ctx context.Context) (RenderStats, error) {
	if !rt.initialised {
		return RenderStats{}, ErrNotInitialised
	}

	workers := max(1, rt.config.NumWorkers)
	rt.logger.Printf("Rendering %dx%d with %d primitives (using %d workers)...\n",
		rt.camera.Width(), rt.camera.Height(), len(rt.primitives), workers)

	start := time.Now()
	rt.camera.Fill(rt.config.Background)

	var stats RenderStats
	var err error
	if workers == 1 {
		stats, err = rt.renderSerial(ctx)
	} else {
		stats, err = rt.renderParallel(ctx, workers)
	}
	stats.Workers = workers
	stats.Duration = time.Since(start)

	if stats.Cancelled {
		rt.logger.Printf("Render stopped after %d of %d rows\n", stats.RowsRendered, rt.camera.Height())
	} else {
		rt.logger.Printf("Render completed in %v (%d pixels, %d hit, %d intersection tests)\n",
			stats.Duration, stats.TotalPixels, stats.HitPixels, stats.IntersectionTests)
	}
	return stats, err
}

// renderSerial renders rows top to bottom on the calling goroutine
func (rt *Raytracer) renderSerial(ctx context.Context) (RenderStats, error) {
	var stats RenderStats
	for y := 0; y < rt.camera.Height(); y++ {
		if err := ctx.Err(); err != nil {
			stats.Cancelled = true
			return stats, err
		}

		stats.AddRow(rt.RenderRow(y))

		if !rt.presentRow(y) {
			stats.Cancelled = true
			break
		}
	}
	return stats, nil
}

// presentRow shows row y on the display and polls it. It returns false when
// the display has asked to shut down.
func (rt *Raytracer) presentRow(y int) bool {
	if rt.display == nil {
		return true
	}
	rt.camera.PresentRow(rt.display, y)
	return rt.display.AdvanceFrame()
}

// RenderRow renders scanline y into the image plane. Rows are independent, so
// distinct rows may be rendered concurrently while the scene is not mutated.
func (rt *Raytracer) RenderRow(y int) RowStats {
	var row RowStats
	for x := 0; x < rt.camera.Width(); x++ {
		color, hit, tests := rt.tracePixel(x, y)
		rt.camera.WritePixel(x, y, color)

		row.Pixels++
		row.Tests += tests
		if hit {
			row.Hits++
		}
	}
	return row
}

// tracePixel casts the ray for pixel (x, y) against every primitive. Each
// successful intersection shortens the ray, so the last recorded hit is the
// nearest one regardless of iteration order. Primitives are tested far to near,
// so a tie between coincident surfaces goes to the one whose position is
// nearest the camera; only exactly equal positions fall back to insertion order.
func (rt *Raytracer) tracePixel(x, y int) (core.ColorPixel, bool, int) {
	color := rt.config.Background

	ray, ok := rt.camera.GenerateRay(x, y, rt.config.SampleX, rt.config.SampleY)
	if !ok {
		return color, false, 0
	}

	hit := false
	for i := len(rt.primitives) - 1; i >= 0; i-- {
		if rt.primitives[i].Intersect(&ray) {
			color = Shade(ray)
			hit = true
		}
	}
	return color, hit, len(rt.primitives)
}
