package scene

import (
	"github.com/df07/go-mrt-raytracer/pkg/core"
	"github.com/df07/go-mrt-raytracer/pkg/geometry"
	"github.com/df07/go-mrt-raytracer/pkg/renderer"
)

// Scene contains everything needed to set up a raytracer for rendering
type Scene struct {
	Name        string
	Description string
	Width       int // Recommended image width
	Height      int // Recommended image height
	Background  core.ColorPixel
	Camera      CameraConfig
	Primitives  []geometry.Primitive // Objects in the scene
}

// CameraConfig describes how the camera is placed. Zero values select the
// camera defaults: identity orientation, DefaultFOV and DefaultRenderDistance.
type CameraConfig struct {
	Position        core.Vec3
	LookAt          *core.Vec3 // Point to aim at; takes precedence over the rotation
	RotationAxis    core.Vec3
	RotationDegrees float64
	FOV             float64 // Field of view in degrees
	RenderDistance  float64 // Max viewing distance
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Position != (core.Vec3{}) {
		result.Position = override.Position
	}
	if override.LookAt != nil {
		target := *override.LookAt
		result.LookAt = &target
	}
	if override.RotationAxis != (core.Vec3{}) {
		result.RotationAxis = override.RotationAxis
		result.RotationDegrees = override.RotationDegrees
		if override.LookAt == nil {
			result.LookAt = nil
		}
	}
	if override.FOV > 0 {
		result.FOV = override.FOV
	}
	if override.RenderDistance > 0 {
		result.RenderDistance = override.RenderDistance
	}
	return result
}

// Point returns a pointer to p, for filling CameraConfig.LookAt
func Point(x, y, z float64) *core.Vec3 {
	p := core.NewVec3(x, y, z)
	return &p
}

// ApplyCamera replaces every camera setting with the config's, so earlier
// camera commands do not leak into the result. The position is set before the
// orientation so LookAt aims from the new position.
func (c CameraConfig) ApplyCamera(rt *renderer.Raytracer) {
	fov := c.FOV
	if fov <= 0 {
		fov = renderer.DefaultFOV
	}
	rt.SetCameraFOV(fov)

	distance := c.RenderDistance
	if distance <= 0 {
		distance = renderer.DefaultRenderDistance
	}
	rt.SetCameraRenderDistance(distance)

	rt.SetCameraPosition(c.Position)

	// A zero axis resets the orientation; a failed LookAt keeps it
	rt.SetCameraRotation(c.RotationAxis, c.RotationDegrees)
	if c.LookAt != nil {
		rt.SetCameraLookAt(*c.LookAt)
	}
}

// Apply replaces the raytracer's scene with this one and returns the number of
// primitives that were added. The camera is placed first because primitives
// are ordered by their distance from it when added.
func (s *Scene) Apply(rt *renderer.Raytracer) int {
	rt.ClearPrimitives()
	rt.SetBackgroundColor(s.Background)
	s.Camera.ApplyCamera(rt)

	added := 0
	for _, p := range s.Primitives {
		if rt.AddPrimitive(p) {
			added++
		}
	}
	return added
}

// GetPrimitiveCount returns the number of primitives in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Primitives)
}

// AddSphere adds a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, color core.ColorPixel) {
	s.Primitives = append(s.Primitives, geometry.NewSphere(center, radius, color))
}

// AddCircle adds a circle to the scene
func (s *Scene) AddCircle(center, normal core.Vec3, radius float64, color core.ColorPixel) {
	s.Primitives = append(s.Primitives, geometry.NewCircle(center, normal, radius, color))
}

// AddPlane adds an infinite one-sided plane to the scene
func (s *Scene) AddPlane(point, normal core.Vec3, color core.ColorPixel) {
	s.Primitives = append(s.Primitives, geometry.NewPlane(point, normal, color))
}
