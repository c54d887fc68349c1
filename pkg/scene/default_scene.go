package scene

import (
	"github.com/df07/go-mrt-raytracer/pkg/core"
	"github.com/df07/go-mrt-raytracer/pkg/renderer"
)

// NewDefaultScene creates a default scene with three spheres resting over a circular floor
func NewDefaultScene(cameraOverrides ...CameraConfig) *Scene {
	defaultCameraConfig := CameraConfig{
		Position: core.NewVec3(0, 1, 4), // Slightly above the floor
		LookAt:   Point(0, 0, -2),       // Look at the middle sphere
		FOV:      60.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := &Scene{
		Name:        "default",
		Description: "Three spheres over a circular floor",
		Width:       400,
		Height:      225, // 16:9 aspect ratio
		Background:  core.NewColorPixel(0.4, 0.5, 1.0),
		Camera:      cameraConfig,
	}

	s.AddSphere(core.NewVec3(0, 0, -2), 1, core.NewColorPixel(0.9, 0.2, 0.2))
	s.AddSphere(core.NewVec3(-2.2, 0, -3), 1, core.NewColorPixel(0.2, 0.8, 0.3))
	s.AddSphere(core.NewVec3(2.2, 0, -3), 1, core.NewColorPixel(0.2, 0.4, 0.9))
	s.AddSphere(core.NewVec3(0.9, -0.6, -0.4), 0.4, core.NewColorPixel(0.95, 0.85, 0.2))

	// Floor faces down so rays travelling downwards hit it
	s.AddCircle(core.NewVec3(0, -1, -2), core.NewVec3(0, -1, 0), 6, core.NewColorPixel(0.7, 0.7, 0.7))

	// Far back wall
	s.AddPlane(core.NewVec3(0, 0, -30), core.NewVec3(0, 0, -1), core.NewColorPixel(0.3, 0.3, 0.35))

	return s
}

// NewEmptyScene creates a scene with no primitives, rendering only the background
func NewEmptyScene(cameraOverrides ...CameraConfig) *Scene {
	cameraConfig := CameraConfig{FOV: renderer.DefaultFOV}
	if len(cameraOverrides) > 0 {
		cameraConfig = MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	return &Scene{
		Name:        "empty",
		Description: "Background only",
		Width:       320,
		Height:      240,
		Background:  core.NewColorPixel(0.4, 0.5, 1.0),
		Camera:      cameraConfig,
	}
}
