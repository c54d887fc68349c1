package scene

import (
	"math"

	"github.com/df07/go-mrt-raytracer/pkg/core"
)

// NewCirclesScene creates a receding tunnel of discs, each tilted a little more than the last
func NewCirclesScene(cameraOverrides ...CameraConfig) *Scene {
	defaultCameraConfig := CameraConfig{
		Position: core.NewVec3(0, 0, 2),
		FOV:      50.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := &Scene{
		Name:        "circles",
		Description: "Tilted discs receding from the camera",
		Width:       320,
		Height:      320,
		Background:  core.NewColorPixel(0.1, 0.1, 0.12),
		Camera:      cameraConfig,
	}

	const count = 8
	for i := 0; i < count; i++ {
		angle := float64(i) * math.Pi / 16
		normal := core.NewVec3(math.Sin(angle), 0, -math.Cos(angle))
		center := core.NewVec3(0, 0, -2-2*float64(i))
		shade := 1.0 - float64(i)/count
		s.AddCircle(center, normal, 0.5+0.35*float64(i), core.NewColorPixel(shade, 0.4, 1-shade))
	}

	// A sphere sitting in front of the tunnel
	s.AddSphere(core.NewVec3(0.6, -0.4, -1.5), 0.3, core.NewColorPixel(0.95, 0.95, 0.95))

	return s
}
