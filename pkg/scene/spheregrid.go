package scene

import (
	"math"

	"github.com/df07/go-mrt-raytracer/pkg/core"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.ColorPixel {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewColorPixel(r, g, blue).Clamp()
}

// NewSphereGridScene creates a scene with a grid of spheres whose hue varies across the grid
func NewSphereGridScene(gridSize int, cameraOverrides ...CameraConfig) *Scene {
	if gridSize <= 0 {
		gridSize = 9
	}
	// Keep within the raytracer's default capacity, leaving room for the floor
	gridSize = min(gridSize, 9)

	spacing := 1.0
	extent := float64(gridSize-1) * spacing

	defaultCameraConfig := CameraConfig{
		Position: core.NewVec3(extent/2, 6, extent+9),
		LookAt:   Point(extent/2, 0.5, extent/2),
		FOV:      45.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := &Scene{
		Name:        "spheregrid",
		Description: "A grid of colored spheres",
		Width:       400,
		Height:      300,
		Background:  core.NewColorPixel(0.05, 0.05, 0.1),
		Camera:      cameraConfig,
	}

	radius := 0.4 * spacing
	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			hue := 360.0 * float64(i*gridSize+j) / float64(gridSize*gridSize)
			center := core.NewVec3(float64(i)*spacing, radius, float64(j)*spacing)
			s.AddSphere(center, radius, oklchToRGB(0.7, 0.15, hue))
		}
	}

	// Ground disc beneath the grid, facing down towards the floor side
	s.AddCircle(core.NewVec3(extent/2, 0, extent/2), core.NewVec3(0, -1, 0), extent+2, core.NewColorPixel(0.6, 0.6, 0.6))

	return s
}
