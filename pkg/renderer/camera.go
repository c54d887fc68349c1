package renderer

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-mrt-raytracer/pkg/core"
)

const (
	// DefaultFOV is the default field of view in degrees
	DefaultFOV = 59.4
	// DefaultRenderDistance is the default max viewing distance
	DefaultRenderDistance = 10000.0
)

// worldUp is the up vector used when aiming the camera at a point
var worldUp = core.NewVec3(0, 1, 0)

// Camera owns the image plane and turns pixel coordinates into world-space rays
type Camera struct {
	imagePlane    []core.ColorPixel
	width, height int

	// Aspect corrections for non-square images; the shorter axis stays at 1
	aspectX, aspectY float64

	fov                float64 // tan(fovDegrees/2)
	maxViewingDistance float64

	position   core.Vec3
	rotation   mgl64.Mat4
	camToWorld mgl64.Mat4

	initialised bool
}

// NewCamera creates a camera with a width x height image plane, positioned at
// the origin and looking down -Z. A camera with a non-positive dimension is
// left uninitialised and refuses every operation.
func NewCamera(width, height int) *Camera {
	c := &Camera{
		width:              width,
		height:             height,
		aspectX:            1,
		aspectY:            1,
		maxViewingDistance: DefaultRenderDistance,
		rotation:           mgl64.Ident4(),
		camToWorld:         mgl64.Ident4(),
	}
	c.SetFOV(DefaultFOV)

	if width <= 0 || height <= 0 {
		return c
	}

	c.imagePlane = make([]core.ColorPixel, width*height)
	c.initialised = true

	if width > height {
		c.aspectX = float64(width) / float64(height)
	}
	if height > width {
		c.aspectY = float64(height) / float64(width)
	}

	c.BuildTransform()
	return c
}

// IsInit reports whether the image plane was allocated
func (c *Camera) IsInit() bool {
	return c.initialised
}

// Width returns the image plane width in pixels
func (c *Camera) Width() int {
	return c.width
}

// Height returns the image plane height in pixels
func (c *Camera) Height() int {
	return c.height
}

// inBounds reports whether (x, y) addresses a pixel of the image plane
func (c *Camera) inBounds(x, y int) bool {
	return c.initialised && x >= 0 && x < c.width && y >= 0 && y < c.height
}

// BuildTransform rebuilds camera-to-world from the current position and rotation.
// It must run after every position or rotation change.
func (c *Camera) BuildTransform() {
	translation := mgl64.Translate3D(c.position.X(), c.position.Y(), c.position.Z())
	c.camToWorld = translation.Mul4(c.rotation)
}

// CameraToWorld returns the current camera-to-world transform
func (c *Camera) CameraToWorld() mgl64.Mat4 {
	return c.camToWorld
}

// GenerateRay builds the world-space ray through pixel (x, y) at the given
// sub-pixel sample offset (each in [0, 1)). It returns false, and a zero ray,
// for coordinates outside the image plane.
func (c *Camera) GenerateRay(x, y int, sampleX, sampleY float64) (core.Ray, bool) {
	if !c.inBounds(x, y) {
		return core.Ray{}, false
	}

	// Pixel to normalized device coordinates in [0, 1)
	ndcX := (float64(x) + sampleX) / float64(c.width)
	ndcY := (float64(y) + sampleY) / float64(c.height)

	// NDC to screen space in [-1, 1], y pointing up
	screenX := (ndcX*2 - 1) * c.aspectX * c.fov
	screenY := (1 - ndcY*2) * c.aspectY * c.fov

	pixel := c.camToWorld.Mul4x1(mgl64.Vec4{screenX, screenY, -1, 1}).Vec3()
	origin := c.camToWorld.Mul4x1(mgl64.Vec4{0, 0, 0, 1}).Vec3()

	direction, ok := core.SafeNormalize(pixel.Sub(origin))
	if !ok {
		return core.Ray{}, false
	}

	return core.NewRay(origin, direction, c.maxViewingDistance), true
}

// WritePixel stores color at (x, y). Out of range writes are ignored and return false.
func (c *Camera) WritePixel(x, y int, color core.ColorPixel) bool {
	if !c.inBounds(x, y) {
		return false
	}
	c.imagePlane[y*c.width+x] = color
	return true
}

// Pixel returns the color stored at (x, y)
func (c *Camera) Pixel(x, y int) (core.ColorPixel, bool) {
	if !c.inBounds(x, y) {
		return core.ColorPixel{}, false
	}
	return c.imagePlane[y*c.width+x], true
}

// Fill sets every pixel of the image plane to color
func (c *Camera) Fill(color core.ColorPixel) {
	for i := range c.imagePlane {
		c.imagePlane[i] = color
	}
}

// Present draws the whole image plane on the display
func (c *Camera) Present(display core.Display) {
	for y := 0; y < c.height && c.initialised; y++ {
		c.PresentRow(display, y)
	}
}

// PresentRow draws a single row of the image plane on the display
func (c *Camera) PresentRow(display core.Display, y int) {
	if !c.inBounds(0, y) {
		return
	}
	row := y * c.width
	for x := 0; x < c.width; x++ {
		display.WritePixel(x, y, c.imagePlane[row+x])
	}
}

// PresentPixel draws a single pixel of the image plane on the display
func (c *Camera) PresentPixel(display core.Display, x, y int) {
	if !c.inBounds(x, y) {
		return
	}
	display.WritePixel(x, y, c.imagePlane[y*c.width+x])
}

// Image converts the image plane to an 8-bit RGBA image
func (c *Camera) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, max(c.width, 0), max(c.height, 0)))
	for y := 0; y < c.height && c.initialised; y++ {
		for x := 0; x < c.width; x++ {
			img.SetRGBA(x, y, c.imagePlane[y*c.width+x].RGBA())
		}
	}
	return img
}

// SetFOV sets the field of view from an angle in degrees
func (c *Camera) SetFOV(angleDegrees float64) {
	c.fov = math.Tan(mgl64.DegToRad(angleDegrees) / 2)
}

// GetFOVFactor returns tan(fov/2), the screen-space scale applied to rays
func (c *Camera) GetFOVFactor() float64 {
	return c.fov
}

// SetPosition moves the camera and rebuilds its transform
func (c *Camera) SetPosition(position core.Vec3) {
	c.position = position
	c.BuildTransform()
}

// GetPosition returns the camera position in world space
func (c *Camera) GetPosition() core.Vec3 {
	return c.position
}

// SetRotation sets the camera orientation to a rotation of angleDegrees around
// axis and rebuilds the transform. A zero axis resets to no rotation.
func (c *Camera) SetRotation(axis core.Vec3, angleDegrees float64) {
	if unit, ok := core.SafeNormalize(axis); ok {
		c.rotation = mgl64.HomogRotate3D(mgl64.DegToRad(angleDegrees), unit)
	} else {
		c.rotation = mgl64.Ident4()
	}
	c.BuildTransform()
}

// LookAt orients the camera towards point using (0,1,0) as world up. It returns
// false, leaving the orientation unchanged, when point coincides with the
// camera or lies straight above or below it.
func (c *Camera) LookAt(point core.Vec3) bool {
	forward, ok := core.SafeNormalize(point.Sub(c.position))
	if !ok || forward.Cross(worldUp).Len() < 1e-9 {
		return false
	}

	// The inverse view matrix is camera-to-world including the translation
	// to the camera position; keep only its rotation so BuildTransform does
	// not apply the position twice.
	rotation := mgl64.LookAtV(c.position, point, worldUp).Inv()
	rotation.SetCol(3, mgl64.Vec4{0, 0, 0, 1})
	c.rotation = rotation

	c.BuildTransform()
	return true
}

// SetRenderDistance sets the max viewing distance given to every generated ray
func (c *Camera) SetRenderDistance(distance float64) {
	c.maxViewingDistance = distance
}

// GetRenderDistance returns the max viewing distance
func (c *Camera) GetRenderDistance() float64 {
	return c.maxViewingDistance
}
