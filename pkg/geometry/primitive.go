package geometry

import "github.com/df07/go-mrt-raytracer/pkg/core"

// Primitive is a shape that can be intersected by a ray. The set of primitives
// is closed: Sphere, Plane and Circle.
type Primitive interface {
	// Intersect records a hit on the ray and returns true only when the
	// primitive is hit at a positive distance no farther than the ray's
	// current length. On a miss the ray is left untouched.
	Intersect(ray *core.Ray) bool
	GetPosition() core.Vec3
	GetColor() core.ColorPixel

	isPrimitive()
}

// DefaultColor is used by the scene surfaces when no color is given
var DefaultColor = core.NewColorPixel(1, 0, 0)

// base holds the state shared by every primitive
type base struct {
	Position core.Vec3
	Color    core.ColorPixel
}

// GetPosition returns the position of the primitive
func (b *base) GetPosition() core.Vec3 {
	return b.Position
}

// GetColor returns the color of the primitive
func (b *base) GetColor() core.ColorPixel {
	return b.Color
}

func (b *base) isPrimitive() {}
