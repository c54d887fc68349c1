package geometry

import "github.com/df07/go-mrt-raytracer/pkg/core"

// Circle is a flat disc: a one-sided plane bounded by a radius around its position
type Circle struct {
	Plane
	Radius        float64
	radiusSquared float64
}

// NewCircle creates a new circle
func NewCircle(center, normal core.Vec3, radius float64, color core.ColorPixel) *Circle {
	return &Circle{
		Plane:         *NewPlane(center, normal, color),
		Radius:        radius,
		radiusSquared: radius * radius,
	}
}

// Intersect tests the ray against the plane of the circle, then bounds the hit by the radius
func (c *Circle) Intersect(ray *core.Ray) bool {
	t := c.distance(ray)
	if t <= 0 || t > ray.Length() {
		return false
	}

	// In-plane displacement from the center to the hit point
	offset := ray.At(t).Sub(c.Position)
	if offset.Dot(offset) > c.radiusSquared {
		return false
	}

	return ray.Record(core.HitInformation{
		Length:    t,
		HitNormal: c.faceNormal(),
		HitColor:  c.Color,
	})
}
