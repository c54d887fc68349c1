package geometry

import (
	"math"

	"github.com/df07/go-mrt-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	base
	Radius        float64
	radiusSquared float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, color core.ColorPixel) *Sphere {
	return &Sphere{
		base:          base{Position: center, Color: color},
		Radius:        radius,
		radiusSquared: radius * radius,
	}
}

// Intersect tests the ray against the sphere using the geometric method
func (s *Sphere) Intersect(ray *core.Ray) bool {
	// Vector from ray origin to sphere center, projected onto the ray
	toCenter := s.Position.Sub(ray.Origin)
	tca := toCenter.Dot(ray.Direction)
	if tca < 0 {
		return false // Center is behind the ray
	}

	// Squared distance from the center to the ray line
	d2 := toCenter.Dot(toCenter) - tca*tca
	if d2 > s.radiusSquared {
		return false
	}

	thc := math.Sqrt(s.radiusSquared - d2)
	t := tca - thc
	if t <= 0 {
		// Origin is inside or on the sphere, use the far intersection
		t = tca + thc
		if t <= 0 {
			return false
		}
	}

	if t > ray.Length() {
		return false
	}

	hitPoint := ray.At(t)
	normal, ok := core.SafeNormalize(hitPoint.Sub(s.Position))
	if !ok {
		return false // Degenerate zero-radius sphere
	}

	return ray.Record(core.HitInformation{
		Length:    t,
		HitNormal: normal,
		HitColor:  s.Color,
	})
}
