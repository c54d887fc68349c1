package geometry

import "github.com/df07/go-mrt-raytracer/pkg/core"

// planeEpsilon is the smallest dot(rayDir, normal) treated as a front-facing hit
const planeEpsilon = 1e-6

// Plane represents an infinite one-sided plane defined by a point and normal.
// Only rays travelling along the normal (dot(dir, normal) > epsilon) hit it.
type Plane struct {
	base
	Normal core.Vec3 // Unit normal
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, color core.ColorPixel) *Plane {
	return &Plane{
		base:   base{Position: point, Color: color},
		Normal: normalizeOr(normal, core.NewVec3(0, 0, -1)),
	}
}

// distance returns the signed distance along the ray to the plane, or 0 when
// the ray does not approach the plane from its front side
func (p *Plane) distance(ray *core.Ray) float64 {
	denom := ray.Direction.Dot(p.Normal)
	if denom <= planeEpsilon {
		return 0
	}
	return p.Position.Sub(ray.Origin).Dot(p.Normal) / denom
}

// faceNormal returns the plane normal oriented towards the incoming ray
func (p *Plane) faceNormal() core.Vec3 {
	return p.Normal.Mul(-1)
}

// Intersect tests the ray against the infinite plane
func (p *Plane) Intersect(ray *core.Ray) bool {
	t := p.distance(ray)
	if t <= 0 || t > ray.Length() {
		return false
	}

	return ray.Record(core.HitInformation{
		Length:    t,
		HitNormal: p.faceNormal(),
		HitColor:  p.Color,
	})
}

// normalizeOr normalizes v, falling back when v has no length
func normalizeOr(v, fallback core.Vec3) core.Vec3 {
	if n, ok := core.SafeNormalize(v); ok {
		return n
	}
	return fallback
}
