package core

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is the 3D vector type shared across the renderer
type Vec3 = mgl64.Vec3

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Distance returns the Euclidean distance between two points
func Distance(a, b Vec3) float64 {
	return a.Sub(b).Len()
}

// SafeNormalize returns a unit vector in the same direction, or the zero vector
// (and false) when v has no length
func SafeNormalize(v Vec3) (Vec3, bool) {
	length := v.Len()
	if length == 0 {
		return Vec3{}, false
	}
	return v.Mul(1.0 / length), true
}
