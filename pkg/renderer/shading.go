package renderer

import "github.com/df07/go-mrt-raytracer/pkg/core"

// minFacingRatio keeps surfaces facing away from the camera from going fully black
const minFacingRatio = 0.05

// Shade colors the ray's recorded hit using its facing ratio: the camera acts as
// the only light, so surfaces are brightest when they face the viewer head-on.
func Shade(ray core.Ray) core.ColorPixel {
	facingRatio := max(minFacingRatio, ray.Hit.HitNormal.Dot(ray.Direction.Mul(-1)))
	return ray.Hit.HitColor.Scale(facingRatio)
}
