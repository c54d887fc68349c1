package core

// HitInformation holds the closest intersection recorded on a ray so far
type HitInformation struct {
	Length    float64    // Distance along the ray to the hit
	HitNormal Vec3       // Unit surface normal at the hit
	HitColor  ColorPixel // Color of the primitive that was hit
}

// Ray represents a ray with an origin, a unit direction and its current best hit
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Hit       HitInformation
}

// NewRay creates a new ray whose hit length starts at maxLength
func NewRay(origin, direction Vec3, maxLength float64) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction,
		Hit:       HitInformation{Length: maxLength},
	}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Length returns the distance to the closest hit recorded so far
func (r *Ray) Length() float64 {
	return r.Hit.Length
}

// Record stores hit as the ray's current best hit. Hits farther than the current
// length are refused so the length never grows. A hit at exactly the current
// length replaces it: among coincident surfaces the last one tested wins.
func (r *Ray) Record(hit HitInformation) bool {
	if hit.Length > r.Hit.Length {
		return false
	}
	r.Hit = hit
	return true
}
