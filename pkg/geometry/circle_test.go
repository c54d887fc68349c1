package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-mrt-raytracer/pkg/core"
)

func TestCircle_Intersect(t *testing.T) {
	circle := NewCircle(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, -1), 1.0, testRed)

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		expectHit bool
		expectedT float64
	}{
		{"through center", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), true, 5},
		{"inside radius", core.NewVec3(0.5, 0.5, 0), core.NewVec3(0, 0, -1), true, 5},
		{"on rim", core.NewVec3(1, 0, 0), core.NewVec3(0, 0, -1), true, 5},
		{"outside radius", core.NewVec3(1.01, 0, 0), core.NewVec3(0, 0, -1), false, 0},
		{"back face", core.NewVec3(0, 0, -10), core.NewVec3(0, 0, 1), false, 0},
		{"behind ray", core.NewVec3(0, 0, -10), core.NewVec3(0, 0, -1), false, 0},
		{"parallel", core.NewVec3(0, 0, -5), core.NewVec3(1, 0, 0), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := newTestRay(tt.origin, tt.direction)
			hit := circle.Intersect(&ray)
			if hit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, hit)
			}
			if hit && math.Abs(ray.Length()-tt.expectedT) > tolerance {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, ray.Length())
			}
			if !hit && ray.Length() != 1000 {
				t.Errorf("Miss must leave the ray untouched, length is %f", ray.Length())
			}
		})
	}
}

// The hit normal is the circle's plane normal turned to face the viewer. An
// earlier formulation derived it from the normal and the hit point, which made
// the shading depend on where the circle sits in world space.
func TestCircle_Intersect_NormalIsPlaneNormal(t *testing.T) {
	normal := core.NewVec3(0, -1, -1).Normalize()
	positions := []core.Vec3{
		core.NewVec3(0, -2, -5),
		core.NewVec3(40, -2, -5),
		core.NewVec3(-3, 7, -20),
	}

	for _, pos := range positions {
		circle := NewCircle(pos, normal, 0.5, testRed)
		ray := newTestRay(core.NewVec3(0, 0, 0), pos)
		if !circle.Intersect(&ray) {
			t.Fatalf("Expected hit on circle at %v", pos)
		}

		expected := normal.Mul(-1)
		if !vecNear(ray.Hit.HitNormal, expected, tolerance) {
			t.Errorf("Circle at %v: expected normal %v, got %v", pos, expected, ray.Hit.HitNormal)
		}
	}
}

func TestCircle_Intersect_CloserHitWins(t *testing.T) {
	near := NewCircle(core.NewVec3(0, 0, -3), core.NewVec3(0, 0, -1), 1, core.NewColorPixel(0, 1, 0))
	far := NewCircle(core.NewVec3(0, 0, -6), core.NewVec3(0, 0, -1), 1, core.NewColorPixel(0, 0, 1))
	ray := newTestRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if !near.Intersect(&ray) {
		t.Fatal("Expected near circle to be hit")
	}
	if far.Intersect(&ray) {
		t.Error("Expected farther circle to be rejected after a closer hit")
	}
	if ray.Hit.HitColor != near.GetColor() {
		t.Errorf("Expected near circle color to be kept, got %v", ray.Hit.HitColor)
	}
}

func TestPrimitive_ClosedSet(t *testing.T) {
	prims := []Primitive{
		NewSphere(core.NewVec3(0, 0, 0), 1, DefaultColor),
		NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), DefaultColor),
		NewCircle(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 1, DefaultColor),
	}
	for _, p := range prims {
		if p.GetColor() != DefaultColor {
			t.Errorf("%T: expected default color, got %v", p, p.GetColor())
		}
	}
}
