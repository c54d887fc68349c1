package core

import (
	"math"
	"testing"
)

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 0, -1), 100)
	p := ray.At(2.5)
	expected := NewVec3(1, 0, -2.5)
	if !p.ApproxEqual(expected) {
		t.Errorf("Expected %v, got %v", expected, p)
	}
}

func TestRay_NewRayStartsAtMaxLength(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, -1), 10000)
	if ray.Length() != 10000 {
		t.Errorf("Expected initial length 10000, got %f", ray.Length())
	}
}

func TestRay_Record(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, -1), 10)
	red := NewColorPixel(1, 0, 0)
	blue := NewColorPixel(0, 0, 1)

	if !ray.Record(HitInformation{Length: 6, HitColor: red}) {
		t.Fatal("Expected hit closer than max length to be recorded")
	}
	if ray.Record(HitInformation{Length: 7, HitColor: blue}) {
		t.Error("Expected farther hit to be refused")
	}
	if ray.Hit.HitColor != red || math.Abs(ray.Length()-6) > 1e-12 {
		t.Errorf("Refused hit must leave ray untouched, got %+v", ray.Hit)
	}
	if !ray.Record(HitInformation{Length: 6, HitColor: blue}) {
		t.Error("Expected hit at exactly the current length to be recorded")
	}
	if !ray.Record(HitInformation{Length: 2, HitColor: red}) {
		t.Error("Expected closer hit to be recorded")
	}
	if ray.Length() != 2 {
		t.Errorf("Expected length 2, got %f", ray.Length())
	}
}
