package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Bearing returns the unit facing direction for angle a
func Bearing(a float64) mgl64.Vec3 {
	return mgl64.Vec3{math.Cos(a), math.Sin(a), 0}
}

// Right returns the unit vector pointing to the right of a facing angle
func Right(a float64) mgl64.Vec3 {
	return mgl64.Vec3{math.Sin(a), -math.Cos(a), 0}
}

// Flat drops the unused z component
func Flat(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], 0}
}

// Distance is the planar distance between two points
func Distance(a, b mgl64.Vec3) float64 {
	return Flat(a.Sub(b)).Len()
}

// NormalizeOrZero returns v scaled to unit length, or the zero vector for zero input
func NormalizeOrZero(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 || math.IsNaN(l) {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// Heading returns the angle of v in [0, 2π), or fallback for the zero vector
func Heading(v mgl64.Vec3, fallback float64) float64 {
	if v[0] == 0 && v[1] == 0 {
		return fallback
	}
	return WrapAngle(math.Atan2(v[1], v[0]))
}
