package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// WithinRadius is the circle-circle proximity test: distance strictly below r
func WithinRadius(a, b mgl64.Vec3, r float64) bool {
	return Distance(a, b) < r
}

// SweepCircle solves |p + t·v − c|² = r² for t
// Returns the ordered roots and false when the line misses the circle or v is zero
func SweepCircle(p, v, c mgl64.Vec3, rSq float64) (t1, t2 float64, ok bool) {
	v = Flat(v)
	sc := Flat(p.Sub(c))

	a := v.Dot(v)
	if a == 0 {
		return 0, 0, false
	}
	b := 2 * v.Dot(sc)
	cc := sc.Dot(sc) - rSq

	disc := b*b - 4*a*cc
	if disc < 0 {
		return 0, 0, false
	}
	disc = math.Sqrt(disc)
	return (-b - disc) / (2 * a), (-b + disc) / (2 * a), true
}

// SegmentHitsCircle reports whether the segment p → p+v touches the circle
// The root interval [t1, t2] must intersect [0, 1]; a circle straddling the
// whole segment (t1 ≤ 0, t2 ≥ 1) and a pass-through inside one frame both count
func SegmentHitsCircle(p, v, c mgl64.Vec3, rSq float64) bool {
	if d := Flat(p.Sub(c)); d.Dot(d) < rSq {
		return true
	}
	t1, t2, ok := SweepCircle(p, v, c, rSq)
	if !ok {
		return false
	}
	return t1 <= 1 && t2 >= 0
}
