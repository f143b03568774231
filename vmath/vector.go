package vmath

import (
	"cogentcore.org/core/math32"
	cm "github.com/chewxy/math32"
)

// Up is the world up axis and the fallback for degenerate outward directions
var Up = math32.Vec3(0, 1, 0)

// SafeNormal returns the unit vector of v, or fallback when v has no usable length
func SafeNormal(v, fallback math32.Vector3) math32.Vector3 {
	l := v.Length()
	if l < Epsilon {
		return fallback
	}
	return v.DivScalar(l)
}

// RotateY rotates v about the world Y axis by angle radians
func RotateY(v math32.Vector3, angle float32) math32.Vector3 {
	s, c := cm.Sincos(angle)
	return math32.Vec3(v.X*c+v.Z*s, v.Y, -v.X*s+v.Z*c)
}

// QuadBezier evaluates the quadratic bezier a→ctrl→b at t
func QuadBezier(a, ctrl, b math32.Vector3, t float32) math32.Vector3 {
	u := 1 - t
	p := a.MulScalar(u * u)
	p = p.Add(ctrl.MulScalar(2 * u * t))
	return p.Add(b.MulScalar(t * t))
}

// SampleQuadBezier returns segments+1 points at uniform parameter steps, endpoints included
func SampleQuadBezier(a, ctrl, b math32.Vector3, segments int) []math32.Vector3 {
	if segments < 1 {
		segments = 1
	}
	pts := make([]math32.Vector3, segments+1)
	for i := 0; i <= segments; i++ {
		pts[i] = QuadBezier(a, ctrl, b, float32(i)/float32(segments))
	}
	return pts
}
